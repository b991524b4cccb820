package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/nandervang/go-consult-base/internal/logger"
	"github.com/nandervang/go-consult-base/internal/store"
	"github.com/nandervang/go-consult-base/models"
)

// periodPattern matches salary months in "YYYY-MM" form.
var periodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// salaryService is the concrete implementation of SalaryService.
type salaryService struct {
	salaryRepository store.SalaryRepository
	logger           *logger.Logger
}

// NewSalaryService constructs a SalaryService wired to the given repository.
func NewSalaryService(salaryRepository store.SalaryRepository, logger *logger.Logger) SalaryService {
	return &salaryService{
		salaryRepository: salaryRepository,
		logger:           logger,
	}
}

// SchedulePayment validates and persists a salary payment for a month.
// The net amount is derived as gross minus tax; a submitted net is ignored.
//
// Returns the persisted payment or:
//   - ErrInvalidPeriod when the period is not "YYYY-MM".
//   - ErrInvalidDataProvided when amounts are negative or tax exceeds gross.
//   - store.ErrSalaryPeriodExists (wrapped) on a duplicate period.
func (s *salaryService) SchedulePayment(ctx context.Context, payment models.SalaryPayment) (models.SalaryPayment, error) {
	log := logger.FromContext(ctx)

	if !periodPattern.MatchString(payment.Period) {
		return models.SalaryPayment{}, ErrInvalidPeriod
	}
	if payment.GrossAmount <= 0 || payment.TaxAmount < 0 || payment.TaxAmount > payment.GrossAmount {
		log.Error().Int64("user_id", payment.UserID).Msg("invalid salary amounts provided")
		return models.SalaryPayment{}, ErrInvalidDataProvided
	}

	payment.NetAmount = round2(payment.GrossAmount - payment.TaxAmount)
	if payment.DueDate.IsZero() {
		// default to the 25th of the period month, Swedish payday convention
		periodStart, err := time.Parse("2006-01", payment.Period)
		if err != nil {
			return models.SalaryPayment{}, ErrInvalidPeriod
		}
		payment.DueDate = periodStart.AddDate(0, 0, 24)
	}

	created, err := s.salaryRepository.CreateSalaryPayment(ctx, payment)
	if err != nil {
		log.Err(err).
			Int64("user_id", payment.UserID).
			Str("period", payment.Period).
			Msg("salary payment creation ended with error")
		return models.SalaryPayment{}, fmt.Errorf("salary payment creation ended with error: %w", err)
	}

	return created, nil
}

// GetPayments lists the user's salary schedule.
func (s *salaryService) GetPayments(ctx context.Context, userID int64) ([]models.SalaryPayment, error) {
	return s.salaryRepository.GetSalaryPayments(ctx, userID)
}

// MarkPaid records that the payment was executed now.
func (s *salaryService) MarkPaid(ctx context.Context, userID, paymentID int64) (models.SalaryPayment, error) {
	return s.salaryRepository.MarkSalaryPaid(ctx, userID, paymentID, time.Now())
}
