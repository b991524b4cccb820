package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/nandervang/go-consult-base/internal/logger"
	"github.com/nandervang/go-consult-base/models"
)

// salaryRepository is the PostgreSQL-backed implementation of
// [SalaryRepository].
type salaryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSalaryRepository constructs a [SalaryRepository] backed by the provided
// database connection and logger.
func NewSalaryRepository(db *DB, logger *logger.Logger) SalaryRepository {
	logger.Debug().Msg("creating salary repository")
	return &salaryRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSalaryPayment schedules a salary payment for a month.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) on (user_id, period) →
//     [ErrSalaryPeriodExists].
func (r *salaryRepository) CreateSalaryPayment(ctx context.Context, payment models.SalaryPayment) (models.SalaryPayment, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createSalaryPayment,
		payment.UserID, payment.Period, payment.GrossAmount, payment.TaxAmount, payment.NetAmount, payment.DueDate)

	if err := scanSalaryPayment(row, &payment); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.SalaryPayment{}, ErrSalaryPeriodExists
		}
		log.Err(err).
			Str("func", "*salaryRepository.CreateSalaryPayment").
			Int64("user_id", payment.UserID).
			Str("period", payment.Period).
			Msg("error: scanning error")
		return models.SalaryPayment{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return payment, nil
}

// GetSalaryPayments lists the user's salary schedule, newest period first.
func (r *salaryRepository) GetSalaryPayments(ctx context.Context, userID int64) ([]models.SalaryPayment, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getSalaryPayments, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*salaryRepository.GetSalaryPayments").
			Int64("user_id", userID).
			Msg("failed to execute query for listing salary payments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	payments := make([]models.SalaryPayment, 0, 12)

	for rows.Next() {
		var payment models.SalaryPayment
		if scanErr := scanSalaryPayment(rows, &payment); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*salaryRepository.GetSalaryPayments").
				Int64("user_id", userID).
				Msg("failed to scan salary payment row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		payments = append(payments, payment)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*salaryRepository.GetSalaryPayments").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return payments, nil
}

// MarkSalaryPaid records that the payment left the company account at paidAt.
// Returns [ErrSalaryPaymentNotFound] when no matching record exists.
func (r *salaryRepository) MarkSalaryPaid(ctx context.Context, userID, paymentID int64, paidAt time.Time) (models.SalaryPayment, error) {
	log := logger.FromContext(ctx)

	var payment models.SalaryPayment
	row := r.db.QueryRowContext(ctx, markSalaryPaid, userID, paymentID, paidAt)

	if err := scanSalaryPayment(row, &payment); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SalaryPayment{}, ErrSalaryPaymentNotFound
		}
		log.Err(err).
			Str("func", "*salaryRepository.MarkSalaryPaid").
			Int64("user_id", userID).
			Int64("payment_id", paymentID).
			Msg("error: scanning error")
		return models.SalaryPayment{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return payment, nil
}

func scanSalaryPayment(s scanner, p *models.SalaryPayment) error {
	return s.Scan(
		&p.PaymentID,
		&p.UserID,
		&p.Period,
		&p.GrossAmount,
		&p.TaxAmount,
		&p.NetAmount,
		&p.DueDate,
		&p.Paid,
		&p.PaidAt,
		&p.CreatedAt,
	)
}
