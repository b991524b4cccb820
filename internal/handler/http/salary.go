package http

import (
	"encoding/json"
	"net/http"

	"github.com/nandervang/go-consult-base/internal/logger"
	"github.com/nandervang/go-consult-base/internal/utils"
	"github.com/nandervang/go-consult-base/models"
)

func (h *Handler) schedulePayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.schedulePayment").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var payment models.SalaryPayment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		log.Err(err).Str("func", "*Handler.schedulePayment").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	payment.UserID = userID

	if err := h.validator.Validate(ctx, payment); err != nil {
		log.Warn().Err(err).Str("func", "*Handler.schedulePayment").Msg("salary payload failed validation")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.services.SalaryService.SchedulePayment(ctx, payment)
	if err != nil {
		h.respondError(w, r, err, "error scheduling salary payment")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getPayments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.getPayments").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	payments, err := h.services.SalaryService.GetPayments(ctx, userID)
	if err != nil {
		h.respondError(w, r, err, "error listing salary payments")
		return
	}

	utils.WriteJSON(w, payments, http.StatusOK)
}

func (h *Handler) markPaymentPaid(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.markPaymentPaid").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	paymentID, err := idFromURL(r, "id")
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.markPaymentPaid").Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	paid, err := h.services.SalaryService.MarkPaid(ctx, userID, paymentID)
	if err != nil {
		h.respondError(w, r, err, "error marking salary payment paid")
		return
	}

	utils.WriteJSON(w, paid, http.StatusOK)
}
