package http

import (
	"encoding/json"
	"net/http"

	"github.com/nandervang/go-consult-base/internal/logger"
	"github.com/nandervang/go-consult-base/internal/utils"
	"github.com/nandervang/go-consult-base/models"
)

// createInvoiceRequest is the POST /api/invoices payload: an invoice plus
// the IDs of unbilled time entries to attach to it.
type createInvoiceRequest struct {
	models.Invoice
	TimeEntryIDs []int64 `json:"time_entry_ids,omitempty"`
}

// updateInvoiceStatusRequest is the PATCH /api/invoices/{id}/status payload.
type updateInvoiceStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) createInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.createInvoice").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req createInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createInvoice").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	req.Invoice.UserID = userID

	if err := h.validator.Validate(ctx, req.Invoice); err != nil {
		log.Warn().Err(err).Str("func", "*Handler.createInvoice").Msg("invoice payload failed validation")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.services.InvoiceService.CreateInvoice(ctx, req.Invoice, req.TimeEntryIDs)
	if err != nil {
		h.respondError(w, r, err, "error creating invoice")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// getInvoices lists the caller's invoices, optionally narrowed by the
// client_id and status query parameters.
func (h *Handler) getInvoices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.getInvoices").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var filter models.InvoiceFilter
	clientID, err := queryInt64(r, "client_id")
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.getInvoices").Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	filter.ClientID = clientID

	if status := r.URL.Query().Get("status"); status != "" {
		if !models.ValidInvoiceStatus(status) {
			log.Warn().Str("status", status).Str("func", "*Handler.getInvoices").Msg("unknown invoice status in query")
			http.Error(w, "unknown invoice status", http.StatusBadRequest)
			return
		}
		filter.Status = &status
	}

	invoices, err := h.services.InvoiceService.GetInvoices(ctx, userID, filter)
	if err != nil {
		h.respondError(w, r, err, "error listing invoices")
		return
	}

	utils.WriteJSON(w, invoices, http.StatusOK)
}

func (h *Handler) getInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.getInvoice").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	invoiceID, err := idFromURL(r, "id")
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.getInvoice").Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	invoice, err := h.services.InvoiceService.GetInvoice(ctx, userID, invoiceID)
	if err != nil {
		h.respondError(w, r, err, "error getting invoice")
		return
	}

	utils.WriteJSON(w, invoice, http.StatusOK)
}

func (h *Handler) updateInvoiceStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.updateInvoiceStatus").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	invoiceID, err := idFromURL(r, "id")
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.updateInvoiceStatus").Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req updateInvoiceStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.updateInvoiceStatus").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.InvoiceService.UpdateInvoiceStatus(ctx, userID, invoiceID, req.Status)
	if err != nil {
		h.respondError(w, r, err, "error updating invoice status")
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}
