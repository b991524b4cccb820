package http

import (
	"encoding/json"
	"net/http"

	"github.com/nandervang/go-consult-base/internal/logger"
	"github.com/nandervang/go-consult-base/internal/utils"
	"github.com/nandervang/go-consult-base/models"
)

func (h *Handler) logTime(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.logTime").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var entry models.TimeEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Err(err).Str("func", "*Handler.logTime").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	entry.UserID = userID

	if err := h.validator.Validate(ctx, entry); err != nil {
		log.Warn().Err(err).Str("func", "*Handler.logTime").Msg("time entry payload failed validation")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.services.TimeEntryService.LogTime(ctx, entry)
	if err != nil {
		h.respondError(w, r, err, "error logging time")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// getTimeEntries lists the caller's time entries. The listing is narrowed
// by optional query parameters: project_id, from, to, billable, unbilled.
func (h *Handler) getTimeEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.getTimeEntries").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	filter, err := timeEntryFilterFromQuery(r)
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.getTimeEntries").Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entries, err := h.services.TimeEntryService.GetTimeEntries(ctx, userID, filter)
	if err != nil {
		h.respondError(w, r, err, "error listing time entries")
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) deleteTimeEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.deleteTimeEntry").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	entryID, err := idFromURL(r, "id")
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.deleteTimeEntry").Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.TimeEntryService.DeleteTimeEntry(ctx, userID, entryID); err != nil {
		h.respondError(w, r, err, "error deleting time entry")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// timeEntryFilterFromQuery assembles a [models.TimeEntryFilter] from the
// request's query string.
func timeEntryFilterFromQuery(r *http.Request) (models.TimeEntryFilter, error) {
	var filter models.TimeEntryFilter
	var err error

	if filter.ProjectID, err = queryInt64(r, "project_id"); err != nil {
		return models.TimeEntryFilter{}, err
	}
	if filter.From, err = queryDate(r, "from"); err != nil {
		return models.TimeEntryFilter{}, err
	}
	if filter.To, err = queryDate(r, "to"); err != nil {
		return models.TimeEntryFilter{}, err
	}
	if filter.Billable, err = queryBool(r, "billable"); err != nil {
		return models.TimeEntryFilter{}, err
	}

	unbilled, err := queryBool(r, "unbilled")
	if err != nil {
		return models.TimeEntryFilter{}, err
	}
	filter.Unbilled = unbilled != nil && *unbilled

	return filter, nil
}
