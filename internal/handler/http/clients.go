package http

import (
	"encoding/json"
	"net/http"

	"github.com/nandervang/go-consult-base/internal/logger"
	"github.com/nandervang/go-consult-base/internal/utils"
	"github.com/nandervang/go-consult-base/models"
)

func (h *Handler) createClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.createClient").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var client models.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		log.Err(err).Str("func", "*Handler.createClient").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	client.UserID = userID

	if err := h.validator.Validate(ctx, client); err != nil {
		log.Warn().Err(err).Str("func", "*Handler.createClient").Msg("client payload failed validation")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.services.ClientService.CreateClient(ctx, client)
	if err != nil {
		h.respondError(w, r, err, "error creating client")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getClients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.getClients").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	includeArchived, err := queryBool(r, "include_archived")
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.getClients").Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	clients, err := h.services.ClientService.GetClients(ctx, userID, includeArchived != nil && *includeArchived)
	if err != nil {
		h.respondError(w, r, err, "error listing clients")
		return
	}

	utils.WriteJSON(w, clients, http.StatusOK)
}

func (h *Handler) getClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.getClient").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	clientID, err := idFromURL(r, "id")
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.getClient").Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	client, err := h.services.ClientService.GetClient(ctx, userID, clientID)
	if err != nil {
		h.respondError(w, r, err, "error getting client")
		return
	}

	utils.WriteJSON(w, client, http.StatusOK)
}

func (h *Handler) updateClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.updateClient").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	clientID, err := idFromURL(r, "id")
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.updateClient").Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var client models.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		log.Err(err).Str("func", "*Handler.updateClient").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	client.UserID = userID
	client.ClientID = clientID

	if err := h.validator.Validate(ctx, client); err != nil {
		log.Warn().Err(err).Str("func", "*Handler.updateClient").Msg("client payload failed validation")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.services.ClientService.UpdateClient(ctx, client)
	if err != nil {
		h.respondError(w, r, err, "error updating client")
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) archiveClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.archiveClient").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	clientID, err := idFromURL(r, "id")
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.archiveClient").Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.ClientService.ArchiveClient(ctx, userID, clientID); err != nil {
		h.respondError(w, r, err, "error archiving client")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
