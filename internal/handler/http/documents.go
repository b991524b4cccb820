package http

import (
	"encoding/json"
	"net/http"

	"github.com/nandervang/go-consult-base/internal/logger"
	"github.com/nandervang/go-consult-base/internal/utils"
	"github.com/nandervang/go-consult-base/models"
)

func (h *Handler) createDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.createDocument").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var document models.Document
	if err := json.NewDecoder(r.Body).Decode(&document); err != nil {
		log.Err(err).Str("func", "*Handler.createDocument").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	document.UserID = userID

	if err := h.validator.Validate(ctx, document); err != nil {
		log.Warn().Err(err).Str("func", "*Handler.createDocument").Msg("document payload failed validation")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.services.DocumentService.CreateDocument(ctx, document)
	if err != nil {
		h.respondError(w, r, err, "error creating document")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// getDocuments lists the caller's documents, optionally scoped to a client
// via the client_id query parameter. Sensitive documents appear with their
// content withheld.
func (h *Handler) getDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.getDocuments").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	clientID, err := queryInt64(r, "client_id")
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.getDocuments").Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	documents, err := h.services.DocumentService.GetDocuments(ctx, userID, clientID)
	if err != nil {
		h.respondError(w, r, err, "error listing documents")
		return
	}

	utils.WriteJSON(w, documents, http.StatusOK)
}

func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.getDocument").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	documentID, err := idFromURL(r, "id")
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.getDocument").Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	document, err := h.services.DocumentService.GetDocument(ctx, userID, documentID)
	if err != nil {
		h.respondError(w, r, err, "error getting document")
		return
	}

	utils.WriteJSON(w, document, http.StatusOK)
}

func (h *Handler) updateDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.updateDocument").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	documentID, err := idFromURL(r, "id")
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.updateDocument").Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var document models.Document
	if err := json.NewDecoder(r.Body).Decode(&document); err != nil {
		log.Err(err).Str("func", "*Handler.updateDocument").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	document.UserID = userID
	document.DocumentID = documentID

	if err := h.validator.Validate(ctx, document); err != nil {
		log.Warn().Err(err).Str("func", "*Handler.updateDocument").Msg("document payload failed validation")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.services.DocumentService.UpdateDocument(ctx, document)
	if err != nil {
		h.respondError(w, r, err, "error updating document")
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.deleteDocument").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	documentID, err := idFromURL(r, "id")
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.deleteDocument").Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.DocumentService.DeleteDocument(ctx, userID, documentID); err != nil {
		h.respondError(w, r, err, "error deleting document")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
