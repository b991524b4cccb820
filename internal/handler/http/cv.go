package http

import (
	"encoding/json"
	"net/http"

	"github.com/nandervang/go-consult-base/internal/logger"
	"github.com/nandervang/go-consult-base/internal/utils"
	"github.com/nandervang/go-consult-base/models"
)

func (h *Handler) createCVProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.createCVProfile").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var profile models.CVProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		log.Err(err).Str("func", "*Handler.createCVProfile").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	profile.UserID = userID

	if err := h.validator.Validate(ctx, profile); err != nil {
		log.Warn().Err(err).Str("func", "*Handler.createCVProfile").Msg("profile payload failed validation")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.services.CVService.CreateProfile(ctx, profile)
	if err != nil {
		h.respondError(w, r, err, "error creating CV profile")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getCVProfiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.getCVProfiles").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	profiles, err := h.services.CVService.GetProfiles(ctx, userID)
	if err != nil {
		h.respondError(w, r, err, "error listing CV profiles")
		return
	}

	utils.WriteJSON(w, profiles, http.StatusOK)
}

func (h *Handler) getCVProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.getCVProfile").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	profileID, err := idFromURL(r, "id")
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.getCVProfile").Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	profile, err := h.services.CVService.GetProfile(ctx, userID, profileID)
	if err != nil {
		h.respondError(w, r, err, "error getting CV profile")
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) updateCVProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.updateCVProfile").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	profileID, err := idFromURL(r, "id")
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.updateCVProfile").Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var profile models.CVProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		log.Err(err).Str("func", "*Handler.updateCVProfile").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	profile.UserID = userID
	profile.ProfileID = profileID

	if err := h.validator.Validate(ctx, profile); err != nil {
		log.Warn().Err(err).Str("func", "*Handler.updateCVProfile").Msg("profile payload failed validation")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.services.CVService.UpdateProfile(ctx, profile)
	if err != nil {
		h.respondError(w, r, err, "error updating CV profile")
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteCVProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.deleteCVProfile").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	profileID, err := idFromURL(r, "id")
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.deleteCVProfile").Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.CVService.DeleteProfile(ctx, userID, profileID); err != nil {
		h.respondError(w, r, err, "error deleting CV profile")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
