package http

import (
	"encoding/json"
	"net/http"

	"github.com/nandervang/go-consult-base/internal/logger"
	"github.com/nandervang/go-consult-base/internal/utils"
)

// unlockVaultRequest is the POST /api/vault/unlock payload.
type unlockVaultRequest struct {
	Password string `json:"password"`
}

// generatePasswordRequest is the POST /api/vault/generate-password payload.
// A zero length asks for the default.
type generatePasswordRequest struct {
	Length int `json:"length,omitempty"`
}

// generatePasswordResponse carries a freshly generated password back to the
// caller. The value is never logged or stored.
type generatePasswordResponse struct {
	Password string `json:"password"`
}

func (h *Handler) unlockVault(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.unlockVault").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req unlockVaultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.unlockVault").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.DocumentService.UnlockVault(ctx, userID, req.Password); err != nil {
		h.respondError(w, r, err, "error unlocking vault")
		return
	}

	utils.WriteJSON(w, h.services.DocumentService.VaultStatus(ctx, userID), http.StatusOK)
}

func (h *Handler) lockVault(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.lockVault").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	h.services.DocumentService.LockVault(ctx, userID)

	utils.WriteJSON(w, h.services.DocumentService.VaultStatus(ctx, userID), http.StatusOK)
}

func (h *Handler) vaultStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.vaultStatus").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, h.services.DocumentService.VaultStatus(ctx, userID), http.StatusOK)
}

func (h *Handler) generatePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req generatePasswordRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Err(err).Str("func", "*Handler.generatePassword").Msg("Invalid JSON was passed")
			http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
			return
		}
	}

	password, err := h.services.DocumentService.GeneratePassword(ctx, req.Length)
	if err != nil {
		h.respondError(w, r, err, "error generating password")
		return
	}

	utils.WriteJSON(w, generatePasswordResponse{Password: password}, http.StatusOK)
}
