package http

import (
	"encoding/json"
	"net/http"

	"github.com/nandervang/go-consult-base/internal/logger"
	"github.com/nandervang/go-consult-base/internal/utils"
	"github.com/nandervang/go-consult-base/models"
)

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.createProject").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var project models.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		log.Err(err).Str("func", "*Handler.createProject").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	project.UserID = userID

	if err := h.validator.Validate(ctx, project); err != nil {
		log.Warn().Err(err).Str("func", "*Handler.createProject").Msg("project payload failed validation")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.services.ProjectService.CreateProject(ctx, project)
	if err != nil {
		h.respondError(w, r, err, "error creating project")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getProjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.getProjects").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	projects, err := h.services.ProjectService.GetProjects(ctx, userID)
	if err != nil {
		h.respondError(w, r, err, "error listing projects")
		return
	}

	utils.WriteJSON(w, projects, http.StatusOK)
}

func (h *Handler) getProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.getProject").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	projectID, err := idFromURL(r, "id")
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.getProject").Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	project, err := h.services.ProjectService.GetProject(ctx, userID, projectID)
	if err != nil {
		h.respondError(w, r, err, "error getting project")
		return
	}

	utils.WriteJSON(w, project, http.StatusOK)
}

func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.updateProject").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	projectID, err := idFromURL(r, "id")
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.updateProject").Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var project models.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		log.Err(err).Str("func", "*Handler.updateProject").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	project.UserID = userID
	project.ProjectID = projectID

	if err := h.validator.Validate(ctx, project); err != nil {
		log.Warn().Err(err).Str("func", "*Handler.updateProject").Msg("project payload failed validation")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.services.ProjectService.UpdateProject(ctx, project)
	if err != nil {
		h.respondError(w, r, err, "error updating project")
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) getTimeSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.getTimeSummary").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	projectID, err := idFromURL(r, "id")
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.getTimeSummary").Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary, err := h.services.TimeEntryService.GetTimeSummary(ctx, userID, projectID)
	if err != nil {
		h.respondError(w, r, err, "error computing time summary")
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}
