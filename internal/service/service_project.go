package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/nandervang/go-consult-base/internal/logger"
	"github.com/nandervang/go-consult-base/internal/store"
	"github.com/nandervang/go-consult-base/models"
)

// projectService is the concrete implementation of ProjectService. It checks
// client ownership before creating a project so a project can never point at
// another consultant's client.
type projectService struct {
	projectRepository store.ProjectRepository
	clientRepository  store.ClientRepository
	logger            *logger.Logger
}

// NewProjectService constructs a ProjectService wired to the given
// repositories.
func NewProjectService(projectRepository store.ProjectRepository, clientRepository store.ClientRepository, logger *logger.Logger) ProjectService {
	return &projectService{
		projectRepository: projectRepository,
		clientRepository:  clientRepository,
		logger:            logger,
	}
}

// CreateProject validates and persists a new project. The referenced client
// must exist and belong to the same user. Status defaults to active.
func (p *projectService) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(project.Name) == "" || project.ClientID == 0 || project.HourlyRate < 0 {
		log.Error().Int64("user_id", project.UserID).Msg("invalid project data provided")
		return models.Project{}, ErrInvalidDataProvided
	}

	if _, err := p.clientRepository.GetClientByID(ctx, project.UserID, project.ClientID); err != nil {
		log.Err(err).
			Int64("user_id", project.UserID).
			Int64("client_id", project.ClientID).
			Msg("project client lookup failed")
		return models.Project{}, fmt.Errorf("project client lookup failed: %w", err)
	}

	if project.Status == "" {
		project.Status = models.ProjectActive
	}
	if !validProjectStatus(project.Status) {
		return models.Project{}, ErrInvalidDataProvided
	}

	created, err := p.projectRepository.CreateProject(ctx, project)
	if err != nil {
		log.Err(err).Int64("user_id", project.UserID).Msg("project creation ended with error")
		return models.Project{}, fmt.Errorf("project creation ended with error: %w", err)
	}

	return created, nil
}

// GetProjects lists the user's projects.
func (p *projectService) GetProjects(ctx context.Context, userID int64) ([]models.Project, error) {
	return p.projectRepository.GetProjects(ctx, userID)
}

// GetProject fetches one project owned by the user.
func (p *projectService) GetProject(ctx context.Context, userID, projectID int64) (models.Project, error) {
	return p.projectRepository.GetProjectByID(ctx, userID, projectID)
}

// UpdateProject validates and persists changed project fields.
func (p *projectService) UpdateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	if project.ProjectID == 0 || strings.TrimSpace(project.Name) == "" || !validProjectStatus(project.Status) {
		log.Error().Int64("user_id", project.UserID).Msg("invalid project data provided")
		return models.Project{}, ErrInvalidDataProvided
	}

	updated, err := p.projectRepository.UpdateProject(ctx, project)
	if err != nil {
		log.Err(err).
			Int64("user_id", project.UserID).
			Int64("project_id", project.ProjectID).
			Msg("project update ended with error")
		return models.Project{}, fmt.Errorf("project update ended with error: %w", err)
	}

	return updated, nil
}

func validProjectStatus(status string) bool {
	switch status {
	case models.ProjectActive, models.ProjectPaused, models.ProjectCompleted:
		return true
	}
	return false
}
