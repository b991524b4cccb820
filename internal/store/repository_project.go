package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nandervang/go-consult-base/internal/logger"
	"github.com/nandervang/go-consult-base/models"
)

// projectRepository is the PostgreSQL-backed implementation of
// [ProjectRepository].
type projectRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProjectRepository constructs a [ProjectRepository] backed by the
// provided database connection and logger.
func NewProjectRepository(db *DB, logger *logger.Logger) ProjectRepository {
	logger.Debug().Msg("creating project repository")
	return &projectRepository{
		db:     db,
		logger: logger,
	}
}

// CreateProject persists a new project record and returns it with
// server-assigned fields populated.
func (r *projectRepository) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createProject,
		project.UserID, project.ClientID, project.Name, project.Description, project.HourlyRate, project.BudgetHours, project.Status)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*projectRepository.CreateProject").Msg("error: row is nil")
		return models.Project{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := scanProject(row, &project); err != nil {
		log.Err(err).Str("func", "*projectRepository.CreateProject").Msg("error: scanning error")
		return models.Project{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return project, nil
}

// GetProjects lists every project owned by the user, ordered by name.
func (r *projectRepository) GetProjects(ctx context.Context, userID int64) ([]models.Project, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getProjects, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*projectRepository.GetProjects").
			Int64("user_id", userID).
			Msg("failed to execute query for listing projects")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	projects := make([]models.Project, 0, 20)

	for rows.Next() {
		var project models.Project
		if scanErr := scanProject(rows, &project); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*projectRepository.GetProjects").
				Int64("user_id", userID).
				Msg("failed to scan project row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		projects = append(projects, project)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*projectRepository.GetProjects").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return projects, nil
}

// GetProjectByID retrieves a single project owned by the user.
// Returns [ErrProjectNotFound] when no matching record exists.
func (r *projectRepository) GetProjectByID(ctx context.Context, userID, projectID int64) (models.Project, error) {
	log := logger.FromContext(ctx)

	var project models.Project
	row := r.db.QueryRowContext(ctx, getProjectByID, userID, projectID)

	if err := scanProject(row, &project); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Project{}, ErrProjectNotFound
		}
		log.Err(err).
			Str("func", "*projectRepository.GetProjectByID").
			Int64("user_id", userID).
			Int64("project_id", projectID).
			Msg("error: scanning error")
		return models.Project{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return project, nil
}

// UpdateProject overwrites the mutable project fields and returns the stored
// record. Returns [ErrProjectNotFound] when no matching record exists.
func (r *projectRepository) UpdateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateProject,
		project.UserID, project.ProjectID, project.Name, project.Description, project.HourlyRate, project.BudgetHours, project.Status)

	var updated models.Project
	if err := scanProject(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Project{}, ErrProjectNotFound
		}
		log.Err(err).
			Str("func", "*projectRepository.UpdateProject").
			Int64("user_id", project.UserID).
			Int64("project_id", project.ProjectID).
			Msg("error: scanning error")
		return models.Project{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updated, nil
}

func scanProject(s scanner, p *models.Project) error {
	return s.Scan(
		&p.ProjectID,
		&p.UserID,
		&p.ClientID,
		&p.Name,
		&p.Description,
		&p.HourlyRate,
		&p.BudgetHours,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
}
