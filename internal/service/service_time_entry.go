package service

import (
	"context"
	"fmt"

	"github.com/nandervang/go-consult-base/internal/logger"
	"github.com/nandervang/go-consult-base/internal/store"
	"github.com/nandervang/go-consult-base/models"
)

// maxHoursPerEntry caps a single logged period at one calendar day.
const maxHoursPerEntry = 24

// timeEntryService is the concrete implementation of TimeEntryService.
type timeEntryService struct {
	timeEntryRepository store.TimeEntryRepository
	projectRepository   store.ProjectRepository
	logger              *logger.Logger
}

// NewTimeEntryService constructs a TimeEntryService wired to the given
// repositories.
func NewTimeEntryService(timeEntryRepository store.TimeEntryRepository, projectRepository store.ProjectRepository, logger *logger.Logger) TimeEntryService {
	return &timeEntryService{
		timeEntryRepository: timeEntryRepository,
		projectRepository:   projectRepository,
		logger:              logger,
	}
}

// LogTime validates and persists a logged work period. The target project
// must exist, belong to the user, and be active.
//
// Returns the persisted entry or:
//   - ErrInvalidDataProvided if hours are outside (0, 24] or the date is zero.
//   - ErrProjectNotActive if the project is paused or completed.
//   - A wrapped storage error otherwise.
func (t *timeEntryService) LogTime(ctx context.Context, entry models.TimeEntry) (models.TimeEntry, error) {
	log := logger.FromContext(ctx)

	if entry.ProjectID == 0 || entry.Hours <= 0 || entry.Hours > maxHoursPerEntry || entry.EntryDate.IsZero() {
		log.Error().Int64("user_id", entry.UserID).Msg("invalid time entry data provided")
		return models.TimeEntry{}, ErrInvalidDataProvided
	}

	project, err := t.projectRepository.GetProjectByID(ctx, entry.UserID, entry.ProjectID)
	if err != nil {
		log.Err(err).
			Int64("user_id", entry.UserID).
			Int64("project_id", entry.ProjectID).
			Msg("time entry project lookup failed")
		return models.TimeEntry{}, fmt.Errorf("time entry project lookup failed: %w", err)
	}
	if project.Status != models.ProjectActive {
		log.Error().
			Int64("project_id", project.ProjectID).
			Str("status", project.Status).
			Msg("cannot log time against inactive project")
		return models.TimeEntry{}, ErrProjectNotActive
	}

	created, err := t.timeEntryRepository.CreateTimeEntry(ctx, entry)
	if err != nil {
		log.Err(err).Int64("user_id", entry.UserID).Msg("time entry creation ended with error")
		return models.TimeEntry{}, fmt.Errorf("time entry creation ended with error: %w", err)
	}

	return created, nil
}

// GetTimeEntries lists the user's entries matching the filter.
func (t *timeEntryService) GetTimeEntries(ctx context.Context, userID int64, filter models.TimeEntryFilter) ([]models.TimeEntry, error) {
	return t.timeEntryRepository.GetTimeEntries(ctx, userID, filter)
}

// DeleteTimeEntry removes an unbilled entry.
func (t *timeEntryService) DeleteTimeEntry(ctx context.Context, userID, entryID int64) error {
	return t.timeEntryRepository.DeleteTimeEntry(ctx, userID, entryID)
}

// GetTimeSummary aggregates hours for one of the user's projects. The
// project must exist so a bad id yields not-found instead of a zero summary.
func (t *timeEntryService) GetTimeSummary(ctx context.Context, userID, projectID int64) (models.TimeSummary, error) {
	log := logger.FromContext(ctx)

	if _, err := t.projectRepository.GetProjectByID(ctx, userID, projectID); err != nil {
		log.Err(err).
			Int64("user_id", userID).
			Int64("project_id", projectID).
			Msg("time summary project lookup failed")
		return models.TimeSummary{}, fmt.Errorf("time summary project lookup failed: %w", err)
	}

	return t.timeEntryRepository.GetTimeSummary(ctx, userID, projectID)
}
