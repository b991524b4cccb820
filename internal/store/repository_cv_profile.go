package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nandervang/go-consult-base/internal/logger"
	"github.com/nandervang/go-consult-base/models"
)

// cvProfileRepository is the PostgreSQL-backed implementation of
// [CVProfileRepository]. The nested CV sections are stored as JSONB columns
// and marshalled at the repository boundary, so the rest of the application
// works with typed structs only.
type cvProfileRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCVProfileRepository constructs a [CVProfileRepository] backed by the
// provided database connection and logger.
func NewCVProfileRepository(db *DB, logger *logger.Logger) CVProfileRepository {
	logger.Debug().Msg("creating cv profile repository")
	return &cvProfileRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCVProfile persists a new CV profile and returns it with
// server-assigned fields populated.
func (r *cvProfileRepository) CreateCVProfile(ctx context.Context, profile models.CVProfile) (models.CVProfile, error) {
	log := logger.FromContext(ctx)

	personalInfo, summary, experience, skills, err := marshalCVSections(profile)
	if err != nil {
		log.Err(err).Str("func", "*cvProfileRepository.CreateCVProfile").Msg("failed to marshal cv sections")
		return models.CVProfile{}, err
	}

	row := r.db.QueryRowContext(ctx, createCVProfile,
		profile.UserID, profile.Title, personalInfo, summary, experience, skills)

	if err := row.Scan(&profile.ProfileID, &profile.CreatedAt, &profile.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*cvProfileRepository.CreateCVProfile").Msg("error: scanning error")
		return models.CVProfile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return profile, nil
}

// GetCVProfiles lists the user's CV profiles ordered by title.
func (r *cvProfileRepository) GetCVProfiles(ctx context.Context, userID int64) ([]models.CVProfile, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getCVProfiles, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*cvProfileRepository.GetCVProfiles").
			Int64("user_id", userID).
			Msg("failed to execute query for listing cv profiles")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	profiles := make([]models.CVProfile, 0, 5)

	for rows.Next() {
		var profile models.CVProfile
		if scanErr := scanCVProfile(rows, &profile); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*cvProfileRepository.GetCVProfiles").
				Int64("user_id", userID).
				Msg("failed to scan cv profile row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		profiles = append(profiles, profile)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*cvProfileRepository.GetCVProfiles").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return profiles, nil
}

// GetCVProfileByID retrieves a single CV profile owned by the user.
// Returns [ErrCVProfileNotFound] when no matching record exists.
func (r *cvProfileRepository) GetCVProfileByID(ctx context.Context, userID, profileID int64) (models.CVProfile, error) {
	log := logger.FromContext(ctx)

	var profile models.CVProfile
	row := r.db.QueryRowContext(ctx, getCVProfileByID, userID, profileID)

	if err := scanCVProfile(row, &profile); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CVProfile{}, ErrCVProfileNotFound
		}
		log.Err(err).
			Str("func", "*cvProfileRepository.GetCVProfileByID").
			Int64("user_id", userID).
			Int64("profile_id", profileID).
			Msg("error: scanning error")
		return models.CVProfile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return profile, nil
}

// UpdateCVProfile overwrites the profile title and all sections.
// Returns [ErrCVProfileNotFound] when no matching record exists.
func (r *cvProfileRepository) UpdateCVProfile(ctx context.Context, profile models.CVProfile) (models.CVProfile, error) {
	log := logger.FromContext(ctx)

	personalInfo, summary, experience, skills, err := marshalCVSections(profile)
	if err != nil {
		log.Err(err).Str("func", "*cvProfileRepository.UpdateCVProfile").Msg("failed to marshal cv sections")
		return models.CVProfile{}, err
	}

	row := r.db.QueryRowContext(ctx, updateCVProfile,
		profile.UserID, profile.ProfileID, profile.Title, personalInfo, summary, experience, skills)

	if err := row.Scan(&profile.ProfileID, &profile.CreatedAt, &profile.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CVProfile{}, ErrCVProfileNotFound
		}
		log.Err(err).
			Str("func", "*cvProfileRepository.UpdateCVProfile").
			Int64("user_id", profile.UserID).
			Int64("profile_id", profile.ProfileID).
			Msg("error: scanning error")
		return models.CVProfile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return profile, nil
}

// DeleteCVProfile removes a CV profile.
// Returns [ErrCVProfileNotFound] when no matching record exists.
func (r *cvProfileRepository) DeleteCVProfile(ctx context.Context, userID, profileID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteCVProfile, userID, profileID)
	if err != nil {
		log.Err(err).
			Str("func", "*cvProfileRepository.DeleteCVProfile").
			Int64("user_id", userID).
			Int64("profile_id", profileID).
			Msg("failed to execute delete statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCVProfileNotFound
	}

	return nil
}

// marshalCVSections serializes the four JSONB sections of a profile.
func marshalCVSections(profile models.CVProfile) (personalInfo, summary, experience, skills []byte, err error) {
	if personalInfo, err = json.Marshal(profile.PersonalInfo); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to marshal personal info: %w", err)
	}
	if summary, err = json.Marshal(profile.Summary); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to marshal summary: %w", err)
	}
	if experience, err = json.Marshal(profile.Experience); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to marshal experience: %w", err)
	}
	if skills, err = json.Marshal(profile.Skills); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to marshal skills: %w", err)
	}
	return personalInfo, summary, experience, skills, nil
}

func scanCVProfile(s scanner, p *models.CVProfile) error {
	var personalInfo, summary, experience, skills []byte

	if err := s.Scan(
		&p.ProfileID,
		&p.UserID,
		&p.Title,
		&personalInfo,
		&summary,
		&experience,
		&skills,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return err
	}

	if err := json.Unmarshal(personalInfo, &p.PersonalInfo); err != nil {
		return fmt.Errorf("failed to unmarshal personal info: %w", err)
	}
	if err := json.Unmarshal(summary, &p.Summary); err != nil {
		return fmt.Errorf("failed to unmarshal summary: %w", err)
	}
	if err := json.Unmarshal(experience, &p.Experience); err != nil {
		return fmt.Errorf("failed to unmarshal experience: %w", err)
	}
	if err := json.Unmarshal(skills, &p.Skills); err != nil {
		return fmt.Errorf("failed to unmarshal skills: %w", err)
	}

	return nil
}
