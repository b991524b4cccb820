package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/nandervang/go-consult-base/internal/logger"
	"github.com/nandervang/go-consult-base/internal/store"
	"github.com/nandervang/go-consult-base/models"
)

// cvService is the concrete implementation of CVService.
type cvService struct {
	cvProfileRepository store.CVProfileRepository
	logger              *logger.Logger
}

// NewCVService constructs a CVService wired to the given repository.
func NewCVService(cvProfileRepository store.CVProfileRepository, logger *logger.Logger) CVService {
	return &cvService{
		cvProfileRepository: cvProfileRepository,
		logger:              logger,
	}
}

// CreateProfile validates and persists a new CV profile.
func (c *cvService) CreateProfile(ctx context.Context, profile models.CVProfile) (models.CVProfile, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(profile.Title) == "" {
		log.Error().Int64("user_id", profile.UserID).Msg("cv profile title is required")
		return models.CVProfile{}, ErrInvalidDataProvided
	}

	created, err := c.cvProfileRepository.CreateCVProfile(ctx, profile)
	if err != nil {
		log.Err(err).Int64("user_id", profile.UserID).Msg("cv profile creation ended with error")
		return models.CVProfile{}, fmt.Errorf("cv profile creation ended with error: %w", err)
	}

	return created, nil
}

// GetProfiles lists the user's CV profiles.
func (c *cvService) GetProfiles(ctx context.Context, userID int64) ([]models.CVProfile, error) {
	return c.cvProfileRepository.GetCVProfiles(ctx, userID)
}

// GetProfile fetches one CV profile owned by the user.
func (c *cvService) GetProfile(ctx context.Context, userID, profileID int64) (models.CVProfile, error) {
	return c.cvProfileRepository.GetCVProfileByID(ctx, userID, profileID)
}

// UpdateProfile validates and persists changed CV profile fields.
func (c *cvService) UpdateProfile(ctx context.Context, profile models.CVProfile) (models.CVProfile, error) {
	log := logger.FromContext(ctx)

	if profile.ProfileID == 0 || strings.TrimSpace(profile.Title) == "" {
		log.Error().Int64("user_id", profile.UserID).Msg("invalid cv profile data provided")
		return models.CVProfile{}, ErrInvalidDataProvided
	}

	updated, err := c.cvProfileRepository.UpdateCVProfile(ctx, profile)
	if err != nil {
		log.Err(err).
			Int64("user_id", profile.UserID).
			Int64("profile_id", profile.ProfileID).
			Msg("cv profile update ended with error")
		return models.CVProfile{}, fmt.Errorf("cv profile update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteProfile removes a CV profile.
func (c *cvService) DeleteProfile(ctx context.Context, userID, profileID int64) error {
	return c.cvProfileRepository.DeleteCVProfile(ctx, userID, profileID)
}
