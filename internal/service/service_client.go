package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/nandervang/go-consult-base/internal/logger"
	"github.com/nandervang/go-consult-base/internal/store"
	"github.com/nandervang/go-consult-base/models"
)

// clientService is the concrete implementation of ClientService.
type clientService struct {
	clientRepository store.ClientRepository
	logger           *logger.Logger
}

// NewClientService constructs a ClientService wired to the given repository.
func NewClientService(clientRepository store.ClientRepository, logger *logger.Logger) ClientService {
	return &clientService{
		clientRepository: clientRepository,
		logger:           logger,
	}
}

// CreateClient validates and persists a new client. The currency defaults to
// SEK when omitted.
func (c *clientService) CreateClient(ctx context.Context, client models.Client) (models.Client, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(client.Name) == "" {
		log.Error().Int64("user_id", client.UserID).Msg("client name is required")
		return models.Client{}, ErrInvalidDataProvided
	}
	if client.Currency == "" {
		client.Currency = "SEK"
	}
	client.Currency = strings.ToUpper(client.Currency)

	created, err := c.clientRepository.CreateClient(ctx, client)
	if err != nil {
		log.Err(err).Int64("user_id", client.UserID).Msg("client creation ended with error")
		return models.Client{}, fmt.Errorf("client creation ended with error: %w", err)
	}

	return created, nil
}

// GetClients lists the user's clients.
func (c *clientService) GetClients(ctx context.Context, userID int64, includeArchived bool) ([]models.Client, error) {
	return c.clientRepository.GetClients(ctx, userID, includeArchived)
}

// GetClient fetches one client owned by the user.
func (c *clientService) GetClient(ctx context.Context, userID, clientID int64) (models.Client, error) {
	return c.clientRepository.GetClientByID(ctx, userID, clientID)
}

// UpdateClient validates and persists changed client fields.
func (c *clientService) UpdateClient(ctx context.Context, client models.Client) (models.Client, error) {
	log := logger.FromContext(ctx)

	if client.ClientID == 0 || strings.TrimSpace(client.Name) == "" {
		log.Error().Int64("user_id", client.UserID).Msg("invalid client data provided")
		return models.Client{}, ErrInvalidDataProvided
	}
	client.Currency = strings.ToUpper(client.Currency)

	updated, err := c.clientRepository.UpdateClient(ctx, client)
	if err != nil {
		log.Err(err).
			Int64("user_id", client.UserID).
			Int64("client_id", client.ClientID).
			Msg("client update ended with error")
		return models.Client{}, fmt.Errorf("client update ended with error: %w", err)
	}

	return updated, nil
}

// ArchiveClient hides the client from active listings.
func (c *clientService) ArchiveClient(ctx context.Context, userID, clientID int64) error {
	return c.clientRepository.ArchiveClient(ctx, userID, clientID)
}
