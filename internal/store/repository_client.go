package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nandervang/go-consult-base/internal/logger"
	"github.com/nandervang/go-consult-base/models"
)

// clientRepository is the PostgreSQL-backed implementation of
// [ClientRepository]. All lookups are scoped by user_id so one consultant
// can never read or modify another's clients.
type clientRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewClientRepository constructs a [ClientRepository] backed by the provided
// database connection and logger.
func NewClientRepository(db *DB, logger *logger.Logger) ClientRepository {
	logger.Debug().Msg("creating client repository")
	return &clientRepository{
		db:     db,
		logger: logger,
	}
}

// CreateClient persists a new client record and returns it with
// server-assigned fields populated.
func (r *clientRepository) CreateClient(ctx context.Context, client models.Client) (models.Client, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createClient,
		client.UserID, client.Name, client.OrgNumber, client.Email, client.Phone, client.Address, client.Currency)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*clientRepository.CreateClient").Msg("error: row is nil")
		return models.Client{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := scanClient(row, &client); err != nil {
		log.Err(err).Str("func", "*clientRepository.CreateClient").Msg("error: scanning error")
		return models.Client{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return client, nil
}

// GetClients lists the user's clients ordered by name. Archived clients are
// included only when includeArchived is true.
func (r *clientRepository) GetClients(ctx context.Context, userID int64, includeArchived bool) ([]models.Client, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getClients, userID, includeArchived)
	if err != nil {
		log.Err(err).
			Str("func", "*clientRepository.GetClients").
			Int64("user_id", userID).
			Msg("failed to execute query for listing clients")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	clients := make([]models.Client, 0, 20)

	for rows.Next() {
		var client models.Client
		if scanErr := scanClient(rows, &client); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*clientRepository.GetClients").
				Int64("user_id", userID).
				Msg("failed to scan client row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		clients = append(clients, client)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*clientRepository.GetClients").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return clients, nil
}

// GetClientByID retrieves a single client owned by the user.
// Returns [ErrClientNotFound] when no matching record exists.
func (r *clientRepository) GetClientByID(ctx context.Context, userID, clientID int64) (models.Client, error) {
	log := logger.FromContext(ctx)

	var client models.Client
	row := r.db.QueryRowContext(ctx, getClientByID, userID, clientID)

	if err := scanClient(row, &client); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Client{}, ErrClientNotFound
		}
		log.Err(err).
			Str("func", "*clientRepository.GetClientByID").
			Int64("user_id", userID).
			Int64("client_id", clientID).
			Msg("error: scanning error")
		return models.Client{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return client, nil
}

// UpdateClient overwrites the mutable client fields and returns the stored
// record. Returns [ErrClientNotFound] when no matching record exists.
func (r *clientRepository) UpdateClient(ctx context.Context, client models.Client) (models.Client, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateClient,
		client.UserID, client.ClientID, client.Name, client.OrgNumber, client.Email, client.Phone, client.Address, client.Currency)

	var updated models.Client
	if err := scanClient(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Client{}, ErrClientNotFound
		}
		log.Err(err).
			Str("func", "*clientRepository.UpdateClient").
			Int64("user_id", client.UserID).
			Int64("client_id", client.ClientID).
			Msg("error: scanning error")
		return models.Client{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updated, nil
}

// ArchiveClient flips the archived flag instead of deleting the record, so
// invoices keep a valid client reference.
// Returns [ErrClientNotFound] when no matching record exists.
func (r *clientRepository) ArchiveClient(ctx context.Context, userID, clientID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, archiveClient, userID, clientID)
	if err != nil {
		log.Err(err).
			Str("func", "*clientRepository.ArchiveClient").
			Int64("user_id", userID).
			Int64("client_id", clientID).
			Msg("failed to execute archive statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrClientNotFound
	}

	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for shared scan helpers.
type scanner interface {
	Scan(dest ...any) error
}

func scanClient(s scanner, c *models.Client) error {
	return s.Scan(
		&c.ClientID,
		&c.UserID,
		&c.Name,
		&c.OrgNumber,
		&c.Email,
		&c.Phone,
		&c.Address,
		&c.Currency,
		&c.Archived,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
}
