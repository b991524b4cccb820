package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nandervang/go-consult-base/internal/logger"
	"github.com/nandervang/go-consult-base/models"
)

// documentRepository is the PostgreSQL-backed implementation of
// [DocumentRepository]. The repository stores whatever content it is handed;
// for sensitive documents the service layer passes an encrypted payload and
// the plaintext never reaches this package.
type documentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDocumentRepository constructs a [DocumentRepository] backed by the
// provided database connection and logger.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating document repository")
	return &documentRepository{
		db:     db,
		logger: logger,
	}
}

// CreateDocument persists a new document and returns it with server-assigned
// fields populated.
func (r *documentRepository) CreateDocument(ctx context.Context, document models.Document) (models.Document, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createDocument,
		document.UserID, document.ClientID, document.Title, document.Content, document.Sensitive)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*documentRepository.CreateDocument").Msg("error: row is nil")
		return models.Document{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := scanDocument(row, &document); err != nil {
		log.Err(err).Str("func", "*documentRepository.CreateDocument").Msg("error: scanning error")
		return models.Document{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return document, nil
}

// GetDocuments lists the user's documents, most recently updated first.
// A non-nil clientID narrows the result to one client's documentation.
func (r *documentRepository) GetDocuments(ctx context.Context, userID int64, clientID *int64) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getDocuments, userID, clientID)
	if err != nil {
		log.Err(err).
			Str("func", "*documentRepository.GetDocuments").
			Int64("user_id", userID).
			Msg("failed to execute query for listing documents")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	documents := make([]models.Document, 0, 20)

	for rows.Next() {
		var document models.Document
		if scanErr := scanDocument(rows, &document); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*documentRepository.GetDocuments").
				Int64("user_id", userID).
				Msg("failed to scan document row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		documents = append(documents, document)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*documentRepository.GetDocuments").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return documents, nil
}

// GetDocumentByID retrieves a single document owned by the user.
// Returns [ErrDocumentNotFound] when no matching record exists.
func (r *documentRepository) GetDocumentByID(ctx context.Context, userID, documentID int64) (models.Document, error) {
	log := logger.FromContext(ctx)

	var document models.Document
	row := r.db.QueryRowContext(ctx, getDocumentByID, userID, documentID)

	if err := scanDocument(row, &document); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Document{}, ErrDocumentNotFound
		}
		log.Err(err).
			Str("func", "*documentRepository.GetDocumentByID").
			Int64("user_id", userID).
			Int64("document_id", documentID).
			Msg("error: scanning error")
		return models.Document{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return document, nil
}

// UpdateDocument overwrites the document title and content and returns the
// stored record. The sensitive flag is immutable after creation.
// Returns [ErrDocumentNotFound] when no matching record exists.
func (r *documentRepository) UpdateDocument(ctx context.Context, document models.Document) (models.Document, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateDocument,
		document.UserID, document.DocumentID, document.Title, document.Content)

	var updated models.Document
	if err := scanDocument(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Document{}, ErrDocumentNotFound
		}
		log.Err(err).
			Str("func", "*documentRepository.UpdateDocument").
			Int64("user_id", document.UserID).
			Int64("document_id", document.DocumentID).
			Msg("error: scanning error")
		return models.Document{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updated, nil
}

// DeleteDocument removes a document.
// Returns [ErrDocumentNotFound] when no matching record exists.
func (r *documentRepository) DeleteDocument(ctx context.Context, userID, documentID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteDocument, userID, documentID)
	if err != nil {
		log.Err(err).
			Str("func", "*documentRepository.DeleteDocument").
			Int64("user_id", userID).
			Int64("document_id", documentID).
			Msg("failed to execute delete statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrDocumentNotFound
	}

	return nil
}

func scanDocument(s scanner, d *models.Document) error {
	return s.Scan(
		&d.DocumentID,
		&d.UserID,
		&d.ClientID,
		&d.Title,
		&d.Content,
		&d.Sensitive,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
}
