package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/nandervang/go-consult-base/internal/crypto"
	"github.com/nandervang/go-consult-base/internal/logger"
	"github.com/nandervang/go-consult-base/internal/store"
	"github.com/nandervang/go-consult-base/models"
)

// documentService is the concrete implementation of DocumentService. It sits
// between the HTTP layer and the repository and is the only place where
// sensitive document content crosses between plaintext and encrypted form.
//
// Sensitive documents are sealed with the password cached in the caller's
// keyring; the repository below only ever stores the serialized payload, and
// a locked keyring makes sensitive content unreachable rather than empty.
type documentService struct {
	documentRepository store.DocumentRepository
	vault              crypto.VaultService
	keyrings           *crypto.KeyringRegistry
	logger             *logger.Logger
}

// NewDocumentService constructs a DocumentService wired to the given
// repository, vault, and keyring registry.
func NewDocumentService(documentRepository store.DocumentRepository, vault crypto.VaultService, keyrings *crypto.KeyringRegistry, logger *logger.Logger) DocumentService {
	return &documentService{
		documentRepository: documentRepository,
		vault:              vault,
		keyrings:           keyrings,
		logger:             logger,
	}
}

// CreateDocument persists a new document. Sensitive documents require an
// unlocked vault; their content is sealed before it reaches the repository.
//
// Returns the persisted document (sensitive content echoed as plaintext) or:
//   - ErrInvalidDataProvided on a missing title.
//   - crypto.ErrVaultLocked when the document is sensitive and the caller's
//     keyring is locked.
func (d *documentService) CreateDocument(ctx context.Context, document models.Document) (models.Document, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(document.Title) == "" {
		log.Error().Int64("user_id", document.UserID).Msg("document title is required")
		return models.Document{}, ErrInvalidDataProvided
	}

	plaintext := document.Content
	if document.Sensitive {
		sealed, err := d.sealContent(document.UserID, plaintext)
		if err != nil {
			log.Err(err).Int64("user_id", document.UserID).Msg("failed to seal sensitive document")
			return models.Document{}, err
		}
		document.Content = sealed
	}

	created, err := d.documentRepository.CreateDocument(ctx, document)
	if err != nil {
		log.Err(err).Int64("user_id", document.UserID).Msg("document creation ended with error")
		return models.Document{}, fmt.Errorf("document creation ended with error: %w", err)
	}

	if created.Sensitive {
		created.Content = plaintext
	}
	return created, nil
}

// GetDocuments lists the user's documents. Sensitive content is withheld in
// listings regardless of vault state; fetch the document by id to read it.
func (d *documentService) GetDocuments(ctx context.Context, userID int64, clientID *int64) ([]models.Document, error) {
	documents, err := d.documentRepository.GetDocuments(ctx, userID, clientID)
	if err != nil {
		return nil, err
	}

	for i := range documents {
		if documents[i].Sensitive {
			documents[i].Content = ""
		}
	}
	return documents, nil
}

// GetDocument fetches one document. A sensitive document is decrypted with
// the caller's keyring password; a locked keyring yields
// crypto.ErrVaultLocked, and a password that fails to decrypt yields
// crypto.ErrDecryptionFailed without revealing which check failed.
func (d *documentService) GetDocument(ctx context.Context, userID, documentID int64) (models.Document, error) {
	log := logger.FromContext(ctx)

	document, err := d.documentRepository.GetDocumentByID(ctx, userID, documentID)
	if err != nil {
		return models.Document{}, err
	}

	if document.Sensitive {
		secret, ok := d.keyrings.For(userID).ActiveKey()
		if !ok {
			return models.Document{}, crypto.ErrVaultLocked
		}

		plaintext, err := d.vault.Open(document.Content, secret)
		if err != nil {
			log.Err(err).
				Int64("user_id", userID).
				Int64("document_id", documentID).
				Msg("failed to open sensitive document")
			return models.Document{}, err
		}
		document.Content = plaintext
	}

	return document, nil
}

// UpdateDocument overwrites the document title and content. The sensitive
// flag is fixed at creation; updates to a sensitive document re-seal the new
// content and therefore require an unlocked vault.
func (d *documentService) UpdateDocument(ctx context.Context, document models.Document) (models.Document, error) {
	log := logger.FromContext(ctx)

	if document.DocumentID == 0 || strings.TrimSpace(document.Title) == "" {
		log.Error().Int64("user_id", document.UserID).Msg("invalid document data provided")
		return models.Document{}, ErrInvalidDataProvided
	}

	current, err := d.documentRepository.GetDocumentByID(ctx, document.UserID, document.DocumentID)
	if err != nil {
		return models.Document{}, err
	}
	document.Sensitive = current.Sensitive

	plaintext := document.Content
	if document.Sensitive {
		sealed, err := d.sealContent(document.UserID, plaintext)
		if err != nil {
			log.Err(err).
				Int64("user_id", document.UserID).
				Int64("document_id", document.DocumentID).
				Msg("failed to seal sensitive document")
			return models.Document{}, err
		}
		document.Content = sealed
	}

	updated, err := d.documentRepository.UpdateDocument(ctx, document)
	if err != nil {
		log.Err(err).
			Int64("user_id", document.UserID).
			Int64("document_id", document.DocumentID).
			Msg("document update ended with error")
		return models.Document{}, fmt.Errorf("document update ended with error: %w", err)
	}

	if updated.Sensitive {
		updated.Content = plaintext
	}
	return updated, nil
}

// DeleteDocument removes a document. Deletion does not require an unlocked
// vault; the owner may always discard what they cannot currently read.
func (d *documentService) DeleteDocument(ctx context.Context, userID, documentID int64) error {
	return d.documentRepository.DeleteDocument(ctx, userID, documentID)
}

// UnlockVault validates the password against the default policy and caches
// it in the caller's keyring. The password is never verified against stored
// data here; a wrong one simply fails to decrypt later.
func (d *documentService) UnlockVault(ctx context.Context, userID int64, password string) error {
	log := logger.FromContext(ctx)

	if err := crypto.DefaultPasswordPolicy.Check(password); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("vault password rejected by policy")
		return err
	}

	d.keyrings.For(userID).Unlock(password)
	log.Info().Int64("user_id", userID).Msg("vault unlocked")
	return nil
}

// LockVault drops the caller's cached password immediately.
func (d *documentService) LockVault(ctx context.Context, userID int64) {
	d.keyrings.For(userID).Lock()
	logger.FromContext(ctx).Info().Int64("user_id", userID).Msg("vault locked")
}

// VaultStatus reports whether the caller's keyring currently holds a live
// password.
func (d *documentService) VaultStatus(_ context.Context, userID int64) models.VaultStatus {
	return models.VaultStatus{Unlocked: d.keyrings.For(userID).Unlocked()}
}

// GeneratePassword produces a random password of the requested length, or of
// crypto.DefaultPasswordLength when length is zero.
func (d *documentService) GeneratePassword(_ context.Context, length int) (string, error) {
	if length == 0 {
		length = crypto.DefaultPasswordLength
	}
	return crypto.GeneratePassword(length)
}

// sealContent encrypts plaintext with the password cached in the user's
// keyring.
func (d *documentService) sealContent(userID int64, plaintext string) (string, error) {
	secret, ok := d.keyrings.For(userID).ActiveKey()
	if !ok {
		return "", crypto.ErrVaultLocked
	}
	return d.vault.Seal(plaintext, secret)
}
