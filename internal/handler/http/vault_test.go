package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nandervang/go-consult-base/internal/crypto"
	"github.com/nandervang/go-consult-base/internal/service"
	"github.com/nandervang/go-consult-base/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock DocumentService
// ─────────────────────────────────────────────

type mockDocumentService struct {
	createFn           func(ctx context.Context, document models.Document) (models.Document, error)
	getAllFn           func(ctx context.Context, userID int64, clientID *int64) ([]models.Document, error)
	getFn              func(ctx context.Context, userID, documentID int64) (models.Document, error)
	updateFn           func(ctx context.Context, document models.Document) (models.Document, error)
	deleteFn           func(ctx context.Context, userID, documentID int64) error
	unlockFn           func(ctx context.Context, userID int64, password string) error
	lockFn             func(ctx context.Context, userID int64)
	statusFn           func(ctx context.Context, userID int64) models.VaultStatus
	generatePasswordFn func(ctx context.Context, length int) (string, error)
}

func (m *mockDocumentService) CreateDocument(ctx context.Context, document models.Document) (models.Document, error) {
	return m.createFn(ctx, document)
}

func (m *mockDocumentService) GetDocuments(ctx context.Context, userID int64, clientID *int64) ([]models.Document, error) {
	return m.getAllFn(ctx, userID, clientID)
}

func (m *mockDocumentService) GetDocument(ctx context.Context, userID, documentID int64) (models.Document, error) {
	return m.getFn(ctx, userID, documentID)
}

func (m *mockDocumentService) UpdateDocument(ctx context.Context, document models.Document) (models.Document, error) {
	return m.updateFn(ctx, document)
}

func (m *mockDocumentService) DeleteDocument(ctx context.Context, userID, documentID int64) error {
	return m.deleteFn(ctx, userID, documentID)
}

func (m *mockDocumentService) UnlockVault(ctx context.Context, userID int64, password string) error {
	return m.unlockFn(ctx, userID, password)
}

func (m *mockDocumentService) LockVault(ctx context.Context, userID int64) {
	m.lockFn(ctx, userID)
}

func (m *mockDocumentService) VaultStatus(ctx context.Context, userID int64) models.VaultStatus {
	return m.statusFn(ctx, userID)
}

func (m *mockDocumentService) GeneratePassword(ctx context.Context, length int) (string, error) {
	return m.generatePasswordFn(ctx, length)
}

func newHandlerWithDocuments(t *testing.T, documents service.DocumentService) *Handler {
	t.Helper()
	return newTestHandler(t, &service.Services{DocumentService: documents})
}

// ─────────────────────────────────────────────
// getDocument
// ─────────────────────────────────────────────

// TestGetDocument_VaultLocked verifies that reading a sensitive document
// while the vault is locked maps to 423 Locked.
func TestGetDocument_VaultLocked(t *testing.T) {
	documents := &mockDocumentService{
		getFn: func(_ context.Context, _, _ int64) (models.Document, error) {
			return models.Document{}, crypto.ErrVaultLocked
		},
	}
	h := newHandlerWithDocuments(t, documents)

	req := authedRequest(t, http.MethodGet, "/api/documents/3", nil, 1)
	req = withURLParam(t, req, "id", "3")
	rec := httptest.NewRecorder()

	h.getDocument(rec, req)

	assert.Equal(t, http.StatusLocked, rec.Code)
}

// TestGetDocument_WrongPassword verifies that a decryption failure maps to
// 403 without distinguishing a bad password from tampered data.
func TestGetDocument_WrongPassword(t *testing.T) {
	documents := &mockDocumentService{
		getFn: func(_ context.Context, _, _ int64) (models.Document, error) {
			return models.Document{}, crypto.ErrDecryptionFailed
		},
	}
	h := newHandlerWithDocuments(t, documents)

	req := authedRequest(t, http.MethodGet, "/api/documents/3", nil, 1)
	req = withURLParam(t, req, "id", "3")
	rec := httptest.NewRecorder()

	h.getDocument(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// ─────────────────────────────────────────────
// getDocuments
// ─────────────────────────────────────────────

// TestGetDocuments_ClientFilter verifies that the client_id query parameter
// reaches the service.
func TestGetDocuments_ClientFilter(t *testing.T) {
	documents := &mockDocumentService{
		getAllFn: func(_ context.Context, userID int64, clientID *int64) ([]models.Document, error) {
			require.Equal(t, int64(1), userID)
			require.NotNil(t, clientID)
			assert.Equal(t, int64(10), *clientID)
			return []models.Document{{DocumentID: 3, Title: "Runbook"}}, nil
		},
	}
	h := newHandlerWithDocuments(t, documents)

	req := authedRequest(t, http.MethodGet, "/api/documents/?client_id=10", nil, 1)
	rec := httptest.NewRecorder()

	h.getDocuments(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// ─────────────────────────────────────────────
// vault session
// ─────────────────────────────────────────────

// TestUnlockVault_Success verifies that a successful unlock responds with
// the updated vault status.
func TestUnlockVault_Success(t *testing.T) {
	documents := &mockDocumentService{
		unlockFn: func(_ context.Context, userID int64, password string) error {
			require.Equal(t, int64(1), userID)
			require.Equal(t, "Sup3rSecret!", password)
			return nil
		},
		statusFn: func(_ context.Context, _ int64) models.VaultStatus {
			return models.VaultStatus{Unlocked: true}
		},
	}
	h := newHandlerWithDocuments(t, documents)

	req := authedRequest(t, http.MethodPost, "/api/vault/unlock", strings.NewReader(`{"password": "Sup3rSecret!"}`), 1)
	rec := httptest.NewRecorder()

	h.unlockVault(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var status models.VaultStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.True(t, status.Unlocked)
}

// TestUnlockVault_WeakPassword verifies that a policy rejection maps to 400.
func TestUnlockVault_WeakPassword(t *testing.T) {
	documents := &mockDocumentService{
		unlockFn: func(_ context.Context, _ int64, _ string) error {
			return crypto.ErrWeakPassword
		},
	}
	h := newHandlerWithDocuments(t, documents)

	req := authedRequest(t, http.MethodPost, "/api/vault/unlock", strings.NewReader(`{"password": "short"}`), 1)
	rec := httptest.NewRecorder()

	h.unlockVault(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestLockVault verifies that locking always succeeds and reports a locked
// status.
func TestLockVault(t *testing.T) {
	var locked bool
	documents := &mockDocumentService{
		lockFn: func(_ context.Context, userID int64) {
			require.Equal(t, int64(1), userID)
			locked = true
		},
		statusFn: func(_ context.Context, _ int64) models.VaultStatus {
			return models.VaultStatus{Unlocked: false}
		},
	}
	h := newHandlerWithDocuments(t, documents)

	req := authedRequest(t, http.MethodPost, "/api/vault/lock", nil, 1)
	rec := httptest.NewRecorder()

	h.lockVault(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, locked)

	var status models.VaultStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.False(t, status.Unlocked)
}

// ─────────────────────────────────────────────
// generatePassword
// ─────────────────────────────────────────────

// TestGeneratePassword_DefaultLength verifies that an empty body asks the
// service for the default length.
func TestGeneratePassword_DefaultLength(t *testing.T) {
	documents := &mockDocumentService{
		generatePasswordFn: func(_ context.Context, length int) (string, error) {
			require.Zero(t, length)
			return "gen3rated-Passw0rd!", nil
		},
	}
	h := newHandlerWithDocuments(t, documents)

	req := authedRequest(t, http.MethodPost, "/api/vault/generate-password", nil, 1)
	rec := httptest.NewRecorder()

	h.generatePassword(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp generatePasswordResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "gen3rated-Passw0rd!", resp.Password)
}

// TestGeneratePassword_ExplicitLength verifies that a requested length is
// passed through.
func TestGeneratePassword_ExplicitLength(t *testing.T) {
	documents := &mockDocumentService{
		generatePasswordFn: func(_ context.Context, length int) (string, error) {
			require.Equal(t, 32, length)
			return strings.Repeat("x", 32), nil
		},
	}
	h := newHandlerWithDocuments(t, documents)

	req := authedRequest(t, http.MethodPost, "/api/vault/generate-password", strings.NewReader(`{"length": 32}`), 1)
	rec := httptest.NewRecorder()

	h.generatePassword(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
