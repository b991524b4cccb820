package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/nandervang/go-consult-base/internal/service"
	"github.com/nandervang/go-consult-base/internal/store"
	"github.com/nandervang/go-consult-base/internal/utils"
	"github.com/nandervang/go-consult-base/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock ClientService
// ─────────────────────────────────────────────

type mockClientService struct {
	createFn  func(ctx context.Context, client models.Client) (models.Client, error)
	getAllFn  func(ctx context.Context, userID int64, includeArchived bool) ([]models.Client, error)
	getFn     func(ctx context.Context, userID, clientID int64) (models.Client, error)
	updateFn  func(ctx context.Context, client models.Client) (models.Client, error)
	archiveFn func(ctx context.Context, userID, clientID int64) error
}

func (m *mockClientService) CreateClient(ctx context.Context, client models.Client) (models.Client, error) {
	return m.createFn(ctx, client)
}

func (m *mockClientService) GetClients(ctx context.Context, userID int64, includeArchived bool) ([]models.Client, error) {
	return m.getAllFn(ctx, userID, includeArchived)
}

func (m *mockClientService) GetClient(ctx context.Context, userID, clientID int64) (models.Client, error) {
	return m.getFn(ctx, userID, clientID)
}

func (m *mockClientService) UpdateClient(ctx context.Context, client models.Client) (models.Client, error) {
	return m.updateFn(ctx, client)
}

func (m *mockClientService) ArchiveClient(ctx context.Context, userID, clientID int64) error {
	return m.archiveFn(ctx, userID, clientID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// authedRequest builds a request carrying an authenticated user ID in its
// context, as the auth middleware would have left it.
func authedRequest(t *testing.T, method, target string, body io.Reader, userID int64) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	ctx := context.WithValue(req.Context(), utils.UserIDCtxKey, userID)
	return req.WithContext(ctx)
}

// withURLParam attaches a chi route parameter to the request, as the router
// would during dispatch.
func withURLParam(t *testing.T, req *http.Request, name, value string) *http.Request {
	t.Helper()
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(name, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func newHandlerWithClients(t *testing.T, clients service.ClientService) *Handler {
	t.Helper()
	return newTestHandler(t, &service.Services{ClientService: clients})
}

// ─────────────────────────────────────────────
// createClient
// ─────────────────────────────────────────────

// TestCreateClient_Success verifies that a valid payload yields 201 with the
// created client in the body, scoped to the authenticated user.
func TestCreateClient_Success(t *testing.T) {
	clients := &mockClientService{
		createFn: func(_ context.Context, c models.Client) (models.Client, error) {
			require.Equal(t, int64(1), c.UserID)
			c.ClientID = 10
			return c, nil
		},
	}
	h := newHandlerWithClients(t, clients)

	body := strings.NewReader(`{"name": "Acme AB", "currency": "SEK"}`)
	req := authedRequest(t, http.MethodPost, "/api/clients/", body, 1)
	rec := httptest.NewRecorder()

	h.createClient(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Client
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(10), created.ClientID)
	assert.Equal(t, "Acme AB", created.Name)
}

// TestCreateClient_EmptyName verifies that the request validator rejects a
// nameless client with 400 before the service is ever called.
func TestCreateClient_EmptyName(t *testing.T) {
	clients := &mockClientService{
		createFn: func(_ context.Context, _ models.Client) (models.Client, error) {
			t.Fatal("service should not be called")
			return models.Client{}, nil
		},
	}
	h := newHandlerWithClients(t, clients)

	body := strings.NewReader(`{"name": "   "}`)
	req := authedRequest(t, http.MethodPost, "/api/clients/", body, 1)
	rec := httptest.NewRecorder()

	h.createClient(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestCreateClient_NoUserID verifies that a request whose context is missing
// the user ID is rejected with 401.
func TestCreateClient_NoUserID(t *testing.T) {
	h := newHandlerWithClients(t, &mockClientService{})

	req := httptest.NewRequest(http.MethodPost, "/api/clients/", strings.NewReader(`{"name": "Acme AB"}`))
	rec := httptest.NewRecorder()

	h.createClient(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// getClients
// ─────────────────────────────────────────────

// TestGetClients_IncludeArchived verifies that the include_archived query
// parameter reaches the service.
func TestGetClients_IncludeArchived(t *testing.T) {
	var gotIncludeArchived bool
	clients := &mockClientService{
		getAllFn: func(_ context.Context, userID int64, includeArchived bool) ([]models.Client, error) {
			require.Equal(t, int64(1), userID)
			gotIncludeArchived = includeArchived
			return []models.Client{{ClientID: 10, Name: "Acme AB"}}, nil
		},
	}
	h := newHandlerWithClients(t, clients)

	req := authedRequest(t, http.MethodGet, "/api/clients/?include_archived=true", nil, 1)
	rec := httptest.NewRecorder()

	h.getClients(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gotIncludeArchived)
}

// TestGetClients_BadQueryParam verifies that a non-boolean include_archived
// value yields 400.
func TestGetClients_BadQueryParam(t *testing.T) {
	h := newHandlerWithClients(t, &mockClientService{})

	req := authedRequest(t, http.MethodGet, "/api/clients/?include_archived=maybe", nil, 1)
	rec := httptest.NewRecorder()

	h.getClients(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// getClient
// ─────────────────────────────────────────────

// TestGetClient_NotFound verifies that a missing client maps to 404.
func TestGetClient_NotFound(t *testing.T) {
	clients := &mockClientService{
		getFn: func(_ context.Context, _, _ int64) (models.Client, error) {
			return models.Client{}, store.ErrClientNotFound
		},
	}
	h := newHandlerWithClients(t, clients)

	req := authedRequest(t, http.MethodGet, "/api/clients/99", nil, 1)
	req = withURLParam(t, req, "id", "99")
	rec := httptest.NewRecorder()

	h.getClient(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// TestGetClient_BadID verifies that a non-numeric URL parameter yields 400.
func TestGetClient_BadID(t *testing.T) {
	h := newHandlerWithClients(t, &mockClientService{})

	req := authedRequest(t, http.MethodGet, "/api/clients/abc", nil, 1)
	req = withURLParam(t, req, "id", "abc")
	rec := httptest.NewRecorder()

	h.getClient(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// archiveClient
// ─────────────────────────────────────────────

// TestArchiveClient_Success verifies that a successful archive yields 204.
func TestArchiveClient_Success(t *testing.T) {
	clients := &mockClientService{
		archiveFn: func(_ context.Context, userID, clientID int64) error {
			require.Equal(t, int64(1), userID)
			require.Equal(t, int64(10), clientID)
			return nil
		},
	}
	h := newHandlerWithClients(t, clients)

	req := authedRequest(t, http.MethodDelete, "/api/clients/10", nil, 1)
	req = withURLParam(t, req, "id", "10")
	rec := httptest.NewRecorder()

	h.archiveClient(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

// TestUpdateClient_UsesURLID verifies that the client ID from the URL wins
// over any ID present in the request body.
func TestUpdateClient_UsesURLID(t *testing.T) {
	clients := &mockClientService{
		updateFn: func(_ context.Context, c models.Client) (models.Client, error) {
			require.Equal(t, int64(10), c.ClientID)
			return c, nil
		},
	}
	h := newHandlerWithClients(t, clients)

	body := strings.NewReader(`{"client_id": 99, "name": "Acme AB"}`)
	req := authedRequest(t, http.MethodPut, "/api/clients/10", body, 1)
	req = withURLParam(t, req, "id", "10")
	rec := httptest.NewRecorder()

	h.updateClient(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
