package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/nandervang/go-consult-base/internal/logger"
	"github.com/nandervang/go-consult-base/models"
)

func newTestDocumentRepo(t *testing.T) (*documentRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &documentRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestCreateDocument_Sensitive(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	ctx := context.Background()
	clientID := int64(2)
	doc := models.Document{
		UserID:    1,
		ClientID:  &clientID,
		Title:     "VPN credentials",
		Content:   `{"version":1,"salt":"c2FsdA==","iv":"aXY=","data":"ZGF0YQ=="}`,
		Sensitive: true,
	}

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"document_id", "user_id", "client_id", "title", "content", "sensitive", "created_at", "updated_at"}).
		AddRow(9, doc.UserID, clientID, doc.Title, doc.Content, true, now, now)

	mock.ExpectQuery("INSERT INTO documents").
		WithArgs(doc.UserID, &clientID, doc.Title, doc.Content, doc.Sensitive).
		WillReturnRows(rows)

	created, err := repo.CreateDocument(ctx, doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.DocumentID != 9 {
		t.Errorf("expected DocumentID=9, got %d", created.DocumentID)
	}
	if !created.Sensitive {
		t.Error("expected sensitive flag to survive the round trip")
	}
	if created.Content != doc.Content {
		t.Errorf("expected stored content to be the encrypted payload, got %q", created.Content)
	}
}

func TestGetDocumentByID_NotFound(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM documents").
		WithArgs(int64(1), int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"document_id", "user_id", "client_id", "title", "content", "sensitive", "created_at", "updated_at"}))

	_, err := repo.GetDocumentByID(ctx, 1, 404)
	if !errors.Is(err, ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
}

func TestGetDocuments_ScopedToClient(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	ctx := context.Background()
	clientID := int64(2)
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"document_id", "user_id", "client_id", "title", "content", "sensitive", "created_at", "updated_at"}).
		AddRow(1, 1, clientID, "Onboarding notes", "# Notes", false, now, now)

	mock.ExpectQuery("SELECT (.+) FROM documents").
		WithArgs(int64(1), &clientID).
		WillReturnRows(rows)

	docs, err := repo.GetDocuments(ctx, 1, &clientID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
	if docs[0].ClientID == nil || *docs[0].ClientID != clientID {
		t.Errorf("expected document scoped to client %d", clientID)
	}
}

func TestUpdateDocument_NotFound(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	ctx := context.Background()
	doc := models.Document{DocumentID: 404, UserID: 1, Title: "ghost", Content: ""}

	mock.ExpectQuery("UPDATE documents").
		WillReturnRows(sqlmock.NewRows([]string{"document_id", "user_id", "client_id", "title", "content", "sensitive", "created_at", "updated_at"}))

	_, err := repo.UpdateDocument(ctx, doc)
	if !errors.Is(err, ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
}

func TestDeleteDocument_Success(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM documents").
		WithArgs(int64(1), int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteDocument(context.Background(), 1, 9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
