package models

import "time"

// Document is a wiki page in the client-documentation system. A sensitive
// document's Content column holds a serialized encrypted payload instead of
// markdown; the server only ever sees the plaintext transiently while the
// owner's vault keyring is unlocked.
type Document struct {
	DocumentID int64 `json:"document_id"`

	// UserID is the owning consultant account.
	UserID int64 `json:"-"`

	// ClientID scopes the document to a client; nil for general notes.
	ClientID *int64 `json:"client_id,omitempty"`

	Title string `json:"title"`

	// Content is the markdown body. For sensitive documents the stored
	// value is the encrypted payload record, and the API substitutes
	// decrypted plaintext (unlocked) or withholds it (locked).
	Content string `json:"content"`

	// Sensitive marks the document as encrypted at rest.
	Sensitive bool `json:"sensitive"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Document model.
func (d Document) TableName() string {
	return "documents"
}

// VaultStatus reports the caller's keyring state to the UI, which uses it
// to decide whether to open the unlock dialog before showing a sensitive
// document.
type VaultStatus struct {
	Unlocked bool `json:"unlocked"`
}
