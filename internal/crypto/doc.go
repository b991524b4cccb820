// Package crypto implements the document vault: password-based encryption
// for sensitive client documents and the session keyring that caches an
// unlocked vault password.
//
// Keys are derived with PBKDF2-SHA256 (310 000 iterations for payload
// version 1) and content is sealed with AES-256-GCM. Every encryption call
// draws a fresh 16-byte salt and a fresh 12-byte IV, so no two payloads
// ever share key material. The stored artifact is a versioned JSON record
// of salt, IV, and ciphertext; the version field allows KDF parameters to
// change later without breaking previously stored documents.
//
// Nothing in this package touches the network or the database, and no key
// material is ever persisted.
package crypto
