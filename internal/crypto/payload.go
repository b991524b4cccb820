// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Niklas Andervang

package crypto

import (
	"encoding/json"
	"fmt"
)

const (
	// PayloadVersion is the version written into newly produced payloads.
	// Bumping it (together with a new kdfIterations entry) changes KDF
	// parameters without breaking decryption of previously stored data.
	PayloadVersion = 1

	saltSize = 16
	ivSize   = 12
)

// kdfIterations maps a payload version to its PBKDF2-SHA256 iteration
// count. Decryption dispatches on the stored version, so older payloads
// keep decrypting after a parameter bump.
var kdfIterations = map[int]int{
	1: 310_000,
}

// EncryptedPayload is the only artifact the vault subsystem persists.
// It is stored as a single JSON object; encoding/json renders the byte
// fields as base64 strings.
type EncryptedPayload struct {
	// Version selects the key-derivation parameters used for this payload.
	Version int `json:"version"`

	// Salt is the random 16-byte PBKDF2 salt, unique per encryption call.
	Salt []byte `json:"salt"`

	// IV is the random 12-byte AES-GCM nonce, unique per encryption call
	// and never reused with the same key.
	IV []byte `json:"iv"`

	// Data is the AES-GCM output: ciphertext with the authentication tag
	// appended.
	Data []byte `json:"data"`
}

// Marshal serializes the payload to its stored JSON form.
func (p EncryptedPayload) Marshal() (string, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}
	return string(b), nil
}

// ParsePayload deserializes a stored record. Records that are not valid
// JSON or that lack a required field return [ErrMalformedPayload].
func ParsePayload(serialized string) (EncryptedPayload, error) {
	var p EncryptedPayload
	if err := json.Unmarshal([]byte(serialized), &p); err != nil {
		return EncryptedPayload{}, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	if err := p.validate(); err != nil {
		return EncryptedPayload{}, err
	}
	return p, nil
}

// validate checks structural integrity only. It deliberately does not look
// at the ciphertext content; authenticity is AES-GCM's job.
func (p EncryptedPayload) validate() error {
	switch {
	case len(p.Salt) == 0:
		return fmt.Errorf("%w: missing salt", ErrMalformedPayload)
	case len(p.IV) == 0:
		return fmt.Errorf("%w: missing iv", ErrMalformedPayload)
	case len(p.Data) == 0:
		return fmt.Errorf("%w: missing data", ErrMalformedPayload)
	}
	return nil
}
