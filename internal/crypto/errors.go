// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Niklas Andervang

package crypto

import "errors"

// Sentinel errors returned by the vault subsystem. Callers should match
// against these values with [errors.Is].
var (
	// ErrWeakPassword is returned when a password fails the active
	// [PasswordPolicy] before any cryptographic operation takes place.
	// The wrapping error lists the individual violations.
	ErrWeakPassword = errors.New("password does not meet strength requirements")

	// ErrDecryptionFailed is returned on any AES-GCM authentication
	// failure. A wrong password and tampered ciphertext are deliberately
	// indistinguishable; the error never names the field that mismatched.
	ErrDecryptionFailed = errors.New("failed to decrypt: invalid password or corrupted data")

	// ErrMalformedPayload is returned when a stored record is missing a
	// required field (salt, iv, data) or cannot be deserialized at all.
	// For user messaging it is equivalent to corrupted data.
	ErrMalformedPayload = errors.New("malformed encrypted payload")

	// ErrUnsupportedVersion is returned when a payload carries a version
	// number this build has no key-derivation parameters for.
	ErrUnsupportedVersion = errors.New("unsupported payload version")

	// ErrVaultLocked is returned when an operation requires an unlocked
	// keyring but the session has expired or was never unlocked.
	ErrVaultLocked = errors.New("vault is locked")
)
