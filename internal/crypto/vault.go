// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Niklas Andervang

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// vaultService is the private implementation of [VaultService].
type vaultService struct {
	// version selects the KDF parameter set used for new payloads.
	// Decryption always dispatches on the version stored in the payload.
	version int
}

// NewVaultService constructs a [VaultService] producing payloads of the
// current [PayloadVersion] (PBKDF2-SHA256, 310 000 iterations, AES-256-GCM).
func NewVaultService() VaultService {
	return &vaultService{version: PayloadVersion}
}

// DeriveKey implements [VaultService]. It derives a 32-byte key via
// PBKDF2-SHA256 using the iteration count of the service's payload version.
// A nil salt triggers generation of a fresh random 16-byte salt. Returns an
// error only if the OS CSPRNG read fails.
func (v *vaultService) DeriveKey(password string, salt []byte) ([]byte, []byte, error) {
	key, usedSalt, err := deriveVersionedKey(password, salt, v.version)
	if err != nil {
		return nil, nil, err
	}
	return key, usedSalt, nil
}

// Encrypt implements [VaultService]. Every call draws a fresh salt and a
// fresh IV from the OS CSPRNG, so encrypting the same plaintext twice under
// the same password yields different ciphertexts. The empty string is a
// valid plaintext and round-trips like any other content.
func (v *vaultService) Encrypt(plaintext, password string) (EncryptedPayload, error) {
	key, salt, err := deriveVersionedKey(password, nil, v.version)
	if err != nil {
		return EncryptedPayload{}, err
	}

	gcm, err := newGCM(key)
	if err != nil {
		return EncryptedPayload{}, err
	}

	iv := make([]byte, ivSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return EncryptedPayload{}, fmt.Errorf("generate iv: %w", err)
	}

	return EncryptedPayload{
		Version: v.version,
		Salt:    salt,
		IV:      iv,
		Data:    gcm.Seal(nil, iv, []byte(plaintext), nil),
	}, nil
}

// Decrypt implements [VaultService]. The key is re-derived with the payload's
// stored salt and version; AES-GCM authentication happens as part of opening
// the ciphertext. A wrong password and a flipped bit in salt, IV, or
// ciphertext all surface as the same [ErrDecryptionFailed] — which of the two
// happened is unknowable by design, never partial output.
func (v *vaultService) Decrypt(payload EncryptedPayload, password string) (string, error) {
	if err := payload.validate(); err != nil {
		return "", err
	}

	version := payload.Version
	if version == 0 {
		// Records written before the version field existed.
		version = 1
	}
	if _, ok := kdfIterations[version]; !ok {
		return "", fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	key, _, err := deriveVersionedKey(password, payload.Salt, version)
	if err != nil {
		return "", err
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	// GCM panics on a wrong-size nonce; a truncated IV is corrupted data
	// and must fail closed like any other authentication failure.
	if len(payload.IV) != gcm.NonceSize() {
		return "", ErrDecryptionFailed
	}

	plaintext, err := gcm.Open(nil, payload.IV, payload.Data, nil)
	if err != nil {
		return "", ErrDecryptionFailed
	}

	return string(plaintext), nil
}

// Seal implements [VaultService].
func (v *vaultService) Seal(plaintext, password string) (string, error) {
	payload, err := v.Encrypt(plaintext, password)
	if err != nil {
		return "", err
	}
	return payload.Marshal()
}

// Open implements [VaultService].
func (v *vaultService) Open(serialized, password string) (string, error) {
	payload, err := ParsePayload(serialized)
	if err != nil {
		return "", err
	}
	return v.Decrypt(payload, password)
}

// deriveVersionedKey runs PBKDF2-SHA256 with the iteration count registered
// for version. A nil salt is replaced with a fresh random 16-byte one.
func deriveVersionedKey(password string, salt []byte, version int) ([]byte, []byte, error) {
	iterations, ok := kdfIterations[version]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	if salt == nil {
		salt = make([]byte, saltSize)
		if _, err := io.ReadFull(rand.Reader, salt); err != nil {
			return nil, nil, fmt.Errorf("generate salt: %w", err)
		}
	}

	key := pbkdf2.Key([]byte(password), salt, iterations, 32, sha256.New)
	return key, salt, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
