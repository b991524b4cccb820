package crypto

// VaultService owns all password-based cryptography for sensitive client
// documents. It knows nothing about the network, the database, or users.
// Its single job is to turn plaintext + password into a self-contained
// encrypted payload and back.
//
// Scheme:
//
//	key, salt = DeriveKey(password, nil)        (fresh 16-byte salt)
//	payload   = Encrypt(plaintext, password)    (fresh salt + fresh 12-byte IV)
//	plaintext = Decrypt(payload, password)      (KDF re-run with stored salt)
//
// The derived key exists only for the duration of a single call; the only
// longer-lived secret material lives in a [Keyring].
type VaultService interface {
	// DeriveKey derives a 256-bit AES key from password and salt using
	// PBKDF2-SHA256 with the iteration count of the current payload
	// version. When salt is nil a fresh random 16-byte salt is generated.
	// The salt actually used is returned so the caller can persist it
	// alongside the ciphertext.
	DeriveKey(password string, salt []byte) (key, usedSalt []byte, err error)

	// Encrypt encrypts the UTF-8 plaintext under the given password with
	// AES-256-GCM. Every call draws a fresh salt and a fresh IV, so the
	// same plaintext encrypted twice yields different ciphertexts.
	Encrypt(plaintext, password string) (EncryptedPayload, error)

	// Decrypt reverses Encrypt. It re-derives the key from the stored
	// salt, opens the ciphertext, and returns the plaintext.
	//
	// Any authentication failure — wrong password or any single flipped
	// bit in salt, IV, or ciphertext — returns [ErrDecryptionFailed]
	// without revealing which. A payload with missing fields returns
	// [ErrMalformedPayload]; an unknown version returns
	// [ErrUnsupportedVersion].
	Decrypt(payload EncryptedPayload, password string) (string, error)

	// Seal is Encrypt followed by payload serialization. The returned
	// string is what gets written into the content column of a sensitive
	// document row.
	Seal(plaintext, password string) (string, error)

	// Open deserializes a stored record and decrypts it. A record that
	// fails to parse returns [ErrMalformedPayload].
	Open(serialized, password string) (string, error)
}
