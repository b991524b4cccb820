// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Niklas Andervang

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// passwordCharset is the printable alphabet used by [GeneratePassword].
const passwordCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%^&*()-_=+[]{}"

// DefaultPasswordLength is used by [GeneratePassword] when the caller asks
// for a non-positive length.
const DefaultPasswordLength = 16

// PasswordPolicy describes the strength requirements a vault password must
// meet before it is accepted for encryption.
type PasswordPolicy struct {
	// MinLength is the minimum number of characters.
	MinLength int

	// RequireSymbol additionally demands at least one character outside
	// letters and digits.
	RequireSymbol bool
}

// DefaultPasswordPolicy gates the standard unlock dialog: at least 8
// characters with one uppercase letter, one lowercase letter and one digit.
var DefaultPasswordPolicy = PasswordPolicy{MinLength: 8}

// StrictPasswordPolicy is the stricter variant used when a vault password is
// first set: 12 characters minimum plus a symbol.
var StrictPasswordPolicy = PasswordPolicy{MinLength: 12, RequireSymbol: true}

// Validate checks password against the policy and returns every violated
// requirement, each independently reported. An empty slice means the
// password is acceptable. Pure function, no side effects.
func (p PasswordPolicy) Validate(password string) []string {
	var violations []string

	if len(password) < p.MinLength {
		violations = append(violations, fmt.Sprintf("at least %d characters", p.MinLength))
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	if !hasUpper {
		violations = append(violations, "at least one uppercase letter")
	}
	if !hasLower {
		violations = append(violations, "at least one lowercase letter")
	}
	if !hasDigit {
		violations = append(violations, "at least one digit")
	}
	if p.RequireSymbol && !hasSymbol {
		violations = append(violations, "at least one symbol")
	}

	return violations
}

// Check is Validate folded into an error: nil when the password passes, or
// [ErrWeakPassword] wrapped with the list of violations otherwise.
func (p PasswordPolicy) Check(password string) error {
	violations := p.Validate(password)
	if len(violations) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrWeakPassword, strings.Join(violations, ", "))
}

// GeneratePassword draws length cryptographically random bytes and maps each
// onto [passwordCharset] by modulo indexing. The modulo introduces a slight
// bias because the charset length is not a power of two; that is an accepted
// approximation for a human-facing suggested-password feature, not a
// uniformity guarantee callers may rely on. A non-positive length falls back
// to [DefaultPasswordLength].
func GeneratePassword(length int) (string, error) {
	if length <= 0 {
		length = DefaultPasswordLength
	}

	raw := make([]byte, length)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return "", fmt.Errorf("generate password: %w", err)
	}

	out := make([]byte, length)
	for i, b := range raw {
		out[i] = passwordCharset[int(b)%len(passwordCharset)]
	}

	return string(out), nil
}
