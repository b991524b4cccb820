// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Niklas Andervang

package crypto

import (
	"sync"
	"time"
)

// DefaultKeyringTTL is the idle lifetime of an unlocked keyring. Every use
// pushes the expiry forward by this duration.
const DefaultKeyringTTL = 30 * time.Minute

// Keyring is the session-scoped cache for a user's vault password. It is
// the only mutable state in the vault subsystem and must never be
// serialized to persistent storage.
//
// State machine: Locked -> Unlock -> Unlocked -> (expiry | Lock) -> Locked.
// Expiry is a plain timestamp comparison performed on access; no background
// timer is owned by the keyring itself.
type Keyring struct {
	mu     sync.Mutex
	now    func() time.Time
	ttl    time.Duration
	secret string
	expiry time.Time
}

// NewKeyring constructs a locked keyring with [DefaultKeyringTTL].
func NewKeyring() *Keyring {
	return NewKeyringWithClock(DefaultKeyringTTL, time.Now)
}

// NewKeyringWithClock constructs a locked keyring with an explicit TTL and
// clock. Tests inject a controllable clock here instead of sleeping.
func NewKeyringWithClock(ttl time.Duration, now func() time.Time) *Keyring {
	if ttl <= 0 {
		ttl = DefaultKeyringTTL
	}
	return &Keyring{now: now, ttl: ttl}
}

// Unlock caches secret and sets expiry to now + TTL. Unlocking an already
// unlocked keyring replaces the cached secret.
func (k *Keyring) Unlock(secret string) {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.secret = secret
	k.expiry = k.now().Add(k.ttl)
}

// ActiveKey returns the cached secret while the keyring is unlocked. Once
// the expiry has passed the keyring transitions to Locked, the secret is
// cleared, and ok is false. Each successful access extends the expiry.
func (k *Keyring) ActiveKey() (secret string, ok bool) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.secret == "" || !k.now().Before(k.expiry) {
		k.clear()
		return "", false
	}

	k.expiry = k.now().Add(k.ttl)
	return k.secret, true
}

// Extend pushes the expiry forward by another TTL from now without
// requiring the password again. No-op when already locked.
func (k *Keyring) Extend() {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.secret == "" || !k.now().Before(k.expiry) {
		k.clear()
		return
	}

	k.expiry = k.now().Add(k.ttl)
}

// Lock clears the cached secret immediately, e.g. on logout.
func (k *Keyring) Lock() {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.clear()
}

// Unlocked reports whether a usable secret is currently cached. Unlike
// ActiveKey it does not extend the expiry.
func (k *Keyring) Unlocked() bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.secret == "" || !k.now().Before(k.expiry) {
		k.clear()
		return false
	}
	return true
}

// clear must be called with the mutex held.
func (k *Keyring) clear() {
	k.secret = ""
	k.expiry = time.Time{}
}

// KeyringRegistry holds one keyring per authenticated user for the lifetime
// of the server process. It is safe for concurrent use.
type KeyringRegistry struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	keyrings map[int64]*Keyring
}

// NewKeyringRegistry constructs an empty registry whose keyrings use the
// given TTL. A non-positive TTL falls back to [DefaultKeyringTTL].
func NewKeyringRegistry(ttl time.Duration) *KeyringRegistry {
	return &KeyringRegistry{
		ttl:      ttl,
		now:      time.Now,
		keyrings: make(map[int64]*Keyring),
	}
}

// For returns the keyring owned by userID, creating a locked one on first
// access.
func (r *KeyringRegistry) For(userID int64) *Keyring {
	r.mu.Lock()
	defer r.mu.Unlock()

	kr, ok := r.keyrings[userID]
	if !ok {
		kr = NewKeyringWithClock(r.ttl, r.now)
		r.keyrings[userID] = kr
	}
	return kr
}

// Sweep locks and drops every expired keyring, returning the number
// removed. Called periodically by the keyring sweeper worker.
func (r *KeyringRegistry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for userID, kr := range r.keyrings {
		if !kr.Unlocked() {
			delete(r.keyrings, userID)
			removed++
		}
	}
	return removed
}
