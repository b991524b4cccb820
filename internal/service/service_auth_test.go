// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Niklas Andervang

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nandervang/go-consult-base/internal/config"
	"github.com/nandervang/go-consult-base/internal/crypto"
	"github.com/nandervang/go-consult-base/internal/logger"
	"github.com/nandervang/go-consult-base/internal/store"
	"github.com/nandervang/go-consult-base/internal/utils"
	"github.com/nandervang/go-consult-base/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn func(ctx context.Context, user models.User) (models.User, error)
	findFn   func(ctx context.Context, login string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	if m.findFn != nil {
		return m.findFn(ctx, login)
	}
	return models.User{}, store.ErrNoUserWasFound
}

func testAuthConfig() config.App {
	return config.App{
		PasswordHashKey: "hash-key",
		TokenSignKey:    "sign-key",
		TokenIssuer:     "go-consult-base",
		TokenDuration:   time.Hour,
	}
}

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

func TestRegisterUser_Success(t *testing.T) {
	var stored models.User
	repo := &mockUserRepository{
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			stored = user
			user.UserID = 1
			return user, nil
		},
	}
	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	registered, err := svc.RegisterUser(context.Background(), models.User{
		Login:    "niklas@frankdigital.se",
		Name:     "Niklas",
		Password: "Sup3rSecret!",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.UserID)
	assert.Empty(t, stored.Password, "plaintext password must not reach the repository")
	assert.Equal(t, utils.HashString("Sup3rSecret!", "hash-key"), stored.PasswordHash)
}

func TestRegisterUser_EmptyFields(t *testing.T) {
	svc := NewAuthService(&mockUserRepository{}, testAuthConfig(), logger.Nop())

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "", Password: "Sup3rSecret!"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.RegisterUser(context.Background(), models.User{Login: "niklas", Password: ""})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestRegisterUser_WeakPassword(t *testing.T) {
	svc := NewAuthService(&mockUserRepository{}, testAuthConfig(), logger.Nop())

	_, err := svc.RegisterUser(context.Background(), models.User{
		Login:    "niklas",
		Password: "short", // under the 8-character minimum
	})

	assert.ErrorIs(t, err, crypto.ErrWeakPassword)
}

func TestRegisterUser_LoginTaken(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrLoginAlreadyExists
		},
	}
	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	_, err := svc.RegisterUser(context.Background(), models.User{
		Login:    "niklas",
		Password: "Sup3rSecret!",
	})

	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	hash := utils.HashString("Sup3rSecret!", "hash-key")
	repo := &mockUserRepository{
		findFn: func(_ context.Context, login string) (models.User, error) {
			return models.User{UserID: 7, Login: login, PasswordHash: hash}, nil
		},
	}
	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	user, err := svc.Login(context.Background(), models.User{Login: "niklas", Password: "Sup3rSecret!"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash := utils.HashString("Sup3rSecret!", "hash-key")
	repo := &mockUserRepository{
		findFn: func(_ context.Context, login string) (models.User, error) {
			return models.User{UserID: 7, Login: login, PasswordHash: hash}, nil
		},
	}
	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	_, err := svc.Login(context.Background(), models.User{Login: "niklas", Password: "sup3rsecret!"})

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogin_UserNotFound(t *testing.T) {
	svc := NewAuthService(&mockUserRepository{}, testAuthConfig(), logger.Nop())

	_, err := svc.Login(context.Background(), models.User{Login: "ghost", Password: "Sup3rSecret!"})

	assert.True(t, errors.Is(err, store.ErrNoUserWasFound))
}

// ─────────────────────────────────────────────
// Tokens
// ─────────────────────────────────────────────

func TestCreateToken_ParseToken_RoundTrip(t *testing.T) {
	svc := NewAuthService(&mockUserRepository{}, testAuthConfig(), logger.Nop())

	token, err := svc.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestParseToken_InvalidToken(t *testing.T) {
	svc := NewAuthService(&mockUserRepository{}, testAuthConfig(), logger.Nop())

	_, err := svc.ParseToken(context.Background(), "not-a-jwt")

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseToken_WrongSignKey(t *testing.T) {
	svc := NewAuthService(&mockUserRepository{}, testAuthConfig(), logger.Nop())

	otherCfg := testAuthConfig()
	otherCfg.TokenSignKey = "different-key"
	other := NewAuthService(&mockUserRepository{}, otherCfg, logger.Nop())

	token, err := other.CreateToken(context.Background(), models.User{UserID: 1})
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
