// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mshv/go-note-keeper/internal/config"
	"github.com/mshv/go-note-keeper/internal/logger"
	"github.com/mshv/go-note-keeper/internal/store"
	"github.com/mshv/go-note-keeper/models"
)

// mockUserRepository implements store.UserRepository for unit tests.
// Each method field can be overridden per test case.
type mockUserRepository struct {
	createUserFn         func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsernameFn func(ctx context.Context, username string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFn(ctx, user)
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return m.findUserByUsernameFn(ctx, username)
}

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "notes-test",
		TokenDuration: time.Minute,
	}
}

func newTestAuthService(repo store.UserRepository) AuthService {
	return NewAuthService(repo, testAppConfig(), logger.Nop())
}

func TestRegisterUser_HashesPassword(t *testing.T) {
	var persisted models.User
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			persisted = user
			user.UserID = 1
			return user, nil
		},
	}

	auth := newTestAuthService(repo)
	registered, err := auth.RegisterUser(context.Background(), models.User{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), registered.UserID)
	assert.Empty(t, persisted.Password, "plaintext password must not reach the repository")
	require.NotEmpty(t, persisted.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(persisted.PasswordHash), []byte("s3cret")))
}

func TestRegisterUser_InvalidData(t *testing.T) {
	auth := newTestAuthService(&mockUserRepository{})

	tests := []struct {
		name string
		user models.User
	}{
		{name: "empty username", user: models.User{Password: "s3cret"}},
		{name: "empty password", user: models.User{Username: "alice"}},
		{name: "empty both", user: models.User{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.RegisterUser(context.Background(), tt.user)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestRegisterUser_DuplicateUsername(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrUsernameAlreadyExists
		},
	}

	auth := newTestAuthService(repo)
	_, err := auth.RegisterUser(context.Background(), models.User{Username: "alice", Password: "s3cret"})
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, username string) (models.User, error) {
			return models.User{UserID: 7, Username: username, PasswordHash: string(hash)}, nil
		},
	}

	auth := newTestAuthService(repo)
	user, err := auth.Login(context.Background(), models.User{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, username string) (models.User, error) {
			return models.User{UserID: 7, Username: username, PasswordHash: string(hash)}, nil
		},
	}

	auth := newTestAuthService(repo)
	_, err = auth.Login(context.Background(), models.User{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogin_UnknownUser(t *testing.T) {
	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}

	auth := newTestAuthService(repo)
	_, err := auth.Login(context.Background(), models.User{Username: "ghost", Password: "s3cret"})
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestCreateTokenAndAuthenticate_RoundTrip(t *testing.T) {
	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, username string) (models.User, error) {
			return models.User{UserID: 7, Username: username}, nil
		},
	}

	auth := newTestAuthService(repo)
	token, err := auth.CreateToken(context.Background(), models.User{Username: "alice"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	user, err := auth.Authenticate(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
	assert.Equal(t, "alice", user.Username)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	auth := newTestAuthService(&mockUserRepository{})

	_, err := auth.Authenticate(context.Background(), "definitely.not.valid")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthenticate_TokenSignedWithDifferentKey(t *testing.T) {
	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, username string) (models.User, error) {
			return models.User{UserID: 7, Username: username}, nil
		},
	}

	foreignCfg := testAppConfig()
	foreignCfg.TokenSignKey = "some-other-key"
	foreign := NewAuthService(repo, foreignCfg, logger.Nop())

	token, err := foreign.CreateToken(context.Background(), models.User{Username: "alice"})
	require.NoError(t, err)

	auth := newTestAuthService(repo)
	_, err = auth.Authenticate(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthenticate_UnknownSubject(t *testing.T) {
	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}

	auth := newTestAuthService(repo)
	token, err := auth.CreateToken(context.Background(), models.User{Username: "deleted-user"})
	require.NoError(t, err)

	_, err = auth.Authenticate(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestLogin_InvalidData(t *testing.T) {
	auth := newTestAuthService(&mockUserRepository{})

	_, err := auth.Login(context.Background(), models.User{Username: "alice"})
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = auth.Login(context.Background(), models.User{Password: "s3cret"})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestRegisterUser_RepositoryErrorIsWrapped(t *testing.T) {
	repoErr := errors.New("connection reset")
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, repoErr
		},
	}

	auth := newTestAuthService(repo)
	_, err := auth.RegisterUser(context.Background(), models.User{Username: "alice", Password: "s3cret"})
	assert.ErrorIs(t, err, repoErr)
}
