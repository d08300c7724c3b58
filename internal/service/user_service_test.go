package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanadaily/arcana-api/internal/config"
	"github.com/arcanadaily/arcana-api/internal/domain"
	"github.com/arcanadaily/arcana-api/internal/service/auth"
	"github.com/arcanadaily/arcana-api/internal/store"
)

// fakeUserStore is an in-memory UserStore.
type fakeUserStore struct {
	byID    map[uuid.UUID]*domain.User
	byEmail map[string]*domain.User
}

var _ store.UserStore = (*fakeUserStore)(nil)

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		byID:    map[uuid.UUID]*domain.User{},
		byEmail: map[string]*domain.User{},
	}
}

func (f *fakeUserStore) WithTx(*sql.Tx) store.UserStore { return f }

func (f *fakeUserStore) Create(_ context.Context, user *domain.User) error {
	if _, ok := f.byEmail[user.Email]; ok {
		return store.ErrEmailExists
	}
	f.byID[user.ID] = user
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	if user, ok := f.byID[id]; ok {
		return user, nil
	}
	return nil, store.ErrUserNotFound
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if user, ok := f.byEmail[email]; ok {
		return user, nil
	}
	return nil, store.ErrUserNotFound
}

func (f *fakeUserStore) Update(_ context.Context, user *domain.User) error {
	if _, ok := f.byID[user.ID]; !ok {
		return store.ErrUserNotFound
	}
	f.byID[user.ID] = user
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserStore) Delete(_ context.Context, id uuid.UUID) error {
	user, ok := f.byID[id]
	if !ok {
		return store.ErrUserNotFound
	}
	delete(f.byEmail, user.Email)
	delete(f.byID, id)
	return nil
}

func newTestUserService(t *testing.T, users store.UserStore) UserService {
	t.Helper()
	jwtService, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:                   "test-secret-that-is-long-enough-for-hmac",
		TokenLifetimeMinutes:        60,
		RefreshTokenLifetimeMinutes: 10080,
	})
	require.NoError(t, err)

	svc, err := NewUserService(users, jwtService, nil, nil)
	require.NoError(t, err)
	return svc
}

func TestRegisterAndLogin(t *testing.T) {
	t.Parallel()

	users := newFakeUserStore()
	svc := newTestUserService(t, users)

	user, tokens, err := svc.Register(context.Background(), "seeker@example.com", "a secure password")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.NotNil(t, tokens)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Empty(t, user.Password, "plaintext must be cleared after hashing")
	assert.NotEmpty(t, user.HashedPassword)
	assert.NotEqual(t, "a secure password", user.HashedPassword)

	loggedIn, tokens, err := svc.Login(context.Background(), "seeker@example.com", "a secure password")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.NotEmpty(t, tokens.AccessToken)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	t.Parallel()

	svc := newTestUserService(t, newFakeUserStore())

	_, _, err := svc.Register(context.Background(), "dup@example.com", "a secure password")
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), "dup@example.com", "another password")
	assert.ErrorIs(t, err, store.ErrEmailExists)
}

func TestRegisterValidatesInput(t *testing.T) {
	t.Parallel()

	svc := newTestUserService(t, newFakeUserStore())

	_, _, err := svc.Register(context.Background(), "not-an-email", "a secure password")
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)

	_, _, err = svc.Register(context.Background(), "ok@example.com", "short")
	assert.ErrorIs(t, err, domain.ErrPasswordTooShort)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	t.Parallel()

	svc := newTestUserService(t, newFakeUserStore())

	_, _, err := svc.Register(context.Background(), "seeker@example.com", "a secure password")
	require.NoError(t, err)

	// Wrong password and unknown email look identical to the caller.
	_, _, err = svc.Login(context.Background(), "seeker@example.com", "wrong password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "nobody@example.com", "a secure password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshIssuesNewPair(t *testing.T) {
	t.Parallel()

	users := newFakeUserStore()
	svc := newTestUserService(t, users)

	user, tokens, err := svc.Register(context.Background(), "seeker@example.com", "a secure password")
	require.NoError(t, err)

	fresh, err := svc.Refresh(context.Background(), tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, fresh.AccessToken)
	assert.NotEmpty(t, fresh.RefreshToken)

	// An access token is not a refresh token.
	_, err = svc.Refresh(context.Background(), tokens.AccessToken)
	assert.ErrorIs(t, err, auth.ErrWrongTokenType)

	// A deleted account cannot refresh.
	require.NoError(t, users.Delete(context.Background(), user.ID))
	_, err = svc.Refresh(context.Background(), tokens.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
