package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanadaily/arcana-api/internal/domain"
	"github.com/arcanadaily/arcana-api/internal/service"
	"github.com/arcanadaily/arcana-api/internal/store"
)

// fakeUserService returns canned results for each method.
type fakeUserService struct {
	user   *domain.User
	tokens *service.TokenPair
	err    error
}

var _ service.UserService = (*fakeUserService)(nil)

func (f *fakeUserService) Register(context.Context, string, string) (*domain.User, *service.TokenPair, error) {
	return f.user, f.tokens, f.err
}

func (f *fakeUserService) Login(context.Context, string, string) (*domain.User, *service.TokenPair, error) {
	return f.user, f.tokens, f.err
}

func (f *fakeUserService) Refresh(context.Context, string) (*service.TokenPair, error) {
	return f.tokens, f.err
}

func (f *fakeUserService) GetUser(context.Context, uuid.UUID) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestRegisterHandler(t *testing.T) {
	t.Parallel()

	user := &domain.User{ID: uuid.New(), Email: "seeker@example.com"}
	tokens := &service.TokenPair{AccessToken: "access", RefreshToken: "refresh"}
	handler, err := NewAuthHandler(&fakeUserService{user: user, tokens: tokens}, nil)
	require.NoError(t, err)

	rec := postJSON(t, handler.Register, "/api/auth/register", RegisterRequest{
		Email:    "seeker@example.com",
		Password: "a secure password",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "access", resp.Token)
	assert.Equal(t, "refresh", resp.RefreshToken)
	require.NotNil(t, resp.User)
	assert.Equal(t, user.ID.String(), resp.User.ID)
}

func TestRegisterHandlerValidation(t *testing.T) {
	t.Parallel()

	handler, err := NewAuthHandler(&fakeUserService{}, nil)
	require.NoError(t, err)

	tests := []struct {
		name string
		body RegisterRequest
	}{
		{name: "bad email", body: RegisterRequest{Email: "nope", Password: "long enough pw"}},
		{name: "short password", body: RegisterRequest{Email: "a@b.com", Password: "short"}},
		{name: "empty", body: RegisterRequest{}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rec := postJSON(t, handler.Register, "/api/auth/register", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestRegisterHandlerDuplicateEmail(t *testing.T) {
	t.Parallel()

	handler, err := NewAuthHandler(&fakeUserService{err: store.ErrEmailExists}, nil)
	require.NoError(t, err)

	rec := postJSON(t, handler.Register, "/api/auth/register", RegisterRequest{
		Email:    "dup@example.com",
		Password: "a secure password",
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLoginHandlerRejectsBadCredentials(t *testing.T) {
	t.Parallel()

	handler, err := NewAuthHandler(&fakeUserService{err: service.ErrInvalidCredentials}, nil)
	require.NoError(t, err)

	rec := postJSON(t, handler.Login, "/api/auth/login", LoginRequest{
		Email:    "seeker@example.com",
		Password: "wrong",
	})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid email or password", resp.Error)
}

func TestRefreshHandlerOmitsUser(t *testing.T) {
	t.Parallel()

	tokens := &service.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}
	handler, err := NewAuthHandler(&fakeUserService{tokens: tokens}, nil)
	require.NoError(t, err)

	rec := postJSON(t, handler.Refresh, "/api/auth/refresh", RefreshRequest{
		RefreshToken: "old-refresh",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "new-access", resp.Token)
	assert.Nil(t, resp.User)
}
