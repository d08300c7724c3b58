package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/arcanadaily/arcana-api/internal/domain"
	"github.com/arcanadaily/arcana-api/internal/service/auth"
	"github.com/arcanadaily/arcana-api/internal/store"
)

// TokenPair is the access/refresh token pair issued on register, login and
// refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// UserService provides account registration and session management.
type UserService interface {
	// Register creates a new account and issues a token pair.
	// Returns store.ErrEmailExists when the email is taken and domain
	// validation errors for malformed input.
	Register(ctx context.Context, email, password string) (*domain.User, *TokenPair, error)

	// Login authenticates an existing account and issues a token pair.
	// Returns ErrInvalidCredentials when the email or password is wrong.
	Login(ctx context.Context, email, password string) (*domain.User, *TokenPair, error)

	// Refresh exchanges a valid refresh token for a fresh token pair.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)

	// GetUser retrieves a user by their ID.
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userStore  store.UserStore
	jwtService auth.JWTService
	hasher     auth.PasswordHasher
	verifier   auth.PasswordVerifier
	logger     *slog.Logger
}

var _ UserService = (*userServiceImpl)(nil)

// NewUserService creates a new UserService.
func NewUserService(
	userStore store.UserStore,
	jwtService auth.JWTService,
	bcrypt *auth.BcryptVerifier,
	logger *slog.Logger,
) (UserService, error) {
	if userStore == nil {
		return nil, fmt.Errorf("%w: userStore cannot be nil", domain.ErrValidation)
	}
	if jwtService == nil {
		return nil, fmt.Errorf("%w: jwtService cannot be nil", domain.ErrValidation)
	}
	if bcrypt == nil {
		bcrypt = auth.NewBcryptVerifier()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &userServiceImpl{
		userStore:  userStore,
		jwtService: jwtService,
		hasher:     bcrypt,
		verifier:   bcrypt,
		logger:     logger.With(slog.String("component", "user_service")),
	}, nil
}

// Register implements UserService.Register.
func (s *userServiceImpl) Register(
	ctx context.Context,
	email, password string,
) (*domain.User, *TokenPair, error) {
	user, err := domain.NewUser(email, password)
	if err != nil {
		return nil, nil, err
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("registration rejected, email taken", "email", email)
		} else {
			s.logger.Error("failed to create user", "error", err)
		}
		return nil, nil, err
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return user, tokens, nil
}

// Login implements UserService.Login. A missing account and a wrong password
// are indistinguishable to the caller.
func (s *userServiceImpl) Login(
	ctx context.Context,
	email, password string,
) (*domain.User, *TokenPair, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		s.logger.Error("failed to retrieve user by email", "error", err)
		return nil, nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		s.logger.Debug("login rejected, password mismatch", "user_id", user.ID)
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return user, tokens, nil
}

// Refresh implements UserService.Refresh. The account is re-read so a tier
// change since issuance lands in the new tokens.
func (s *userServiceImpl) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.jwtService.ValidateRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userStore.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, auth.ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	return s.issueTokens(ctx, user)
}

// GetUser implements UserService.GetUser.
func (s *userServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	return user, nil
}

func (s *userServiceImpl) issueTokens(ctx context.Context, user *domain.User) (*TokenPair, error) {
	access, err := s.jwtService.GenerateToken(ctx, user.ID, user.Premium)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refresh, err := s.jwtService.GenerateRefreshToken(ctx, user.ID, user.Premium)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
