package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"project_tracker/internal/domain"
	"project_tracker/internal/logger"
)

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token     string            `json:"token"`
	ExpiresAt time.Time         `json:"expiresAt"`
	User      domain.PublicUser `json:"user"`
}

type AuthService struct {
	users  UserStore
	hasher PasswordHasher
	tokens *TokenIssuer

	// compared against when the email is unknown so both failure paths cost a bcrypt check
	dummyHash string
}

func NewAuthService(users UserStore, hasher PasswordHasher, tokens *TokenIssuer) *AuthService {
	dummy, err := hasher.Hash("project-tracker-dummy-password")
	if err != nil {
		logger.Warn("failed to prepare dummy password hash", "error", err)
	}
	return &AuthService{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		dummyHash: dummy,
	}
}

// Login checks the credentials and issues a session token. Unknown email and
// wrong password fail with the same ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, domain.NewValidationError("email", "is required")
	}
	if password == "" {
		return nil, domain.NewValidationError("password", "is required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.hasher.Verify(password, s.dummyHash)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, exp, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, ExpiresAt: exp, User: user.Public()}, nil
}

// Authenticate resolves a bearer token to its claims.
func (s *AuthService) Authenticate(token string) (*Claims, error) {
	return s.tokens.Parse(token)
}

// CurrentUser loads the user a token was issued for. A user deleted after
// the token was issued is domain.ErrNotFound.
func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (*domain.PublicUser, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	pub := user.Public()
	return &pub, nil
}
