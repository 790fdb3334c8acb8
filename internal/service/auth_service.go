package service

import (
	"context"
	"time"

	"github.com/spec-kit/ticket-triage/internal/auth"
	"github.com/spec-kit/ticket-triage/internal/domain"
	"github.com/spec-kit/ticket-triage/internal/repository"
)

// AuthService resolves credentials into sessions.
type AuthService struct {
	accounts repository.AccountRepository
	tokens   *auth.TokenManager
}

// NewAuthService constructs the service.
func NewAuthService(accounts repository.AccountRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{accounts: accounts, tokens: tokens}
}

// LoginResult bundles the session with its signed token.
type LoginResult struct {
	Session   domain.Session
	Token     string
	ExpiresAt time.Time
}

// Login verifies credentials and issues a session. An unknown username and a
// wrong password fail identically so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	account, err := s.accounts.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := auth.ComparePassword(account.PasswordHash, password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	session := domain.Session{
		AccountID: account.ID,
		Username:  account.Username,
		Role:      account.RoleName,
	}
	token, expiresAt, err := s.tokens.GenerateToken(session)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Session: session, Token: token, ExpiresAt: expiresAt}, nil
}

// TokenManager exposes the manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}
