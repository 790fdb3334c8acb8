package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/ticket-triage/internal/auth"
	"github.com/spec-kit/ticket-triage/internal/domain"
)

type memoryAccountRepo struct {
	accounts map[string]domain.Account
}

func (r *memoryAccountRepo) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	account, ok := r.accounts[username]
	if !ok {
		return nil, nil
	}
	return &account, nil
}

func (r *memoryAccountRepo) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	for _, account := range r.accounts {
		if account.ID == id {
			found := account
			return &found, nil
		}
	}
	return nil, nil
}

func newAuthFixture(t *testing.T) *AuthService {
	t.Helper()
	hash, err := auth.HashPassword("correct horse", 4)
	require.NoError(t, err)

	repo := &memoryAccountRepo{accounts: map[string]domain.Account{
		"alice": {ID: 4, Username: "alice", PasswordHash: hash, RoleID: 2, RoleName: domain.RoleTeacher},
	}}
	return NewAuthService(repo, auth.NewTokenManager("test-secret", 5))
}

func TestLoginSuccess(t *testing.T) {
	svc := newAuthFixture(t)

	result, err := svc.Login(context.Background(), "alice", "correct horse")
	require.NoError(t, err)
	require.Equal(t, int64(4), result.Session.AccountID)
	require.Equal(t, "alice", result.Session.Username)
	require.Equal(t, domain.RoleTeacher, result.Session.Role)
	require.NotEmpty(t, result.Token)

	parsed, err := svc.TokenManager().ParseToken(result.Token)
	require.NoError(t, err)
	require.Equal(t, result.Session, parsed)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc := newAuthFixture(t)

	_, wrongPassword := svc.Login(context.Background(), "alice", "wrong")
	require.ErrorIs(t, wrongPassword, domain.ErrInvalidCredentials)

	_, unknownUser := svc.Login(context.Background(), "mallory", "correct horse")
	require.ErrorIs(t, unknownUser, domain.ErrInvalidCredentials)

	require.Equal(t, wrongPassword.Error(), unknownUser.Error())
}
