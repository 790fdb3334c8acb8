package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/ticket-triage/internal/domain"
)

// AccountRepository defines persistence access for login identities.
// Lookups return (nil, nil) when no account matches so callers can
// distinguish "absent" from a storage failure.
type AccountRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
}

type accountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository returns a Postgres-backed implementation.
func NewAccountRepository(pool *pgxpool.Pool) AccountRepository {
	return &accountRepository{pool: pool}
}

func (r *accountRepository) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	const query = `
        SELECT a.account_id, a.username, a.userpassword, a.role_id, r.role_name
        FROM accounts a
        INNER JOIN roles r ON a.role_id = r.role_id
        WHERE a.username = $1`
	return r.fetchSingle(ctx, "accounts.find_by_username", query, username)
}

func (r *accountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	const query = `
        SELECT a.account_id, a.username, a.userpassword, a.role_id, r.role_name
        FROM accounts a
        INNER JOIN roles r ON a.role_id = r.role_id
        WHERE a.account_id = $1`
	return r.fetchSingle(ctx, "accounts.get_by_id", query, id)
}

func (r *accountRepository) fetchSingle(ctx context.Context, op, query string, arg any) (*domain.Account, error) {
	var account domain.Account
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&account.ID,
		&account.Username,
		&account.PasswordHash,
		&account.RoleID,
		&account.RoleName,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.WrapStorage(op, err)
	}
	return &account, nil
}
