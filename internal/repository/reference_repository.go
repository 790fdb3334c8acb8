package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/ticket-triage/internal/domain"
)

// ReferenceRepository reads the fixed lookup tables backing pickers and
// validation. All of it is created out of band and read-only here.
type ReferenceRepository interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListStatuses(ctx context.Context) ([]domain.TicketStatus, error)
	ListAdmins(ctx context.Context) ([]domain.AdminAccount, error)
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	OpenStatusID(ctx context.Context) (int64, error)
}

type referenceRepository struct {
	pool *pgxpool.Pool
}

// NewReferenceRepository returns a Postgres-backed implementation.
func NewReferenceRepository(pool *pgxpool.Pool) ReferenceRepository {
	return &referenceRepository{pool: pool}
}

func (r *referenceRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	const query = `SELECT category_id, category_name FROM categories ORDER BY category_id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, domain.WrapStorage("categories.list", err)
	}
	defer rows.Close()

	var result []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, domain.WrapStorage("categories.list", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.WrapStorage("categories.list", err)
	}
	return result, nil
}

func (r *referenceRepository) ListStatuses(ctx context.Context) ([]domain.TicketStatus, error) {
	const query = `SELECT status_id, status_name FROM ticket_statuses ORDER BY status_id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, domain.WrapStorage("statuses.list", err)
	}
	defer rows.Close()

	var result []domain.TicketStatus
	for rows.Next() {
		var s domain.TicketStatus
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, domain.WrapStorage("statuses.list", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.WrapStorage("statuses.list", err)
	}
	return result, nil
}

func (r *referenceRepository) ListAdmins(ctx context.Context) ([]domain.AdminAccount, error) {
	const query = `
        SELECT a.account_id, a.username
        FROM accounts a
        INNER JOIN roles r ON a.role_id = r.role_id
        WHERE r.role_name = $1
        ORDER BY a.account_id`
	rows, err := r.pool.Query(ctx, query, domain.RoleAdmin)
	if err != nil {
		return nil, domain.WrapStorage("admins.list", err)
	}
	defer rows.Close()

	var result []domain.AdminAccount
	for rows.Next() {
		var a domain.AdminAccount
		if err := rows.Scan(&a.ID, &a.Username); err != nil {
			return nil, domain.WrapStorage("admins.list", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.WrapStorage("admins.list", err)
	}
	return result, nil
}

func (r *referenceRepository) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	const query = `SELECT category_id, category_name FROM categories WHERE category_id = $1`
	var c domain.Category
	if err := r.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.WrapStorage("categories.get", err)
	}
	return &c, nil
}

func (r *referenceRepository) OpenStatusID(ctx context.Context) (int64, error) {
	const query = `SELECT status_id FROM ticket_statuses WHERE status_name = $1`
	var id int64
	if err := r.pool.QueryRow(ctx, query, domain.StatusOpen).Scan(&id); err != nil {
		return 0, domain.WrapStorage("statuses.open_id", err)
	}
	return id, nil
}
