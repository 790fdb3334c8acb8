package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/ticket-triage/internal/domain"
)

// TicketRepository encapsulates ticket persistence. All statements are
// parameterized; user input never reaches a query as text.
type TicketRepository interface {
	List(ctx context.Context, filter domain.TicketFilter) ([]domain.TicketView, error)
	GetDetail(ctx context.Context, ticketID int64) (*domain.TicketDetail, error)
	Insert(ctx context.Context, ticket *domain.Ticket) (int64, error)
	UpdateFields(ctx context.Context, ticketID int64, update domain.TicketUpdate) error
	Delete(ctx context.Context, ticketID int64) error
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates the Postgres-backed repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

const listBaseQuery = `
    SELECT t.ticket_id, s.status_name, a2.username, c.category_name,
           t.brief_summary, a.username, r.role_name
    FROM tickets t
    LEFT JOIN accounts a ON t.creator_account_id = a.account_id
    LEFT JOIN accounts a2 ON t.assigned_account_id = a2.account_id
    LEFT JOIN ticket_statuses s ON t.status_id = s.status_id
    LEFT JOIN categories c ON t.category_id = c.category_id
    LEFT JOIN roles r ON a.role_id = r.role_id`

func (r *ticketRepository) List(ctx context.Context, filter domain.TicketFilter) ([]domain.TicketView, error) {
	query := listBaseQuery
	args := []any{}

	switch filter.Kind {
	case domain.FilterByAssignee:
		query += ` WHERE t.assigned_account_id = $1`
		args = append(args, filter.AssigneeID)
	case domain.FilterUnassigned:
		query += ` WHERE t.assigned_account_id IS NULL`
	}
	query += ` ORDER BY t.ticket_id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.WrapStorage("tickets.list", err)
	}
	defer rows.Close()

	var result []domain.TicketView
	for rows.Next() {
		var view domain.TicketView
		if err := rows.Scan(
			&view.TicketID,
			&view.Status,
			&view.AssignedAdmin,
			&view.Category,
			&view.BriefSummary,
			&view.Creator,
			&view.CreatorRole,
		); err != nil {
			return nil, domain.WrapStorage("tickets.list", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.WrapStorage("tickets.list", err)
	}
	return result, nil
}

func (r *ticketRepository) GetDetail(ctx context.Context, ticketID int64) (*domain.TicketDetail, error) {
	const query = `
        SELECT ticket_id, creator_account_id, detailed_description
        FROM tickets WHERE ticket_id = $1`
	var detail domain.TicketDetail
	if err := r.pool.QueryRow(ctx, query, ticketID).Scan(
		&detail.TicketID,
		&detail.CreatorAccountID,
		&detail.DetailedDescription,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, domain.WrapStorage("tickets.get_detail", err)
	}
	return &detail, nil
}

func (r *ticketRepository) Insert(ctx context.Context, ticket *domain.Ticket) (int64, error) {
	const query = `
        INSERT INTO tickets (creator_account_id, assigned_account_id, category_id, status_id, brief_summary, detailed_description)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ticket_id, created_at`
	if err := r.pool.QueryRow(ctx, query,
		ticket.CreatorAccountID,
		ticket.AssignedAccountID,
		ticket.CategoryID,
		ticket.StatusID,
		ticket.BriefSummary,
		ticket.DetailedDescription,
	).Scan(&ticket.ID, &ticket.CreatedAt); err != nil {
		return 0, domain.WrapStorage("tickets.insert", err)
	}
	return ticket.ID, nil
}

// UpdateFields applies the non-nil fields of update inside one transaction:
// either every requested column changes or none does.
func (r *ticketRepository) UpdateFields(ctx context.Context, ticketID int64, update domain.TicketUpdate) error {
	if update.IsEmpty() {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.WrapStorage("tickets.update", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	touched := false
	if update.AssignedAccountID != nil {
		cmd, err := tx.Exec(ctx, `UPDATE tickets SET assigned_account_id = $1 WHERE ticket_id = $2`,
			*update.AssignedAccountID, ticketID)
		if err != nil {
			return domain.WrapStorage("tickets.update", err)
		}
		touched = touched || cmd.RowsAffected() > 0
	}
	if update.CategoryID != nil {
		cmd, err := tx.Exec(ctx, `UPDATE tickets SET category_id = $1 WHERE ticket_id = $2`,
			*update.CategoryID, ticketID)
		if err != nil {
			return domain.WrapStorage("tickets.update", err)
		}
		touched = touched || cmd.RowsAffected() > 0
	}
	if update.StatusID != nil {
		cmd, err := tx.Exec(ctx, `UPDATE tickets SET status_id = $1 WHERE ticket_id = $2`,
			*update.StatusID, ticketID)
		if err != nil {
			return domain.WrapStorage("tickets.update", err)
		}
		touched = touched || cmd.RowsAffected() > 0
	}
	if !touched {
		return domain.ErrTicketNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.WrapStorage("tickets.update", err)
	}
	return nil
}

func (r *ticketRepository) Delete(ctx context.Context, ticketID int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM tickets WHERE ticket_id = $1`, ticketID)
	if err != nil {
		return domain.WrapStorage("tickets.delete", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrTicketNotFound
	}
	return nil
}
