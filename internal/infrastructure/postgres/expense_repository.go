package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/medagenda/clinica-api/internal/domain"
	"github.com/medagenda/clinica-api/internal/domain/entity"
	"github.com/medagenda/clinica-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementación del puerto ExpenseRepository sobre PostgreSQL.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador de persistencia para gastos. Pasar pool o tx (Querier).
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// Create persiste un nuevo gasto.
func (r *ExpenseRepo) Create(ctx context.Context, e *entity.Expense) error {
	query := `
		INSERT INTO expenses (id, organization_id, user_id, category, description, amount, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.OrganizationID, e.UserID, e.Category, e.Description, e.Amount, e.Date, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// GetByID obtiene un gasto por ID dentro de su organización.
func (r *ExpenseRepo) GetByID(ctx context.Context, orgID, id string) (*entity.Expense, error) {
	query := `
		SELECT id, organization_id, user_id, category, description, amount, date, created_at
		FROM expenses WHERE organization_id = $1 AND id = $2`
	var e entity.Expense
	err := r.q.QueryRow(ctx, query, orgID, id).Scan(
		&e.ID, &e.OrganizationID, &e.UserID, &e.Category, &e.Description, &e.Amount, &e.Date, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return &e, nil
}

// Delete elimina un gasto.
func (r *ExpenseRepo) Delete(ctx context.Context, orgID, id string) error {
	query := `DELETE FROM expenses WHERE organization_id = $1 AND id = $2`
	tag, err := r.q.Exec(ctx, query, orgID, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByRange lista los gastos con fecha en [from, to], opcionalmente por
// categoría, el más reciente primero.
func (r *ExpenseRepo) ListByRange(ctx context.Context, orgID string, from, to time.Time, category string, limit, offset int) ([]*entity.Expense, error) {
	query := `
		SELECT id, organization_id, user_id, category, description, amount, date, created_at
		FROM expenses
		WHERE organization_id = $1 AND date >= $2 AND date <= $3
		  AND ($4 = '' OR category = $4)
		ORDER BY date DESC, created_at DESC
		LIMIT $5 OFFSET $6`
	rows, err := r.q.Query(ctx, query, orgID, from, to, category, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*entity.Expense
	for rows.Next() {
		var e entity.Expense
		if err := rows.Scan(
			&e.ID, &e.OrganizationID, &e.UserID, &e.Category, &e.Description, &e.Amount, &e.Date, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		expenses = append(expenses, &e)
	}
	return expenses, rows.Err()
}
