package repository

import (
	"context"
	"time"

	"github.com/medagenda/clinica-api/internal/domain/entity"
)

// ExpenseRepository define el puerto de persistencia para Expense (DIP).
type ExpenseRepository interface {
	Create(ctx context.Context, e *entity.Expense) error
	GetByID(ctx context.Context, orgID, id string) (*entity.Expense, error)
	Delete(ctx context.Context, orgID, id string) error
	ListByRange(ctx context.Context, orgID string, from, to time.Time, category string, limit, offset int) ([]*entity.Expense, error)
}
