package expense

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/medagenda/clinica-api/internal/application/dto"
	"github.com/medagenda/clinica-api/internal/domain"
	"github.com/medagenda/clinica-api/internal/domain/entity"
	"github.com/medagenda/clinica-api/internal/domain/repository"
)

// UseCase casos de uso de gastos de la clínica.
type UseCase struct {
	repo repository.ExpenseRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ExpenseRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create registra un gasto.
func (uc *UseCase) Create(ctx context.Context, orgID, userID string, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	description := strings.TrimSpace(in.Description)
	if description == "" || !in.Amount.IsPositive() || !entity.ValidExpenseCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}
	e := &entity.Expense{
		ID:             uuid.New().String(),
		OrganizationID: orgID,
		UserID:         userID,
		Category:       in.Category,
		Description:    description,
		Amount:         in.Amount,
		Date:           date,
		CreatedAt:      time.Now(),
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return toExpenseResponse(e), nil
}

// Delete elimina un gasto de la organización.
func (uc *UseCase) Delete(ctx context.Context, orgID, id string) error {
	e, err := uc.repo.GetByID(ctx, orgID, id)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, orgID, id)
}

// ListByRange lista gastos del período, opcionalmente por categoría.
func (uc *UseCase) ListByRange(ctx context.Context, orgID string, from, to time.Time, category string, page dto.PageRequest) ([]dto.ExpenseResponse, error) {
	if !to.After(from) {
		return nil, domain.ErrInvalidInput
	}
	if category != "" && !entity.ValidExpenseCategory(category) {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()
	expenses, err := uc.repo.ListByRange(ctx, orgID, from, to, category, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, *toExpenseResponse(e))
	}
	return out, nil
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:          e.ID,
		Category:    e.Category,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date,
		CreatedAt:   e.CreatedAt,
	}
}
