package repository

import (
	"context"

	"github.com/medagenda/clinica-api/internal/domain/entity"
)

// InventoryMovementRepository define el puerto del libro de movimientos.
// Append-only: no expone update ni delete.
type InventoryMovementRepository interface {
	Create(ctx context.Context, m *entity.InventoryMovement) error
	// ListByItem lista los movimientos de un ítem, el más reciente primero.
	// Consulta sin estado: cada llamada es independiente y reiniciable.
	ListByItem(ctx context.Context, itemID string, limit, offset int) ([]*entity.InventoryMovement, error)
}
