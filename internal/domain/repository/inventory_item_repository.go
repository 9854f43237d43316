package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/medagenda/clinica-api/internal/domain/entity"
)

// InventoryItemRepository define el puerto de persistencia para InventoryItem (DIP).
// GetForUpdate y UpdateStock se usan dentro de transacciones del libro de movimientos.
type InventoryItemRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, orgID, id string) (*entity.InventoryItem, error)
	// GetForUpdate bloquea la fila del ítem (SELECT FOR UPDATE) para serializar
	// escritores concurrentes sobre current_stock.
	GetForUpdate(ctx context.Context, orgID, id string) (*entity.InventoryItem, error)
	Update(ctx context.Context, item *entity.InventoryItem) error
	// UpdateStock escribe el nuevo current_stock materializado del ítem.
	UpdateStock(ctx context.Context, id string, stock decimal.Decimal) error
	// ListByOrganization lista ítems ordenados por nombre. status filtra por el
	// nivel de stock calculado (critico|bajo|normal); "" o "all" no filtran.
	// El filtro se aplica antes de limit/offset.
	ListByOrganization(ctx context.Context, orgID, status string, limit, offset int) ([]*entity.InventoryItem, error)
}
