package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/medagenda/clinica-api/internal/domain"
	"github.com/medagenda/clinica-api/internal/domain/entity"
	"github.com/medagenda/clinica-api/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

// InventoryItemRepo implementación del puerto InventoryItemRepository sobre PostgreSQL.
type InventoryItemRepo struct {
	q Querier
}

// NewInventoryItemRepository construye el adaptador de persistencia para ítems de inventario. Pasar pool o tx (Querier).
func NewInventoryItemRepository(q Querier) *InventoryItemRepo {
	return &InventoryItemRepo{q: q}
}

// Create persiste un nuevo ítem de inventario.
func (r *InventoryItemRepo) Create(ctx context.Context, item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (id, organization_id, name, current_stock, min_stock, unit, category, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.OrganizationID, item.Name, item.CurrentStock, item.MinStock,
		item.Unit, item.Category, item.Active, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID dentro de su organización.
func (r *InventoryItemRepo) GetByID(ctx context.Context, orgID, id string) (*entity.InventoryItem, error) {
	return r.get(ctx, orgID, id, "")
}

// GetForUpdate obtiene el ítem bloqueando su fila (SELECT FOR UPDATE).
// Debe llamarse dentro de una transacción; serializa los escritores
// concurrentes sobre current_stock.
func (r *InventoryItemRepo) GetForUpdate(ctx context.Context, orgID, id string) (*entity.InventoryItem, error) {
	return r.get(ctx, orgID, id, " FOR UPDATE")
}

func (r *InventoryItemRepo) get(ctx context.Context, orgID, id, suffix string) (*entity.InventoryItem, error) {
	query := `
		SELECT id, organization_id, name, current_stock, min_stock, unit, category, active, created_at, updated_at
		FROM inventory_items WHERE organization_id = $1 AND id = $2` + suffix
	var item entity.InventoryItem
	err := r.q.QueryRow(ctx, query, orgID, id).Scan(
		&item.ID, &item.OrganizationID, &item.Name, &item.CurrentStock, &item.MinStock,
		&item.Unit, &item.Category, &item.Active, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return &item, nil
}

// Update modifica los datos del ítem (sin tocar current_stock).
func (r *InventoryItemRepo) Update(ctx context.Context, item *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET name = $1, min_stock = $2, unit = $3, category = $4, active = $5, updated_at = NOW()
		WHERE organization_id = $6 AND id = $7`
	tag, err := r.q.Exec(ctx, query,
		item.Name, item.MinStock, item.Unit, item.Category, item.Active,
		item.OrganizationID, item.ID,
	)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStock escribe el nuevo current_stock materializado. Se invoca en la
// misma transacción que inserta el movimiento correspondiente.
func (r *InventoryItemRepo) UpdateStock(ctx context.Context, id string, stock decimal.Decimal) error {
	query := `UPDATE inventory_items SET current_stock = $1, updated_at = NOW() WHERE id = $2`
	tag, err := r.q.Exec(ctx, query, stock, id)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByOrganization lista los ítems de la organización ordenados por nombre.
// El filtro de estado reproduce los umbrales de inventory.ClassifyStock sobre
// current_stock/min_stock y se resuelve en SQL, antes del LIMIT: una página
// nunca pierde coincidencias que ordenan después de ella.
func (r *InventoryItemRepo) ListByOrganization(ctx context.Context, orgID, status string, limit, offset int) ([]*entity.InventoryItem, error) {
	query := `
		SELECT id, organization_id, name, current_stock, min_stock, unit, category, active, created_at, updated_at
		FROM inventory_items
		WHERE organization_id = $1
		  AND ($2 = '' OR $2 = 'all'
		       OR ($2 = 'critico' AND current_stock <= 0)
		       OR ($2 = 'bajo' AND current_stock > 0 AND current_stock <= min_stock)
		       OR ($2 = 'normal' AND current_stock > min_stock))
		ORDER BY name
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, orgID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()

	var items []*entity.InventoryItem
	for rows.Next() {
		var item entity.InventoryItem
		if err := rows.Scan(
			&item.ID, &item.OrganizationID, &item.Name, &item.CurrentStock, &item.MinStock,
			&item.Unit, &item.Category, &item.Active, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}
