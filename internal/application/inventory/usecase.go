package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/medagenda/clinica-api/internal/application/dto"
	"github.com/medagenda/clinica-api/internal/domain"
	"github.com/medagenda/clinica-api/internal/domain/entity"
	domaininv "github.com/medagenda/clinica-api/internal/domain/inventory"
	"github.com/medagenda/clinica-api/internal/domain/repository"
)

// StockLedgerUseCase mantiene el libro de movimientos de inventario y el stock
// materializado de cada ítem. Cada escritura (movimiento + stock) es transaccional
// con bloqueo de fila; el stock actual siempre es la suma con signo del libro.
type StockLedgerUseCase struct {
	txRunner TxRunner
	itemRepo repository.InventoryItemRepository
	movRepo  repository.InventoryMovementRepository
}

// NewStockLedgerUseCase construye el caso de uso.
func NewStockLedgerUseCase(
	txRunner TxRunner,
	itemRepo repository.InventoryItemRepository,
	movRepo repository.InventoryMovementRepository,
) *StockLedgerUseCase {
	return &StockLedgerUseCase{txRunner: txRunner, itemRepo: itemRepo, movRepo: movRepo}
}

// CreateItem crea un ítem de inventario. Si InitialStock > 0 crea además, en la
// misma transacción, un movimiento de entrada con razón "Stock inicial": el libro
// explica el origen de todo stock desde la creación del ítem.
func (uc *StockLedgerUseCase) CreateItem(ctx context.Context, orgID, userID string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.InitialStock.IsNegative() || in.MinStock.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	item := &entity.InventoryItem{
		ID:             uuid.New().String(),
		OrganizationID: orgID,
		Name:           name,
		CurrentStock:   in.InitialStock,
		MinStock:       in.MinStock,
		Unit:           in.Unit,
		Category:       in.Category,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.InventoryItemRepository,
		movRepo repository.InventoryMovementRepository,
	) error {
		if err := itemRepo.Create(ctx, item); err != nil {
			return err
		}
		if in.InitialStock.IsPositive() {
			mov := &entity.InventoryMovement{
				ID:        uuid.New().String(),
				ItemID:    item.ID,
				Type:      entity.MovementEntrada,
				Quantity:  in.InitialStock,
				Reason:    entity.ReasonInitialStock,
				CreatedBy: userID,
				CreatedAt: now,
			}
			return movRepo.Create(ctx, mov)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// RecordMovement registra una entrada o salida y actualiza el stock materializado
// del ítem en una sola transacción: o ambas escrituras se confirman o ninguna.
// La fila del ítem se bloquea (SELECT FOR UPDATE) para serializar escritores
// concurrentes. Una salida puede dejar el stock en negativo: el libro no lo
// prohíbe; el bloqueo es responsabilidad del llamador.
func (uc *StockLedgerUseCase) RecordMovement(ctx context.Context, orgID, userID, itemID string, in dto.RecordMovementRequest) (*dto.RecordMovementResponse, error) {
	// Validación antes de cualquier mutación: sin efectos secundarios si falla.
	if in.Type != entity.MovementEntrada && in.Type != entity.MovementSalida {
		return nil, domain.ErrInvalidInput
	}
	if !in.Quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	mov := &entity.InventoryMovement{
		ID:        uuid.New().String(),
		ItemID:    itemID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Reason:    strings.TrimSpace(in.Reason),
		CreatedBy: userID,
		CreatedAt: now,
	}

	var updated *entity.InventoryItem
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.InventoryItemRepository,
		movRepo repository.InventoryMovementRepository,
	) error {
		item, err := itemRepo.GetForUpdate(ctx, orgID, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		delta := in.Quantity
		if in.Type == entity.MovementSalida {
			delta = delta.Neg()
		}
		item.CurrentStock = item.CurrentStock.Add(delta)
		item.UpdatedAt = now
		if err := itemRepo.UpdateStock(ctx, item.ID, item.CurrentStock); err != nil {
			return err
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.RecordMovementResponse{
		Movement: toMovementResponse(mov),
		Item:     *toItemResponse(updated),
	}, nil
}

// ListMovements devuelve el historial de un ítem, el más reciente primero.
// Consulta sin estado, reiniciable en cada llamada.
func (uc *StockLedgerUseCase) ListMovements(ctx context.Context, orgID, itemID string, page dto.PageRequest) ([]dto.MovementResponse, error) {
	page.DefaultPage()
	item, err := uc.itemRepo.GetByID(ctx, orgID, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	movements, err := uc.movRepo.ListByItem(ctx, itemID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, toMovementResponse(m))
	}
	return out, nil
}

// GetItem devuelve un ítem con su estado de stock calculado.
func (uc *StockLedgerUseCase) GetItem(ctx context.Context, orgID, itemID string) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(ctx, orgID, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// ListItems lista los ítems de la organización. El estado de stock se calcula en
// lectura y, si status es normal|bajo|critico, se usa como filtro; "all" o vacío
// devuelve todos. El repositorio filtra antes de paginar.
func (uc *StockLedgerUseCase) ListItems(ctx context.Context, orgID, status string, page dto.PageRequest) ([]dto.ItemResponse, error) {
	if !domaininv.ValidStatusFilter(status) {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()
	items, err := uc.itemRepo.ListByOrganization(ctx, orgID, status, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, *toItemResponse(item))
	}
	return out, nil
}

func toItemResponse(item *entity.InventoryItem) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:           item.ID,
		Name:         item.Name,
		CurrentStock: item.CurrentStock,
		MinStock:     item.MinStock,
		Unit:         item.Unit,
		Category:     item.Category,
		Status:       domaininv.ClassifyStock(item.CurrentStock, item.MinStock),
		Active:       item.Active,
		CreatedAt:    item.CreatedAt,
	}
}

func toMovementResponse(m *entity.InventoryMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:        m.ID,
		ItemID:    m.ItemID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		Reason:    m.Reason,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
	}
}
