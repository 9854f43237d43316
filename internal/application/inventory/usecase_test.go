package inventory_test

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinv "github.com/medagenda/clinica-api/internal/application/inventory"
	"github.com/medagenda/clinica-api/internal/application/dto"
	"github.com/medagenda/clinica-api/internal/domain"
	"github.com/medagenda/clinica-api/internal/domain/entity"
	domaininv "github.com/medagenda/clinica-api/internal/domain/inventory"
	"github.com/medagenda/clinica-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria (mismo contrato que los adaptadores postgres)
// ──────────────────────────────────────────────────────────────────────────────

type fakeItemRepo struct {
	items map[string]*entity.InventoryItem
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[string]*entity.InventoryItem)}
}

func (r *fakeItemRepo) Create(_ context.Context, item *entity.InventoryItem) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) GetByID(_ context.Context, orgID, id string) (*entity.InventoryItem, error) {
	item, ok := r.items[id]
	if !ok || item.OrganizationID != orgID {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (r *fakeItemRepo) GetForUpdate(ctx context.Context, orgID, id string) (*entity.InventoryItem, error) {
	return r.GetByID(ctx, orgID, id)
}

func (r *fakeItemRepo) Update(_ context.Context, item *entity.InventoryItem) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) UpdateStock(_ context.Context, id string, stock decimal.Decimal) error {
	item, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	item.CurrentStock = stock
	return nil
}

func (r *fakeItemRepo) ListByOrganization(_ context.Context, orgID, status string, limit, offset int) ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	for _, item := range r.items {
		if item.OrganizationID != orgID {
			continue
		}
		if status != "" && status != "all" &&
			domaininv.ClassifyStock(item.CurrentStock, item.MinStock) != status {
			continue
		}
		cp := *item
		out = append(out, &cp)
	}
	// mismo contrato que el adaptador postgres: filtrar, ordenar por nombre y
	// recién entonces paginar
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeMovementRepo struct {
	movements []*entity.InventoryMovement
}

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.InventoryMovement) error {
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) ListByItem(_ context.Context, itemID string, _, _ int) ([]*entity.InventoryMovement, error) {
	var out []*entity.InventoryMovement
	// más reciente primero
	for i := len(r.movements) - 1; i >= 0; i-- {
		if r.movements[i].ItemID == itemID {
			out = append(out, r.movements[i])
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) byItem(itemID string) []*entity.InventoryMovement {
	var out []*entity.InventoryMovement
	for _, m := range r.movements {
		if m.ItemID == itemID {
			out = append(out, m)
		}
	}
	return out
}

// fakeTxRunner ejecuta el callback directamente sobre los fakes compartidos.
type fakeTxRunner struct {
	itemRepo *fakeItemRepo
	movRepo  *fakeMovementRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	itemRepo repository.InventoryItemRepository,
	movRepo repository.InventoryMovementRepository,
) error) error {
	return fn(r.itemRepo, r.movRepo)
}

func newLedger() (*appinv.StockLedgerUseCase, *fakeItemRepo, *fakeMovementRepo) {
	itemRepo := newFakeItemRepo()
	movRepo := &fakeMovementRepo{}
	uc := appinv.NewStockLedgerUseCase(&fakeTxRunner{itemRepo: itemRepo, movRepo: movRepo}, itemRepo, movRepo)
	return uc, itemRepo, movRepo
}

const orgID = "org-1"
const userID = "user-1"

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// ──────────────────────────────────────────────────────────────────────────────
// CreateItem
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateItem_SinStockInicialNoGeneraMovimientos(t *testing.T) {
	uc, _, movRepo := newLedger()

	item, err := uc.CreateItem(context.Background(), orgID, userID, dto.CreateItemRequest{
		Name:         "Guantes nitrilo",
		InitialStock: d(0),
		MinStock:     d(10),
	})
	require.NoError(t, err)

	assert.Empty(t, movRepo.byItem(item.ID), "stock inicial cero no debe generar movimiento")
	assert.True(t, item.CurrentStock.IsZero())
	assert.Equal(t, "critico", item.Status)
}

func TestCreateItem_ConStockInicialGeneraEntradaStockInicial(t *testing.T) {
	uc, _, movRepo := newLedger()

	item, err := uc.CreateItem(context.Background(), orgID, userID, dto.CreateItemRequest{
		Name:         "Anestesia lidocaína",
		InitialStock: d(50),
		MinStock:     d(5),
	})
	require.NoError(t, err)

	movs := movRepo.byItem(item.ID)
	require.Len(t, movs, 1, "debe existir exactamente un movimiento de entrada")
	assert.Equal(t, entity.MovementEntrada, movs[0].Type)
	assert.True(t, movs[0].Quantity.Equal(d(50)))
	assert.Equal(t, "Stock inicial", movs[0].Reason)
	assert.Equal(t, userID, movs[0].CreatedBy)
}

func TestCreateItem_NombreVacioOStockNegativoFalla(t *testing.T) {
	uc, _, _ := newLedger()

	_, err := uc.CreateItem(context.Background(), orgID, userID, dto.CreateItemRequest{
		Name: "   ", InitialStock: d(1), MinStock: d(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateItem(context.Background(), orgID, userID, dto.CreateItemRequest{
		Name: "Algo", InitialStock: d(-1), MinStock: d(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordMovement
// ──────────────────────────────────────────────────────────────────────────────

func seedItem(t *testing.T, uc *appinv.StockLedgerUseCase, initial int64) string {
	t.Helper()
	item, err := uc.CreateItem(context.Background(), orgID, userID, dto.CreateItemRequest{
		Name: "Gasas", InitialStock: d(initial), MinStock: d(10),
	})
	require.NoError(t, err)
	return item.ID
}

// Propiedad del libro: tras cualquier secuencia de movimientos el stock es el
// inicial más la suma con signo de las cantidades registradas.
func TestRecordMovement_StockEsSumaConSignoDelLibro(t *testing.T) {
	uc, itemRepo, movRepo := newLedger()
	itemID := seedItem(t, uc, 20)

	seq := []struct {
		typ string
		qty int64
	}{
		{entity.MovementEntrada, 30},
		{entity.MovementSalida, 12},
		{entity.MovementEntrada, 5},
		{entity.MovementSalida, 8},
	}
	for _, s := range seq {
		_, err := uc.RecordMovement(context.Background(), orgID, userID, itemID, dto.RecordMovementRequest{
			Type: s.typ, Quantity: d(s.qty),
		})
		require.NoError(t, err)
	}

	// 20 + 30 - 12 + 5 - 8 = 35
	item, err := itemRepo.GetByID(context.Background(), orgID, itemID)
	require.NoError(t, err)
	assert.True(t, item.CurrentStock.Equal(d(35)), "stock esperado 35, fue %s", item.CurrentStock)

	// Verificación cruzada contra el libro completo (incluye "Stock inicial").
	sum := decimal.Zero
	for _, m := range movRepo.byItem(itemID) {
		if m.Type == entity.MovementEntrada {
			sum = sum.Add(m.Quantity)
		} else {
			sum = sum.Sub(m.Quantity)
		}
	}
	assert.True(t, item.CurrentStock.Equal(sum), "el stock materializado debe igualar la suma del libro")
}

func TestRecordMovement_CantidadNoPositivaFallaSinEfectos(t *testing.T) {
	uc, itemRepo, movRepo := newLedger()
	itemID := seedItem(t, uc, 20)
	before := len(movRepo.movements)

	for _, qty := range []decimal.Decimal{d(0), d(-5)} {
		_, err := uc.RecordMovement(context.Background(), orgID, userID, itemID, dto.RecordMovementRequest{
			Type: entity.MovementEntrada, Quantity: qty,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}

	assert.Len(t, movRepo.movements, before, "no debe registrarse ningún movimiento")
	item, _ := itemRepo.GetByID(context.Background(), orgID, itemID)
	assert.True(t, item.CurrentStock.Equal(d(20)), "el stock no debe cambiar")
}

func TestRecordMovement_TipoDesconocidoFalla(t *testing.T) {
	uc, _, _ := newLedger()
	itemID := seedItem(t, uc, 20)

	_, err := uc.RecordMovement(context.Background(), orgID, userID, itemID, dto.RecordMovementRequest{
		Type: "ajuste", Quantity: d(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordMovement_ItemInexistenteODeOtraOrganizacion(t *testing.T) {
	uc, _, _ := newLedger()
	itemID := seedItem(t, uc, 20)

	_, err := uc.RecordMovement(context.Background(), orgID, userID, "no-existe", dto.RecordMovementRequest{
		Type: entity.MovementEntrada, Quantity: d(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.RecordMovement(context.Background(), "otra-org", userID, itemID, dto.RecordMovementRequest{
		Type: entity.MovementEntrada, Quantity: d(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El libro no rechaza salidas que dejen stock negativo: eso es responsabilidad
// del llamador (la UI bloquea salida > stock actual).
func TestRecordMovement_SalidaPuedeDejarStockNegativo(t *testing.T) {
	uc, _, _ := newLedger()
	itemID := seedItem(t, uc, 5)

	resp, err := uc.RecordMovement(context.Background(), orgID, userID, itemID, dto.RecordMovementRequest{
		Type: entity.MovementSalida, Quantity: d(8),
	})
	require.NoError(t, err)
	assert.True(t, resp.Item.CurrentStock.Equal(d(-3)))
	assert.Equal(t, "critico", resp.Item.Status)
}

func TestRecordMovement_RespuestaIncluyeMovimientoEItemActualizado(t *testing.T) {
	uc, _, _ := newLedger()
	itemID := seedItem(t, uc, 20)

	resp, err := uc.RecordMovement(context.Background(), orgID, userID, itemID, dto.RecordMovementRequest{
		Type: entity.MovementSalida, Quantity: d(12), Reason: "uso en consulta",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.MovementSalida, resp.Movement.Type)
	assert.True(t, resp.Movement.Quantity.Equal(d(12)))
	assert.Equal(t, "uso en consulta", resp.Movement.Reason)
	assert.True(t, resp.Item.CurrentStock.Equal(d(8)))
	assert.Equal(t, "bajo", resp.Item.Status, "8 <= minStock 10 debe clasificar bajo")
}

// ──────────────────────────────────────────────────────────────────────────────
// ListMovements / ListItems
// ──────────────────────────────────────────────────────────────────────────────

func TestListMovements_MasRecientePrimero(t *testing.T) {
	uc, _, _ := newLedger()
	itemID := seedItem(t, uc, 10)

	_, err := uc.RecordMovement(context.Background(), orgID, userID, itemID, dto.RecordMovementRequest{
		Type: entity.MovementEntrada, Quantity: d(3), Reason: "compra",
	})
	require.NoError(t, err)
	_, err = uc.RecordMovement(context.Background(), orgID, userID, itemID, dto.RecordMovementRequest{
		Type: entity.MovementSalida, Quantity: d(1), Reason: "consumo",
	})
	require.NoError(t, err)

	movs, err := uc.ListMovements(context.Background(), orgID, itemID, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, movs, 3)
	assert.Equal(t, "consumo", movs[0].Reason)
	assert.Equal(t, "compra", movs[1].Reason)
	assert.Equal(t, "Stock inicial", movs[2].Reason)
}

func TestListMovements_ItemDeOtraOrganizacionFalla(t *testing.T) {
	uc, _, _ := newLedger()
	itemID := seedItem(t, uc, 10)

	_, err := uc.ListMovements(context.Background(), "otra-org", itemID, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListItems_FiltraPorEstadoCalculado(t *testing.T) {
	uc, _, _ := newLedger()

	mk := func(name string, initial, min int64) {
		_, err := uc.CreateItem(context.Background(), orgID, userID, dto.CreateItemRequest{
			Name: name, InitialStock: d(initial), MinStock: d(min),
		})
		require.NoError(t, err)
	}
	mk("critico", 0, 10)
	mk("bajo", 5, 10)
	mk("normal", 50, 10)

	for filter, want := range map[string]int{"critico": 1, "bajo": 1, "normal": 1, "all": 3, "": 3} {
		items, err := uc.ListItems(context.Background(), orgID, filter, dto.PageRequest{})
		require.NoError(t, err)
		assert.Len(t, items, want, "filtro %q", filter)
	}

	_, err := uc.ListItems(context.Background(), orgID, "agotado", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El filtro de estado debe resolverse antes de la paginación: una coincidencia
// que ordena después de la primera página no puede perderse.
func TestListItems_FiltroSeAplicaAntesDeLaPaginacion(t *testing.T) {
	uc, _, _ := newLedger()

	mk := func(name string, initial, min int64) {
		_, err := uc.CreateItem(context.Background(), orgID, userID, dto.CreateItemRequest{
			Name: name, InitialStock: d(initial), MinStock: d(min),
		})
		require.NoError(t, err)
	}
	// Más ítems normales que el límite por defecto; el único crítico ordena al final.
	for i := 0; i < 25; i++ {
		mk(fmt.Sprintf("insumo-%02d", i), 50, 10)
	}
	mk("zz vendas", 0, 10)

	items, err := uc.ListItems(context.Background(), orgID, "critico", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, items, 1, "el crítico fuera de la primera página no debe perderse")
	assert.Equal(t, "zz vendas", items[0].Name)
	assert.Equal(t, domaininv.StatusCritico, items[0].Status)

	// Sin filtro la primera página sí se recorta al límite pedido.
	items, err = uc.ListItems(context.Background(), orgID, "", dto.PageRequest{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, items, 10)
}
