package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medagenda/clinica-api/internal/application/billing"
	"github.com/medagenda/clinica-api/internal/application/dto"
	"github.com/medagenda/clinica-api/internal/domain"
	"github.com/medagenda/clinica-api/internal/domain/entity"
	domainpatient "github.com/medagenda/clinica-api/internal/domain/patient"
	"github.com/medagenda/clinica-api/internal/domain/repository"
)

const (
	orgID  = "org-1"
	userID = "user-1"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrgRepo struct {
	saleSeq int64
}

func (r *fakeOrgRepo) Create(context.Context, *entity.Organization) error { return nil }
func (r *fakeOrgRepo) GetByID(context.Context, string) (*entity.Organization, error) {
	return nil, nil
}
func (r *fakeOrgRepo) List(context.Context, int, int) ([]*entity.Organization, error) {
	return nil, nil
}
func (r *fakeOrgRepo) NextPatientSeq(context.Context, string) (int64, error) { return 0, nil }
func (r *fakeOrgRepo) NextSaleSeq(context.Context, string) (int64, error) {
	r.saleSeq++
	return r.saleSeq, nil
}

type storedSale struct {
	sale  *entity.Sale
	items []*entity.SaleItem
}

type fakeSaleRepo struct {
	sales map[string]storedSale
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[string]storedSale)}
}

func (r *fakeSaleRepo) Create(_ context.Context, sale *entity.Sale, items []*entity.SaleItem) error {
	cp := *sale
	r.sales[sale.ID] = storedSale{sale: &cp, items: items}
	return nil
}

func (r *fakeSaleRepo) GetByID(_ context.Context, org, id string) (*entity.Sale, []*entity.SaleItem, error) {
	s, ok := r.sales[id]
	if !ok || s.sale.OrganizationID != org {
		return nil, nil, nil
	}
	return s.sale, s.items, nil
}

func (r *fakeSaleRepo) ListByRange(_ context.Context, org string, from, to time.Time, _, _ int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		if s.sale.OrganizationID == org && !s.sale.Date.Before(from) && !s.sale.Date.After(to) {
			out = append(out, s.sale)
		}
	}
	return out, nil
}

type fakePatientRepo struct {
	patients map[string]*entity.Patient
}

func (r *fakePatientRepo) Create(context.Context, *entity.Patient) error { return nil }
func (r *fakePatientRepo) GetByID(_ context.Context, org, id string) (*entity.Patient, error) {
	p, ok := r.patients[id]
	if !ok || p.OrganizationID != org {
		return nil, nil
	}
	return p, nil
}
func (r *fakePatientRepo) Update(context.Context, *entity.Patient) error    { return nil }
func (r *fakePatientRepo) SoftDelete(context.Context, string, string) error { return nil }
func (r *fakePatientRepo) List(context.Context, string, string, int, int) ([]*entity.Patient, error) {
	return nil, nil
}
func (r *fakePatientRepo) FindByContactNumber(context.Context, string, string) ([]*entity.Patient, error) {
	return nil, nil
}
func (r *fakePatientRepo) DuplicateCandidates(context.Context, string) ([]domainpatient.Candidate, error) {
	return nil, nil
}

// fakeTxRunner ejecuta el callback directamente, sin transacción real.
type fakeTxRunner struct {
	orgRepo  *fakeOrgRepo
	saleRepo *fakeSaleRepo
}

func (r *fakeTxRunner) RunSale(ctx context.Context, fn func(
	orgRepo repository.OrganizationRepository,
	saleRepo repository.SaleRepository,
) error) error {
	return fn(r.orgRepo, r.saleRepo)
}

func newUseCase() (*billing.SaleUseCase, *fakeSaleRepo) {
	saleRepo := newFakeSaleRepo()
	patientRepo := &fakePatientRepo{patients: map[string]*entity.Patient{
		"pac-1": {ID: "pac-1", OrganizationID: orgID, Code: "MDA-0001", FullName: "Ana Díaz"},
	}}
	runner := &fakeTxRunner{orgRepo: &fakeOrgRepo{}, saleRepo: saleRepo}
	return billing.NewSaleUseCase(runner, saleRepo, patientRepo), saleRepo
}

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_CalculaTotalesYAsignaConsecutivo(t *testing.T) {
	uc, _ := newUseCase()

	out, err := uc.Create(context.Background(), orgID, userID, dto.CreateSaleRequest{
		PatientID:     "pac-1",
		PaymentMethod: entity.PaymentEfectivo,
		Items: []dto.SaleItemRequest{
			{Description: "Consulta odontológica", Quantity: money("1"), UnitPrice: money("80000")},
			{Description: "Profilaxis", Quantity: money("2"), UnitPrice: money("45000")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "VTA-00001", out.Number,
		"la primera venta recibe el consecutivo VTA-00001")
	assert.True(t, out.Total.Equal(money("170000")),
		"total = 1×80000 + 2×45000, obtenido %s", out.Total)
	require.Len(t, out.Items, 2)
	assert.True(t, out.Items[1].Subtotal.Equal(money("90000")))

	// Segunda venta: consecutivo siguiente
	out2, err := uc.Create(context.Background(), orgID, userID, dto.CreateSaleRequest{
		PaymentMethod: entity.PaymentTarjeta,
		Items: []dto.SaleItemRequest{
			{Description: "Blanqueamiento", Quantity: money("1"), UnitPrice: money("250000")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "VTA-00002", out2.Number)
}

func TestCreate_VentaSinPacienteEsValida(t *testing.T) {
	uc, _ := newUseCase()

	out, err := uc.Create(context.Background(), orgID, userID, dto.CreateSaleRequest{
		PaymentMethod: entity.PaymentTransferencia,
		Items: []dto.SaleItemRequest{
			{Description: "Venta de cepillo", Quantity: money("3"), UnitPrice: money("12000")},
		},
	})
	require.NoError(t, err)
	assert.Empty(t, out.PatientID)
	assert.True(t, out.Total.Equal(money("36000")))
}

func TestCreate_MetodoDePagoDesconocido_RetornaInvalido(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.Create(context.Background(), orgID, userID, dto.CreateSaleRequest{
		PaymentMethod: "cheque",
		Items: []dto.SaleItemRequest{
			{Description: "Consulta", Quantity: money("1"), UnitPrice: money("50000")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_SinLineas_RetornaInvalido(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.Create(context.Background(), orgID, userID, dto.CreateSaleRequest{
		PaymentMethod: entity.PaymentEfectivo,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_LineaConCantidadCero_RetornaInvalido(t *testing.T) {
	uc, repo := newUseCase()

	_, err := uc.Create(context.Background(), orgID, userID, dto.CreateSaleRequest{
		PaymentMethod: entity.PaymentEfectivo,
		Items: []dto.SaleItemRequest{
			{Description: "Consulta", Quantity: money("0"), UnitPrice: money("50000")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.sales, "una venta inválida no debe persistirse")
}

func TestCreate_PacienteInexistente_RetornaNotFound(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.Create(context.Background(), orgID, userID, dto.CreateSaleRequest{
		PatientID:     "pac-fantasma",
		PaymentMethod: entity.PaymentEfectivo,
		Items: []dto.SaleItemRequest{
			{Description: "Consulta", Quantity: money("1"), UnitPrice: money("50000")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests lectura
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_VentaDeOtraOrganizacion_RetornaNotFound(t *testing.T) {
	uc, _ := newUseCase()

	out, err := uc.Create(context.Background(), orgID, userID, dto.CreateSaleRequest{
		PaymentMethod: entity.PaymentEfectivo,
		Items: []dto.SaleItemRequest{
			{Description: "Consulta", Quantity: money("1"), UnitPrice: money("50000")},
		},
	})
	require.NoError(t, err)

	_, err = uc.GetByID(context.Background(), "org-ajena", out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"las ventas no se exponen fuera de su organización")
}

func TestListByRange_RangoInvalido_RetornaError(t *testing.T) {
	uc, _ := newUseCase()

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	_, err := uc.ListByRange(context.Background(), orgID, from, from, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
