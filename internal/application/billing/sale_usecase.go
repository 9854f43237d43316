package billing

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/medagenda/clinica-api/internal/application/dto"
	"github.com/medagenda/clinica-api/internal/domain"
	"github.com/medagenda/clinica-api/internal/domain/entity"
	"github.com/medagenda/clinica-api/internal/domain/repository"
)

// SaleUseCase crea y consulta ventas (recibos) de la clínica.
type SaleUseCase struct {
	txRunner    TxRunner
	saleRepo    repository.SaleRepository
	patientRepo repository.PatientRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(txRunner TxRunner, saleRepo repository.SaleRepository, patientRepo repository.PatientRepository) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner, saleRepo: saleRepo, patientRepo: patientRepo}
}

func validPaymentMethod(m string) bool {
	switch m {
	case entity.PaymentEfectivo, entity.PaymentTarjeta, entity.PaymentTransferencia:
		return true
	}
	return false
}

// Create registra una venta con sus líneas. El total es la suma de los
// subtotales (cantidad × precio unitario); el consecutivo VTA-NNNNN se asigna
// dentro de la transacción que inserta la venta.
func (uc *SaleUseCase) Create(ctx context.Context, orgID, userID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 || !validPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	if in.PatientID != "" {
		p, err := uc.patientRepo.GetByID(ctx, orgID, in.PatientID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, domain.ErrNotFound
		}
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}
	now := time.Now()
	sale := &entity.Sale{
		ID:             uuid.New().String(),
		OrganizationID: orgID,
		PatientID:      in.PatientID,
		UserID:         userID,
		Date:           date,
		PaymentMethod:  in.PaymentMethod,
		Notes:          in.Notes,
		CreatedAt:      now,
	}

	total := decimal.Zero
	items := make([]*entity.SaleItem, 0, len(in.Items))
	for _, line := range in.Items {
		description := strings.TrimSpace(line.Description)
		if description == "" || !line.Quantity.IsPositive() || line.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		subtotal := line.Quantity.Mul(line.UnitPrice)
		total = total.Add(subtotal)
		items = append(items, &entity.SaleItem{
			ID:          uuid.New().String(),
			SaleID:      sale.ID,
			Description: description,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Subtotal:    subtotal,
		})
	}
	sale.Total = total

	err := uc.txRunner.RunSale(ctx, func(
		orgRepo repository.OrganizationRepository,
		saleRepo repository.SaleRepository,
	) error {
		seq, err := orgRepo.NextSaleSeq(ctx, orgID)
		if err != nil {
			return err
		}
		sale.Number = entity.SaleNumber(seq)
		return saleRepo.Create(ctx, sale, items)
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, items), nil
}

// GetByID devuelve una venta con sus líneas.
func (uc *SaleUseCase) GetByID(ctx context.Context, orgID, id string) (*dto.SaleResponse, error) {
	sale, items, err := uc.saleRepo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(sale, items), nil
}

// ListByRange lista ventas del período (sin líneas).
func (uc *SaleUseCase) ListByRange(ctx context.Context, orgID string, from, to time.Time, page dto.PageRequest) ([]dto.SaleResponse, error) {
	if !to.After(from) {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()
	sales, err := uc.saleRepo.ListByRange(ctx, orgID, from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, *toSaleResponse(s, nil))
	}
	return out, nil
}

func toSaleResponse(s *entity.Sale, items []*entity.SaleItem) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:            s.ID,
		Number:        s.Number,
		PatientID:     s.PatientID,
		Date:          s.Date,
		PaymentMethod: s.PaymentMethod,
		Total:         s.Total,
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:          item.ID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
		})
	}
	return resp
}
