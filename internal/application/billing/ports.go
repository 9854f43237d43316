package billing

import (
	"context"

	"github.com/medagenda/clinica-api/internal/domain/entity"
	"github.com/medagenda/clinica-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con repositorios
// atados a esa tx. La asignación del consecutivo de venta y el insert de la venta
// con sus líneas ocurren como una sola unidad atómica.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		orgRepo repository.OrganizationRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// ReceiptPDFGenerator genera la representación PDF de un recibo de venta.
// Lo implementa el adaptador Maroto en infrastructure/pdf.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(
		ctx context.Context,
		sale *entity.Sale,
		items []*entity.SaleItem,
		org *entity.Organization,
		patient *entity.Patient, // nil si la venta no tiene paciente asociado
	) ([]byte, error)
}
