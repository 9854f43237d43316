package billing

import (
	"context"

	"github.com/medagenda/clinica-api/internal/domain"
	"github.com/medagenda/clinica-api/internal/domain/entity"
	"github.com/medagenda/clinica-api/internal/domain/repository"
)

// PDFUseCase genera el PDF del recibo de una venta.
type PDFUseCase struct {
	saleRepo    repository.SaleRepository
	orgRepo     repository.OrganizationRepository
	patientRepo repository.PatientRepository
	generator   ReceiptPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	saleRepo repository.SaleRepository,
	orgRepo repository.OrganizationRepository,
	patientRepo repository.PatientRepository,
	generator ReceiptPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{saleRepo: saleRepo, orgRepo: orgRepo, patientRepo: patientRepo, generator: generator}
}

// GenerateReceipt carga la venta con sus líneas y produce el PDF del recibo.
func (uc *PDFUseCase) GenerateReceipt(ctx context.Context, orgID, saleID string) ([]byte, error) {
	sale, items, err := uc.saleRepo.GetByID(ctx, orgID, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	org, err := uc.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}
	var patient *entity.Patient
	if sale.PatientID != "" {
		patient, err = uc.patientRepo.GetByID(ctx, orgID, sale.PatientID)
		if err != nil {
			return nil, err
		}
	}
	return uc.generator.GenerateReceiptPDF(ctx, sale, items, org, patient)
}
