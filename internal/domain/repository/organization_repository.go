package repository

import (
	"context"

	"github.com/medagenda/clinica-api/internal/domain/entity"
)

// OrganizationRepository define el puerto de persistencia para Organization (DIP).
type OrganizationRepository interface {
	Create(ctx context.Context, org *entity.Organization) error
	GetByID(ctx context.Context, id string) (*entity.Organization, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Organization, error)
	// NextPatientSeq incrementa y devuelve el consecutivo de pacientes de la
	// organización. Debe ejecutarse dentro de la transacción que crea el paciente.
	NextPatientSeq(ctx context.Context, orgID string) (int64, error)
	// NextSaleSeq incrementa y devuelve el consecutivo de ventas.
	NextSaleSeq(ctx context.Context, orgID string) (int64, error)
}
