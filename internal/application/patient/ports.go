package patient

import (
	"context"

	"github.com/medagenda/clinica-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con repositorios
// atados a esa tx. El consecutivo MDA-NNNN se asigna desde el contador de la
// organización en la misma transacción que inserta el paciente, para que sea
// monotónico sin huecos por escritores concurrentes.
type TxRunner interface {
	RunPatient(ctx context.Context, fn func(
		orgRepo repository.OrganizationRepository,
		patientRepo repository.PatientRepository,
	) error) error
}
