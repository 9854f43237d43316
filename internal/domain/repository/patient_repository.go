package repository

import (
	"context"

	"github.com/medagenda/clinica-api/internal/domain/entity"
	"github.com/medagenda/clinica-api/internal/domain/patient"
)

// PatientRepository define el puerto de persistencia para Patient (DIP).
// Todas las consultas excluyen pacientes con baja lógica salvo GetByID.
type PatientRepository interface {
	Create(ctx context.Context, p *entity.Patient) error
	GetByID(ctx context.Context, orgID, id string) (*entity.Patient, error)
	Update(ctx context.Context, p *entity.Patient) error
	// SoftDelete marca DeletedAt y desactiva el paciente. Nunca hay borrado físico.
	SoftDelete(ctx context.Context, orgID, id string) error
	// List busca por nombre (clave de búsqueda sin tildes), código o teléfono.
	List(ctx context.Context, orgID, search string, limit, offset int) ([]*entity.Patient, error)
	// FindByContactNumber busca pacientes activos cuyo teléfono o whatsapp
	// normalizado coincida (chequeo previo de duplicados al registrar).
	FindByContactNumber(ctx context.Context, orgID, normalized string) ([]*entity.Patient, error)
	// DuplicateCandidates devuelve los pacientes activos con teléfono o whatsapp
	// no vacío, con su conteo de citas, para el detector de duplicados.
	DuplicateCandidates(ctx context.Context, orgID string) ([]patient.Candidate, error)
}
