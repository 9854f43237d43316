package repository

import (
	"context"
	"time"

	"github.com/medagenda/clinica-api/internal/domain/entity"
)

// AppointmentRepository define el puerto de persistencia para Appointment (DIP).
type AppointmentRepository interface {
	Create(ctx context.Context, a *entity.Appointment) error
	GetByID(ctx context.Context, orgID, id string) (*entity.Appointment, error)
	UpdateStatus(ctx context.Context, orgID, id, status, notes string) error
	// ListByRange lista las citas que inician en [from, to), opcionalmente
	// filtradas por profesional. Orden ascendente por hora de inicio.
	ListByRange(ctx context.Context, orgID string, from, to time.Time, providerID string) ([]*entity.Appointment, error)
	ListByPatient(ctx context.Context, orgID, patientID string, limit, offset int) ([]*entity.Appointment, error)
}
