package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/medagenda/clinica-api/internal/application/dto"
	"github.com/medagenda/clinica-api/internal/domain"
	"github.com/medagenda/clinica-api/internal/domain/entity"
	"github.com/medagenda/clinica-api/internal/domain/repository"
)

// UseCase casos de uso de agenda: creación de citas y cambios de estado.
type UseCase struct {
	apptRepo     repository.AppointmentRepository
	patientRepo  repository.PatientRepository
	providerRepo repository.ProviderRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	apptRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	providerRepo repository.ProviderRepository,
) *UseCase {
	return &UseCase{apptRepo: apptRepo, patientRepo: patientRepo, providerRepo: providerRepo}
}

// Create agenda una cita. Paciente y profesional deben existir y pertenecer a
// la organización del llamador.
func (uc *UseCase) Create(ctx context.Context, orgID, userID string, in dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if in.PatientID == "" || in.ProviderID == "" || in.StartsAt.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if in.DurationMin <= 0 {
		in.DurationMin = 30
	}

	p, err := uc.patientRepo.GetByID(ctx, orgID, in.PatientID)
	if err != nil {
		return nil, err
	}
	if p == nil || p.DeletedAt != nil {
		return nil, domain.ErrNotFound
	}
	prov, err := uc.providerRepo.GetByID(ctx, orgID, in.ProviderID)
	if err != nil {
		return nil, err
	}
	if prov == nil || !prov.Active {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	a := &entity.Appointment{
		ID:             uuid.New().String(),
		OrganizationID: orgID,
		PatientID:      in.PatientID,
		ProviderID:     in.ProviderID,
		StartsAt:       in.StartsAt,
		DurationMin:    in.DurationMin,
		Reason:         in.Reason,
		Status:         entity.AppointmentProgramada,
		Notes:          in.Notes,
		CreatedBy:      userID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.apptRepo.Create(ctx, a); err != nil {
		return nil, err
	}
	return toAppointmentResponse(a), nil
}

// UpdateStatus cambia el estado de una cita validando la transición.
// completada y cancelada son estados terminales.
func (uc *UseCase) UpdateStatus(ctx context.Context, orgID, id string, in dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	switch in.Status {
	case entity.AppointmentConfirmada, entity.AppointmentCompletada, entity.AppointmentCancelada:
	default:
		return nil, domain.ErrInvalidInput
	}
	a, err := uc.apptRepo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	if !entity.CanTransition(a.Status, in.Status) {
		return nil, domain.ErrConflict
	}
	if err := uc.apptRepo.UpdateStatus(ctx, orgID, id, in.Status, in.Notes); err != nil {
		return nil, err
	}
	a.Status = in.Status
	if in.Notes != "" {
		a.Notes = in.Notes
	}
	a.UpdatedAt = time.Now()
	return toAppointmentResponse(a), nil
}

// ListByRange lista citas que inician en [from, to), opcionalmente por profesional.
func (uc *UseCase) ListByRange(ctx context.Context, orgID string, from, to time.Time, providerID string) ([]dto.AppointmentResponse, error) {
	if !to.After(from) {
		return nil, domain.ErrInvalidInput
	}
	appointments, err := uc.apptRepo.ListByRange(ctx, orgID, from, to, providerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, *toAppointmentResponse(a))
	}
	return out, nil
}

// ListByPatient lista el historial de citas de un paciente.
func (uc *UseCase) ListByPatient(ctx context.Context, orgID, patientID string, page dto.PageRequest) ([]dto.AppointmentResponse, error) {
	page.DefaultPage()
	appointments, err := uc.apptRepo.ListByPatient(ctx, orgID, patientID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, *toAppointmentResponse(a))
	}
	return out, nil
}

func toAppointmentResponse(a *entity.Appointment) *dto.AppointmentResponse {
	return &dto.AppointmentResponse{
		ID:          a.ID,
		PatientID:   a.PatientID,
		ProviderID:  a.ProviderID,
		StartsAt:    a.StartsAt,
		DurationMin: a.DurationMin,
		Reason:      a.Reason,
		Status:      a.Status,
		Notes:       a.Notes,
		CreatedAt:   a.CreatedAt,
	}
}
