package patient

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/medagenda/clinica-api/internal/application/dto"
	"github.com/medagenda/clinica-api/internal/domain"
	"github.com/medagenda/clinica-api/internal/domain/entity"
	domainpatient "github.com/medagenda/clinica-api/internal/domain/patient"
	"github.com/medagenda/clinica-api/internal/domain/repository"
)

// UseCase casos de uso de pacientes: registro con chequeo previo de duplicados,
// actualización, búsqueda, baja lógica y reporte de posibles duplicados.
type UseCase struct {
	txRunner    TxRunner
	patientRepo repository.PatientRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, patientRepo repository.PatientRepository) *UseCase {
	return &UseCase{txRunner: txRunner, patientRepo: patientRepo}
}

// Create registra un paciente. Antes de insertar verifica que ningún paciente
// activo comparta el teléfono o whatsapp normalizado (salvo Force). El código
// MDA-NNNN se asigna dentro de la transacción desde el contador de la organización.
func (uc *UseCase) Create(ctx context.Context, orgID string, in dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" {
		return nil, domain.ErrInvalidInput
	}

	if !in.Force {
		for _, number := range []string{in.Phone, in.Whatsapp} {
			normalized := domainpatient.NormalizeNumber(number)
			if normalized == "" {
				continue
			}
			existing, err := uc.patientRepo.FindByContactNumber(ctx, orgID, normalized)
			if err != nil {
				return nil, err
			}
			if len(existing) > 0 {
				return nil, domain.ErrDuplicate
			}
		}
	}

	now := time.Now()
	p := &entity.Patient{
		ID:             uuid.New().String(),
		OrganizationID: orgID,
		FullName:       fullName,
		Phone:          strings.TrimSpace(in.Phone),
		Whatsapp:       strings.TrimSpace(in.Whatsapp),
		Email:          strings.TrimSpace(in.Email),
		Notes:          in.Notes,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := uc.txRunner.RunPatient(ctx, func(
		orgRepo repository.OrganizationRepository,
		patientRepo repository.PatientRepository,
	) error {
		seq, err := orgRepo.NextPatientSeq(ctx, orgID)
		if err != nil {
			return err
		}
		p.Code = entity.PatientCode(seq)
		return patientRepo.Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return toPatientResponse(p), nil
}

// GetByID obtiene un paciente de la organización.
func (uc *UseCase) GetByID(ctx context.Context, orgID, id string) (*dto.PatientResponse, error) {
	p, err := uc.patientRepo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toPatientResponse(p), nil
}

// Update modifica los campos enviados (los nil se conservan).
func (uc *UseCase) Update(ctx context.Context, orgID, id string, in dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	p, err := uc.patientRepo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.FullName != nil {
		name := strings.TrimSpace(*in.FullName)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		p.FullName = name
	}
	if in.Phone != nil {
		p.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Whatsapp != nil {
		p.Whatsapp = strings.TrimSpace(*in.Whatsapp)
	}
	if in.Email != nil {
		p.Email = strings.TrimSpace(*in.Email)
	}
	if in.Notes != nil {
		p.Notes = *in.Notes
	}
	if in.Active != nil {
		p.Active = *in.Active
	}
	p.UpdatedAt = time.Now()
	if err := uc.patientRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toPatientResponse(p), nil
}

// List busca pacientes vigentes. El término de búsqueda se normaliza sin tildes
// para que coincida con la clave de búsqueda persistida.
func (uc *UseCase) List(ctx context.Context, orgID, search string, page dto.PageRequest) ([]dto.PatientResponse, error) {
	page.DefaultPage()
	patients, err := uc.patientRepo.List(ctx, orgID, domainpatient.SearchKey(search), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PatientResponse, 0, len(patients))
	for _, p := range patients {
		out = append(out, *toPatientResponse(p))
	}
	return out, nil
}

// SoftDelete da de baja lógica al paciente. Nunca hay borrado físico.
func (uc *UseCase) SoftDelete(ctx context.Context, orgID, id string) error {
	p, err := uc.patientRepo.GetByID(ctx, orgID, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.patientRepo.SoftDelete(ctx, orgID, id)
}

// Duplicates genera el reporte de posibles duplicados por número de contacto.
// Solo lectura: la fusión o baja es una acción manual aparte.
func (uc *UseCase) Duplicates(ctx context.Context, orgID string) ([]dto.DuplicatePatientDTO, error) {
	candidates, err := uc.patientRepo.DuplicateCandidates(ctx, orgID)
	if err != nil {
		return nil, err
	}
	duplicates := domainpatient.DetectDuplicates(candidates)
	out := make([]dto.DuplicatePatientDTO, 0, len(duplicates))
	for _, d := range duplicates {
		out = append(out, dto.DuplicatePatientDTO{
			ID:               d.ID,
			PatientCode:      d.Code,
			FullName:         d.FullName,
			Phone:            d.Phone,
			Whatsapp:         d.Whatsapp,
			AppointmentCount: d.AppointmentCount,
			DuplicateOf:      d.DuplicateOf,
		})
	}
	return out, nil
}

func toPatientResponse(p *entity.Patient) *dto.PatientResponse {
	return &dto.PatientResponse{
		ID:             p.ID,
		OrganizationID: p.OrganizationID,
		Code:           p.Code,
		FullName:       p.FullName,
		Phone:          p.Phone,
		Whatsapp:       p.Whatsapp,
		Email:          p.Email,
		Notes:          p.Notes,
		Active:         p.Active,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
