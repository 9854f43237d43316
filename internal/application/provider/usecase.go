package provider

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/medagenda/clinica-api/internal/application/dto"
	"github.com/medagenda/clinica-api/internal/domain"
	"github.com/medagenda/clinica-api/internal/domain/entity"
	"github.com/medagenda/clinica-api/internal/domain/repository"
)

// UseCase casos de uso CRUD para profesionales de la clínica.
type UseCase struct {
	repo repository.ProviderRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ProviderRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create registra un profesional.
func (uc *UseCase) Create(ctx context.Context, orgID string, in dto.CreateProviderRequest) (*dto.ProviderResponse, error) {
	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Provider{
		ID:             uuid.New().String(),
		OrganizationID: orgID,
		FullName:       fullName,
		Specialty:      strings.TrimSpace(in.Specialty),
		LicenseNumber:  strings.TrimSpace(in.LicenseNumber),
		Phone:          strings.TrimSpace(in.Phone),
		Email:          strings.TrimSpace(in.Email),
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProviderResponse(p), nil
}

// GetByID obtiene un profesional de la organización.
func (uc *UseCase) GetByID(ctx context.Context, orgID, id string) (*dto.ProviderResponse, error) {
	p, err := uc.repo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProviderResponse(p), nil
}

// Update modifica los campos enviados (los nil se conservan).
func (uc *UseCase) Update(ctx context.Context, orgID, id string, in dto.UpdateProviderRequest) (*dto.ProviderResponse, error) {
	p, err := uc.repo.GetByID(ctx, orgID, id)
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
	if in.Specialty != nil {
		p.Specialty = strings.TrimSpace(*in.Specialty)
	}
	if in.LicenseNumber != nil {
		p.LicenseNumber = strings.TrimSpace(*in.LicenseNumber)
	}
	if in.Phone != nil {
		p.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Email != nil {
		p.Email = strings.TrimSpace(*in.Email)
	}
	if in.Active != nil {
		p.Active = *in.Active
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toProviderResponse(p), nil
}

// List lista los profesionales de la organización.
func (uc *UseCase) List(ctx context.Context, orgID string, onlyActive bool) ([]dto.ProviderResponse, error) {
	providers, err := uc.repo.ListByOrganization(ctx, orgID, onlyActive)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProviderResponse, 0, len(providers))
	for _, p := range providers {
		out = append(out, *toProviderResponse(p))
	}
	return out, nil
}

func toProviderResponse(p *entity.Provider) *dto.ProviderResponse {
	return &dto.ProviderResponse{
		ID:             p.ID,
		OrganizationID: p.OrganizationID,
		FullName:       p.FullName,
		Specialty:      p.Specialty,
		LicenseNumber:  p.LicenseNumber,
		Phone:          p.Phone,
		Email:          p.Email,
		Active:         p.Active,
		CreatedAt:      p.CreatedAt,
	}
}
