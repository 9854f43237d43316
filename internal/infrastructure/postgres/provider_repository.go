package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/medagenda/clinica-api/internal/domain"
	"github.com/medagenda/clinica-api/internal/domain/entity"
	"github.com/medagenda/clinica-api/internal/domain/repository"
)

var _ repository.ProviderRepository = (*ProviderRepo)(nil)

// ProviderRepo implementación del puerto ProviderRepository sobre PostgreSQL.
type ProviderRepo struct {
	q Querier
}

// NewProviderRepository construye el adaptador de persistencia para profesionales. Pasar pool o tx (Querier).
func NewProviderRepository(q Querier) *ProviderRepo {
	return &ProviderRepo{q: q}
}

// Create persiste un nuevo profesional.
func (r *ProviderRepo) Create(ctx context.Context, p *entity.Provider) error {
	query := `
		INSERT INTO providers (id, organization_id, full_name, specialty, license_number, phone, email, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.OrganizationID, p.FullName, p.Specialty, p.LicenseNumber,
		p.Phone, p.Email, p.Active, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert provider: %w", err)
	}
	return nil
}

// GetByID obtiene un profesional por ID dentro de su organización.
func (r *ProviderRepo) GetByID(ctx context.Context, orgID, id string) (*entity.Provider, error) {
	query := `
		SELECT id, organization_id, full_name, specialty, license_number, phone, email, active, created_at, updated_at
		FROM providers WHERE organization_id = $1 AND id = $2`
	var p entity.Provider
	err := r.q.QueryRow(ctx, query, orgID, id).Scan(
		&p.ID, &p.OrganizationID, &p.FullName, &p.Specialty, &p.LicenseNumber,
		&p.Phone, &p.Email, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get provider: %w", err)
	}
	return &p, nil
}

// Update modifica los datos del profesional.
func (r *ProviderRepo) Update(ctx context.Context, p *entity.Provider) error {
	query := `
		UPDATE providers
		SET full_name = $1, specialty = $2, license_number = $3, phone = $4, email = $5, active = $6, updated_at = NOW()
		WHERE organization_id = $7 AND id = $8`
	tag, err := r.q.Exec(ctx, query,
		p.FullName, p.Specialty, p.LicenseNumber, p.Phone, p.Email, p.Active,
		p.OrganizationID, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update provider: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByOrganization lista los profesionales de la organización, opcionalmente solo activos.
func (r *ProviderRepo) ListByOrganization(ctx context.Context, orgID string, onlyActive bool) ([]*entity.Provider, error) {
	query := `
		SELECT id, organization_id, full_name, specialty, license_number, phone, email, active, created_at, updated_at
		FROM providers
		WHERE organization_id = $1 AND ($2 = FALSE OR active = TRUE)
		ORDER BY full_name`
	rows, err := r.q.Query(ctx, query, orgID, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}
	defer rows.Close()

	var providers []*entity.Provider
	for rows.Next() {
		var p entity.Provider
		if err := rows.Scan(
			&p.ID, &p.OrganizationID, &p.FullName, &p.Specialty, &p.LicenseNumber,
			&p.Phone, &p.Email, &p.Active, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan provider: %w", err)
		}
		providers = append(providers, &p)
	}
	return providers, rows.Err()
}
