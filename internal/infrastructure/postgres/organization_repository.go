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

var _ repository.OrganizationRepository = (*OrganizationRepo)(nil)

// OrganizationRepo implementación del puerto OrganizationRepository sobre PostgreSQL (usable con pool o tx).
type OrganizationRepo struct {
	q Querier
}

// NewOrganizationRepository construye el adaptador de persistencia para organizaciones. Pasar pool o tx (Querier).
func NewOrganizationRepository(q Querier) *OrganizationRepo {
	return &OrganizationRepo{q: q}
}

// Create persiste una nueva organización. Los consecutivos arrancan en cero.
func (r *OrganizationRepo) Create(ctx context.Context, org *entity.Organization) error {
	query := `
		INSERT INTO organizations (id, name, nit, address, phone, email, status, patient_seq, sale_seq, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		org.ID, org.Name, org.NIT, org.Address, org.Phone, org.Email,
		org.Status, org.PatientSeq, org.SaleSeq, org.CreatedAt, org.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert organization: %w", err)
	}
	return nil
}

// GetByID obtiene una organización por ID.
func (r *OrganizationRepo) GetByID(ctx context.Context, id string) (*entity.Organization, error) {
	query := `
		SELECT id, name, nit, address, phone, email, status, patient_seq, sale_seq, created_at, updated_at
		FROM organizations WHERE id = $1`
	var org entity.Organization
	err := r.q.QueryRow(ctx, query, id).Scan(
		&org.ID, &org.Name, &org.NIT, &org.Address, &org.Phone, &org.Email,
		&org.Status, &org.PatientSeq, &org.SaleSeq, &org.CreatedAt, &org.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}
	return &org, nil
}

// List lista organizaciones con paginación.
func (r *OrganizationRepo) List(ctx context.Context, limit, offset int) ([]*entity.Organization, error) {
	query := `
		SELECT id, name, nit, address, phone, email, status, patient_seq, sale_seq, created_at, updated_at
		FROM organizations ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	defer rows.Close()

	var orgs []*entity.Organization
	for rows.Next() {
		var org entity.Organization
		if err := rows.Scan(
			&org.ID, &org.Name, &org.NIT, &org.Address, &org.Phone, &org.Email,
			&org.Status, &org.PatientSeq, &org.SaleSeq, &org.CreatedAt, &org.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan organization: %w", err)
		}
		orgs = append(orgs, &org)
	}
	return orgs, rows.Err()
}

// NextPatientSeq incrementa y devuelve el consecutivo de pacientes de la organización.
// El UPDATE ... RETURNING bloquea la fila del contador, serializando asignaciones concurrentes.
func (r *OrganizationRepo) NextPatientSeq(ctx context.Context, orgID string) (int64, error) {
	query := `
		UPDATE organizations SET patient_seq = patient_seq + 1, updated_at = NOW()
		WHERE id = $1 RETURNING patient_seq`
	var seq int64
	err := r.q.QueryRow(ctx, query, orgID).Scan(&seq)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("next patient seq: %w", err)
	}
	return seq, nil
}

// NextSaleSeq incrementa y devuelve el consecutivo de ventas de la organización.
func (r *OrganizationRepo) NextSaleSeq(ctx context.Context, orgID string) (int64, error) {
	query := `
		UPDATE organizations SET sale_seq = sale_seq + 1, updated_at = NOW()
		WHERE id = $1 RETURNING sale_seq`
	var seq int64
	err := r.q.QueryRow(ctx, query, orgID).Scan(&seq)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("next sale seq: %w", err)
	}
	return seq, nil
}
