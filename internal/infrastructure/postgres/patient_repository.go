package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/medagenda/clinica-api/internal/domain"
	"github.com/medagenda/clinica-api/internal/domain/entity"
	"github.com/medagenda/clinica-api/internal/domain/patient"
	"github.com/medagenda/clinica-api/internal/domain/repository"
)

var _ repository.PatientRepository = (*PatientRepo)(nil)

// PatientRepo implementación del puerto PatientRepository sobre PostgreSQL.
// Además de los campos del dominio persiste search_key (nombre sin tildes en
// minúsculas) y los números de contacto normalizados, para búsquedas y para el
// chequeo de duplicados sin recalcular en cada consulta.
type PatientRepo struct {
	q Querier
}

// NewPatientRepository construye el adaptador de persistencia para pacientes. Pasar pool o tx (Querier).
func NewPatientRepository(q Querier) *PatientRepo {
	return &PatientRepo{q: q}
}

// Create persiste un nuevo paciente.
func (r *PatientRepo) Create(ctx context.Context, p *entity.Patient) error {
	query := `
		INSERT INTO patients (id, organization_id, code, full_name, search_key, phone, phone_normalized, whatsapp, whatsapp_normalized, email, notes, active, created_at, updated_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.OrganizationID, p.Code, p.FullName, patient.SearchKey(p.FullName),
		p.Phone, patient.NormalizeNumber(p.Phone), p.Whatsapp, patient.NormalizeNumber(p.Whatsapp),
		p.Email, p.Notes, p.Active, p.CreatedAt, p.UpdatedAt, p.DeletedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert patient: %w", err)
	}
	return nil
}

// GetByID obtiene un paciente por ID dentro de su organización (incluye bajas lógicas).
func (r *PatientRepo) GetByID(ctx context.Context, orgID, id string) (*entity.Patient, error) {
	query := `
		SELECT id, organization_id, code, full_name, phone, whatsapp, email, notes, active, created_at, updated_at, deleted_at
		FROM patients WHERE organization_id = $1 AND id = $2`
	var p entity.Patient
	err := r.q.QueryRow(ctx, query, orgID, id).Scan(
		&p.ID, &p.OrganizationID, &p.Code, &p.FullName, &p.Phone, &p.Whatsapp,
		&p.Email, &p.Notes, &p.Active, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return &p, nil
}

// Update modifica los datos del paciente (recalcula search_key y números normalizados).
func (r *PatientRepo) Update(ctx context.Context, p *entity.Patient) error {
	query := `
		UPDATE patients
		SET full_name = $1, search_key = $2, phone = $3, phone_normalized = $4,
		    whatsapp = $5, whatsapp_normalized = $6, email = $7, notes = $8,
		    active = $9, updated_at = NOW()
		WHERE organization_id = $10 AND id = $11`
	tag, err := r.q.Exec(ctx, query,
		p.FullName, patient.SearchKey(p.FullName),
		p.Phone, patient.NormalizeNumber(p.Phone),
		p.Whatsapp, patient.NormalizeNumber(p.Whatsapp),
		p.Email, p.Notes, p.Active, p.OrganizationID, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update patient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca la baja lógica del paciente. Nunca hay borrado físico.
func (r *PatientRepo) SoftDelete(ctx context.Context, orgID, id string) error {
	query := `
		UPDATE patients SET deleted_at = NOW(), active = FALSE, updated_at = NOW()
		WHERE organization_id = $1 AND id = $2 AND deleted_at IS NULL`
	tag, err := r.q.Exec(ctx, query, orgID, id)
	if err != nil {
		return fmt.Errorf("soft delete patient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista los pacientes vigentes, opcionalmente filtrados por nombre
// (search ya viene plegado: minúsculas y sin tildes), código o teléfono.
func (r *PatientRepo) List(ctx context.Context, orgID, search string, limit, offset int) ([]*entity.Patient, error) {
	query := `
		SELECT id, organization_id, code, full_name, phone, whatsapp, email, notes, active, created_at, updated_at, deleted_at
		FROM patients
		WHERE organization_id = $1 AND deleted_at IS NULL
		  AND ($2 = '' OR search_key LIKE '%' || $2 || '%' OR code ILIKE '%' || $2 || '%' OR phone_normalized LIKE '%' || $2 || '%')
		ORDER BY code
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, orgID, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	defer rows.Close()

	var patients []*entity.Patient
	for rows.Next() {
		var p entity.Patient
		if err := rows.Scan(
			&p.ID, &p.OrganizationID, &p.Code, &p.FullName, &p.Phone, &p.Whatsapp,
			&p.Email, &p.Notes, &p.Active, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan patient: %w", err)
		}
		patients = append(patients, &p)
	}
	return patients, rows.Err()
}

// FindByContactNumber busca pacientes activos (sin baja lógica ni inactivación
// manual) cuyo teléfono o whatsapp normalizado coincida exactamente con el
// número recibido.
func (r *PatientRepo) FindByContactNumber(ctx context.Context, orgID, normalized string) ([]*entity.Patient, error) {
	query := `
		SELECT id, organization_id, code, full_name, phone, whatsapp, email, notes, active, created_at, updated_at, deleted_at
		FROM patients
		WHERE organization_id = $1 AND deleted_at IS NULL AND active
		  AND (phone_normalized = $2 OR whatsapp_normalized = $2)
		ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, orgID, normalized)
	if err != nil {
		return nil, fmt.Errorf("find patients by contact number: %w", err)
	}
	defer rows.Close()

	var patients []*entity.Patient
	for rows.Next() {
		var p entity.Patient
		if err := rows.Scan(
			&p.ID, &p.OrganizationID, &p.Code, &p.FullName, &p.Phone, &p.Whatsapp,
			&p.Email, &p.Notes, &p.Active, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan patient: %w", err)
		}
		patients = append(patients, &p)
	}
	return patients, rows.Err()
}

// DuplicateCandidates devuelve los pacientes activos con algún número de
// contacto, junto con su conteo de citas, como entrada del detector de duplicados.
// Un paciente con active = FALSE queda fuera aunque no tenga baja lógica.
func (r *PatientRepo) DuplicateCandidates(ctx context.Context, orgID string) ([]patient.Candidate, error) {
	query := `
		SELECT p.id, p.code, p.full_name, p.phone, p.whatsapp, p.created_at, COUNT(a.id)
		FROM patients p
		LEFT JOIN appointments a ON a.patient_id = p.id
		WHERE p.organization_id = $1 AND p.deleted_at IS NULL AND p.active
		  AND (p.phone_normalized <> '' OR p.whatsapp_normalized <> '')
		GROUP BY p.id, p.code, p.full_name, p.phone, p.whatsapp, p.created_at
		ORDER BY p.created_at`
	rows, err := r.q.Query(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("list duplicate candidates: %w", err)
	}
	defer rows.Close()

	var candidates []patient.Candidate
	for rows.Next() {
		var c patient.Candidate
		if err := rows.Scan(&c.ID, &c.Code, &c.FullName, &c.Phone, &c.Whatsapp, &c.CreatedAt, &c.AppointmentCount); err != nil {
			return nil, fmt.Errorf("scan duplicate candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}
