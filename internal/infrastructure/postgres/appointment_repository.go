package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/medagenda/clinica-api/internal/domain"
	"github.com/medagenda/clinica-api/internal/domain/entity"
	"github.com/medagenda/clinica-api/internal/domain/repository"
)

var _ repository.AppointmentRepository = (*AppointmentRepo)(nil)

// AppointmentRepo implementación del puerto AppointmentRepository sobre PostgreSQL.
type AppointmentRepo struct {
	q Querier
}

// NewAppointmentRepository construye el adaptador de persistencia para citas. Pasar pool o tx (Querier).
func NewAppointmentRepository(q Querier) *AppointmentRepo {
	return &AppointmentRepo{q: q}
}

// Create persiste una nueva cita.
func (r *AppointmentRepo) Create(ctx context.Context, a *entity.Appointment) error {
	query := `
		INSERT INTO appointments (id, organization_id, patient_id, provider_id, starts_at, duration_min, reason, status, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.OrganizationID, a.PatientID, a.ProviderID, a.StartsAt, a.DurationMin,
		a.Reason, a.Status, a.Notes, a.CreatedBy, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

// GetByID obtiene una cita por ID dentro de su organización.
func (r *AppointmentRepo) GetByID(ctx context.Context, orgID, id string) (*entity.Appointment, error) {
	query := `
		SELECT id, organization_id, patient_id, provider_id, starts_at, duration_min, reason, status, notes, created_by, created_at, updated_at
		FROM appointments WHERE organization_id = $1 AND id = $2`
	var a entity.Appointment
	err := r.q.QueryRow(ctx, query, orgID, id).Scan(
		&a.ID, &a.OrganizationID, &a.PatientID, &a.ProviderID, &a.StartsAt, &a.DurationMin,
		&a.Reason, &a.Status, &a.Notes, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return &a, nil
}

// UpdateStatus cambia el estado de la cita y anexa notas si vienen.
func (r *AppointmentRepo) UpdateStatus(ctx context.Context, orgID, id, status, notes string) error {
	query := `
		UPDATE appointments
		SET status = $1, notes = CASE WHEN $2 <> '' THEN $2 ELSE notes END, updated_at = NOW()
		WHERE organization_id = $3 AND id = $4`
	tag, err := r.q.Exec(ctx, query, status, notes, orgID, id)
	if err != nil {
		return fmt.Errorf("update appointment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByRange lista las citas que inician en [from, to), opcionalmente por profesional.
func (r *AppointmentRepo) ListByRange(ctx context.Context, orgID string, from, to time.Time, providerID string) ([]*entity.Appointment, error) {
	query := `
		SELECT id, organization_id, patient_id, provider_id, starts_at, duration_min, reason, status, notes, created_by, created_at, updated_at
		FROM appointments
		WHERE organization_id = $1 AND starts_at >= $2 AND starts_at < $3
		  AND ($4 = '' OR provider_id = $4)
		ORDER BY starts_at`
	rows, err := r.q.Query(ctx, query, orgID, from, to, providerID)
	if err != nil {
		return nil, fmt.Errorf("list appointments by range: %w", err)
	}
	defer rows.Close()
	return scanAppointments(rows)
}

// ListByPatient lista el historial de citas de un paciente, la más reciente primero.
func (r *AppointmentRepo) ListByPatient(ctx context.Context, orgID, patientID string, limit, offset int) ([]*entity.Appointment, error) {
	query := `
		SELECT id, organization_id, patient_id, provider_id, starts_at, duration_min, reason, status, notes, created_by, created_at, updated_at
		FROM appointments
		WHERE organization_id = $1 AND patient_id = $2
		ORDER BY starts_at DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, orgID, patientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list appointments by patient: %w", err)
	}
	defer rows.Close()
	return scanAppointments(rows)
}

func scanAppointments(rows pgx.Rows) ([]*entity.Appointment, error) {
	var appointments []*entity.Appointment
	for rows.Next() {
		var a entity.Appointment
		if err := rows.Scan(
			&a.ID, &a.OrganizationID, &a.PatientID, &a.ProviderID, &a.StartsAt, &a.DurationMin,
			&a.Reason, &a.Status, &a.Notes, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		appointments = append(appointments, &a)
	}
	return appointments, rows.Err()
}
