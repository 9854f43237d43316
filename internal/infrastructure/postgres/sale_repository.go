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

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
// PatientID se persiste como NULL cuando la venta no tiene paciente asociado.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la venta y sus líneas. Debe llamarse dentro de la misma
// transacción que asignó el consecutivo.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale, items []*entity.SaleItem) error {
	query := `
		INSERT INTO sales (id, organization_id, patient_id, user_id, number, date, payment_method, total, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.OrganizationID, nullIfEmpty(sale.PatientID), sale.UserID,
		sale.Number, sale.Date, sale.PaymentMethod, sale.Total, sale.Notes, sale.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}

	itemQuery := `
		INSERT INTO sale_items (id, sale_id, description, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, item := range items {
		if _, err := r.q.Exec(ctx, itemQuery,
			item.ID, item.SaleID, item.Description, item.Quantity, item.UnitPrice, item.Subtotal,
		); err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una venta con sus líneas.
func (r *SaleRepo) GetByID(ctx context.Context, orgID, id string) (*entity.Sale, []*entity.SaleItem, error) {
	query := `
		SELECT id, organization_id, COALESCE(patient_id, ''), user_id, number, date, payment_method, total, notes, created_at
		FROM sales WHERE organization_id = $1 AND id = $2`
	var sale entity.Sale
	err := r.q.QueryRow(ctx, query, orgID, id).Scan(
		&sale.ID, &sale.OrganizationID, &sale.PatientID, &sale.UserID, &sale.Number,
		&sale.Date, &sale.PaymentMethod, &sale.Total, &sale.Notes, &sale.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("get sale: %w", err)
	}

	itemQuery := `
		SELECT id, sale_id, description, quantity, unit_price, subtotal
		FROM sale_items WHERE sale_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, itemQuery, id)
	if err != nil {
		return nil, nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()

	var items []*entity.SaleItem
	for rows.Next() {
		var item entity.SaleItem
		if err := rows.Scan(&item.ID, &item.SaleID, &item.Description, &item.Quantity, &item.UnitPrice, &item.Subtotal); err != nil {
			return nil, nil, fmt.Errorf("scan sale item: %w", err)
		}
		items = append(items, &item)
	}
	return &sale, items, rows.Err()
}

// ListByRange lista las ventas con fecha en [from, to], la más reciente primero.
func (r *SaleRepo) ListByRange(ctx context.Context, orgID string, from, to time.Time, limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT id, organization_id, COALESCE(patient_id, ''), user_id, number, date, payment_method, total, notes, created_at
		FROM sales
		WHERE organization_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date DESC, number DESC
		LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(ctx, query, orgID, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.Sale
	for rows.Next() {
		var sale entity.Sale
		if err := rows.Scan(
			&sale.ID, &sale.OrganizationID, &sale.PatientID, &sale.UserID, &sale.Number,
			&sale.Date, &sale.PaymentMethod, &sale.Total, &sale.Notes, &sale.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, &sale)
	}
	return sales, rows.Err()
}

// nullIfEmpty convierte "" en NULL para columnas opcionales con foreign key.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
