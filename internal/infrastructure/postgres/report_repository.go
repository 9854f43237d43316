package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/medagenda/clinica-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para el reporte de pérdidas y ganancias.
// Las agregaciones corren en la DB; aquí solo se escanean los resultados.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// GetIncomeTotal devuelve el total vendido en el período. COALESCE garantiza
// cero (no NULL) cuando no hay ventas.
func (r *ReportRepo) GetIncomeTotal(ctx context.Context, orgID string, from, to time.Time) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(total), 0)
	FROM sales
	WHERE organization_id = $1 AND date BETWEEN $2 AND $3`

	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, orgID, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("reports.GetIncomeTotal: %w", err)
	}
	return total, nil
}

// GetExpenseTotals devuelve el total de gastos del período y el desglose por categoría.
func (r *ReportRepo) GetExpenseTotals(ctx context.Context, orgID string, from, to time.Time) (decimal.Decimal, []repository.CategoryTotal, error) {
	const query = `
	SELECT category, COALESCE(SUM(amount), 0) AS total
	FROM expenses
	WHERE organization_id = $1 AND date BETWEEN $2 AND $3
	GROUP BY category
	ORDER BY total DESC`

	rows, err := r.pool.Query(ctx, query, orgID, from, to)
	if err != nil {
		return decimal.Zero, nil, fmt.Errorf("reports.GetExpenseTotals: %w", err)
	}
	defer rows.Close()

	total := decimal.Zero
	var byCategory []repository.CategoryTotal
	for rows.Next() {
		var c repository.CategoryTotal
		if err := rows.Scan(&c.Category, &c.Total); err != nil {
			return decimal.Zero, nil, fmt.Errorf("reports.GetExpenseTotals scan: %w", err)
		}
		total = total.Add(c.Total)
		byCategory = append(byCategory, c)
	}
	return total, byCategory, rows.Err()
}

// GetIncomeByPaymentMethod desglosa los ingresos del período por método de pago.
func (r *ReportRepo) GetIncomeByPaymentMethod(ctx context.Context, orgID string, from, to time.Time) ([]repository.PaymentMethodTotal, error) {
	const query = `
	SELECT payment_method, COALESCE(SUM(total), 0) AS total
	FROM sales
	WHERE organization_id = $1 AND date BETWEEN $2 AND $3
	GROUP BY payment_method
	ORDER BY total DESC`

	rows, err := r.pool.Query(ctx, query, orgID, from, to)
	if err != nil {
		return nil, fmt.Errorf("reports.GetIncomeByPaymentMethod: %w", err)
	}
	defer rows.Close()

	var results []repository.PaymentMethodTotal
	for rows.Next() {
		var m repository.PaymentMethodTotal
		if err := rows.Scan(&m.PaymentMethod, &m.Total); err != nil {
			return nil, fmt.Errorf("reports.GetIncomeByPaymentMethod scan: %w", err)
		}
		results = append(results, m)
	}
	return results, rows.Err()
}

// GetMonthlySeries devuelve la serie mensual de ingresos y gastos del período.
// Un FULL JOIN por mes alinea ambas series aunque un mes solo tenga ventas o solo gastos.
func (r *ReportRepo) GetMonthlySeries(ctx context.Context, orgID string, from, to time.Time) ([]repository.MonthlyTotal, error) {
	const query = `
	WITH income AS (
	    SELECT to_char(date, 'YYYY-MM') AS month, SUM(total) AS total
	    FROM sales
	    WHERE organization_id = $1 AND date BETWEEN $2 AND $3
	    GROUP BY 1
	),
	spend AS (
	    SELECT to_char(date, 'YYYY-MM') AS month, SUM(amount) AS total
	    FROM expenses
	    WHERE organization_id = $1 AND date BETWEEN $2 AND $3
	    GROUP BY 1
	)
	SELECT
	    COALESCE(i.month, s.month)  AS month,
	    COALESCE(i.total, 0)        AS income,
	    COALESCE(s.total, 0)        AS expenses
	FROM income i
	FULL OUTER JOIN spend s ON s.month = i.month
	ORDER BY month`

	rows, err := r.pool.Query(ctx, query, orgID, from, to)
	if err != nil {
		return nil, fmt.Errorf("reports.GetMonthlySeries: %w", err)
	}
	defer rows.Close()

	var series []repository.MonthlyTotal
	for rows.Next() {
		var p repository.MonthlyTotal
		if err := rows.Scan(&p.Month, &p.Income, &p.Expenses); err != nil {
			return nil, fmt.Errorf("reports.GetMonthlySeries scan: %w", err)
		}
		series = append(series, p)
	}
	return series, rows.Err()
}
