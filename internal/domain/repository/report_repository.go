package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CategoryTotal total de gastos de una categoría en el período consultado.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// PaymentMethodTotal total de ingresos por método de pago en el período.
type PaymentMethodTotal struct {
	PaymentMethod string
	Total         decimal.Decimal
}

// MonthlyTotal ingresos y gastos de un mes (Month con formato YYYY-MM).
type MonthlyTotal struct {
	Month    string
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// ReportRepository define las consultas de lectura para el reporte P&G
// (pérdidas y ganancias). Las implementaciones son read-only.
type ReportRepository interface {
	// GetIncomeTotal devuelve el total de ventas del período.
	// Usa COALESCE para devolver cero si no hay ventas.
	GetIncomeTotal(ctx context.Context, orgID string, from, to time.Time) (decimal.Decimal, error)
	// GetExpenseTotals devuelve el total de gastos y el desglose por categoría.
	GetExpenseTotals(ctx context.Context, orgID string, from, to time.Time) (decimal.Decimal, []CategoryTotal, error)
	// GetIncomeByPaymentMethod desglosa los ingresos del período por método de pago.
	GetIncomeByPaymentMethod(ctx context.Context, orgID string, from, to time.Time) ([]PaymentMethodTotal, error)
	// GetMonthlySeries devuelve la serie mensual de ingresos y gastos del período.
	GetMonthlySeries(ctx context.Context, orgID string, from, to time.Time) ([]MonthlyTotal, error)
}
