package dto

import "github.com/shopspring/decimal"

// CategoryTotalDTO desglose de gastos por categoría.
type CategoryTotalDTO struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// PaymentMethodTotalDTO desglose de ingresos por método de pago.
type PaymentMethodTotalDTO struct {
	PaymentMethod string          `json:"payment_method"`
	Total         decimal.Decimal `json:"total"`
}

// MonthlyTotalDTO punto de la serie mensual (Month formato YYYY-MM).
type MonthlyTotalDTO struct {
	Month    string          `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}

// PyGReportDTO reporte de pérdidas y ganancias del período consultado.
type PyGReportDTO struct {
	From               string                  `json:"from"`
	To                 string                  `json:"to"`
	TotalIncome        decimal.Decimal         `json:"total_income"`
	TotalExpenses      decimal.Decimal         `json:"total_expenses"`
	Net                decimal.Decimal         `json:"net"`
	ExpensesByCategory []CategoryTotalDTO      `json:"expenses_by_category"`
	IncomeByMethod     []PaymentMethodTotalDTO `json:"income_by_method"`
	MonthlySeries      []MonthlyTotalDTO       `json:"monthly_series"`
}
