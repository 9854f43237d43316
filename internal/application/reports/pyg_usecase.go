package reports

import (
	"context"
	"time"

	"github.com/medagenda/clinica-api/internal/application/dto"
	"github.com/medagenda/clinica-api/internal/domain"
	"github.com/medagenda/clinica-api/internal/domain/repository"
)

// PyGUseCase arma el reporte de pérdidas y ganancias: ingresos por ventas contra
// gastos, en un rango de fechas. Solo lectura; las agregaciones pesadas las hace
// la DB y aquí solo se ensambla el reporte.
type PyGUseCase struct {
	repo repository.ReportRepository
}

// NewPyGUseCase construye el caso de uso.
func NewPyGUseCase(repo repository.ReportRepository) *PyGUseCase {
	return &PyGUseCase{repo: repo}
}

// Generate produce el reporte P&G del período [from, to].
func (uc *PyGUseCase) Generate(ctx context.Context, orgID string, from, to time.Time) (*dto.PyGReportDTO, error) {
	if !to.After(from) {
		return nil, domain.ErrInvalidInput
	}

	income, err := uc.repo.GetIncomeTotal(ctx, orgID, from, to)
	if err != nil {
		return nil, err
	}
	totalExpenses, byCategory, err := uc.repo.GetExpenseTotals(ctx, orgID, from, to)
	if err != nil {
		return nil, err
	}
	byMethod, err := uc.repo.GetIncomeByPaymentMethod(ctx, orgID, from, to)
	if err != nil {
		return nil, err
	}
	series, err := uc.repo.GetMonthlySeries(ctx, orgID, from, to)
	if err != nil {
		return nil, err
	}

	report := &dto.PyGReportDTO{
		From:          from.Format("2006-01-02"),
		To:            to.Format("2006-01-02"),
		TotalIncome:   income,
		TotalExpenses: totalExpenses,
		Net:           income.Sub(totalExpenses),
	}
	for _, c := range byCategory {
		report.ExpensesByCategory = append(report.ExpensesByCategory, dto.CategoryTotalDTO{
			Category: c.Category,
			Total:    c.Total,
		})
	}
	for _, m := range byMethod {
		report.IncomeByMethod = append(report.IncomeByMethod, dto.PaymentMethodTotalDTO{
			PaymentMethod: m.PaymentMethod,
			Total:         m.Total,
		})
	}
	for _, p := range series {
		report.MonthlySeries = append(report.MonthlySeries, dto.MonthlyTotalDTO{
			Month:    p.Month,
			Income:   p.Income,
			Expenses: p.Expenses,
			Net:      p.Income.Sub(p.Expenses),
		})
	}
	return report, nil
}
