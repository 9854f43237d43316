package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías válidas para Expense.
const (
	ExpenseInsumos   = "insumos"
	ExpenseNomina    = "nomina"
	ExpenseArriendo  = "arriendo"
	ExpenseServicios = "servicios"
	ExpenseEquipos   = "equipos"
	ExpenseOtros     = "otros"
)

// ValidExpenseCategory indica si la categoría es una de las conocidas.
func ValidExpenseCategory(c string) bool {
	switch c {
	case ExpenseInsumos, ExpenseNomina, ExpenseArriendo, ExpenseServicios, ExpenseEquipos, ExpenseOtros:
		return true
	}
	return false
}

// Expense representa un gasto de la clínica.
type Expense struct {
	ID             string
	OrganizationID string
	UserID         string
	Category       string // ver constantes Expense*
	Description    string
	Amount         decimal.Decimal
	Date           time.Time
	CreatedAt      time.Time
}
