package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa un insumo del inventario de la clínica.
// CurrentStock es una vista materializada del libro de movimientos: siempre debe
// ser igual a la suma con signo de los movimientos del ítem. Se actualiza en la
// misma transacción que inserta cada movimiento.
type InventoryItem struct {
	ID             string
	OrganizationID string
	Name           string
	CurrentStock   decimal.Decimal
	MinStock       decimal.Decimal
	Unit           string // unidad, caja, ml, ...
	Category       string
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
