package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementEntrada = "entrada"
	MovementSalida  = "salida"
)

// ReasonInitialStock razón del movimiento de entrada creado junto con un ítem
// que nace con stock inicial mayor a cero.
const ReasonInitialStock = "Stock inicial"

// InventoryMovement registra una entrada o salida de un ítem (libro append-only).
// Quantity siempre es positiva; el signo lo da Type. Inmutable una vez creado:
// no existe operación de actualización ni borrado.
type InventoryMovement struct {
	ID        string
	ItemID    string
	Type      string // entrada | salida
	Quantity  decimal.Decimal
	Reason    string
	CreatedBy string
	CreatedAt time.Time
}
