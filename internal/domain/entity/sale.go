package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago válidos para Sale.
const (
	PaymentEfectivo      = "efectivo"
	PaymentTarjeta       = "tarjeta"
	PaymentTransferencia = "transferencia"
)

// Sale representa una venta/recibo de la clínica (servicios o productos).
type Sale struct {
	ID             string
	OrganizationID string
	PatientID      string // opcional: venta sin paciente asociado = ""
	UserID         string
	Number         string // consecutivo legible por organización (VTA-NNNNN)
	Date           time.Time
	PaymentMethod  string // ver constantes Payment*
	Total          decimal.Decimal
	Notes          string
	CreatedAt      time.Time
}

// SaleItem línea de una venta.
type SaleItem struct {
	ID          string
	SaleID      string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal // Quantity * UnitPrice
}

// SaleNumber formatea el consecutivo de venta: VTA-NNNNN con relleno de ceros.
func SaleNumber(seq int64) string {
	return fmt.Sprintf("VTA-%05d", seq)
}
