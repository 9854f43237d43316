package inventory

import "github.com/shopspring/decimal"

// Estados de stock calculados en lectura (no se persisten).
const (
	StatusCritico = "critico"
	StatusBajo    = "bajo"
	StatusNormal  = "normal"
)

// ClassifyStock clasifica el nivel de stock de un ítem (servicio de dominio, función total):
// critico si stock <= 0, bajo si 0 < stock <= minStock, normal en el resto.
// El empate exacto en minStock resuelve a "bajo".
func ClassifyStock(currentStock, minStock decimal.Decimal) string {
	if currentStock.LessThanOrEqual(decimal.Zero) {
		return StatusCritico
	}
	if currentStock.LessThanOrEqual(minStock) {
		return StatusBajo
	}
	return StatusNormal
}

// ValidStatusFilter indica si el filtro de estado pedido en listados es válido.
func ValidStatusFilter(s string) bool {
	switch s {
	case StatusCritico, StatusBajo, StatusNormal, "all", "":
		return true
	}
	return false
}
