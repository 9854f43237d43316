package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest body para POST /api/inventory/items.
type CreateItemRequest struct {
	Name         string          `json:"name"`
	InitialStock decimal.Decimal `json:"initial_stock"`
	MinStock     decimal.Decimal `json:"min_stock"`
	Unit         string          `json:"unit,omitempty"`
	Category     string          `json:"category,omitempty"`
}

// RecordMovementRequest body para POST /api/inventory/items/:id/movements.
type RecordMovementRequest struct {
	Type     string          `json:"type"` // entrada | salida
	Quantity decimal.Decimal `json:"quantity"`
	Reason   string          `json:"reason,omitempty"`
}

// ItemResponse ítem de inventario en respuestas. Status se calcula en lectura,
// nunca se persiste.
type ItemResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	MinStock     decimal.Decimal `json:"min_stock"`
	Unit         string          `json:"unit,omitempty"`
	Category     string          `json:"category,omitempty"`
	Status       string          `json:"status"` // critico | bajo | normal
	Active       bool            `json:"active"`
	CreatedAt    time.Time       `json:"created_at"`
}

// MovementResponse movimiento del libro en respuestas.
type MovementResponse struct {
	ID        string          `json:"id"`
	ItemID    string          `json:"item_id"`
	Type      string          `json:"type"`
	Quantity  decimal.Decimal `json:"quantity"`
	Reason    string          `json:"reason,omitempty"`
	CreatedBy string          `json:"created_by,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// RecordMovementResponse respuesta de POST movements: el movimiento creado y el
// ítem con su stock ya actualizado.
type RecordMovementResponse struct {
	Movement MovementResponse `json:"movement"`
	Item     ItemResponse     `json:"item"`
}
