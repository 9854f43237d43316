package repository

import (
	"context"
	"time"

	"github.com/medagenda/clinica-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale (DIP).
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale, items []*entity.SaleItem) error
	GetByID(ctx context.Context, orgID, id string) (*entity.Sale, []*entity.SaleItem, error)
	ListByRange(ctx context.Context, orgID string, from, to time.Time, limit, offset int) ([]*entity.Sale, error)
}
