package repository

import (
	"context"

	"github.com/medagenda/clinica-api/internal/domain/entity"
)

// ProviderRepository define el puerto de persistencia para Provider (DIP).
type ProviderRepository interface {
	Create(ctx context.Context, p *entity.Provider) error
	GetByID(ctx context.Context, orgID, id string) (*entity.Provider, error)
	Update(ctx context.Context, p *entity.Provider) error
	ListByOrganization(ctx context.Context, orgID string, onlyActive bool) ([]*entity.Provider, error)
}
