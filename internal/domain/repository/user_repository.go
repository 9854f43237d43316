package repository

import (
	"context"

	"github.com/medagenda/clinica-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByEmailAndOrganization(ctx context.Context, email, orgID string) (*entity.User, error)
	ListByOrganization(ctx context.Context, orgID string) ([]*entity.User, error)
}
