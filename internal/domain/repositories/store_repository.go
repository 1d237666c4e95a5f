package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/LeandroDeJesus-S/loja-online/internal/domain/entities"
)

// StoreRepository define a interface para persistência de lojas
type StoreRepository interface {
	Create(ctx context.Context, store *entities.Store) error
	Update(ctx context.Context, store *entities.Store) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Store, error)
	FindByName(ctx context.Context, name string) (*entities.Store, error)
}

// UserRepository define a interface para persistência de usuários
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
}
