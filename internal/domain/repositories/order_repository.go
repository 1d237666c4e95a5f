package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/LeandroDeJesus-S/loja-online/internal/domain/entities"
)

// OrderRepository define a interface para persistência de pedidos,
// status e avaliações
type OrderRepository interface {
	Create(ctx context.Context, order *entities.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Order, error)

	CreateStatus(ctx context.Context, status *entities.OrderStatus) error
	FindStatusByName(ctx context.Context, name string) (*entities.OrderStatus, error)

	CreateEvaluation(ctx context.Context, evaluation *entities.Evaluation) error
	FindEvaluationByID(ctx context.Context, id uuid.UUID) (*entities.Evaluation, error)
}

// MediaFileRepository define a interface para persistência de arquivos
// de mídia. A cardinalidade do dono é validada no domínio e espelhada
// por uma CHECK constraint no banco.
type MediaFileRepository interface {
	Create(ctx context.Context, media *entities.MediaFile) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.MediaFile, error)
	ListByOwner(ctx context.Context, owner entities.MediaOwner) ([]*entities.MediaFile, error)
}

// AddressRepository define a interface para persistência de endereços e
// seus vínculos com usuários e lojas
type AddressRepository interface {
	Create(ctx context.Context, address *entities.Address) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Address, error)
	Link(ctx context.Context, link *entities.HasAddress) error
	ListLinks(ctx context.Context, owner entities.AddressOwner) ([]*entities.HasAddress, error)
}
