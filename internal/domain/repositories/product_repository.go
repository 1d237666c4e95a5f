package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/LeandroDeJesus-S/loja-online/internal/domain/entities"
	"github.com/LeandroDeJesus-S/loja-online/internal/domain/errors"
)

// OrderingKey seleciona o campo de ordenação da listagem de produtos
type OrderingKey string

const (
	OrderingNew           OrderingKey = "new"
	OrderingLessPrice     OrderingKey = "less_price"
	OrderingGreatestPrice OrderingKey = "greatest_price"
	OrderingLessEval      OrderingKey = "less_eval"
	OrderingGreatestEval  OrderingKey = "greatest_eval"
)

var orderingKeys = map[OrderingKey]struct{}{
	OrderingNew:           {},
	OrderingLessPrice:     {},
	OrderingGreatestPrice: {},
	OrderingLessEval:      {},
	OrderingGreatestEval:  {},
}

// ParseOrderingKey resolve a chave de ordenação vinda da requisição.
// Vazio ou ausente cai no padrão (new); chave desconhecida falha com
// errors.ErrUnknownOrdering, sem fallback silencioso.
func ParseOrderingKey(raw string) (OrderingKey, error) {
	if raw == "" {
		return OrderingNew, nil
	}
	key := OrderingKey(raw)
	if _, ok := orderingKeys[key]; !ok {
		return "", errors.ErrUnknownOrdering
	}
	return key, nil
}

// ListingPageSize é o tamanho de página da listagem de produtos
const ListingPageSize = 5

// RankThreshold é a relevância mínima para um produto permanecer no
// resultado de uma busca textual
const RankThreshold = 0.05

// ProductListing contém os parâmetros da listagem/busca de produtos
type ProductListing struct {
	Search   string
	Ordering OrderingKey
	Page     int // Página (começa em 1)
}

// ProductRepository define a interface para persistência do catálogo
type ProductRepository interface {
	Create(ctx context.Context, product *entities.Product) error
	Update(ctx context.Context, product *entities.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Product, error)
	FindBySlug(ctx context.Context, slug string) (*entities.Product, error)

	// List retorna produtos com pelo menos uma variação em estoque,
	// deduplicados, ranqueados pela busca (quando presente) e ordenados
	// pela chave selecionada
	List(ctx context.Context, filters ProductListing) ([]*entities.Product, error)

	CreateVariation(ctx context.Context, variation *entities.ProductVariation) error
	FindVariationBySlug(ctx context.Context, slug string) (*entities.ProductVariation, error)
}

// CategoryRepository define a interface para persistência de categorias
type CategoryRepository interface {
	Create(ctx context.Context, category *entities.Category) error
	List(ctx context.Context) ([]*entities.Category, error)
}

// StockRepository define a interface para o estoque loja x variação
type StockRepository interface {
	Set(ctx context.Context, item *entities.StockItem) error
	Get(ctx context.Context, storeID, variationID uuid.UUID) (*entities.StockItem, error)
}
