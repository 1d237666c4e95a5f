package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/LeandroDeJesus-S/loja-online/internal/domain/entities"
	"github.com/LeandroDeJesus-S/loja-online/internal/domain/errors"
	"github.com/LeandroDeJesus-S/loja-online/internal/domain/ports"
	"github.com/LeandroDeJesus-S/loja-online/internal/domain/repositories"
)

// CatalogService contém a lógica de negócio do catálogo de produtos
type CatalogService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	stockRepo    repositories.StockRepository
	resizer      ports.ImageResizer
	uow          ports.UnitOfWork
	logger       ports.Logger
}

// NewCatalogService cria um novo CatalogService
func NewCatalogService(
	productRepo repositories.ProductRepository,
	categoryRepo repositories.CategoryRepository,
	stockRepo repositories.StockRepository,
	resizer ports.ImageResizer,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		stockRepo:    stockRepo,
		resizer:      resizer,
		uow:          uow,
		logger:       logger,
	}
}

// CreateProductInput representa os dados para criar um produto
type CreateProductInput struct {
	Name          string
	Description   string
	ThumbnailPath string
	ThumbnailSize int64
	Categories    []entities.Category
}

// CreateProduct executa o pipeline de criação do produto:
// valida, deriva o slug, persiste e por fim redimensiona a thumbnail
// para caber em 360x360
func (s *CatalogService) CreateProduct(ctx context.Context, input CreateProductInput) (*entities.Product, error) {
	product := &entities.Product{
		Name:          input.Name,
		Description:   input.Description,
		ThumbnailPath: input.ThumbnailPath,
		Categories:    input.Categories,
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}
	if product.ThumbnailPath != "" {
		if err := product.ValidateThumbnail(input.ThumbnailSize); err != nil {
			return nil, err
		}
	}
	product.EnsureSlug()

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	if product.ThumbnailPath != "" {
		err := s.resizer.FitWithin(product.ThumbnailPath, entities.ProductThumbMaxWidth, entities.ProductThumbMaxHeight)
		if err != nil {
			return nil, err
		}
	}

	s.logger.Info("product created", "slug", product.Slug)
	return product, nil
}

// UpdateProductInput representa os dados para atualizar um produto
type UpdateProductInput struct {
	ID            uuid.UUID
	Name          string
	Description   string
	ThumbnailPath string
	ThumbnailSize int64
}

// UpdateProduct atualiza nome, descrição e thumbnail de um produto.
// O slug derivado na criação nunca é recalculado, mesmo quando o nome
// muda.
func (s *CatalogService) UpdateProduct(ctx context.Context, input UpdateProductInput) (*entities.Product, error) {
	product, err := s.productRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.ErrProductNotFound
	}

	product.Name = input.Name
	product.Description = input.Description
	if input.ThumbnailPath != "" {
		product.ThumbnailPath = input.ThumbnailPath
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}
	if input.ThumbnailPath != "" {
		if err := product.ValidateThumbnail(input.ThumbnailSize); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	if input.ThumbnailPath != "" {
		err := s.resizer.FitWithin(product.ThumbnailPath, entities.ProductThumbMaxWidth, entities.ProductThumbMaxHeight)
		if err != nil {
			return nil, err
		}
	}

	s.logger.Info("product updated", "slug", product.Slug)
	return product, nil
}

// CreateVariationInput representa os dados para criar uma variação
type CreateVariationInput struct {
	Name      string
	Size      string
	Color     string
	Price     decimal.Decimal
	ProductID uuid.UUID
}

// CreateVariation valida a variação, deriva o slug e persiste
func (s *CatalogService) CreateVariation(ctx context.Context, input CreateVariationInput) (*entities.ProductVariation, error) {
	variation := &entities.ProductVariation{
		Name:      input.Name,
		Size:      input.Size,
		Color:     input.Color,
		Price:     input.Price,
		ProductID: input.ProductID,
	}

	if err := variation.Validate(); err != nil {
		return nil, err
	}
	variation.EnsureSlug()

	if err := s.productRepo.CreateVariation(ctx, variation); err != nil {
		return nil, err
	}

	s.logger.Info("variation created", "slug", variation.Slug)
	return variation, nil
}

// CreateCategory valida e persiste uma categoria
func (s *CatalogService) CreateCategory(ctx context.Context, name string) (*entities.Category, error) {
	category := &entities.Category{Name: name}
	if err := category.Validate(); err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// SetStock grava a quantidade em estoque do par loja x variação
func (s *CatalogService) SetStock(ctx context.Context, storeID, variationID uuid.UUID, quantity int) (*entities.StockItem, error) {
	item := &entities.StockItem{
		StoreID:     storeID,
		VariationID: variationID,
		Quantity:    quantity,
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	if err := s.stockRepo.Set(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListProducts resolve a chave de ordenação (falha imediata para chave
// desconhecida) e delega a listagem ranqueada ao repositório
func (s *CatalogService) ListProducts(ctx context.Context, search, ordering string, page int) ([]*entities.Product, error) {
	key, err := repositories.ParseOrderingKey(ordering)
	if err != nil {
		return nil, err
	}

	return s.productRepo.List(ctx, repositories.ProductListing{
		Search:   search,
		Ordering: key,
		Page:     page,
	})
}

// GetProductBySlug busca um produto pelo slug
func (s *CatalogService) GetProductBySlug(ctx context.Context, slug string) (*entities.Product, error) {
	product, err := s.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.ErrProductNotFound
	}
	return product, nil
}
