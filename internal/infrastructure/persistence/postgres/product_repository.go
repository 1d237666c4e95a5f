package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/LeandroDeJesus-S/loja-online/internal/domain/entities"
	domainerrors "github.com/LeandroDeJesus-S/loja-online/internal/domain/errors"
	"github.com/LeandroDeJesus-S/loja-online/internal/domain/repositories"
)

// Vetor de busca usado no ranqueamento da listagem: nome e descrição do
// produto, nome e tamanho da variação e nome da categoria
const searchVectorExpr = `to_tsvector('portuguese', concat_ws(' ', ` +
	`products.name, products.description, product_variations.name, ` +
	`product_variations.size, categories.name))`

const searchRankExpr = `ts_rank(` + searchVectorExpr + `, plainto_tsquery('portuguese', ?))`

// listingOrdering mapeia a chave de ordenação para a expressão SQL.
// Os agregados funcionam junto com o GROUP BY que deduplica os produtos.
// A chave new desempata por id: created_at tem resolução de segundos e
// inserções no mesmo segundo precisam de uma ordem total.
type listingOrdering struct {
	clause    string
	needsEval bool
}

var listingOrderings = map[repositories.OrderingKey]listingOrdering{
	repositories.OrderingNew:           {clause: "products.created_at DESC, products.id DESC"},
	repositories.OrderingLessPrice:     {clause: "MIN(product_variations.price) ASC"},
	repositories.OrderingGreatestPrice: {clause: "MAX(product_variations.price) DESC"},
	repositories.OrderingLessEval:      {clause: "MIN(evaluations.rating) ASC", needsEval: true},
	repositories.OrderingGreatestEval:  {clause: "MAX(evaluations.rating) DESC", needsEval: true},
}

// ProductRepository implementa repositories.ProductRepository
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository cria um novo ProductRepository
func NewProductRepository(db *gorm.DB) repositories.ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, product *entities.Product) error {
	model := r.toModel(product)

	db := r.getDB(ctx)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	id, err := uuid.Parse(model.ID)
	if err != nil {
		return err
	}
	product.ID = id
	product.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

// Update grava apenas os campos mutáveis. O slug derivado na criação e
// o created_at ficam fora do UPDATE.
func (r *ProductRepository) Update(ctx context.Context, product *entities.Product) error {
	model := r.toModel(product)

	db := r.getDB(ctx)
	return db.WithContext(ctx).
		Model(&ProductModel{}).
		Where("id = ?", model.ID).
		Select("name", "description", "thumbnail_path", "updated_at").
		Updates(model).Error
}

func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	return r.findOne(ctx, "products.id = ?", id.String())
}

func (r *ProductRepository) FindBySlug(ctx context.Context, slug string) (*entities.Product, error) {
	return r.findOne(ctx, "products.slug = ?", slug)
}

func (r *ProductRepository) findOne(ctx context.Context, cond string, arg any) (*entities.Product, error) {
	var model ProductModel

	db := r.getDB(ctx)
	err := db.WithContext(ctx).
		Preload("Categories").
		Preload("Variations").
		Where(cond, arg).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

// List retorna produtos com pelo menos uma variação em estoque,
// deduplicados por GROUP BY, ranqueados pela busca textual (quando
// presente) e ordenados pela chave selecionada. Chave desconhecida falha
// imediatamente, sem fallback.
func (r *ProductRepository) List(ctx context.Context, filters repositories.ProductListing) ([]*entities.Product, error) {
	ordering, ok := listingOrderings[filters.Ordering]
	if !ok {
		return nil, domainerrors.ErrUnknownOrdering
	}

	page := filters.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * repositories.ListingPageSize

	db := r.getDB(ctx)
	query := db.WithContext(ctx).
		Table("products").
		Select("products.*").
		Joins("JOIN product_variations ON product_variations.product_id = products.id").
		Joins("JOIN stock_items ON stock_items.product_variation_id = product_variations.id AND stock_items.quantity >= 1").
		Joins("LEFT JOIN product_categories ON product_categories.product_model_id = products.id").
		Joins("LEFT JOIN categories ON categories.id = product_categories.category_model_id").
		Group("products.id")

	if ordering.needsEval {
		query = query.
			Joins("LEFT JOIN orders ON orders.product_variation_id = product_variations.id").
			Joins("LEFT JOIN evaluations ON evaluations.order_id = orders.id")
	}

	if filters.Search != "" {
		query = query.Having("MAX("+searchRankExpr+") >= ?", filters.Search, repositories.RankThreshold)
	}

	var models []*ProductModel
	err := query.
		Order(ordering.clause).
		Limit(repositories.ListingPageSize).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

func (r *ProductRepository) CreateVariation(ctx context.Context, variation *entities.ProductVariation) error {
	model := r.variationToModel(variation)

	db := r.getDB(ctx)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	id, err := uuid.Parse(model.ID)
	if err != nil {
		return err
	}
	variation.ID = id
	variation.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

func (r *ProductRepository) FindVariationBySlug(ctx context.Context, slug string) (*entities.ProductVariation, error) {
	var model ProductVariationModel

	db := r.getDB(ctx)
	err := db.WithContext(ctx).
		Preload("Product").
		Where("slug = ?", slug).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return variationToEntity(&model)
}

// getDB extrai DB do contexto (para suportar transações)
func (r *ProductRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *ProductRepository) toModel(product *entities.Product) *ProductModel {
	model := &ProductModel{
		Name:          product.Name,
		Slug:          product.Slug,
		ThumbnailPath: product.ThumbnailPath,
		Description:   product.Description,
	}
	if product.ID != uuid.Nil {
		model.ID = product.ID.String()
	}
	for _, c := range product.Categories {
		cm := CategoryModel{Name: c.Name}
		if c.ID != uuid.Nil {
			cm.ID = c.ID.String()
		}
		model.Categories = append(model.Categories, cm)
	}
	return model
}

func (r *ProductRepository) toEntity(model *ProductModel) (*entities.Product, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, err
	}

	product := &entities.Product{
		ID:            id,
		Name:          model.Name,
		Slug:          model.Slug,
		ThumbnailPath: model.ThumbnailPath,
		Description:   model.Description,
		CreatedAt:     time.Unix(model.CreatedAt, 0),
		UpdatedAt:     time.Unix(model.UpdatedAt, 0),
	}

	for _, cm := range model.Categories {
		cid, err := uuid.Parse(cm.ID)
		if err != nil {
			return nil, err
		}
		product.Categories = append(product.Categories, entities.Category{ID: cid, Name: cm.Name})
	}

	for i := range model.Variations {
		variation, err := variationToEntity(&model.Variations[i])
		if err != nil {
			return nil, err
		}
		product.Variations = append(product.Variations, *variation)
	}

	return product, nil
}

func (r *ProductRepository) toEntities(models []*ProductModel) ([]*entities.Product, error) {
	result := make([]*entities.Product, 0, len(models))
	for _, model := range models {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		result = append(result, entity)
	}
	return result, nil
}

func (r *ProductRepository) variationToModel(variation *entities.ProductVariation) *ProductVariationModel {
	model := &ProductVariationModel{
		Name:      variation.Name,
		Size:      variation.Size,
		Color:     variation.Color,
		Slug:      variation.Slug,
		Price:     variation.Price,
		ProductID: variation.ProductID.String(),
	}
	if variation.ID != uuid.Nil {
		model.ID = variation.ID.String()
	}
	return model
}

func variationToEntity(model *ProductVariationModel) (*entities.ProductVariation, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, err
	}
	productID, err := uuid.Parse(model.ProductID)
	if err != nil {
		return nil, err
	}

	variation := &entities.ProductVariation{
		ID:        id,
		Name:      model.Name,
		Size:      model.Size,
		Color:     model.Color,
		Slug:      model.Slug,
		Price:     model.Price,
		ProductID: productID,
		CreatedAt: time.Unix(model.CreatedAt, 0),
		UpdatedAt: time.Unix(model.UpdatedAt, 0),
	}

	if model.Product != nil {
		pid, err := uuid.Parse(model.Product.ID)
		if err != nil {
			return nil, err
		}
		variation.Product = &entities.Product{
			ID:   pid,
			Name: model.Product.Name,
			Slug: model.Product.Slug,
		}
	}

	return variation, nil
}
