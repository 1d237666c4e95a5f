package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/LeandroDeJesus-S/loja-online/internal/domain/entities"
	"github.com/LeandroDeJesus-S/loja-online/internal/domain/repositories"
)

// CategoryRepository implementa repositories.CategoryRepository
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository cria um novo CategoryRepository
func NewCategoryRepository(db *gorm.DB) repositories.CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, category *entities.Category) error {
	model := &CategoryModel{Name: category.Name}
	if category.ID != uuid.Nil {
		model.ID = category.ID.String()
	}

	db := r.getDB(ctx)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	id, err := uuid.Parse(model.ID)
	if err != nil {
		return err
	}
	category.ID = id
	return nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]*entities.Category, error) {
	var models []*CategoryModel

	db := r.getDB(ctx)
	if err := db.WithContext(ctx).Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	result := make([]*entities.Category, 0, len(models))
	for _, model := range models {
		id, err := uuid.Parse(model.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, &entities.Category{ID: id, Name: model.Name})
	}
	return result, nil
}

func (r *CategoryRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// StockRepository implementa repositories.StockRepository
type StockRepository struct {
	db *gorm.DB
}

// NewStockRepository cria um novo StockRepository
func NewStockRepository(db *gorm.DB) repositories.StockRepository {
	return &StockRepository{db: db}
}

// Set grava a quantidade em estoque do par loja x variação, criando o
// registro na primeira escrita
func (r *StockRepository) Set(ctx context.Context, item *entities.StockItem) error {
	db := r.getDB(ctx)

	var model StockItemModel
	err := db.WithContext(ctx).
		Where("store_id = ? AND product_variation_id = ?", item.StoreID.String(), item.VariationID.String()).
		First(&model).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		model = StockItemModel{
			StoreID:            item.StoreID.String(),
			ProductVariationID: item.VariationID.String(),
			Quantity:           item.Quantity,
		}
		if err := db.WithContext(ctx).Create(&model).Error; err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		model.Quantity = item.Quantity
		if err := db.WithContext(ctx).Save(&model).Error; err != nil {
			return err
		}
	}

	id, err := uuid.Parse(model.ID)
	if err != nil {
		return err
	}
	item.ID = id
	return nil
}

func (r *StockRepository) Get(ctx context.Context, storeID, variationID uuid.UUID) (*entities.StockItem, error) {
	var model StockItemModel

	db := r.getDB(ctx)
	err := db.WithContext(ctx).
		Where("store_id = ? AND product_variation_id = ?", storeID.String(), variationID.String()).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, err
	}

	return &entities.StockItem{
		ID:          id,
		StoreID:     storeID,
		VariationID: variationID,
		Quantity:    model.Quantity,
	}, nil
}

func (r *StockRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}
