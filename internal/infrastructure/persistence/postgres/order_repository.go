package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/LeandroDeJesus-S/loja-online/internal/domain/entities"
	"github.com/LeandroDeJesus-S/loja-online/internal/domain/repositories"
)

// OrderRepository implementa repositories.OrderRepository
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository cria um novo OrderRepository
func NewOrderRepository(db *gorm.DB) repositories.OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, order *entities.Order) error {
	model := r.toModel(order)

	db := r.getDB(ctx)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	id, err := uuid.Parse(model.ID)
	if err != nil {
		return err
	}
	order.ID = id
	order.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	var model OrderModel

	db := r.getDB(ctx)
	err := db.WithContext(ctx).
		Preload("Status").
		Preload("User").
		Preload("Variation").
		Where("id = ?", id.String()).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *OrderRepository) CreateStatus(ctx context.Context, status *entities.OrderStatus) error {
	model := &OrderStatusModel{Name: status.Name}
	if status.ID != uuid.Nil {
		model.ID = status.ID.String()
	}

	db := r.getDB(ctx)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	id, err := uuid.Parse(model.ID)
	if err != nil {
		return err
	}
	status.ID = id
	return nil
}

func (r *OrderRepository) FindStatusByName(ctx context.Context, name string) (*entities.OrderStatus, error) {
	var model OrderStatusModel

	db := r.getDB(ctx)
	if err := db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, err
	}
	return &entities.OrderStatus{ID: id, Name: model.Name}, nil
}

func (r *OrderRepository) CreateEvaluation(ctx context.Context, evaluation *entities.Evaluation) error {
	model := &EvaluationModel{
		Rating:      int(evaluation.Rating),
		Description: evaluation.Description,
		OrderID:     evaluation.OrderID.String(),
	}
	if evaluation.ID != uuid.Nil {
		model.ID = evaluation.ID.String()
	}

	db := r.getDB(ctx)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	id, err := uuid.Parse(model.ID)
	if err != nil {
		return err
	}
	evaluation.ID = id
	evaluation.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

func (r *OrderRepository) FindEvaluationByID(ctx context.Context, id uuid.UUID) (*entities.Evaluation, error) {
	var model EvaluationModel

	db := r.getDB(ctx)
	err := db.WithContext(ctx).
		Preload("Order").
		Preload("Order.User").
		Preload("Order.Status").
		Preload("Order.Variation").
		Where("id = ?", id.String()).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return evaluationToEntity(&model)
}

func (r *OrderRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *OrderRepository) toModel(order *entities.Order) *OrderModel {
	model := &OrderModel{
		Quantity:              order.Quantity,
		StripePaymentID:       order.StripePaymentID,
		StripePaymentMethodID: order.StripePaymentMethodID,
		StatusID:              order.StatusID.String(),
		UserID:                order.UserID.String(),
		ProductVariationID:    order.VariationID.String(),
	}
	if order.ID != uuid.Nil {
		model.ID = order.ID.String()
	}
	return model
}

func (r *OrderRepository) toEntity(model *OrderModel) (*entities.Order, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, err
	}
	statusID, err := uuid.Parse(model.StatusID)
	if err != nil {
		return nil, err
	}
	userID, err := uuid.Parse(model.UserID)
	if err != nil {
		return nil, err
	}
	variationID, err := uuid.Parse(model.ProductVariationID)
	if err != nil {
		return nil, err
	}

	order := &entities.Order{
		ID:                    id,
		Quantity:              model.Quantity,
		StripePaymentID:       model.StripePaymentID,
		StripePaymentMethodID: model.StripePaymentMethodID,
		StatusID:              statusID,
		UserID:                userID,
		VariationID:           variationID,
		CreatedAt:             time.Unix(model.CreatedAt, 0),
	}

	if model.Status != nil {
		sid, err := uuid.Parse(model.Status.ID)
		if err != nil {
			return nil, err
		}
		order.Status = &entities.OrderStatus{ID: sid, Name: model.Status.Name}
	}
	if model.User != nil {
		user, err := userToEntity(model.User)
		if err != nil {
			return nil, err
		}
		order.User = user
	}
	if model.Variation != nil {
		variation, err := variationToEntity(model.Variation)
		if err != nil {
			return nil, err
		}
		order.Variation = variation
	}

	return order, nil
}

func evaluationToEntity(model *EvaluationModel) (*entities.Evaluation, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, err
	}
	orderID, err := uuid.Parse(model.OrderID)
	if err != nil {
		return nil, err
	}

	evaluation := &entities.Evaluation{
		ID:          id,
		Rating:      entities.Rating(model.Rating),
		Description: model.Description,
		OrderID:     orderID,
		CreatedAt:   time.Unix(model.CreatedAt, 0),
	}

	if model.Order != nil {
		order, err := (&OrderRepository{}).toEntity(model.Order)
		if err != nil {
			return nil, err
		}
		evaluation.Order = order
	}

	return evaluation, nil
}
