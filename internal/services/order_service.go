package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/LeandroDeJesus-S/loja-online/internal/domain/entities"
	"github.com/LeandroDeJesus-S/loja-online/internal/domain/errors"
	"github.com/LeandroDeJesus-S/loja-online/internal/domain/ports"
	"github.com/LeandroDeJesus-S/loja-online/internal/domain/repositories"
)

// OrderService contém a lógica de negócio para pedidos e avaliações
type OrderService struct {
	orderRepo repositories.OrderRepository
	logger    ports.Logger
}

// NewOrderService cria um novo OrderService
func NewOrderService(orderRepo repositories.OrderRepository, logger ports.Logger) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// PlaceOrderInput representa os dados para registrar um pedido
type PlaceOrderInput struct {
	UserID                uuid.UUID
	VariationID           uuid.UUID
	StatusName            string
	Quantity              int
	StripePaymentID       string
	StripePaymentMethodID string
}

// PlaceOrder resolve o status pelo nome, valida e persiste o pedido
func (s *OrderService) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*entities.Order, error) {
	status, err := s.orderRepo.FindStatusByName(ctx, input.StatusName)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, errors.ErrInvalidStatus
	}

	order := &entities.Order{
		Quantity:              input.Quantity,
		StripePaymentID:       input.StripePaymentID,
		StripePaymentMethodID: input.StripePaymentMethodID,
		StatusID:              status.ID,
		UserID:                input.UserID,
		VariationID:           input.VariationID,
	}

	if err := order.Validate(); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("order placed", "order_id", order.ID.String())
	return order, nil
}

// EvaluateInput representa os dados para avaliar um pedido
type EvaluateInput struct {
	OrderID     uuid.UUID
	Rating      entities.Rating
	Description string
}

// Evaluate valida e persiste a avaliação de um pedido
func (s *OrderService) Evaluate(ctx context.Context, input EvaluateInput) (*entities.Evaluation, error) {
	evaluation := &entities.Evaluation{
		Rating:      input.Rating,
		Description: input.Description,
		OrderID:     input.OrderID,
	}

	if err := evaluation.Validate(); err != nil {
		return nil, err
	}

	if err := s.orderRepo.CreateEvaluation(ctx, evaluation); err != nil {
		return nil, err
	}

	return evaluation, nil
}
