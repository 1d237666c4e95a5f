package dto

import (
	"time"

	"github.com/LeandroDeJesus-S/loja-online/internal/domain/entities"
)

// PlaceOrderRequest representa a requisição para registrar um pedido
type PlaceOrderRequest struct {
	UserID                string `json:"user_id" binding:"required,uuid"`
	VariationID           string `json:"variation_id" binding:"required,uuid"`
	Status                string `json:"status" binding:"required"`
	Quantity              int    `json:"quantity" binding:"required,min=1"`
	StripePaymentID       string `json:"stripe_payment_id" binding:"omitempty"`
	StripePaymentMethodID string `json:"stripe_payment_method_id" binding:"omitempty"`
}

// OrderResponse representa a resposta de um pedido
type OrderResponse struct {
	ID          string    `json:"id"`
	Quantity    int       `json:"quantity"`
	StatusID    string    `json:"status_id"`
	UserID      string    `json:"user_id"`
	VariationID string    `json:"variation_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToOrderResponse converte uma entidade Order para OrderResponse
func ToOrderResponse(order *entities.Order) OrderResponse {
	return OrderResponse{
		ID:          order.ID.String(),
		Quantity:    order.Quantity,
		StatusID:    order.StatusID.String(),
		UserID:      order.UserID.String(),
		VariationID: order.VariationID.String(),
		CreatedAt:   order.CreatedAt,
	}
}

// EvaluateOrderRequest representa a requisição para avaliar um pedido
type EvaluateOrderRequest struct {
	Rating      int    `json:"rating" binding:"required,min=1,max=5"`
	Description string `json:"description" binding:"omitempty,max=255"`
}

// EvaluationResponse representa a resposta de uma avaliação
type EvaluationResponse struct {
	ID          string    `json:"id"`
	Rating      int       `json:"rating"`
	RatingLabel string    `json:"rating_label"`
	Description string    `json:"description,omitempty"`
	OrderID     string    `json:"order_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToEvaluationResponse converte uma entidade Evaluation
func ToEvaluationResponse(evaluation *entities.Evaluation) EvaluationResponse {
	return EvaluationResponse{
		ID:          evaluation.ID.String(),
		Rating:      int(evaluation.Rating),
		RatingLabel: evaluation.Rating.Label(),
		Description: evaluation.Description,
		OrderID:     evaluation.OrderID.String(),
		CreatedAt:   evaluation.CreatedAt,
	}
}
