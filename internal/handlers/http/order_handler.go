package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/LeandroDeJesus-S/loja-online/internal/domain/entities"
	"github.com/LeandroDeJesus-S/loja-online/internal/domain/errors"
	"github.com/LeandroDeJesus-S/loja-online/internal/handlers/dto"
	"github.com/LeandroDeJesus-S/loja-online/internal/services"
)

// OrderHandler lida com requisições HTTP de pedidos e avaliações
type OrderHandler struct {
	orderService *services.OrderService
}

// NewOrderHandler cria um novo OrderHandler
func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// PlaceOrder registra um novo pedido
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.ExtractValidationErrors(err))
		c.JSON(http.StatusBadRequest, response)
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		response := dto.ValidationErrorResponseI18n(c, nil)
		c.JSON(http.StatusBadRequest, response)
		return
	}
	variationID, err := uuid.Parse(req.VariationID)
	if err != nil {
		response := dto.ValidationErrorResponseI18n(c, nil)
		c.JSON(http.StatusBadRequest, response)
		return
	}

	order, err := h.orderService.PlaceOrder(c.Request.Context(), services.PlaceOrderInput{
		UserID:                userID,
		VariationID:           variationID,
		StatusName:            req.Status,
		Quantity:              req.Quantity,
		StripePaymentID:       req.StripePaymentID,
		StripePaymentMethodID: req.StripePaymentMethodID,
	})
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrInvalidStatus),
			errs.Is(err, errors.ErrInvalidQuantity),
			errs.Is(err, errors.ErrInvalidPayment):
			response := dto.NewErrorResponseI18n(
				c,
				errors.ProblemTypeValidation,
				"error.validation.title",
				err.Error(),
				http.StatusBadRequest,
			)
			c.JSON(http.StatusBadRequest, response)
		default:
			response := dto.InternalErrorResponseI18n(c)
			c.JSON(http.StatusInternalServerError, response)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

// EvaluateOrder registra a avaliação de um pedido
func (h *OrderHandler) EvaluateOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response := dto.ValidationErrorResponseI18n(c, nil)
		c.JSON(http.StatusBadRequest, response)
		return
	}

	var req dto.EvaluateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.ExtractValidationErrors(err))
		c.JSON(http.StatusBadRequest, response)
		return
	}

	evaluation, err := h.orderService.Evaluate(c.Request.Context(), services.EvaluateInput{
		OrderID:     orderID,
		Rating:      entities.Rating(req.Rating),
		Description: req.Description,
	})
	if err != nil {
		if errs.Is(err, errors.ErrInvalidRating) || errs.Is(err, errors.ErrInvalidDescription) {
			response := dto.NewErrorResponseI18n(
				c,
				errors.ProblemTypeValidation,
				"error.validation.title",
				err.Error(),
				http.StatusBadRequest,
			)
			c.JSON(http.StatusBadRequest, response)
			return
		}
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEvaluationResponse(evaluation))
}
