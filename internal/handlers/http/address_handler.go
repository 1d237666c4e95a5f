package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LeandroDeJesus-S/loja-online/internal/domain/errors"
	"github.com/LeandroDeJesus-S/loja-online/internal/handlers/dto"
	"github.com/LeandroDeJesus-S/loja-online/internal/services"
)

// AddressHandler lida com requisições HTTP de endereços
type AddressHandler struct {
	addressService *services.AddressService
}

// NewAddressHandler cria um novo AddressHandler
func NewAddressHandler(addressService *services.AddressService) *AddressHandler {
	return &AddressHandler{
		addressService: addressService,
	}
}

// RegisterAddress cadastra um endereço vinculado a um usuário e/ou loja
func (h *AddressHandler) RegisterAddress(c *gin.Context) {
	var req dto.RegisterAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.ExtractValidationErrors(err))
		c.JSON(http.StatusBadRequest, response)
		return
	}

	userID, err := parseOptionalID(req.UserID)
	if err != nil {
		response := dto.ValidationErrorResponseI18n(c, nil)
		c.JSON(http.StatusBadRequest, response)
		return
	}
	storeID, err := parseOptionalID(req.StoreID)
	if err != nil {
		response := dto.ValidationErrorResponseI18n(c, nil)
		c.JSON(http.StatusBadRequest, response)
		return
	}

	link, err := h.addressService.RegisterAddress(c.Request.Context(), services.RegisterAddressInput{
		Street:     req.Street,
		State:      req.State,
		City:       req.City,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		Number:     req.Number,
		Complement: req.Complement,
		UserID:     userID,
		StoreID:    storeID,
	})
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrNoOwnerRef),
			errs.Is(err, errors.ErrInvalidName),
			errs.Is(err, errors.ErrInvalidStreet),
			errs.Is(err, errors.ErrInvalidCity),
			errs.Is(err, errors.ErrInvalidState),
			errs.Is(err, errors.ErrInvalidCountry),
			errs.Is(err, errors.ErrInvalidPostal):
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

	c.JSON(http.StatusCreated, dto.ToHasAddressResponse(link))
}
