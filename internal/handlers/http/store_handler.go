package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LeandroDeJesus-S/loja-online/internal/domain/errors"
	"github.com/LeandroDeJesus-S/loja-online/internal/handlers/dto"
	"github.com/LeandroDeJesus-S/loja-online/internal/services"
)

// StoreHandler lida com requisições HTTP relacionadas a lojas
type StoreHandler struct {
	storeService *services.StoreService
}

// NewStoreHandler cria um novo StoreHandler
func NewStoreHandler(storeService *services.StoreService) *StoreHandler {
	return &StoreHandler{
		storeService: storeService,
	}
}

// CreateStore cria uma nova loja
func (h *StoreHandler) CreateStore(c *gin.Context) {
	var req dto.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.ExtractValidationErrors(err))
		c.JSON(http.StatusBadRequest, response)
		return
	}

	store, err := h.storeService.CreateStore(c.Request.Context(), services.CreateStoreInput{
		Name:     req.Name,
		Slogan:   req.Slogan,
		LogoPath: req.LogoPath,
		CNPJ:     req.CNPJ,
	})
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrCNPJLength),
			errs.Is(err, errors.ErrCNPJChecksum),
			errs.Is(err, errors.ErrInvalidName):
			response := dto.NewErrorResponseI18n(
				c,
				errors.ProblemTypeValidation,
				"error.validation.title",
				err.Error(),
				http.StatusBadRequest,
			)
			c.JSON(http.StatusBadRequest, response)
		case errs.Is(err, errors.ErrNameAlreadyUsed):
			response := dto.ConflictErrorResponseI18n(c, "error.name_already_used")
			c.JSON(http.StatusConflict, response)
		default:
			response := dto.InternalErrorResponseI18n(c)
			c.JSON(http.StatusInternalServerError, response)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToStoreResponse(store))
}

// UpdateStore atualiza o slogan e o logo de uma loja
func (h *StoreHandler) UpdateStore(c *gin.Context) {
	var req dto.UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.ExtractValidationErrors(err))
		c.JSON(http.StatusBadRequest, response)
		return
	}

	store, err := h.storeService.UpdateStore(c.Request.Context(), services.UpdateStoreInput{
		ID:       c.Param("id"),
		Slogan:   req.Slogan,
		LogoPath: req.LogoPath,
	})
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrStoreNotFound):
			response := dto.NotFoundErrorResponseI18n(c, "Store")
			c.JSON(http.StatusNotFound, response)
		case errs.Is(err, errors.ErrInvalidName):
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

	c.JSON(http.StatusOK, dto.ToStoreResponse(store))
}

// GetStore busca uma loja por ID
func (h *StoreHandler) GetStore(c *gin.Context) {
	id := c.Param("id")

	store, err := h.storeService.GetStore(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errors.ErrStoreNotFound) {
			response := dto.NotFoundErrorResponseI18n(c, "Store")
			c.JSON(http.StatusNotFound, response)
			return
		}
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, dto.ToStoreResponse(store))
}
