package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LeandroDeJesus-S/loja-online/internal/domain/errors"
	"github.com/LeandroDeJesus-S/loja-online/internal/handlers/dto"
	"github.com/LeandroDeJesus-S/loja-online/internal/services"
)

// ProductHandler lida com requisições HTTP do catálogo de produtos
type ProductHandler struct {
	catalogService *services.CatalogService
}

// NewProductHandler cria um novo ProductHandler
func NewProductHandler(catalogService *services.CatalogService) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
	}
}

// ListProducts lista produtos em estoque, com busca textual e ordenação.
// Chave de ordenação desconhecida é rejeitada com 400; não há fallback.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var req dto.ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.ExtractValidationErrors(err))
		c.JSON(http.StatusBadRequest, response)
		return
	}
	if req.Page < 1 {
		req.Page = 1
	}

	products, err := h.catalogService.ListProducts(c.Request.Context(), req.Search, req.Ordering, req.Page)
	if err != nil {
		if errs.Is(err, errors.ErrUnknownOrdering) {
			response := dto.NewErrorResponseI18n(
				c,
				errors.ProblemTypeBadRequest,
				"error.bad_request.title",
				"error.unknown_ordering",
				http.StatusBadRequest,
			)
			c.JSON(http.StatusBadRequest, response)
			return
		}
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": dto.ToProductResponses(products),
		"page":     req.Page,
	})
}

// GetProduct busca um produto pelo slug
func (h *ProductHandler) GetProduct(c *gin.Context) {
	slug := c.Param("slug")

	product, err := h.catalogService.GetProductBySlug(c.Request.Context(), slug)
	if err != nil {
		if errs.Is(err, errors.ErrProductNotFound) {
			response := dto.NotFoundErrorResponseI18n(c, "Product")
			c.JSON(http.StatusNotFound, response)
			return
		}
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}
