package dto

import (
	"time"

	"github.com/LeandroDeJesus-S/loja-online/internal/domain/entities"
)

// ListProductsRequest representa os parâmetros de consulta da listagem
// de produtos
type ListProductsRequest struct {
	Search   string `form:"search"`
	Ordering string `form:"ordering"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
}

// VariationResponse representa a resposta de uma variação de produto
type VariationResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Size  string `json:"size"`
	Color string `json:"color"`
	Slug  string `json:"slug"`
	Price string `json:"price"`
}

// CategoryResponse representa a resposta de uma categoria
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProductResponse representa a resposta de um produto
type ProductResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Slug        string              `json:"slug"`
	Description string              `json:"description,omitempty"`
	Thumbnail   string              `json:"thumbnail,omitempty"`
	Categories  []CategoryResponse  `json:"categories,omitempty"`
	Variations  []VariationResponse `json:"variations,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

// ToProductResponse converte uma entidade Product para ProductResponse
func ToProductResponse(product *entities.Product) ProductResponse {
	categories := make([]CategoryResponse, len(product.Categories))
	for i, cat := range product.Categories {
		categories[i] = CategoryResponse{ID: cat.ID.String(), Name: cat.Name}
	}

	variations := make([]VariationResponse, len(product.Variations))
	for i, v := range product.Variations {
		variations[i] = VariationResponse{
			ID:    v.ID.String(),
			Name:  v.Name,
			Size:  v.Size,
			Color: v.Color,
			Slug:  v.Slug,
			Price: v.Price.StringFixed(2),
		}
	}

	return ProductResponse{
		ID:          product.ID.String(),
		Name:        product.Name,
		Slug:        product.Slug,
		Description: product.Description,
		Thumbnail:   product.ThumbnailPath,
		Categories:  categories,
		Variations:  variations,
		CreatedAt:   product.CreatedAt,
	}
}

// ToProductResponses converte uma lista de entidades Product
func ToProductResponses(products []*entities.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i, product := range products {
		responses[i] = ToProductResponse(product)
	}
	return responses
}
