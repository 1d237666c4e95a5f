package dto

import (
	"time"

	"github.com/LeandroDeJesus-S/loja-online/internal/domain/entities"
)

// CreateStoreRequest representa a requisição para criar uma loja
type CreateStoreRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=45"`
	Slogan   string `json:"slogan" binding:"required,max=100"`
	LogoPath string `json:"logo_path" binding:"omitempty"`
	CNPJ     string `json:"cnpj" binding:"required"`
}

// UpdateStoreRequest representa a requisição para atualizar uma loja.
// Nome e CNPJ não são atualizáveis.
type UpdateStoreRequest struct {
	Slogan   string `json:"slogan" binding:"required,max=100"`
	LogoPath string `json:"logo_path" binding:"omitempty"`
}

// StoreResponse representa a resposta de uma loja
type StoreResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slogan    string    `json:"slogan"`
	LogoPath  string    `json:"logo_path,omitempty"`
	CNPJ      string    `json:"cnpj"`
	CreatedAt time.Time `json:"created_at"`
}

// ToStoreResponse converte uma entidade Store para StoreResponse
func ToStoreResponse(store *entities.Store) StoreResponse {
	return StoreResponse{
		ID:        store.ID.String(),
		Name:      store.Name,
		Slogan:    store.Slogan,
		LogoPath:  store.LogoPath,
		CNPJ:      store.CNPJ.Formatted(),
		CreatedAt: store.CreatedAt,
	}
}
