package dto

import (
	"github.com/LeandroDeJesus-S/loja-online/internal/domain/entities"
)

// RegisterAddressRequest representa a requisição para cadastrar um
// endereço vinculado a um usuário e/ou loja (pelo menos um)
type RegisterAddressRequest struct {
	Street     string  `json:"street" binding:"required,max=100"`
	State      string  `json:"state" binding:"required,len=2"`
	City       string  `json:"city" binding:"required,max=45"`
	PostalCode string  `json:"postal_code" binding:"required"`
	Country    string  `json:"country" binding:"required,len=2"`
	Number     string  `json:"number" binding:"required,max=10"`
	Complement string  `json:"complement" binding:"omitempty,max=100"`
	UserID     *string `json:"user_id" binding:"omitempty,uuid"`
	StoreID    *string `json:"store_id" binding:"omitempty,uuid"`
}

// HasAddressResponse representa a resposta de um vínculo de endereço
type HasAddressResponse struct {
	ID         string  `json:"id"`
	Number     string  `json:"number"`
	Complement string  `json:"complement,omitempty"`
	AddressID  string  `json:"address_id"`
	UserID     *string `json:"user_id,omitempty"`
	StoreID    *string `json:"store_id,omitempty"`
	Display    string  `json:"display"`
}

// ToHasAddressResponse converte uma entidade HasAddress
func ToHasAddressResponse(link *entities.HasAddress) HasAddressResponse {
	response := HasAddressResponse{
		ID:         link.ID.String(),
		Number:     link.Number,
		Complement: link.Complement,
		AddressID:  link.AddressID.String(),
		Display:    link.Display(),
	}
	userID, storeID := link.Owner.Split()
	if userID != nil {
		id := userID.String()
		response.UserID = &id
	}
	if storeID != nil {
		id := storeID.String()
		response.StoreID = &id
	}
	return response
}

// ToHasAddressResponses converte uma lista de entidades HasAddress
func ToHasAddressResponses(links []*entities.HasAddress) []HasAddressResponse {
	responses := make([]HasAddressResponse, len(links))
	for i, link := range links {
		responses[i] = ToHasAddressResponse(link)
	}
	return responses
}
