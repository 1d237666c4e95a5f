package entities

import (
	"github.com/google/uuid"

	"github.com/LeandroDeJesus-S/loja-online/internal/domain/errors"
)

// StockItem relaciona loja e variação de produto com a quantidade em
// estoque. Quantidade zero significa indisponível para listagem.
type StockItem struct {
	ID          uuid.UUID
	StoreID     uuid.UUID
	VariationID uuid.UUID
	Quantity    int
	Store       *Store
	Variation   *ProductVariation
}

// Validate valida a quantidade em estoque
func (s *StockItem) Validate() error {
	if s.Quantity < 0 {
		return errors.ErrInvalidQuantity
	}
	return nil
}

// InStock indica se há pelo menos uma unidade disponível
func (s *StockItem) InStock() bool {
	return s.Quantity >= 1
}
