package entities

import (
	"github.com/google/uuid"

	"github.com/LeandroDeJesus-S/loja-online/internal/domain/errors"
)

const CategoryNameMaxLen = 45

// Category representa uma categoria de produtos
type Category struct {
	ID   uuid.UUID
	Name string
}

func (c *Category) String() string {
	return c.Name
}

// Validate valida o nome da categoria: alfanumérico separado por
// espaços ou "_"
func (c *Category) Validate() error {
	if c.Name == "" || len(c.Name) > CategoryNameMaxLen {
		return errors.ErrInvalidName
	}
	if !basicTextPattern.MatchString(c.Name) {
		return errors.ErrInvalidName
	}
	return nil
}
