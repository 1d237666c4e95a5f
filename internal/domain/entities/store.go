package entities

import (
	"time"

	"github.com/google/uuid"

	"github.com/LeandroDeJesus-S/loja-online/internal/domain/errors"
	"github.com/LeandroDeJesus-S/loja-online/internal/domain/valueobjects"
)

const (
	StoreNameMinLen   = 2
	StoreNameMaxLen   = 45
	StoreSloganMaxLen = 100

	// Dimensão máxima do logo; o arquivo é redimensionado após persistir
	StoreLogoMaxWidth  = 360
	StoreLogoMaxHeight = 360
)

// Store representa uma loja
type Store struct {
	ID        uuid.UUID
	Name      string
	Slogan    string
	LogoPath  string
	CNPJ      valueobjects.CNPJ
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *Store) String() string {
	return s.Name
}

// Validate valida regras de negócio da entidade Store.
// O nome deve ser único (garantido pela persistência), ter de 2 a 45
// caracteres e conter apenas letras, dígitos, espaços e "_".
func (s *Store) Validate() error {
	if len(s.Name) < StoreNameMinLen || len(s.Name) > StoreNameMaxLen {
		return errors.ErrInvalidName
	}
	if !basicTextPattern.MatchString(s.Name) {
		return errors.ErrInvalidName
	}
	if s.Slogan == "" || len(s.Slogan) > StoreSloganMaxLen {
		return errors.ErrInvalidName
	}
	if s.CNPJ.IsZero() {
		return errors.ErrCNPJLength
	}
	return nil
}
