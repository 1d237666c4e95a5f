package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/LeandroDeJesus-S/loja-online/internal/domain/errors"
	"github.com/LeandroDeJesus-S/loja-online/internal/domain/valueobjects"
)

const (
	VariationNameMaxLen  = 45
	VariationSizeMaxLen  = 4
	VariationColorMaxLen = 20
)

// ProductVariation representa uma variação de produto (ex.: tamanho G,
// cor azul) com o respectivo preço
type ProductVariation struct {
	ID        uuid.UUID
	Name      string
	Size      string
	Color     string
	Slug      string
	Price     decimal.Decimal
	ProductID uuid.UUID
	Product   *Product
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (v *ProductVariation) String() string {
	return v.Name
}

// EnsureSlug deriva o slug a partir do nome na primeira persistência.
// Uma vez definido, o slug nunca é recalculado.
func (v *ProductVariation) EnsureSlug() {
	v.Slug = valueobjects.EnsureSlug(v.Slug, v.Name)
}

// Validate valida regras de negócio da entidade ProductVariation
func (v *ProductVariation) Validate() error {
	if v.Name == "" || len(v.Name) > VariationNameMaxLen || !basicTextPattern.MatchString(v.Name) {
		return errors.ErrInvalidName
	}
	if v.Size == "" || len(v.Size) > VariationSizeMaxLen || !basicTextPattern.MatchString(v.Size) {
		return errors.ErrInvalidName
	}
	// Cor: apenas letras e espaços, sem acentuações (ex.: azul e rosa)
	if v.Color == "" || len(v.Color) > VariationColorMaxLen || !lettersPattern.MatchString(v.Color) {
		return errors.ErrInvalidName
	}
	if v.Price.IsNegative() {
		return errors.ErrInvalidPrice
	}
	return nil
}
