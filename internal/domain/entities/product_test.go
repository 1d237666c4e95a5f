package entities

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	domainerrors "github.com/LeandroDeJesus-S/loja-online/internal/domain/errors"
)

func TestProductEnsureSlug(t *testing.T) {
	t.Run("deriva o slug na primeira persistência", func(t *testing.T) {
		p := Product{Name: "Camiseta Básica"}
		p.EnsureSlug()
		if p.Slug != "camiseta-basica" {
			t.Errorf("Slug = %q", p.Slug)
		}
	})

	t.Run("é idempotente e imutável depois de definido", func(t *testing.T) {
		p := Product{Name: "Camiseta Básica", Slug: "camiseta-basica"}
		p.Name = "Outro Nome"
		p.EnsureSlug()
		if p.Slug != "camiseta-basica" {
			t.Errorf("slug foi recalculado: %q", p.Slug)
		}
	})
}

func TestProductValidate(t *testing.T) {
	t.Run("aceita produto válido", func(t *testing.T) {
		p := Product{Name: "Tenis Runner 42"}
		if err := p.Validate(); err != nil {
			t.Errorf("erro inesperado: %v", err)
		}
	})

	t.Run("rejeita nome com menos de 2 caracteres", func(t *testing.T) {
		p := Product{Name: "T"}
		if err := p.Validate(); !errors.Is(err, domainerrors.ErrInvalidName) {
			t.Errorf("esperado ErrInvalidName, veio %v", err)
		}
	})

	t.Run("rejeita nome com caracteres fora do conjunto", func(t *testing.T) {
		p := Product{Name: "Tenis; DROP TABLE"}
		if err := p.Validate(); !errors.Is(err, domainerrors.ErrInvalidName) {
			t.Errorf("esperado ErrInvalidName, veio %v", err)
		}
	})

	t.Run("rejeita descrição acima de 500 caracteres", func(t *testing.T) {
		p := Product{Name: "Tenis Runner", Description: strings.Repeat("a", ProductDescMaxLen+1)}
		if err := p.Validate(); !errors.Is(err, domainerrors.ErrInvalidName) {
			t.Errorf("esperado ErrInvalidName, veio %v", err)
		}
	})
}

func TestProductVariationValidate(t *testing.T) {
	valid := func() ProductVariation {
		return ProductVariation{
			Name:  "Tenis Runner azul G",
			Size:  "G",
			Color: "azul",
			Price: decimal.NewFromFloat(149.90),
		}
	}

	t.Run("aceita variação válida", func(t *testing.T) {
		v := valid()
		if err := v.Validate(); err != nil {
			t.Errorf("erro inesperado: %v", err)
		}
	})

	t.Run("aceita preço zero", func(t *testing.T) {
		v := valid()
		v.Price = decimal.Zero
		if err := v.Validate(); err != nil {
			t.Errorf("erro inesperado: %v", err)
		}
	})

	t.Run("rejeita preço negativo", func(t *testing.T) {
		v := valid()
		v.Price = decimal.NewFromFloat(-0.01)
		if err := v.Validate(); !errors.Is(err, domainerrors.ErrInvalidPrice) {
			t.Errorf("esperado ErrInvalidPrice, veio %v", err)
		}
	})

	t.Run("rejeita cor com dígitos", func(t *testing.T) {
		v := valid()
		v.Color = "azul 2"
		if err := v.Validate(); !errors.Is(err, domainerrors.ErrInvalidName) {
			t.Errorf("esperado ErrInvalidName, veio %v", err)
		}
	})

	t.Run("slug derivado uma única vez", func(t *testing.T) {
		v := valid()
		v.EnsureSlug()
		first := v.Slug
		v.Name = "Tenis Runner rosa P"
		v.EnsureSlug()
		if v.Slug != first {
			t.Errorf("slug foi recalculado: %q -> %q", first, v.Slug)
		}
	})
}
