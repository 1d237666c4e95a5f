package entities

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	domainerrors "github.com/LeandroDeJesus-S/loja-online/internal/domain/errors"
)

func TestNewAddressOwner(t *testing.T) {
	userID := uuid.New()
	storeID := uuid.New()

	t.Run("falha quando nenhuma referência é enviada", func(t *testing.T) {
		_, err := NewAddressOwner(nil, nil)
		if !errors.Is(err, domainerrors.ErrNoOwnerRef) {
			t.Errorf("esperado ErrNoOwnerRef, veio %v", err)
		}
	})

	t.Run("aceita apenas o usuário", func(t *testing.T) {
		owner, err := NewAddressOwner(&userID, nil)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if got, ok := owner.UserID(); !ok || got != userID {
			t.Errorf("UserID() = (%v, %v)", got, ok)
		}
	})

	t.Run("aceita apenas a loja", func(t *testing.T) {
		owner, err := NewAddressOwner(nil, &storeID)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if got, ok := owner.StoreID(); !ok || got != storeID {
			t.Errorf("StoreID() = (%v, %v)", got, ok)
		}
	})

	t.Run("aceita usuário e loja ao mesmo tempo", func(t *testing.T) {
		owner, err := NewAddressOwner(&userID, &storeID)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if err := owner.Validate(); err != nil {
			t.Errorf("Validate() = %v", err)
		}
		u, s := owner.Split()
		if u == nil || s == nil || *u != userID || *s != storeID {
			t.Errorf("Split() = (%v, %v)", u, s)
		}
	})
}

func TestAddressValidate(t *testing.T) {
	valid := func() Address {
		return Address{
			Street:     "Rua das Flores",
			State:      "SP",
			City:       "Sao Paulo",
			PostalCode: "01310-100",
			Country:    "BR",
		}
	}

	t.Run("aceita endereço válido", func(t *testing.T) {
		a := valid()
		if err := a.Validate(); err != nil {
			t.Errorf("erro inesperado: %v", err)
		}
	})

	t.Run("rejeita estado fora do padrão alpha-2", func(t *testing.T) {
		a := valid()
		a.State = "São Paulo"
		if err := a.Validate(); !errors.Is(err, domainerrors.ErrInvalidState) {
			t.Errorf("esperado ErrInvalidState, veio %v", err)
		}
	})

	t.Run("rejeita país fora do padrão alpha-2", func(t *testing.T) {
		a := valid()
		a.Country = "BRA"
		if err := a.Validate(); !errors.Is(err, domainerrors.ErrInvalidCountry) {
			t.Errorf("esperado ErrInvalidCountry, veio %v", err)
		}
	})

	t.Run("rejeita código postal fora do padrão", func(t *testing.T) {
		a := valid()
		a.PostalCode = "13-100"
		if err := a.Validate(); !errors.Is(err, domainerrors.ErrInvalidPostal) {
			t.Errorf("esperado ErrInvalidPostal, veio %v", err)
		}
	})

	t.Run("Display segue o formato rua, cidade - estado / cep", func(t *testing.T) {
		a := valid()
		want := "Rua das Flores, Sao Paulo - SP / 01310-100"
		if got := a.Display(); got != want {
			t.Errorf("Display() = %q, esperado %q", got, want)
		}
	})
}

func TestHasAddressValidate(t *testing.T) {
	userID := uuid.New()

	t.Run("falha sem nenhum vínculo", func(t *testing.T) {
		h := HasAddress{Number: "42"}
		if err := h.Validate(); !errors.Is(err, domainerrors.ErrNoOwnerRef) {
			t.Errorf("esperado ErrNoOwnerRef, veio %v", err)
		}
	})

	t.Run("aceita vínculo com usuário", func(t *testing.T) {
		h := HasAddress{Number: "42", Owner: UserAddressOwner(userID)}
		if err := h.Validate(); err != nil {
			t.Errorf("erro inesperado: %v", err)
		}
	})

	t.Run("Display antepõe o número ao endereço", func(t *testing.T) {
		h := HasAddress{
			Number: "42",
			Owner:  UserAddressOwner(userID),
			Address: &Address{
				Street: "Rua A", City: "Recife", State: "PE", PostalCode: "50000-000",
			},
		}
		want := "42, Rua A, Recife - PE / 50000-000"
		if got := h.Display(); got != want {
			t.Errorf("Display() = %q, esperado %q", got, want)
		}
	})
}
