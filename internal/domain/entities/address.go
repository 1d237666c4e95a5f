package entities

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/LeandroDeJesus-S/loja-online/internal/domain/errors"
)

const (
	AddressStreetMaxLen    = 100
	AddressCityMaxLen      = 45
	HasAddressNumberMaxLen = 10
	HasAddressCompMaxLen   = 100
)

// Address representa um endereço físico
type Address struct {
	ID         uuid.UUID
	Street     string
	State      string
	City       string
	PostalCode string
	Country    string
}

// Validate valida regras de negócio da entidade Address.
// Estado e país seguem ISO-3166 alpha-2; o código postal segue o
// padrão regional.
func (a *Address) Validate() error {
	if a.Street == "" || len(a.Street) > AddressStreetMaxLen {
		return errors.ErrInvalidStreet
	}
	if a.City == "" || len(a.City) > AddressCityMaxLen {
		return errors.ErrInvalidCity
	}
	if !iso3166a2Pattern.MatchString(a.State) {
		return errors.ErrInvalidState
	}
	if !iso3166a2Pattern.MatchString(a.Country) {
		return errors.ErrInvalidCountry
	}
	if !postalCodePattern.MatchString(a.PostalCode) {
		return errors.ErrInvalidPostal
	}
	return nil
}

// Display retorna o endereço como 'rua, cidade - estado / código postal'
func (a *Address) Display() string {
	return fmt.Sprintf("%s, %s - %s / %s", a.Street, a.City, a.State, a.PostalCode)
}

// HasAddress é a entidade de ligação entre endereço e usuário e/ou loja,
// carregando número e complemento
type HasAddress struct {
	ID         uuid.UUID
	Number     string
	Complement string
	Owner      AddressOwner
	AddressID  uuid.UUID

	Address *Address
}

// Validate valida o número, o complemento e a cardinalidade do vínculo
func (h *HasAddress) Validate() error {
	if h.Number == "" || len(h.Number) > HasAddressNumberMaxLen {
		return errors.ErrInvalidName
	}
	if len(h.Complement) > HasAddressCompMaxLen {
		return errors.ErrInvalidName
	}
	return h.Owner.Validate()
}

// Display retorna 'número, endereço'
func (h *HasAddress) Display() string {
	addr := ""
	if h.Address != nil {
		addr = h.Address.Display()
	}
	return fmt.Sprintf("%s, %s", h.Number, addr)
}
