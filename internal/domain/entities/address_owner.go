package entities

import (
	"github.com/google/uuid"

	"github.com/LeandroDeJesus-S/loja-online/internal/domain/errors"
)

// AddressOwner identifica a quem um endereço está vinculado: um usuário,
// uma loja, ou ambos. Pelo menos uma das referências deve existir.
type AddressOwner struct {
	userID  *uuid.UUID
	storeID *uuid.UUID
}

// UserAddressOwner cria o vínculo apenas com um usuário
func UserAddressOwner(userID uuid.UUID) AddressOwner {
	return AddressOwner{userID: &userID}
}

// StoreAddressOwner cria o vínculo apenas com uma loja
func StoreAddressOwner(storeID uuid.UUID) AddressOwner {
	return AddressOwner{storeID: &storeID}
}

// NewAddressOwner constrói o vínculo a partir do par de referências
// opcionais. Nenhuma preenchida retorna errors.ErrNoOwnerRef; ambas
// preenchidas é permitido.
func NewAddressOwner(userID, storeID *uuid.UUID) (AddressOwner, error) {
	if userID == nil && storeID == nil {
		return AddressOwner{}, errors.ErrNoOwnerRef
	}
	o := AddressOwner{}
	if userID != nil {
		id := *userID
		o.userID = &id
	}
	if storeID != nil {
		id := *storeID
		o.storeID = &id
	}
	return o, nil
}

// Validate garante que pelo menos uma referência existe
func (o AddressOwner) Validate() error {
	if o.userID == nil && o.storeID == nil {
		return errors.ErrNoOwnerRef
	}
	return nil
}

// UserID retorna a referência ao usuário, se houver
func (o AddressOwner) UserID() (uuid.UUID, bool) {
	if o.userID == nil {
		return uuid.Nil, false
	}
	return *o.userID, true
}

// StoreID retorna a referência à loja, se houver
func (o AddressOwner) StoreID() (uuid.UUID, bool) {
	if o.storeID == nil {
		return uuid.Nil, false
	}
	return *o.storeID, true
}

// Split converte o vínculo de volta para o par de colunas anuláveis
func (o AddressOwner) Split() (userID, storeID *uuid.UUID) {
	if o.userID != nil {
		id := *o.userID
		userID = &id
	}
	if o.storeID != nil {
		id := *o.storeID
		storeID = &id
	}
	return userID, storeID
}
