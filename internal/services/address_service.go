package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/LeandroDeJesus-S/loja-online/internal/domain/entities"
	"github.com/LeandroDeJesus-S/loja-online/internal/domain/ports"
	"github.com/LeandroDeJesus-S/loja-online/internal/domain/repositories"
)

// AddressService contém a lógica de negócio para endereços
type AddressService struct {
	addressRepo repositories.AddressRepository
	uow         ports.UnitOfWork
	logger      ports.Logger
}

// NewAddressService cria um novo AddressService
func NewAddressService(
	addressRepo repositories.AddressRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *AddressService {
	return &AddressService{
		addressRepo: addressRepo,
		uow:         uow,
		logger:      logger,
	}
}

// RegisterAddressInput representa os dados para cadastrar um endereço e
// vinculá-lo a um usuário e/ou loja. Pelo menos uma das referências deve
// ser enviada.
type RegisterAddressInput struct {
	Street     string
	State      string
	City       string
	PostalCode string
	Country    string
	Number     string
	Complement string
	UserID     *uuid.UUID
	StoreID    *uuid.UUID
}

// RegisterAddress valida o endereço e o vínculo e persiste os dois na
// mesma transação
func (s *AddressService) RegisterAddress(ctx context.Context, input RegisterAddressInput) (*entities.HasAddress, error) {
	owner, err := entities.NewAddressOwner(input.UserID, input.StoreID)
	if err != nil {
		return nil, err
	}

	address := &entities.Address{
		Street:     input.Street,
		State:      input.State,
		City:       input.City,
		PostalCode: input.PostalCode,
		Country:    input.Country,
	}
	if err := address.Validate(); err != nil {
		return nil, err
	}

	link := &entities.HasAddress{
		Number:     input.Number,
		Complement: input.Complement,
		Owner:      owner,
	}
	if err := link.Validate(); err != nil {
		return nil, err
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.addressRepo.Create(txCtx, address); err != nil {
			return err
		}
		link.AddressID = address.ID
		link.Address = address
		return s.addressRepo.Link(txCtx, link)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("address registered", "display", link.Display())
	return link, nil
}

// ListAddresses lista os vínculos de endereço de um dono
func (s *AddressService) ListAddresses(ctx context.Context, owner entities.AddressOwner) ([]*entities.HasAddress, error) {
	return s.addressRepo.ListLinks(ctx, owner)
}
