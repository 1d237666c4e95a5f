package services

import (
	"context"

	"github.com/LeandroDeJesus-S/loja-online/internal/domain/entities"
	"github.com/LeandroDeJesus-S/loja-online/internal/domain/errors"
	"github.com/LeandroDeJesus-S/loja-online/internal/domain/ports"
	"github.com/LeandroDeJesus-S/loja-online/internal/domain/repositories"
	"github.com/LeandroDeJesus-S/loja-online/internal/domain/valueobjects"
)

// StoreService contém a lógica de negócio para lojas
type StoreService struct {
	storeRepo repositories.StoreRepository
	resizer   ports.ImageResizer
	uow       ports.UnitOfWork
	logger    ports.Logger
}

// NewStoreService cria um novo StoreService
func NewStoreService(
	storeRepo repositories.StoreRepository,
	resizer ports.ImageResizer,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *StoreService {
	return &StoreService{
		storeRepo: storeRepo,
		resizer:   resizer,
		uow:       uow,
		logger:    logger,
	}
}

// CreateStoreInput representa os dados para criar uma loja
type CreateStoreInput struct {
	Name     string
	Slogan   string
	LogoPath string
	CNPJ     string
}

// CreateStore executa o pipeline de criação da loja: valida o CNPJ,
// valida a entidade, persiste e por fim redimensiona o logo para caber
// em 360x360
func (s *StoreService) CreateStore(ctx context.Context, input CreateStoreInput) (*entities.Store, error) {
	cnpj, err := valueobjects.NewCNPJ(input.CNPJ)
	if err != nil {
		return nil, err
	}

	store := &entities.Store{
		Name:     input.Name,
		Slogan:   input.Slogan,
		LogoPath: input.LogoPath,
		CNPJ:     cnpj,
	}

	if err := store.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.storeRepo.FindByName(ctx, store.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrNameAlreadyUsed
	}

	if err := s.storeRepo.Create(ctx, store); err != nil {
		return nil, err
	}

	if store.LogoPath != "" {
		err := s.resizer.FitWithin(store.LogoPath, entities.StoreLogoMaxWidth, entities.StoreLogoMaxHeight)
		if err != nil {
			return nil, err
		}
	}

	s.logger.Info("store created", "name", store.Name, "cnpj", store.CNPJ.Formatted())
	return store, nil
}

// UpdateStoreInput representa os dados para atualizar uma loja
type UpdateStoreInput struct {
	ID       string
	Slogan   string
	LogoPath string
}

// UpdateStore atualiza o slogan e o logo de uma loja. Nome e CNPJ são
// imutáveis após a criação.
func (s *StoreService) UpdateStore(ctx context.Context, input UpdateStoreInput) (*entities.Store, error) {
	storeID, err := parseID(input.ID)
	if err != nil {
		return nil, errors.ErrStoreNotFound
	}

	store, err := s.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, errors.ErrStoreNotFound
	}

	store.Slogan = input.Slogan
	if input.LogoPath != "" {
		store.LogoPath = input.LogoPath
	}

	if err := store.Validate(); err != nil {
		return nil, err
	}

	if err := s.storeRepo.Update(ctx, store); err != nil {
		return nil, err
	}

	if input.LogoPath != "" {
		err := s.resizer.FitWithin(store.LogoPath, entities.StoreLogoMaxWidth, entities.StoreLogoMaxHeight)
		if err != nil {
			return nil, err
		}
	}

	s.logger.Info("store updated", "name", store.Name)
	return store, nil
}

// GetStore busca uma loja por ID
func (s *StoreService) GetStore(ctx context.Context, id string) (*entities.Store, error) {
	storeID, err := parseID(id)
	if err != nil {
		return nil, errors.ErrStoreNotFound
	}

	store, err := s.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, errors.ErrStoreNotFound
	}
	return store, nil
}
