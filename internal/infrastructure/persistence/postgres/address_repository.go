package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/LeandroDeJesus-S/loja-online/internal/domain/entities"
	"github.com/LeandroDeJesus-S/loja-online/internal/domain/repositories"
)

// AddressRepository implementa repositories.AddressRepository
type AddressRepository struct {
	db *gorm.DB
}

// NewAddressRepository cria um novo AddressRepository
func NewAddressRepository(db *gorm.DB) repositories.AddressRepository {
	return &AddressRepository{db: db}
}

func (r *AddressRepository) Create(ctx context.Context, address *entities.Address) error {
	model := r.toModel(address)

	db := r.getDB(ctx)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	id, err := uuid.Parse(model.ID)
	if err != nil {
		return err
	}
	address.ID = id
	return nil
}

func (r *AddressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Address, error) {
	var model AddressModel

	db := r.getDB(ctx)
	if err := db.WithContext(ctx).Where("id = ?", id.String()).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *AddressRepository) Link(ctx context.Context, link *entities.HasAddress) error {
	if err := link.Owner.Validate(); err != nil {
		return err
	}

	userID, storeID := link.Owner.Split()
	model := &HasAddressModel{
		Number:     link.Number,
		Complement: link.Complement,
		AddressID:  link.AddressID.String(),
	}
	if link.ID != uuid.Nil {
		model.ID = link.ID.String()
	}
	if userID != nil {
		s := userID.String()
		model.UserID = &s
	}
	if storeID != nil {
		s := storeID.String()
		model.StoreID = &s
	}

	db := r.getDB(ctx)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	id, err := uuid.Parse(model.ID)
	if err != nil {
		return err
	}
	link.ID = id
	return nil
}

func (r *AddressRepository) ListLinks(ctx context.Context, owner entities.AddressOwner) ([]*entities.HasAddress, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}

	db := r.getDB(ctx)
	query := db.WithContext(ctx).Model(&HasAddressModel{}).Preload("Address")

	if id, ok := owner.UserID(); ok {
		query = query.Where("user_id = ?", id.String())
	}
	if id, ok := owner.StoreID(); ok {
		query = query.Where("store_id = ?", id.String())
	}

	var models []*HasAddressModel
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	result := make([]*entities.HasAddress, 0, len(models))
	for _, model := range models {
		entity, err := r.linkToEntity(model)
		if err != nil {
			return nil, err
		}
		result = append(result, entity)
	}
	return result, nil
}

func (r *AddressRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *AddressRepository) toModel(address *entities.Address) *AddressModel {
	model := &AddressModel{
		Street:     address.Street,
		State:      address.State,
		City:       address.City,
		PostalCode: address.PostalCode,
		Country:    address.Country,
	}
	if address.ID != uuid.Nil {
		model.ID = address.ID.String()
	}
	return model
}

func (r *AddressRepository) toEntity(model *AddressModel) (*entities.Address, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, err
	}

	return &entities.Address{
		ID:         id,
		Street:     model.Street,
		State:      model.State,
		City:       model.City,
		PostalCode: model.PostalCode,
		Country:    model.Country,
	}, nil
}

func (r *AddressRepository) linkToEntity(model *HasAddressModel) (*entities.HasAddress, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, err
	}
	addressID, err := uuid.Parse(model.AddressID)
	if err != nil {
		return nil, err
	}

	var userID, storeID *uuid.UUID
	if model.UserID != nil {
		parsed, err := uuid.Parse(*model.UserID)
		if err != nil {
			return nil, err
		}
		userID = &parsed
	}
	if model.StoreID != nil {
		parsed, err := uuid.Parse(*model.StoreID)
		if err != nil {
			return nil, err
		}
		storeID = &parsed
	}

	owner, err := entities.NewAddressOwner(userID, storeID)
	if err != nil {
		return nil, err
	}

	link := &entities.HasAddress{
		ID:         id,
		Number:     model.Number,
		Complement: model.Complement,
		Owner:      owner,
		AddressID:  addressID,
	}

	if model.Address != nil {
		address, err := r.toEntity(model.Address)
		if err != nil {
			return nil, err
		}
		link.Address = address
	}

	return link, nil
}
