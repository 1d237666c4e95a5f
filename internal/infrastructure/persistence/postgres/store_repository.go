package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/LeandroDeJesus-S/loja-online/internal/domain/entities"
	"github.com/LeandroDeJesus-S/loja-online/internal/domain/repositories"
	"github.com/LeandroDeJesus-S/loja-online/internal/domain/valueobjects"
)

// StoreRepository implementa repositories.StoreRepository
type StoreRepository struct {
	db *gorm.DB
}

// NewStoreRepository cria um novo StoreRepository
func NewStoreRepository(db *gorm.DB) repositories.StoreRepository {
	return &StoreRepository{db: db}
}

func (r *StoreRepository) Create(ctx context.Context, store *entities.Store) error {
	model := r.toModel(store)

	db := r.getDB(ctx)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	id, err := uuid.Parse(model.ID)
	if err != nil {
		return err
	}
	store.ID = id
	store.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

// Update grava apenas os campos mutáveis. Nome, CNPJ e created_at ficam
// fora do UPDATE.
func (r *StoreRepository) Update(ctx context.Context, store *entities.Store) error {
	model := r.toModel(store)

	db := r.getDB(ctx)
	return db.WithContext(ctx).
		Model(&StoreModel{}).
		Where("id = ?", model.ID).
		Select("slogan", "logo_path", "updated_at").
		Updates(model).Error
}

func (r *StoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Store, error) {
	return r.findOne(ctx, "id = ?", id.String())
}

func (r *StoreRepository) FindByName(ctx context.Context, name string) (*entities.Store, error) {
	return r.findOne(ctx, "name = ?", name)
}

func (r *StoreRepository) findOne(ctx context.Context, cond string, arg any) (*entities.Store, error) {
	var model StoreModel

	db := r.getDB(ctx)
	if err := db.WithContext(ctx).Where(cond, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *StoreRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *StoreRepository) toModel(store *entities.Store) *StoreModel {
	model := &StoreModel{
		Name:     store.Name,
		Slogan:   store.Slogan,
		LogoPath: store.LogoPath,
		CNPJ:     store.CNPJ.String(),
	}
	if store.ID != uuid.Nil {
		model.ID = store.ID.String()
	}
	return model
}

func (r *StoreRepository) toEntity(model *StoreModel) (*entities.Store, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, err
	}

	cnpj, err := valueobjects.NewCNPJ(model.CNPJ)
	if err != nil {
		return nil, err
	}

	return &entities.Store{
		ID:        id,
		Name:      model.Name,
		Slogan:    model.Slogan,
		LogoPath:  model.LogoPath,
		CNPJ:      cnpj,
		CreatedAt: time.Unix(model.CreatedAt, 0),
		UpdatedAt: time.Unix(model.UpdatedAt, 0),
	}, nil
}

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	model := &UserModel{
		Username: user.Username,
		Email:    user.Email.String(),
	}
	if user.ID != uuid.Nil {
		model.ID = user.ID.String()
	}

	db := r.getDB(ctx)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	id, err := uuid.Parse(model.ID)
	if err != nil {
		return err
	}
	user.ID = id
	user.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var model UserModel

	db := r.getDB(ctx)
	if err := db.WithContext(ctx).Where("id = ?", id.String()).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return userToEntity(&model)
}

func (r *UserRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

func userToEntity(model *UserModel) (*entities.User, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, err
	}

	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	return &entities.User{
		ID:        id,
		Username:  model.Username,
		Email:     email,
		CreatedAt: time.Unix(model.CreatedAt, 0),
	}, nil
}
