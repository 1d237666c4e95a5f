package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/LeandroDeJesus-S/loja-online/internal/domain/entities"
	"github.com/LeandroDeJesus-S/loja-online/internal/domain/repositories"
)

// MediaFileRepository implementa repositories.MediaFileRepository.
// A cardinalidade do dono chega aqui já validada; a CHECK constraint do
// model é a segunda linha de defesa.
type MediaFileRepository struct {
	db *gorm.DB
}

// NewMediaFileRepository cria um novo MediaFileRepository
func NewMediaFileRepository(db *gorm.DB) repositories.MediaFileRepository {
	return &MediaFileRepository{db: db}
}

func (r *MediaFileRepository) Create(ctx context.Context, media *entities.MediaFile) error {
	if err := media.Owner.Validate(); err != nil {
		return err
	}

	model := r.toModel(media)

	db := r.getDB(ctx)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	id, err := uuid.Parse(model.ID)
	if err != nil {
		return err
	}
	media.ID = id
	media.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

func (r *MediaFileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.MediaFile, error) {
	var model MediaFileModel

	db := r.getDB(ctx)
	err := db.WithContext(ctx).Where("id = ?", id.String()).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *MediaFileRepository) ListByOwner(ctx context.Context, owner entities.MediaOwner) ([]*entities.MediaFile, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}

	db := r.getDB(ctx)
	query := db.WithContext(ctx).Model(&MediaFileModel{})

	if id, ok := owner.EvaluationID(); ok {
		query = query.Where("evaluation_id = ?", id.String())
	} else if id, ok := owner.VariationID(); ok {
		query = query.Where("product_variation_id = ?", id.String())
	}

	var models []*MediaFileModel
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	result := make([]*entities.MediaFile, 0, len(models))
	for _, model := range models {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		result = append(result, entity)
	}
	return result, nil
}

func (r *MediaFileRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *MediaFileRepository) toModel(media *entities.MediaFile) *MediaFileModel {
	evalID, varID := media.Owner.Split()

	model := &MediaFileModel{
		FilePath: media.FilePath,
		FileSize: media.FileSize,
	}
	if media.ID != uuid.Nil {
		model.ID = media.ID.String()
	}
	if evalID != nil {
		s := evalID.String()
		model.EvaluationID = &s
	}
	if varID != nil {
		s := varID.String()
		model.ProductVariationID = &s
	}
	return model
}

func (r *MediaFileRepository) toEntity(model *MediaFileModel) (*entities.MediaFile, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, err
	}

	var evalID, varID *uuid.UUID
	if model.EvaluationID != nil {
		parsed, err := uuid.Parse(*model.EvaluationID)
		if err != nil {
			return nil, err
		}
		evalID = &parsed
	}
	if model.ProductVariationID != nil {
		parsed, err := uuid.Parse(*model.ProductVariationID)
		if err != nil {
			return nil, err
		}
		varID = &parsed
	}

	// Reconstrói o dono a partir das colunas anuláveis; linhas que
	// violem a cardinalidade (fora do caminho validado) falham aqui
	owner, err := entities.NewMediaOwner(evalID, varID)
	if err != nil {
		return nil, err
	}

	return &entities.MediaFile{
		ID:        id,
		FilePath:  model.FilePath,
		FileSize:  model.FileSize,
		Owner:     owner,
		CreatedAt: time.Unix(model.CreatedAt, 0),
	}, nil
}
