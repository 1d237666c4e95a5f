package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/LeandroDeJesus-S/loja-online/internal/domain/entities"
	"github.com/LeandroDeJesus-S/loja-online/internal/domain/ports"
	"github.com/LeandroDeJesus-S/loja-online/internal/domain/repositories"
)

// parseID converte um id textual para uuid
func parseID(raw string) (uuid.UUID, error) {
	return uuid.Parse(raw)
}

// MediaService contém a lógica de negócio para arquivos de mídia
type MediaService struct {
	mediaRepo repositories.MediaFileRepository
	logger    ports.Logger
}

// NewMediaService cria um novo MediaService
func NewMediaService(mediaRepo repositories.MediaFileRepository, logger ports.Logger) *MediaService {
	return &MediaService{
		mediaRepo: mediaRepo,
		logger:    logger,
	}
}

// AttachInput representa os dados para anexar um arquivo de mídia.
// Exatamente uma das referências deve ser enviada.
type AttachInput struct {
	FilePath     string
	FileSize     int64
	EvaluationID *uuid.UUID
	VariationID  *uuid.UUID
}

// Attach constrói o dono a partir do par de referências opcionais,
// valida o arquivo e persiste
func (s *MediaService) Attach(ctx context.Context, input AttachInput) (*entities.MediaFile, error) {
	owner, err := entities.NewMediaOwner(input.EvaluationID, input.VariationID)
	if err != nil {
		return nil, err
	}

	media := &entities.MediaFile{
		FilePath: input.FilePath,
		FileSize: input.FileSize,
		Owner:    owner,
	}

	if err := media.Validate(); err != nil {
		return nil, err
	}

	if err := s.mediaRepo.Create(ctx, media); err != nil {
		return nil, err
	}

	s.logger.Info("media file attached", "path", media.FilePath)
	return media, nil
}

// ListByOwner lista os arquivos de um dono específico
func (s *MediaService) ListByOwner(ctx context.Context, owner entities.MediaOwner) ([]*entities.MediaFile, error) {
	return s.mediaRepo.ListByOwner(ctx, owner)
}
