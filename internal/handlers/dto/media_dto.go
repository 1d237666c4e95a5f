package dto

import (
	"github.com/LeandroDeJesus-S/loja-online/internal/domain/entities"
)

// AttachMediaRequest representa a requisição para anexar um arquivo de
// mídia a uma avaliação ou a uma variação de produto (exatamente uma)
type AttachMediaRequest struct {
	FilePath     string  `json:"file_path" binding:"required"`
	FileSize     int64   `json:"file_size" binding:"required,min=1"`
	EvaluationID *string `json:"evaluation_id" binding:"omitempty,uuid"`
	VariationID  *string `json:"product_variation_id" binding:"omitempty,uuid"`
}

// MediaFileResponse representa a resposta de um arquivo de mídia
type MediaFileResponse struct {
	ID           string  `json:"id"`
	FilePath     string  `json:"file_path"`
	FileSize     int64   `json:"file_size"`
	EvaluationID *string `json:"evaluation_id,omitempty"`
	VariationID  *string `json:"product_variation_id,omitempty"`
}

// ToMediaFileResponse converte uma entidade MediaFile
func ToMediaFileResponse(media *entities.MediaFile) MediaFileResponse {
	response := MediaFileResponse{
		ID:       media.ID.String(),
		FilePath: media.FilePath,
		FileSize: media.FileSize,
	}
	evalID, varID := media.Owner.Split()
	if evalID != nil {
		id := evalID.String()
		response.EvaluationID = &id
	}
	if varID != nil {
		id := varID.String()
		response.VariationID = &id
	}
	return response
}

// ToMediaFileResponses converte uma lista de entidades MediaFile
func ToMediaFileResponses(files []*entities.MediaFile) []MediaFileResponse {
	responses := make([]MediaFileResponse, len(files))
	for i, media := range files {
		responses[i] = ToMediaFileResponse(media)
	}
	return responses
}
