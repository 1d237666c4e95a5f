package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/LeandroDeJesus-S/loja-online/internal/domain/errors"
	"github.com/LeandroDeJesus-S/loja-online/internal/handlers/dto"
	"github.com/LeandroDeJesus-S/loja-online/internal/services"
)

// MediaHandler lida com requisições HTTP de arquivos de mídia
type MediaHandler struct {
	mediaService *services.MediaService
}

// NewMediaHandler cria um novo MediaHandler
func NewMediaHandler(mediaService *services.MediaService) *MediaHandler {
	return &MediaHandler{
		mediaService: mediaService,
	}
}

// parseOptionalID converte uma referência textual opcional para uuid
func parseOptionalID(raw *string) (*uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// AttachMedia anexa um arquivo de mídia a uma avaliação ou variação.
// Exatamente uma das duas referências deve ser enviada.
func (h *MediaHandler) AttachMedia(c *gin.Context) {
	var req dto.AttachMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.ExtractValidationErrors(err))
		c.JSON(http.StatusBadRequest, response)
		return
	}

	evaluationID, err := parseOptionalID(req.EvaluationID)
	if err != nil {
		response := dto.ValidationErrorResponseI18n(c, nil)
		c.JSON(http.StatusBadRequest, response)
		return
	}
	variationID, err := parseOptionalID(req.VariationID)
	if err != nil {
		response := dto.ValidationErrorResponseI18n(c, nil)
		c.JSON(http.StatusBadRequest, response)
		return
	}

	media, err := h.mediaService.Attach(c.Request.Context(), services.AttachInput{
		FilePath:     req.FilePath,
		FileSize:     req.FileSize,
		EvaluationID: evaluationID,
		VariationID:  variationID,
	})
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrBothOwnerRefs),
			errs.Is(err, errors.ErrNoOwnerRef),
			errs.Is(err, errors.ErrFileExtension),
			errs.Is(err, errors.ErrFileSizeExceeded):
			response := dto.NewErrorResponseI18n(
				c,
				errors.ProblemTypeValidation,
				"error.validation.title",
				err.Error(),
				http.StatusBadRequest,
			)
			c.JSON(http.StatusBadRequest, response)
		default:
			response := dto.InternalErrorResponseI18n(c)
			c.JSON(http.StatusInternalServerError, response)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToMediaFileResponse(media))
}
