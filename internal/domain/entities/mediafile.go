package entities

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/LeandroDeJesus-S/loja-online/internal/domain/errors"
)

// Extensões aceitas para arquivos de mídia (imagem ou vídeo)
var MediaFileExtensions = []string{"PNG", "JPEG", "JPG", "WEBP", "MP4", "AVI", "WEBM"}

// Tamanho máximo do arquivo de mídia em bytes
const MediaFileMaxSize = 4 * 1024 * 1024

// MediaFile armazena arquivos relacionados a avaliações ou variações
// de produto. O dono é exatamente um dos dois.
type MediaFile struct {
	ID        uuid.UUID
	FilePath  string
	FileSize  int64
	Owner     MediaOwner
	CreatedAt time.Time

	Evaluation *Evaluation
	Variation  *ProductVariation
}

// Validate valida o arquivo (extensão e tamanho) e a cardinalidade do dono
func (m *MediaFile) Validate() error {
	if err := m.validateFile(); err != nil {
		return err
	}
	return m.Owner.Validate()
}

func (m *MediaFile) validateFile() error {
	ext := strings.TrimPrefix(strings.ToUpper(filepath.Ext(m.FilePath)), ".")
	allowed := false
	for _, e := range MediaFileExtensions {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return errors.ErrFileExtension
	}
	if m.FileSize > MediaFileMaxSize {
		return errors.ErrFileSizeExceeded
	}
	return nil
}

// Display retorna a representação 'Avaliação: ... arquivo: ...' quando o
// arquivo pertence a uma avaliação, ou 'Produto: ... arquivo: ...' quando
// pertence a uma variação. Este é um segundo ponto de verificação: um
// dono inválido falha aqui mesmo sem Validate ter sido chamado.
func (m *MediaFile) Display() (string, error) {
	name := filepath.Base(m.FilePath)

	if id, ok := m.Owner.EvaluationID(); ok {
		ref := id.String()
		if m.Evaluation != nil {
			ref = m.Evaluation.Display()
		}
		return fmt.Sprintf("Avaliação: %s arquivo: %s", ref, name), nil
	}
	if id, ok := m.Owner.VariationID(); ok {
		ref := id.String()
		if m.Variation != nil {
			ref = m.Variation.Name
		}
		return fmt.Sprintf("Produto: %s arquivo: %s", ref, name), nil
	}
	return "", errors.ErrNoOwnerRef
}
