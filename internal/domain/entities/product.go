package entities

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/LeandroDeJesus-S/loja-online/internal/domain/errors"
	"github.com/LeandroDeJesus-S/loja-online/internal/domain/valueobjects"
)

// Extensões aceitas para a thumbnail do produto
var productThumbExtensions = []string{"PNG", "JPEG", "JPG", "WEBP"}

const (
	ProductNameMinLen = 2
	ProductNameMaxLen = 45
	ProductDescMaxLen = 500

	// Dimensão máxima da thumbnail; redimensionada após persistir
	ProductThumbMaxWidth  = 360
	ProductThumbMaxHeight = 360

	// Tamanho máximo do arquivo da thumbnail em bytes
	ProductThumbMaxSize = 5 * 1024
)

// Product representa um produto do catálogo
type Product struct {
	ID            uuid.UUID
	Name          string
	Slug          string
	ThumbnailPath string
	Description   string
	Categories    []Category
	Variations    []ProductVariation
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (p *Product) String() string {
	return p.Name
}

// EnsureSlug deriva o slug a partir do nome na primeira persistência.
// Uma vez definido, o slug nunca é recalculado.
func (p *Product) EnsureSlug() {
	p.Slug = valueobjects.EnsureSlug(p.Slug, p.Name)
}

// Validate valida regras de negócio da entidade Product
func (p *Product) Validate() error {
	if len(p.Name) < ProductNameMinLen || len(p.Name) > ProductNameMaxLen {
		return errors.ErrInvalidName
	}
	if !basicTextPattern.MatchString(p.Name) {
		return errors.ErrInvalidName
	}
	if len(p.Description) > ProductDescMaxLen {
		return errors.ErrInvalidDescription
	}
	return nil
}

// ValidateThumbnail valida a extensão e o tamanho do arquivo da thumbnail
func (p *Product) ValidateThumbnail(size int64) error {
	ext := strings.TrimPrefix(strings.ToUpper(filepath.Ext(p.ThumbnailPath)), ".")
	allowed := false
	for _, e := range productThumbExtensions {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return errors.ErrFileExtension
	}
	if size > ProductThumbMaxSize {
		return errors.ErrFileSizeExceeded
	}
	return nil
}
