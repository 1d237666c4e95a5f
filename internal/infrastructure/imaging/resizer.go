package imaging

import (
	"fmt"
	"image/png"
	"math"

	img "github.com/disintegration/imaging"

	"github.com/LeandroDeJesus-S/loja-online/internal/domain/errors"
	"github.com/LeandroDeJesus-S/loja-online/internal/domain/ports"
)

// Qualidade JPEG usada ao reencodar imagens redimensionadas
const encodeQuality = 70

// Resizer implementa ports.ImageResizer redimensionando o arquivo no
// próprio caminho
type Resizer struct{}

// NewResizer cria um novo Resizer
func NewResizer() ports.ImageResizer {
	return &Resizer{}
}

// FitWithin redimensiona a imagem em path para caber na caixa
// width x height. height igual a zero é derivado da largura preservando a
// proporção original. Quando a imagem já cabe na caixa o arquivo não é
// tocado (nem reencodado). As dimensões alvo são limitadas às originais,
// nunca ampliando, e o filtro é nearest-neighbor.
func (r *Resizer) FitWithin(path string, width, height int) error {
	src, err := img.Open(path)
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", errors.ErrImageResource, path, err)
	}

	bounds := src.Bounds()
	originalW, originalH := bounds.Dx(), bounds.Dy()

	if height == 0 {
		height = int(math.Round(float64(width) * float64(originalH) / float64(originalW)))
	}

	if originalH <= height && originalW <= width {
		return nil
	}

	if width > originalW {
		width = originalW
	}
	if height > originalH {
		height = originalH
	}

	resized := img.Resize(src, width, height, img.NearestNeighbor)

	err = img.Save(resized, path,
		img.JPEGQuality(encodeQuality),
		img.PNGCompressionLevel(png.BestCompression),
	)
	if err != nil {
		return fmt.Errorf("%w: save %s: %v", errors.ErrImageResource, path, err)
	}
	return nil
}
