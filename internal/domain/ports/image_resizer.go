package ports

// ImageResizer redimensiona uma imagem no próprio arquivo para caber na
// caixa delimitadora, preservando a proporção. height igual a zero deriva
// a altura a partir da largura. Imagens que já cabem na caixa não são
// reescritas.
type ImageResizer interface {
	FitWithin(path string, width, height int) error
}
