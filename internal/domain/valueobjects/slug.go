package valueobjects

import (
	gosimple "github.com/gosimple/slug"
)

// Slugify deriva um slug a partir do nome (minúsculas, sem acentos,
// separado por hífens). Equivalente ao slug dos nomes de produto e
// variação da loja.
func Slugify(name string) string {
	return gosimple.Make(name)
}

// EnsureSlug retorna o slug atual se já foi definido, caso contrário
// deriva um novo a partir do nome. O slug é calculado uma única vez,
// na primeira persistência, e nunca recalculado.
func EnsureSlug(current, name string) string {
	if current != "" {
		return current
	}
	return Slugify(name)
}
