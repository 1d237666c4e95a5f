package valueobjects

import (
	"strings"

	"github.com/LeandroDeJesus-S/loja-online/internal/domain/errors"
)

const cnpjLength = 14

// Pesos do cálculo dos dígitos verificadores conforme a Receita Federal.
// O resto da soma ponderada módulo 11 mapeia para o dígito: resto < 2 -> 0,
// caso contrário 11 - resto.
var (
	cnpjWeightsFirst  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeightsSecond = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// CNPJ é um value object que garante que o CNPJ seja sempre válido
type CNPJ struct {
	value string
}

// NewCNPJ cria um novo CNPJ validado.
// Aceita o valor com ou sem pontuação ("19.982.055/0001-72" ou
// "19982055000172"). Retorna errors.ErrCNPJLength quando a quantidade de
// dígitos difere de 14 e errors.ErrCNPJChecksum quando os dígitos
// verificadores não conferem.
func NewCNPJ(raw string) (CNPJ, error) {
	digits := stripNonDigits(raw)

	if len(digits) != cnpjLength {
		return CNPJ{}, errors.ErrCNPJLength
	}

	d13 := cnpjCheckDigit(digits[:12], cnpjWeightsFirst)
	d14 := cnpjCheckDigit(digits[:12]+string(rune('0'+d13)), cnpjWeightsSecond)

	if digits[12] != byte('0'+d13) || digits[13] != byte('0'+d14) {
		return CNPJ{}, errors.ErrCNPJChecksum
	}

	return CNPJ{value: digits}, nil
}

// String retorna o CNPJ normalizado (somente dígitos)
func (c CNPJ) String() string {
	return c.value
}

// Formatted retorna o CNPJ no formato NN.NNN.NNN/NNNN-NN
func (c CNPJ) Formatted() string {
	if len(c.value) != cnpjLength {
		return c.value
	}
	var b strings.Builder
	b.WriteString(c.value[0:2])
	b.WriteByte('.')
	b.WriteString(c.value[2:5])
	b.WriteByte('.')
	b.WriteString(c.value[5:8])
	b.WriteByte('/')
	b.WriteString(c.value[8:12])
	b.WriteByte('-')
	b.WriteString(c.value[12:14])
	return b.String()
}

// IsZero indica se o value object está vazio (não construído)
func (c CNPJ) IsZero() bool {
	return c.value == ""
}

func cnpjCheckDigit(digits string, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += int(digits[i]-'0') * w
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}

func stripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
