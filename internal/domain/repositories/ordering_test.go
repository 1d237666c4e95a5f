package repositories

import (
	"errors"
	"testing"

	domainerrors "github.com/LeandroDeJesus-S/loja-online/internal/domain/errors"
)

func TestParseOrderingKey(t *testing.T) {
	t.Run("vazio cai no padrão new", func(t *testing.T) {
		key, err := ParseOrderingKey("")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if key != OrderingNew {
			t.Errorf("key = %q, esperado %q", key, OrderingNew)
		}
	})

	t.Run("aceita todas as chaves conhecidas", func(t *testing.T) {
		for _, raw := range []string{"new", "less_price", "greatest_price", "less_eval", "greatest_eval"} {
			key, err := ParseOrderingKey(raw)
			if err != nil {
				t.Errorf("ParseOrderingKey(%q) retornou erro: %v", raw, err)
			}
			if string(key) != raw {
				t.Errorf("key = %q, esperado %q", key, raw)
			}
		}
	})

	t.Run("chave desconhecida falha sem fallback", func(t *testing.T) {
		_, err := ParseOrderingKey("bogus")
		if !errors.Is(err, domainerrors.ErrUnknownOrdering) {
			t.Errorf("esperado ErrUnknownOrdering, veio %v", err)
		}
	})
}
