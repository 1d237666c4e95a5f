package entities

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	domainerrors "github.com/LeandroDeJesus-S/loja-online/internal/domain/errors"
)

func TestNewMediaOwner(t *testing.T) {
	evalID := uuid.New()
	varID := uuid.New()

	t.Run("falha quando as duas referências são enviadas", func(t *testing.T) {
		_, err := NewMediaOwner(&evalID, &varID)
		if !errors.Is(err, domainerrors.ErrBothOwnerRefs) {
			t.Errorf("esperado ErrBothOwnerRefs, veio %v", err)
		}
	})

	t.Run("falha quando nenhuma referência é enviada", func(t *testing.T) {
		_, err := NewMediaOwner(nil, nil)
		if !errors.Is(err, domainerrors.ErrNoOwnerRef) {
			t.Errorf("esperado ErrNoOwnerRef, veio %v", err)
		}
	})

	t.Run("as duas violações carregam mensagens distintas", func(t *testing.T) {
		if domainerrors.ErrBothOwnerRefs.Error() == domainerrors.ErrNoOwnerRef.Error() {
			t.Error("mensagens de ambos-preenchidos e nenhum-preenchido devem diferir")
		}
	})

	t.Run("aceita apenas a avaliação", func(t *testing.T) {
		owner, err := NewMediaOwner(&evalID, nil)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		got, ok := owner.EvaluationID()
		if !ok || got != evalID {
			t.Errorf("EvaluationID() = (%v, %v)", got, ok)
		}
		if _, ok := owner.VariationID(); ok {
			t.Error("VariationID não deveria existir")
		}
	})

	t.Run("aceita apenas a variação", func(t *testing.T) {
		owner, err := NewMediaOwner(nil, &varID)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		got, ok := owner.VariationID()
		if !ok || got != varID {
			t.Errorf("VariationID() = (%v, %v)", got, ok)
		}
	})

	t.Run("Split devolve o par de colunas anuláveis", func(t *testing.T) {
		owner := EvaluationMediaOwner(evalID)
		e, v := owner.Split()
		if e == nil || *e != evalID || v != nil {
			t.Errorf("Split() = (%v, %v)", e, v)
		}
	})

	t.Run("dono zero falha na validação", func(t *testing.T) {
		var owner MediaOwner
		if err := owner.Validate(); !errors.Is(err, domainerrors.ErrNoOwnerRef) {
			t.Errorf("esperado ErrNoOwnerRef, veio %v", err)
		}
	})
}

func TestMediaFileDisplay(t *testing.T) {
	varID := uuid.New()
	evalID := uuid.New()

	t.Run("arquivo de variação mostra o produto", func(t *testing.T) {
		media := MediaFile{
			FilePath:  "media/products/tenis.png",
			Owner:     VariationMediaOwner(varID),
			Variation: &ProductVariation{Name: "Tenis Runner azul"},
		}
		got, err := media.Display()
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		want := "Produto: Tenis Runner azul arquivo: tenis.png"
		if got != want {
			t.Errorf("Display() = %q, esperado %q", got, want)
		}
	})

	t.Run("arquivo de avaliação mostra a avaliação", func(t *testing.T) {
		media := MediaFile{
			FilePath: "media/evaluations/foto.jpg",
			Owner:    EvaluationMediaOwner(evalID),
		}
		got, err := media.Display()
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if !strings.HasPrefix(got, "Avaliação: ") || !strings.HasSuffix(got, "arquivo: foto.jpg") {
			t.Errorf("Display() = %q", got)
		}
	})

	t.Run("dono inválido falha na leitura da representação", func(t *testing.T) {
		media := MediaFile{FilePath: "media/x.png"}
		if _, err := media.Display(); !errors.Is(err, domainerrors.ErrNoOwnerRef) {
			t.Errorf("esperado ErrNoOwnerRef, veio %v", err)
		}
	})
}

func TestMediaFileValidate(t *testing.T) {
	varID := uuid.New()

	t.Run("aceita extensão permitida dentro do limite de tamanho", func(t *testing.T) {
		media := MediaFile{
			FilePath: "media/video.webm",
			FileSize: MediaFileMaxSize,
			Owner:    VariationMediaOwner(varID),
		}
		if err := media.Validate(); err != nil {
			t.Errorf("erro inesperado: %v", err)
		}
	})

	t.Run("rejeita extensão desconhecida", func(t *testing.T) {
		media := MediaFile{
			FilePath: "media/doc.pdf",
			Owner:    VariationMediaOwner(varID),
		}
		if err := media.Validate(); !errors.Is(err, domainerrors.ErrFileExtension) {
			t.Errorf("esperado ErrFileExtension, veio %v", err)
		}
	})

	t.Run("rejeita arquivo acima de 4MB", func(t *testing.T) {
		media := MediaFile{
			FilePath: "media/video.mp4",
			FileSize: MediaFileMaxSize + 1,
			Owner:    VariationMediaOwner(varID),
		}
		if err := media.Validate(); !errors.Is(err, domainerrors.ErrFileSizeExceeded) {
			t.Errorf("esperado ErrFileSizeExceeded, veio %v", err)
		}
	})
}
