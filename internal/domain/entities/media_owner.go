package entities

import (
	"github.com/google/uuid"

	"github.com/LeandroDeJesus-S/loja-online/internal/domain/errors"
)

type mediaOwnerKind int

const (
	mediaOwnerNone mediaOwnerKind = iota
	mediaOwnerEvaluation
	mediaOwnerVariation
)

// MediaOwner identifica o dono de um arquivo de mídia: exatamente uma
// avaliação ou exatamente uma variação de produto, nunca ambos nem
// nenhum. As variantes nomeadas impedem a construção de combinações
// inválidas; NewMediaOwner cobre o caminho a partir de colunas anuláveis.
type MediaOwner struct {
	kind mediaOwnerKind
	ref  uuid.UUID
}

// EvaluationMediaOwner cria o dono apontando para uma avaliação
func EvaluationMediaOwner(evaluationID uuid.UUID) MediaOwner {
	return MediaOwner{kind: mediaOwnerEvaluation, ref: evaluationID}
}

// VariationMediaOwner cria o dono apontando para uma variação de produto
func VariationMediaOwner(variationID uuid.UUID) MediaOwner {
	return MediaOwner{kind: mediaOwnerVariation, ref: variationID}
}

// NewMediaOwner constrói o dono a partir do par de referências opcionais
// vindo da camada de armazenamento. Ambas preenchidas retorna
// errors.ErrBothOwnerRefs; nenhuma preenchida retorna errors.ErrNoOwnerRef.
func NewMediaOwner(evaluationID, variationID *uuid.UUID) (MediaOwner, error) {
	switch {
	case evaluationID != nil && variationID != nil:
		return MediaOwner{}, errors.ErrBothOwnerRefs
	case evaluationID != nil:
		return EvaluationMediaOwner(*evaluationID), nil
	case variationID != nil:
		return VariationMediaOwner(*variationID), nil
	default:
		return MediaOwner{}, errors.ErrNoOwnerRef
	}
}

// Validate garante que o dono foi construído com exatamente uma referência
func (o MediaOwner) Validate() error {
	if o.kind == mediaOwnerNone {
		return errors.ErrNoOwnerRef
	}
	return nil
}

// EvaluationID retorna a referência quando o dono é uma avaliação
func (o MediaOwner) EvaluationID() (uuid.UUID, bool) {
	if o.kind != mediaOwnerEvaluation {
		return uuid.Nil, false
	}
	return o.ref, true
}

// VariationID retorna a referência quando o dono é uma variação
func (o MediaOwner) VariationID() (uuid.UUID, bool) {
	if o.kind != mediaOwnerVariation {
		return uuid.Nil, false
	}
	return o.ref, true
}

// Split converte o dono de volta para o par de colunas anuláveis
func (o MediaOwner) Split() (evaluationID, variationID *uuid.UUID) {
	switch o.kind {
	case mediaOwnerEvaluation:
		id := o.ref
		return &id, nil
	case mediaOwnerVariation:
		id := o.ref
		return nil, &id
	default:
		return nil, nil
	}
}
