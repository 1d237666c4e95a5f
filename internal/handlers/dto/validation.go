package dto

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ExtractValidationErrors converte os erros de binding do gin
// (go-playground/validator) para a lista de erros de campo da resposta
// RFC 7807
func ExtractValidationErrors(err error) []ValidationError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make([]ValidationError, len(verrs))
	for i, fe := range verrs {
		out[i] = ValidationError{
			Field:   fe.Field(),
			Message: fmt.Sprintf("failed on the '%s' tag", fe.Tag()),
			Tag:     fe.Tag(),
			Value:   fmt.Sprintf("%v", fe.Value()),
		}
	}
	return out
}
