package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/LeandroDeJesus-S/loja-online/internal/domain/errors"
)

// Rating é a nota ordinal de uma avaliação
type Rating int

const (
	RatingTerrible Rating = 1
	RatingBad      Rating = 2
	RatingOk       Rating = 3
	RatingGood     Rating = 4
	RatingGreat    Rating = 5
)

var ratingLabels = map[Rating]string{
	RatingTerrible: "Terrible",
	RatingBad:      "Bad",
	RatingOk:       "Ok",
	RatingGood:     "Good",
	RatingGreat:    "Great",
}

// Label retorna o rótulo da nota
func (r Rating) Label() string {
	return ratingLabels[r]
}

// Valid indica se a nota pertence ao conjunto enumerado
func (r Rating) Valid() bool {
	_, ok := ratingLabels[r]
	return ok
}

const EvaluationDescMaxLen = 255

// Evaluation representa a avaliação de um pedido feita pelo usuário
type Evaluation struct {
	ID          uuid.UUID
	Rating      Rating
	Description string
	OrderID     uuid.UUID
	CreatedAt   time.Time

	Order *Order
}

// Validate valida regras de negócio da entidade Evaluation
func (e *Evaluation) Validate() error {
	if !e.Rating.Valid() {
		return errors.ErrInvalidRating
	}
	if len(e.Description) > EvaluationDescMaxLen {
		return errors.ErrInvalidDescription
	}
	return nil
}

// Display retorna a representação 'usuário - pedido | nota'
func (e *Evaluation) Display() string {
	usr, order := "", ""
	if e.Order != nil {
		order = e.Order.Display()
		if e.Order.User != nil {
			usr = e.Order.User.Username
		}
	}
	return fmt.Sprintf("%s - %s | %d", usr, order, e.Rating)
}
