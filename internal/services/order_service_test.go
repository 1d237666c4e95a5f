package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/LeandroDeJesus-S/loja-online/internal/domain/entities"
	domainerrors "github.com/LeandroDeJesus-S/loja-online/internal/domain/errors"
)

func TestOrderServicePlaceOrder(t *testing.T) {
	ctx := context.Background()

	newRepoWithStatus := func(name string) *fakeOrderRepo {
		return &fakeOrderRepo{
			statusByName: map[string]*entities.OrderStatus{
				name: {ID: uuid.New(), Name: name},
			},
		}
	}

	t.Run("deve persistir pedido valido com o status resolvido", func(t *testing.T) {
		repo := newRepoWithStatus("pago")
		svc := NewOrderService(repo, nopLogger{})

		order, err := svc.PlaceOrder(ctx, PlaceOrderInput{
			UserID:      uuid.New(),
			VariationID: uuid.New(),
			StatusName:  "pago",
			Quantity:    2,
		})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if order.StatusID != repo.statusByName["pago"].ID {
			t.Errorf("pedido deveria apontar para o status resolvido")
		}
		if len(repo.orders) != 1 {
			t.Errorf("esperado 1 pedido persistido, obtidos %d", len(repo.orders))
		}
	})

	t.Run("deve rejeitar status inexistente", func(t *testing.T) {
		repo := newRepoWithStatus("pago")
		svc := NewOrderService(repo, nopLogger{})

		_, err := svc.PlaceOrder(ctx, PlaceOrderInput{
			StatusName: "inexistente",
			Quantity:   1,
		})
		if !errors.Is(err, domainerrors.ErrInvalidStatus) {
			t.Errorf("esperado ErrInvalidStatus, obtido %v", err)
		}
	})

	t.Run("deve rejeitar quantidade menor que um", func(t *testing.T) {
		repo := newRepoWithStatus("pago")
		svc := NewOrderService(repo, nopLogger{})

		_, err := svc.PlaceOrder(ctx, PlaceOrderInput{
			StatusName: "pago",
			Quantity:   0,
		})
		if !errors.Is(err, domainerrors.ErrInvalidQuantity) {
			t.Errorf("esperado ErrInvalidQuantity, obtido %v", err)
		}
		if len(repo.orders) != 0 {
			t.Errorf("pedido invalido nao deveria ser persistido")
		}
	})

	t.Run("deve rejeitar identificador de pagamento fora do padrao", func(t *testing.T) {
		repo := newRepoWithStatus("pago")
		svc := NewOrderService(repo, nopLogger{})

		_, err := svc.PlaceOrder(ctx, PlaceOrderInput{
			StatusName:      "pago",
			Quantity:        1,
			StripePaymentID: "xx_123",
		})
		if !errors.Is(err, domainerrors.ErrInvalidPayment) {
			t.Errorf("esperado ErrInvalidPayment, obtido %v", err)
		}
	})
}

func TestOrderServiceEvaluate(t *testing.T) {
	ctx := context.Background()

	t.Run("deve persistir avaliacao valida", func(t *testing.T) {
		repo := &fakeOrderRepo{}
		svc := NewOrderService(repo, nopLogger{})

		evaluation, err := svc.Evaluate(ctx, EvaluateInput{
			OrderID:     uuid.New(),
			Rating:      entities.RatingGood,
			Description: "Chegou rapido",
		})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if evaluation.Rating.Label() != "Good" {
			t.Errorf("rotulo esperado 'Good', obtido '%s'", evaluation.Rating.Label())
		}
		if len(repo.evaluations) != 1 {
			t.Errorf("esperada 1 avaliacao persistida, obtidas %d", len(repo.evaluations))
		}
	})

	t.Run("deve rejeitar descricao acima do limite", func(t *testing.T) {
		repo := &fakeOrderRepo{}
		svc := NewOrderService(repo, nopLogger{})

		_, err := svc.Evaluate(ctx, EvaluateInput{
			OrderID:     uuid.New(),
			Rating:      entities.RatingGood,
			Description: strings.Repeat("a", entities.EvaluationDescMaxLen+1),
		})
		if !errors.Is(err, domainerrors.ErrInvalidDescription) {
			t.Errorf("esperado ErrInvalidDescription, obtido %v", err)
		}
		if len(repo.evaluations) != 0 {
			t.Errorf("avaliacao invalida nao deveria ser persistida")
		}
	})

	t.Run("deve rejeitar nota fora do conjunto", func(t *testing.T) {
		repo := &fakeOrderRepo{}
		svc := NewOrderService(repo, nopLogger{})

		for _, rating := range []entities.Rating{0, 6, -1} {
			_, err := svc.Evaluate(ctx, EvaluateInput{OrderID: uuid.New(), Rating: rating})
			if !errors.Is(err, domainerrors.ErrInvalidRating) {
				t.Errorf("nota %d: esperado ErrInvalidRating, obtido %v", rating, err)
			}
		}
		if len(repo.evaluations) != 0 {
			t.Errorf("avaliacao invalida nao deveria ser persistida")
		}
	})
}
