package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/LeandroDeJesus-S/loja-online/internal/domain/errors"
)

const (
	OrderStatusNameMaxLen = 45
	StripePaymentIDMaxLen = 32
	StripeMethodIDMaxLen  = 32
)

// OrderStatus representa um status de pedido (ex.: pago, enviado)
type OrderStatus struct {
	ID   uuid.UUID
	Name string
}

func (s *OrderStatus) String() string {
	return s.Name
}

// Validate valida o nome do status
func (s *OrderStatus) Validate() error {
	if s.Name == "" || len(s.Name) > OrderStatusNameMaxLen || !basicTextPattern.MatchString(s.Name) {
		return errors.ErrInvalidStatus
	}
	return nil
}

// Order representa um pedido de um usuário.
// Os identificadores Stripe são armazenados como strings opacas
// validadas por forma; nenhuma chamada ao gateway é feita aqui.
type Order struct {
	ID                    uuid.UUID
	Quantity              int
	StripePaymentID       string
	StripePaymentMethodID string
	StatusID              uuid.UUID
	UserID                uuid.UUID
	VariationID           uuid.UUID
	CreatedAt             time.Time

	Status    *OrderStatus
	User      *User
	Variation *ProductVariation
}

// Validate valida regras de negócio da entidade Order
func (o *Order) Validate() error {
	if o.Quantity < 1 {
		return errors.ErrInvalidQuantity
	}
	if o.StripePaymentID != "" {
		if len(o.StripePaymentID) > StripePaymentIDMaxLen || !stripePaymentIDPattern.MatchString(o.StripePaymentID) {
			return errors.ErrInvalidPayment
		}
	}
	if o.StripePaymentMethodID != "" {
		if len(o.StripePaymentMethodID) > StripeMethodIDMaxLen || !stripeMethodIDPattern.MatchString(o.StripePaymentMethodID) {
			return errors.ErrInvalidPayment
		}
	}
	return nil
}

// OrderValue retorna o valor total do pedido (quantidade x preço da
// variação). Requer a variação carregada.
func (o *Order) OrderValue() decimal.Decimal {
	if o.Variation == nil {
		return decimal.Zero
	}
	return o.Variation.Price.Mul(decimal.NewFromInt(int64(o.Quantity)))
}

// OrderValueCents retorna o valor total em centavos inteiros
func (o *Order) OrderValueCents() int64 {
	return o.OrderValue().Mul(decimal.NewFromInt(100)).IntPart()
}

// Display retorna a representação 'usuário | variação, qtd - status'
func (o *Order) Display() string {
	usr, status, variation := "", "", ""
	if o.User != nil {
		usr = o.User.Username
	}
	if o.Status != nil {
		status = o.Status.Name
	}
	if o.Variation != nil {
		variation = o.Variation.Name
	}
	return fmt.Sprintf("%s | %s, %d - %s", usr, variation, o.Quantity, status)
}
