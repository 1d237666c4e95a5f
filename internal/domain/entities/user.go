package entities

import (
	"time"

	"github.com/google/uuid"

	"github.com/LeandroDeJesus-S/loja-online/internal/domain/valueobjects"
)

// User representa um usuário da loja. Autenticação e sessão ficam fora
// do escopo; a entidade existe para ser referenciada por pedidos,
// avaliações e endereços.
type User struct {
	ID        uuid.UUID
	Username  string
	Email     valueobjects.Email
	CreatedAt time.Time
}

func (u *User) String() string {
	return u.Username
}
