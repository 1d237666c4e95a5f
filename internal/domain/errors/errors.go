package errors

import "errors"

// Format errors: a entrada tem uma forma inválida
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrCNPJLength         = errors.New("error.cnpj_length")
	ErrUnknownOrdering    = errors.New("error.unknown_ordering")
	ErrInvalidName        = errors.New("error.invalid_name")
	ErrInvalidDescription = errors.New("error.invalid_description")
	ErrInvalidStreet      = errors.New("error.invalid_street")
	ErrInvalidCity        = errors.New("error.invalid_city")
	ErrInvalidPrice       = errors.New("error.invalid_price")
	ErrInvalidQuantity    = errors.New("error.invalid_quantity")
	ErrInvalidRating      = errors.New("error.invalid_rating")
	ErrInvalidState       = errors.New("error.invalid_state")
	ErrInvalidCountry     = errors.New("error.invalid_country")
	ErrInvalidPostal      = errors.New("error.invalid_postal_code")
	ErrInvalidStatus      = errors.New("error.invalid_order_status")
	ErrInvalidPayment     = errors.New("error.invalid_payment_id")
)

// Checksum errors: a forma é válida mas o valor falha num cálculo
var (
	ErrCNPJChecksum = errors.New("error.cnpj_checksum")
)

// Constraint errors: uma regra de cardinalidade de referências foi violada
var (
	ErrBothOwnerRefs = errors.New("error.owner_both_refs")
	ErrNoOwnerRef    = errors.New("error.owner_no_ref")
)

// Resource errors: falha ao manipular um recurso de arquivo
var (
	ErrImageResource    = errors.New("error.image_resource")
	ErrFileSizeExceeded = errors.New("error.file_size_exceeded")
	ErrFileExtension    = errors.New("error.file_extension")
)

// Business errors
var (
	ErrProductNotFound = errors.New("error.product_not_found")
	ErrStoreNotFound   = errors.New("error.store_not_found")
	ErrNameAlreadyUsed = errors.New("error.name_already_used")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
const (
	ProblemTypeValidation = "/problems/validation-error"
	ProblemTypeNotFound   = "/problems/not-found"
	ProblemTypeConflict   = "/problems/conflict"
	ProblemTypeInternal   = "/problems/internal-error"
	ProblemTypeBadRequest = "/problems/bad-request"
)

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Type    string
	Title   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
