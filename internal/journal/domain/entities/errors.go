package entities

import "errors"

// Виды доменных ошибок. По ним HTTP-слой выбирает статус и код ответа.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrIllegalState    = errors.New("illegal state")
	ErrAuthentication  = errors.New("authentication failed")
)

// DomainError - ошибка с сообщением для клиента и видом.
// errors.Is срабатывает как на конкретное значение, так и на его вид.
type DomainError struct {
	kind    error
	message string
}

// Error возвращает сообщение, пригодное для клиента.
func (e *DomainError) Error() string {
	return e.message
}

// Unwrap возвращает вид ошибки.
func (e *DomainError) Unwrap() error {
	return e.kind
}

// Kind возвращает вид ошибки.
func (e *DomainError) Kind() error {
	return e.kind
}

// NewArgumentError создает ошибку неверного аргумента.
func NewArgumentError(message string) *DomainError {
	return &DomainError{kind: ErrInvalidArgument, message: message}
}

// NewStateError создает ошибку недопустимого состояния.
func NewStateError(message string) *DomainError {
	return &DomainError{kind: ErrIllegalState, message: message}
}

// NewAuthenticationError создает ошибку аутентификации.
func NewAuthenticationError(message string) *DomainError {
	return &DomainError{kind: ErrAuthentication, message: message}
}
