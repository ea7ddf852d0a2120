package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrValidation   = errors.New("entrada inválida")
	ErrUpstream     = errors.New("falla del almacenamiento remoto")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
)

// ValidationError describe una entrada de usuario rechazada. errors.Is(err, ErrValidation) es true.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError construye el error para el campo indicado.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NotFound envuelve ErrNotFound con el tipo de entidad, ej. "product not found".
func NotFound(entity, id string) error {
	return fmt.Errorf("%s %s: %w", entity, id, ErrNotFound)
}

// Upstream envuelve ErrUpstream con la operación fallida y la causa.
func Upstream(op string, cause error) error {
	return fmt.Errorf("%s: %w: %v", op, ErrUpstream, cause)
}
