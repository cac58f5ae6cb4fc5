package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidQuantity   = errors.New("la cantidad vendida debe ser mayor que cero")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
)

// ValidationError describe una entrada mal formada (nombre vacío, cantidades o precios negativos, umbral negativo).
// errors.Is(err, ErrInvalidInput) es verdadero para cualquier ValidationError.
type ValidationError struct {
	Field  string
	Reason string
	Err    error // causa específica opcional (ej. ErrInvalidQuantity)
}

// NewValidationError construye un ValidationError sin causa específica.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// NewInvalidQuantityError se usa cuando RecordSale recibe una cantidad <= 0.
func NewInvalidQuantityError(quantity int) *ValidationError {
	return &ValidationError{
		Field:  "quantity_sold",
		Reason: fmt.Sprintf("debe ser mayor que cero (recibido %d)", quantity),
		Err:    ErrInvalidQuantity,
	}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidInput, e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// InsufficientStockError la venta supera el stock actual. Available es la cantidad en existencia al momento del intento.
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: disponibles %d", ErrInsufficientStock, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
