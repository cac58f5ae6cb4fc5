package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventory-ledger/internal/domain"
)

func TestValidationError_EsInvalidInput(t *testing.T) {
	err := fmt.Errorf("crear: %w", domain.NewValidationError("name", "no puede estar vacío"))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.NotErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Contains(t, err.Error(), "name")

	var vErr *domain.ValidationError
	assert.True(t, errors.As(err, &vErr))
	assert.Equal(t, "name", vErr.Field)
}

func TestInvalidQuantityError(t *testing.T) {
	err := domain.NewInvalidQuantityError(0)

	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "quantity_sold", err.Field)
}

func TestInsufficientStockError(t *testing.T) {
	err := fmt.Errorf("tx: %w", &domain.InsufficientStockError{Available: 6})

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	var stockErr *domain.InsufficientStockError
	assert.True(t, errors.As(err, &stockErr))
	assert.Equal(t, 6, stockErr.Available)
	assert.Contains(t, err.Error(), "6")
}
