package entity

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-ledger/internal/domain"
)

// Product representa un producto del catálogo.
// ID lo asigna el store al crear y no cambia; Quantity solo se modifica vía Catalog.Update o Ledger.RecordSale.
type Product struct {
	ID       int64
	Name     string
	Quantity int             // stock en existencia, nunca negativo
	Price    decimal.Decimal // precio unitario de venta
}

// NewProduct valida los campos y construye un producto sin ID (lo asigna la persistencia).
// Un nombre con solo espacios cuenta como vacío y se rechaza igual que "".
func NewProduct(name string, quantity int, price decimal.Decimal) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.NewValidationError("name", "no puede estar vacío")
	}
	if err := ValidateStock(quantity, price); err != nil {
		return nil, err
	}
	return &Product{Name: name, Quantity: quantity, Price: price}, nil
}

// ValidateStock verifica que cantidad y precio no sean negativos.
func ValidateStock(quantity int, price decimal.Decimal) error {
	if quantity < 0 {
		return domain.NewValidationError("quantity", "no puede ser negativa")
	}
	if price.IsNegative() {
		return domain.NewValidationError("price", "no puede ser negativo")
	}
	return nil
}

// CanSell indica si hay stock suficiente para vender qty unidades.
func (p *Product) CanSell(qty int) bool {
	return qty <= p.Quantity
}

// SaleAmount calcula el monto de una venta de qty unidades al precio actual.
func (p *Product) SaleAmount(qty int) decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(qty)))
}
