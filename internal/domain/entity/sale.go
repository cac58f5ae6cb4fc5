package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale registro inmutable de una venta (append-only).
// ProductID es una referencia débil: la venta sobrevive al borrado del producto.
type Sale struct {
	ID           int64
	ProductID    int64
	QuantitySold int
	Amount       decimal.Decimal // QuantitySold * precio del producto al momento de la venta
	SaleDate     time.Time       // lo fija el store al insertar
}
