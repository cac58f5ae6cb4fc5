package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-ledger/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name     string           `json:"name" validate:"required,max=200"`
	Quantity *int             `json:"quantity" validate:"required"`
	Price    *decimal.Decimal `json:"price" validate:"required"`
}

// UpdateProductRequest entrada para actualizar un producto: solo cantidad y precio (el nombre no es editable).
type UpdateProductRequest struct {
	Quantity *int             `json:"quantity" validate:"required"`
	Price    *decimal.Decimal `json:"price" validate:"required"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// ProductListResponse lista de productos en orden de ID.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// ToProductResponse convierte la entidad en DTO.
func ToProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{ID: p.ID, Name: p.Name, Quantity: p.Quantity, Price: p.Price}
}

// ToProductList convierte una lista de entidades preservando el orden.
func ToProductList(list []*entity.Product) []ProductResponse {
	items := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, ToProductResponse(p))
	}
	return items
}
