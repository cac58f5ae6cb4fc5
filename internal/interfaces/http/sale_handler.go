package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-ledger/internal/application/dto"
	"github.com/jhoicas/inventory-ledger/pkg/logger"
)

// SaleHandler registra ventas y expone el historial.
type SaleHandler struct {
	uc  LedgerService
	log *logger.Logger
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc LedgerService, log *logger.Logger) *SaleHandler {
	return &SaleHandler{uc: uc, log: log}
}

// Record godoc
// @Summary      Registrar venta
// @Description  Descuenta el stock y registra la venta en una sola transacción.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordSaleRequest  true  "product_id, quantity"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordSaleRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	sale, err := h.uc.RecordSale(c.UserContext(), in.ProductID, in.Quantity)
	if err != nil {
		return writeError(c, h.log, err)
	}
	h.log.Info().Str("username", GetUsername(c)).Int64("sale_id", sale.ID).Int64("product_id", sale.ProductID).Msg("venta registrada")
	return c.Status(fiber.StatusCreated).JSON(dto.ToSaleResponse(sale))
}

// List godoc
// @Summary      Historial de ventas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  int  false  "Filtrar por producto"
// @Success      200  {object}  dto.SaleListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	var productID *int64
	if raw := c.Query("product_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id debe ser un entero positivo"})
		}
		productID = &id
	}
	list, err := h.uc.ListSales(c.UserContext(), productID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, dto.ToSaleResponse(s))
	}
	return c.JSON(dto.SaleListResponse{Items: items, Total: len(items)})
}
