package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-ledger/internal/application/dto"
	"github.com/jhoicas/inventory-ledger/pkg/logger"
)

// ReportHandler reportes de stock bajo y resumen de ventas (JSON y PDF).
type ReportHandler struct {
	uc               ReportService
	pdf              ReportRenderer
	lowStockLog      LowStockRecorder
	defaultThreshold int
	log              *logger.Logger
}

// NewReportHandler construye el handler. lowStockLog puede ser nil (sin log en archivo).
func NewReportHandler(uc ReportService, pdf ReportRenderer, lowStockLog LowStockRecorder, defaultThreshold int, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, pdf: pdf, lowStockLog: lowStockLog, defaultThreshold: defaultThreshold, log: log}
}

// threshold lee ?threshold=; si no viene se usa el valor por defecto configurado.
func (h *ReportHandler) threshold(c *fiber.Ctx) (int, bool) {
	raw := c.Query("threshold")
	if raw == "" {
		return h.defaultThreshold, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

func invalidThreshold(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "threshold debe ser un entero"})
}

// LowStock godoc
// @Summary      Productos con stock bajo
// @Description  Devuelve los productos con quantity < threshold y agrega el reporte al log de stock bajo.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        threshold  query  int  false  "Umbral (exclusivo)"  default(5)
// @Success      200  {object}  dto.LowStockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	threshold, ok := h.threshold(c)
	if !ok {
		return invalidThreshold(c)
	}
	list, err := h.uc.LowStock(c.UserContext(), threshold)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if h.lowStockLog != nil {
		if err := h.lowStockLog.Append(list); err != nil {
			h.log.Warn().Err(err).Msg("no se pudo escribir el log de stock bajo")
		}
	}
	items := dto.ToProductList(list)
	return c.JSON(dto.LowStockResponse{Threshold: threshold, Total: len(items), Items: items})
}

// SalesSummary godoc
// @Summary      Resumen de ventas por producto
// @Description  Solo incluye productos existentes con al menos una venta, en orden de ID.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SalesSummaryResponse
// @Router       /api/reports/sales-summary [get]
func (h *ReportHandler) SalesSummary(c *fiber.Ctx) error {
	rows, err := h.uc.SalesSummary(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.ToSalesSummaryResponse(rows))
}

// LowStockPDF godoc
// @Summary      Reporte de stock bajo en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        threshold  query  int  false  "Umbral (exclusivo)"  default(5)
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/low-stock.pdf [get]
func (h *ReportHandler) LowStockPDF(c *fiber.Ctx) error {
	threshold, ok := h.threshold(c)
	if !ok {
		return invalidThreshold(c)
	}
	list, err := h.uc.LowStock(c.UserContext(), threshold)
	if err != nil {
		return writeError(c, h.log, err)
	}
	doc, err := h.pdf.LowStockPDF(c.UserContext(), threshold, list)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return sendPDF(c, "low-stock.pdf", doc)
}

// SalesSummaryPDF godoc
// @Summary      Resumen de ventas en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/sales-summary.pdf [get]
func (h *ReportHandler) SalesSummaryPDF(c *fiber.Ctx) error {
	rows, err := h.uc.SalesSummary(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	doc, err := h.pdf.SalesSummaryPDF(c.UserContext(), rows)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return sendPDF(c, "sales-summary.pdf", doc)
}

func sendPDF(c *fiber.Ctx, filename string, doc []byte) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(doc)
}
