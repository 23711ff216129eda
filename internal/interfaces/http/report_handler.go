package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/comercia/backoffice-api/internal/application/dto"
	"github.com/comercia/backoffice-api/internal/application/export"
	"github.com/comercia/backoffice-api/internal/domain"
	"github.com/comercia/backoffice-api/pkg/logger"
)

// ReportHandler expone los reportes exportables (xlsx o pdf).
type ReportHandler struct {
	uc  *export.UseCase
	log *logger.Logger
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *export.UseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// Restock godoc
// @Summary      Reporte de reposición de stock
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        warehouse_id  query  string  true   "Almacén"
// @Param        format        query  string  false  "xlsx (default) o pdf"
// @Success      200  {file}  binary
// @Success      204  "sin filas, no se genera archivo"
// @Router       /api/reports/restock [get]
func (h *ReportHandler) Restock(c *fiber.Ctx) error {
	var q dto.StockReportQuery
	if err := c.QueryParser(&q); err != nil || q.WarehouseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "warehouse_id es requerido"})
	}
	q.DefaultFormat()
	result, err := h.uc.RestockReport(c.Context(), q.WarehouseID, q.Format)
	return h.respond(c, result, err)
}

// CostStock godoc
// @Summary      Reporte de costo de stock
// @Tags         reports
// @Param        warehouse_id  query  string  true   "Almacén"
// @Param        format        query  string  false  "xlsx (default) o pdf"
// @Success      200  {file}  binary
// @Success      204  "sin filas, no se genera archivo"
// @Router       /api/reports/cost-stock [get]
func (h *ReportHandler) CostStock(c *fiber.Ctx) error {
	var q dto.StockReportQuery
	if err := c.QueryParser(&q); err != nil || q.WarehouseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "warehouse_id es requerido"})
	}
	q.DefaultFormat()
	result, err := h.uc.CostStockReport(c.Context(), q.WarehouseID, q.Format)
	return h.respond(c, result, err)
}

// StockHistory godoc
// @Summary      Reporte de historial de un item de stock
// @Tags         reports
// @Param        stock_id  query  string  true   "Item de stock"
// @Param        format    query  string  false  "xlsx (default) o pdf"
// @Success      200  {file}  binary
// @Success      204  "sin filas, no se genera archivo"
// @Router       /api/reports/stock-history [get]
func (h *ReportHandler) StockHistory(c *fiber.Ctx) error {
	var q dto.StockHistoryQuery
	if err := c.QueryParser(&q); err != nil || q.StockID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "stock_id es requerido"})
	}
	q.DefaultFormat()
	result, err := h.uc.StockHistoryReport(c.Context(), q.StockID, q.Format)
	return h.respond(c, result, err)
}

// Billings godoc
// @Summary      Reporte de facturas
// @Tags         reports
// @Param        start_date  query  string  false  "2006-01-02"
// @Param        end_date    query  string  false  "2006-01-02 (inclusive)"
// @Param        format      query  string  false  "xlsx (default) o pdf"
// @Success      200  {file}  binary
// @Success      204  "sin filas, no se genera archivo"
// @Router       /api/reports/billings [get]
func (h *ReportHandler) Billings(c *fiber.Ctx) error {
	var q dto.BillingsReportQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	q.DefaultFormat()

	from, err := parseDate(q.StartDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date inválido, formato 2006-01-02"})
	}
	to, err := parseDate(q.EndDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "end_date inválido, formato 2006-01-02"})
	}
	if !to.IsZero() {
		// end_date es inclusivo: cubre hasta el final de ese día
		to = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	result, err := h.uc.BillingsReport(c.Context(), from, to, q.Format)
	return h.respond(c, result, err)
}

// TopCustomers godoc
// @Summary      Reporte de mejores clientes
// @Tags         reports
// @Param        limit   query  int     false  "máximo de filas (default 50)"
// @Param        format  query  string  false  "xlsx (default) o pdf"
// @Success      200  {file}  binary
// @Success      204  "sin filas, no se genera archivo"
// @Router       /api/reports/customers/top [get]
func (h *ReportHandler) TopCustomers(c *fiber.Ctx) error {
	var q dto.TopCustomersQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	q.DefaultFormat()
	q.DefaultLimit()
	result, err := h.uc.TopCustomersReport(c.Context(), q.Limit, q.Format)
	return h.respond(c, result, err)
}

// CustomerActivity godoc
// @Summary      Reporte de actividad de un cliente
// @Tags         reports
// @Param        id      path   string  true   "Cliente"
// @Param        format  query  string  false  "xlsx (default) o pdf"
// @Success      200  {file}  binary
// @Success      204  "sin filas, no se genera archivo"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/customers/{id}/activity [get]
func (h *ReportHandler) CustomerActivity(c *fiber.Ctx) error {
	customerID := c.Params("id")
	if customerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de cliente requerido"})
	}
	var q dto.ReportQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	q.DefaultFormat()
	result, err := h.uc.CustomerActivityReport(c.Context(), customerID, q.Format)
	return h.respond(c, result, err)
}

// respond traduce el resultado del use case: nil sin error es 204 (reporte
// sin filas), con archivo se entrega como attachment.
func (h *ReportHandler) respond(c *fiber.Ctx, result *export.ExportResult, err error) error {
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "formato de reporte no soportado"})
		}
		h.log.Error().Err(err).Str("path", c.Path()).Msg("error generando reporte")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error generando el reporte"})
	}
	if result == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}

	c.Set(fiber.HeaderContentType, result.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", result.FileName))
	return c.Send(result.Content)
}

// parseDate parsea 2006-01-02; cadena vacía devuelve la fecha cero.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", s)
}
