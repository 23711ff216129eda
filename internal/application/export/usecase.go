package export

import (
	"context"
	"time"

	"github.com/comercia/backoffice-api/internal/application/dto"
	"github.com/comercia/backoffice-api/internal/domain"
	"github.com/comercia/backoffice-api/internal/domain/report"
	"github.com/comercia/backoffice-api/internal/domain/repository"
	"github.com/comercia/backoffice-api/pkg/logger"
)

// Tipos MIME de los archivos generados.
const (
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimePDF  = "application/pdf"
)

// ExportResult archivo de reporte listo para entregar. Un resultado nil (sin
// error) significa que el reporte no tiene filas y no se generó archivo.
type ExportResult struct {
	FileName    string // con extensión
	ContentType string
	Content     []byte
}

// UseCase genera los reportes exportables: proyecta los datos a un Dataset y
// lo entrega al generador del formato pedido.
type UseCase struct {
	stockRepo    repository.StockRepository
	billingRepo  repository.BillingRepository
	customerRepo repository.CustomerRepository
	sheets       SheetBuilder
	pdfs         PDFGenerator
	log          *logger.Logger
}

// NewUseCase construye el caso de uso de exportación.
func NewUseCase(
	stockRepo repository.StockRepository,
	billingRepo repository.BillingRepository,
	customerRepo repository.CustomerRepository,
	sheets SheetBuilder,
	pdfs PDFGenerator,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		stockRepo:    stockRepo,
		billingRepo:  billingRepo,
		customerRepo: customerRepo,
		sheets:       sheets,
		pdfs:         pdfs,
		log:          log,
	}
}

// RestockReport reporte de reposición de stock de un almacén. El título lleva
// el nombre del almacén: la moneda de la hoja depende de la sucursal.
func (uc *UseCase) RestockReport(ctx context.Context, warehouseID, format string) (*ExportResult, error) {
	warehouse, err := uc.stockRepo.GetWarehouseName(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	items, err := uc.stockRepo.ListStockItems(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	transit, err := uc.stockRepo.ListTransitQuantities(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	ds := report.RestockDataset(items, transit)
	return uc.render(ds, ExportOptions{
		FileName: "reporte-reposicion-stock",
		Title:    reportTitle("Reporte de Reposición de Stock", warehouse),
	}, format)
}

// CostStockReport reporte de valoración del stock de un almacén.
func (uc *UseCase) CostStockReport(ctx context.Context, warehouseID, format string) (*ExportResult, error) {
	warehouse, err := uc.stockRepo.GetWarehouseName(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	items, err := uc.stockRepo.ListStockItems(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	ds := report.CostStockDataset(items)
	return uc.render(ds, ExportOptions{
		FileName: "reporte-costo-stock",
		Title:    reportTitle("Reporte de Costo de Stock", warehouse),
	}, format)
}

// reportTitle agrega el detalle (p. ej. el nombre del almacén) al título base.
func reportTitle(base, detail string) string {
	if detail == "" {
		return base
	}
	return base + " - " + detail
}

// StockHistoryReport reporte de movimientos de un item de stock.
func (uc *UseCase) StockHistoryReport(ctx context.Context, stockItemID, format string) (*ExportResult, error) {
	entries, err := uc.stockRepo.ListStockHistory(ctx, stockItemID)
	if err != nil {
		return nil, err
	}
	ds := report.StockHistoryDataset(entries)
	return uc.render(ds, ExportOptions{
		FileName: "reporte-historial-stock",
		Title:    "Reporte de Historial de Stock",
	}, format)
}

// BillingsReport reporte de facturas emitidas en el rango dado.
func (uc *UseCase) BillingsReport(ctx context.Context, from, to time.Time, format string) (*ExportResult, error) {
	billings, err := uc.billingRepo.ListBillings(ctx, from, to)
	if err != nil {
		return nil, err
	}
	ds := report.BillingsDataset(billings)
	return uc.render(ds, ExportOptions{
		FileName: "reporte-facturas",
		Title:    "Reporte de Facturas",
	}, format)
}

// TopCustomersReport ranking de clientes por facturación acumulada.
func (uc *UseCase) TopCustomersReport(ctx context.Context, limit int, format string) (*ExportResult, error) {
	customers, err := uc.customerRepo.ListTopCustomers(ctx, limit)
	if err != nil {
		return nil, err
	}
	ds := report.TopCustomersDataset(customers)
	return uc.render(ds, ExportOptions{
		FileName: "reporte-mejores-clientes",
		Title:    "Reporte de Mejores Clientes",
	}, format)
}

// CustomerActivityReport actividad de un cliente (facturas y cotizaciones)
// con su bloque informativo. El nombre de archivo lleva el documento del
// cliente y activa el layout de cliente en la hoja.
func (uc *UseCase) CustomerActivityReport(ctx context.Context, customerID, format string) (*ExportResult, error) {
	summary, err := uc.customerRepo.GetSummary(ctx, customerID)
	if err != nil {
		return nil, err
	}
	records, err := uc.billingRepo.ListCustomerActivity(ctx, customerID)
	if err != nil {
		return nil, err
	}
	ds := report.CustomerActivityDataset(records)
	return uc.render(ds, ExportOptions{
		FileName: "reporte-cliente-" + summary.DNI,
		Title:    "Cliente: " + summary.FullName,
		Info:     summary,
	}, format)
}

// render entrega el dataset al generador del formato pedido. Dataset vacío
// devuelve (nil, nil): el handler lo traduce a 204.
func (uc *UseCase) render(ds *report.Dataset, opts ExportOptions, format string) (*ExportResult, error) {
	if ds.Empty() {
		uc.log.Debug().Str("file", opts.FileName).Msg("reporte sin filas, no se genera archivo")
		return nil, nil
	}

	switch format {
	case dto.FormatXLSX, "":
		content, err := uc.sheets.Build(ds, opts)
		if err != nil {
			return nil, err
		}
		if content == nil {
			return nil, nil
		}
		return &ExportResult{
			FileName:    opts.FileName + ".xlsx",
			ContentType: mimeXLSX,
			Content:     content,
		}, nil
	case dto.FormatPDF:
		content, err := uc.pdfs.Generate(ds, opts)
		if err != nil {
			return nil, err
		}
		return &ExportResult{
			FileName:    opts.FileName + ".pdf",
			ContentType: mimePDF,
			Content:     content,
		}, nil
	default:
		return nil, domain.ErrInvalidInput
	}
}
