package dto

// Formatos de salida aceptados por los endpoints de reportes.
const (
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

// ReportQuery parámetros comunes de los endpoints de reportes.
type ReportQuery struct {
	Format string `query:"format" validate:"omitempty,oneof=xlsx pdf"`
}

// DefaultFormat aplica xlsx si no se pidió formato.
func (q *ReportQuery) DefaultFormat() {
	if q.Format == "" {
		q.Format = FormatXLSX
	}
}

// StockReportQuery parámetros de los reportes de reposición y costo de stock.
type StockReportQuery struct {
	ReportQuery
	WarehouseID string `query:"warehouse_id" validate:"required,uuid"`
}

// StockHistoryQuery parámetros del reporte de historial de un item de stock.
type StockHistoryQuery struct {
	ReportQuery
	StockID string `query:"stock_id" validate:"required,uuid"`
}

// BillingsReportQuery parámetros del reporte de facturas (rango de fechas
// en formato 2006-01-02; vacío = sin límite en ese extremo).
type BillingsReportQuery struct {
	ReportQuery
	StartDate string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

// TopCustomersQuery parámetros del reporte de mejores clientes.
type TopCustomersQuery struct {
	ReportQuery
	Limit int `query:"limit" validate:"omitempty,min=1,max=500"`
}

// DefaultLimit aplica el tope por defecto del ranking.
func (q *TopCustomersQuery) DefaultLimit() {
	if q.Limit <= 0 {
		q.Limit = 50
	}
}
