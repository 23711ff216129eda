package export

import (
	"time"

	"github.com/comercia/backoffice-api/internal/domain/entity"
	"github.com/comercia/backoffice-api/internal/domain/report"
)

// ExportOptions metadatos de presentación de un reporte exportado.
type ExportOptions struct {
	FileName string                  // sin extensión; "reporte-cliente-*" activa el layout de cliente
	Title    string                  // banda de título de la hoja
	Info     *entity.CustomerSummary // bloque informativo (solo reporte de cliente)
	Date     time.Time               // fecha mostrada; cero = hoy
}

// SheetBuilder puerto del generador de hojas xlsx. Dataset vacío devuelve
// (nil, nil): no se produce archivo.
type SheetBuilder interface {
	Build(ds *report.Dataset, opts ExportOptions) ([]byte, error)
}

// PDFGenerator puerto del generador de la versión imprimible del reporte.
type PDFGenerator interface {
	Generate(ds *report.Dataset, opts ExportOptions) ([]byte, error)
}
