// Package pdf implementa la versión imprimible de los reportes tabulares.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  TÍTULO DEL REPORTE              │  Fecha                   │
//	│  (reporte de cliente: teléfono, ciudad, compras, gastado)   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: encabezados según el dataset                        │
//	│  ...una fila por registro...                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES (si el reporte los tiene)                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/comercia/backoffice-api/internal/application/export"
	"github.com/comercia/backoffice-api/internal/domain/entity"
	"github.com/comercia/backoffice-api/internal/domain/report"
	"github.com/comercia/backoffice-api/pkg/format"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ReportPDFGenerator implementa export.PDFGenerator usando Maroto v2.
type ReportPDFGenerator struct{}

var _ export.PDFGenerator = (*ReportPDFGenerator)(nil)

// NewReportPDFGenerator construye el generador.
func NewReportPDFGenerator() *ReportPDFGenerator { return &ReportPDFGenerator{} }

// Generate genera el PDF del reporte y devuelve sus bytes. Dataset vacío
// devuelve (nil, nil): no se produce archivo.
func (g *ReportPDFGenerator) Generate(ds *report.Dataset, opts export.ExportOptions) ([]byte, error) {
	if ds.Empty() {
		return nil, nil
	}

	// Misma regla de moneda que la hoja: decimales solo para reportes de
	// Quito o clientes de Ecuador.
	decimals := int32(0)
	if strings.Contains(strings.ToLower(opts.Title), "quito") ||
		(opts.Info != nil && opts.Info.CountryISOCode == "EC") {
		decimals = 2
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(opts.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(opts))
	if opts.Info != nil {
		m.AddRows(customerInfoRow(opts.Info, decimals))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	spans := columnSpans(ds.Columns)
	m.AddRows(tableHeaderRow(ds, spans))
	for _, r := range tableDetailRows(ds, spans, decimals) {
		m.AddRows(r)
	}

	if totals := totalsRows(ds, decimals); len(totals) > 0 {
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		m.AddRows(totals...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del reporte (izq) y fecha (der).
func headerRow(opts export.ExportOptions) core.Row {
	date := opts.Date
	if date.IsZero() {
		date = time.Now()
	}

	return row.New(12).Add(
		col.New(8).Add(
			text.New(opts.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Fecha: "+format.Date(date), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

// customerInfoRow: bloque informativo del reporte de cliente.
func customerInfoRow(info *entity.CustomerSummary, decimals int32) core.Row {
	phone := nonEmpty(info.PhoneNumber, report.Placeholder)
	city := report.Placeholder
	if info.CityName != "" {
		city = fmt.Sprintf("%s, %s", info.CityName, info.CountryISOCode)
	}

	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Teléfono: %s   |   Ciudad: %s", phone, city),
				props.Text{Size: 8, Top: 1, Color: colorGray}),
			text.New(fmt.Sprintf("Compras: %d   |   Total gastado: %s",
				info.BillingsCount,
				money(info.TotalSpent.InexactFloat64(), decimals),
			), props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla según las columnas del dataset.
func tableHeaderRow(ds *report.Dataset, spans []int) core.Row {
	cols := make([]core.Col, 0, len(ds.Columns))
	for i, c := range ds.Columns {
		cols = append(cols, col.New(spans[i]).Add(text.New(c.Label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: alignOf(c.Align),
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...)
}

// tableDetailRows: una fila por registro, formateando cada celda según la
// especificación de su columna.
func tableDetailRows(ds *report.Dataset, spans []int, decimals int32) []core.Row {
	result := make([]core.Row, 0, len(ds.Rows))
	for _, r := range ds.Rows {
		view := ds.View(r)
		cols := make([]core.Col, 0, len(ds.Columns))
		for i, c := range ds.Columns {
			cols = append(cols, col.New(spans[i]).Add(text.New(
				cellText(c, view, decimals),
				props.Text{Size: 8, Align: alignOf(c.Align), Top: 1, Left: 1, Right: 1},
			)))
		}
		result = append(result, row.New(6).Add(cols...))
	}
	return result
}

// totalsRows: bloque de totales equivalente a las filas agregadas de la hoja.
func totalsRows(ds *report.Dataset, decimals int32) []core.Row {
	switch {
	case ds.HasColumn(report.LabelRequiredQty):
		total := sumColumn(ds, report.LabelRequiredQty)
		return []core.Row{totalLine(report.LabelRequiredQtyTotal,
			decimal.NewFromFloat(total).StringFixed(0))}

	case ds.HasColumn(report.LabelSubtotal) && ds.HasColumn(report.LabelDiscount):
		return []core.Row{
			totalLine(report.LabelSubtotal, money(sumColumn(ds, report.LabelSubtotal), decimals)),
			totalLine(report.LabelDiscount, money(sumColumn(ds, report.LabelDiscount), decimals)),
			totalLine(report.LabelTotal, money(sumColumn(ds, report.LabelTotal), decimals)),
			totalLine(report.LabelShipping, money(sumColumn(ds, report.LabelShipping), decimals)),
		}

	case ds.HasColumn(report.LabelTotalSalePrice) && ds.HasColumn(report.LabelTotalCost):
		return []core.Row{
			totalLine(report.LabelTotalPriceValue, money(sumColumn(ds, report.LabelTotalSalePrice), decimals)),
			totalLine(report.LabelTotalCostValue, money(sumColumn(ds, report.LabelTotalCost), decimals)),
		}
	}
	return nil
}

// totalLine: una línea de total alineada a la derecha.
func totalLine(label, value string) core.Row {
	return row.New(6).Add(
		col.New(6),
		col.New(4).Add(text.New(label+":", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})),
		col.New(2).Add(text.New(value, props.Text{
			Size: 9, Align: align.Right, Right: 1,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// columnSpans reparte las 12 columnas de la grilla de Maroto entre las
// columnas del dataset: "#" angosta, Producto/Cliente anchas, el resto parejo.
// El residuo del redondeo se asigna a la columna más ancha.
func columnSpans(cols []report.Column) []int {
	weights := make([]int, len(cols))
	total := 0
	for i, c := range cols {
		w := 2
		switch c.Label {
		case report.LabelIndex:
			w = 1
		case report.LabelProduct, report.LabelCustomer:
			w = 4
		}
		weights[i] = w
		total += w
	}

	spans := make([]int, len(cols))
	sum := 0
	for i, w := range weights {
		s := w * 12 / total
		if s < 1 {
			s = 1
		}
		spans[i] = s
		sum += s
	}

	widest := 0
	for i, s := range spans {
		if s > spans[widest] {
			widest = i
		}
	}
	spans[widest] += 12 - sum
	return spans
}

// cellText renderiza el valor de una celda según el formato de su columna.
func cellText(c report.Column, view report.RowView, decimals int32) string {
	switch c.Format {
	case report.FormatCurrency:
		return money(view.Number(c.Label), decimals)
	case report.FormatPercent:
		return decimal.NewFromFloat(view.Number(c.Label) * 100).StringFixed(2) + "%"
	case report.FormatInteger:
		return decimal.NewFromFloat(view.Number(c.Label)).StringFixed(0)
	case report.FormatText:
		return view.Text(c.Label)
	default:
		if s := view.Text(c.Label); s != "" {
			return s
		}
		return decimal.NewFromFloat(view.Number(c.Label)).String()
	}
}

// sumColumn suma aritmética de una columna numérica.
func sumColumn(ds *report.Dataset, label string) float64 {
	var total float64
	for _, r := range ds.Rows {
		total += ds.View(r).Number(label)
	}
	return total
}

// money formatea un monto con símbolo y separador de miles.
// Ej: 25000 → "$ 25,000", 1234.5 con 2 decimales → "$ 1,234.50"
func money(v float64, decimals int32) string {
	return "$ " + groupThousands(decimal.NewFromFloat(v).StringFixed(decimals))
}

// groupThousands inserta comas de miles en la parte entera de un string
// numérico. Ej: "25000" → "25,000", "1234.50" → "1,234.50"
func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, intPart[i])
	}

	out := string(buf)
	if hasFrac {
		out += "." + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func alignOf(a report.Align) align.Type {
	switch a {
	case report.AlignLeft:
		return align.Left
	case report.AlignRight:
		return align.Right
	default:
		return align.Center
	}
}
