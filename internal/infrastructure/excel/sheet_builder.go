// Package excel construye las hojas de cálculo de los reportes con excelize.
//
// Layout de la hoja ("Hoja 1", filas base 1):
//
//	┌──────────────────────────────────────────────┬──────────┐
//	│  TÍTULO (A1:(N-2)2 combinado)                │  FECHA   │  filas 1-2
//	│  — variante cliente: A1:C2 + bloque D1..G2 — │ (última  │
//	│                                              │ columna) │
//	├──────────┬──────────┬──────────┬─────────────┴──────────┤
//	│  ENCABEZADOS (una celda por columna)                    │  fila 3
//	├──────────┼──────────┼──────────┼────────────────────────┤
//	│  DATOS (formato y relleno por especificación de columna)│  fila 4..
//	├──────────┴──────────┼──────────┼────────────────────────┤
//	│  FILAS AGREGADAS (fórmulas SUM, condicionales)          │
//	└─────────────────────┴──────────┴────────────────────────┘
package excel

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/comercia/backoffice-api/internal/application/export"
	"github.com/comercia/backoffice-api/internal/domain/entity"
	"github.com/comercia/backoffice-api/internal/domain/report"
	"github.com/comercia/backoffice-api/pkg/format"
)

const (
	sheetName = "Hoja 1"

	// Colores de relleno de las regiones fijas.
	fillTitle  = "D9D9D9"
	fillHeader = "C5D9F1"
	fillTotals = "C6E0B4"

	// Formatos numéricos del contrato de compatibilidad con los reportes
	// ya generados: deben reproducirse tal cual.
	fmtText      = "@"
	fmtCurrency2 = `"$" #,##0.00`
	fmtCurrency0 = `"$" #,##0`
	fmtPercent   = "0.00%"
	fmtInteger   = "#,##0"

	// Marcadores de variantes de layout.
	customerReportMarker = "reporte-cliente"
	usdTitleMarker       = "quito"
	countryEC            = "EC"

	defaultColumnWidth = 20
)

// columnWidths anchos explícitos por etiqueta; el resto usa el ancho estándar.
var columnWidths = map[string]float64{
	report.LabelIndex:    5,
	report.LabelProduct:  70,
	report.LabelCustomer: 30,
}

// Builder construye y serializa hojas xlsx a partir de un Dataset.
type Builder struct{}

var _ export.SheetBuilder = (*Builder)(nil)

// NewBuilder construye el generador de hojas.
func NewBuilder() *Builder { return &Builder{} }

// Build genera el binario xlsx del reporte. Un dataset vacío devuelve
// (nil, nil): no hay archivo que producir.
func (b *Builder) Build(ds *report.Dataset, opts export.ExportOptions) ([]byte, error) {
	if ds.Empty() {
		return nil, nil
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("renombrar hoja: %w", err)
	}

	currency := fmtCurrency0
	if strings.Contains(strings.ToLower(opts.Title), usdTitleMarker) ||
		(opts.Info != nil && opts.Info.CountryISOCode == countryEC) {
		currency = fmtCurrency2
	}

	s := &sheet{
		f:        f,
		ds:       ds,
		styles:   make(map[cellStyle]int),
		currency: currency,
	}

	isCustomer := strings.Contains(opts.FileName, customerReportMarker)

	if err := s.writeTitle(opts.Title, isCustomer); err != nil {
		return nil, err
	}
	if isCustomer && opts.Info != nil {
		if err := s.writeCustomerInfo(opts.Info); err != nil {
			return nil, err
		}
	}
	if !isCustomer {
		if err := s.writeDate(opts.Date); err != nil {
			return nil, err
		}
	}
	if err := s.writeHeader(); err != nil {
		return nil, err
	}
	if err := s.writeDataRows(); err != nil {
		return nil, err
	}
	if err := s.writeAggregates(); err != nil {
		return nil, err
	}
	if err := s.setColumnWidths(); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// ── Construcción interna ──────────────────────────────────────────────────────

// sheet estado de una hoja en construcción: archivo, dataset, cache de
// estilos y formato de moneda resuelto para este reporte.
type sheet struct {
	f        *excelize.File
	ds       *report.Dataset
	styles   map[cellStyle]int
	currency string
	rowCount int // última fila escrita
}

// cellStyle clave de estilo; cada combinación se registra una sola vez.
type cellStyle struct {
	bold   bool
	align  string
	fill   string
	numFmt string
}

// style devuelve el ID excelize del estilo, creándolo la primera vez.
// Todas las celdas llevan borde fino y alineación vertical centrada.
func (s *sheet) style(cs cellStyle) (int, error) {
	if id, ok := s.styles[cs]; ok {
		return id, nil
	}
	st := &excelize.Style{
		Font:      &excelize.Font{Bold: cs.bold, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: cs.align, Vertical: "center"},
		Border: []excelize.Border{
			{Type: "top", Style: 1},
			{Type: "left", Style: 1},
			{Type: "bottom", Style: 1},
			{Type: "right", Style: 1},
		},
	}
	if cs.fill != "" {
		st.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{cs.fill}}
	}
	if cs.numFmt != "" {
		numFmt := cs.numFmt
		st.CustomNumFmt = &numFmt
	}
	id, err := s.f.NewStyle(st)
	if err != nil {
		return 0, fmt.Errorf("crear estilo: %w", err)
	}
	s.styles[cs] = id
	return id, nil
}

// writeTitle banda de título combinada: A1:(N-2)2, o A1:C2 en el reporte de
// cliente (las columnas D..G quedan para el bloque informativo).
func (s *sheet) writeTitle(title string, isCustomer bool) error {
	end := "C2"
	if !isCustomer {
		last := len(s.ds.Columns) - 2
		if last < 0 {
			last = 0
		}
		end = ColumnLetter(last) + "2"
	}
	if err := s.f.MergeCell(sheetName, "A1", end); err != nil {
		return fmt.Errorf("combinar título: %w", err)
	}
	if err := s.f.SetCellValue(sheetName, "A1", title); err != nil {
		return fmt.Errorf("escribir título: %w", err)
	}
	id, err := s.style(cellStyle{bold: true, align: "center", fill: fillTitle})
	if err != nil {
		return err
	}
	return s.f.SetCellStyle(sheetName, "A1", end, id)
}

// writeCustomerInfo bloque informativo del reporte de cliente en D1..G2:
// teléfono, ciudad, compras y total gastado, con el estilo del título.
// El total gastado usa moneda con decimales solo si el país es EC.
func (s *sheet) writeCustomerInfo(info *entity.CustomerSummary) error {
	labelID, err := s.style(cellStyle{bold: true, align: "center", fill: fillTitle})
	if err != nil {
		return err
	}
	valueStyle := func(numFmt string) (int, error) {
		return s.style(cellStyle{align: "center", fill: fillTitle, numFmt: numFmt})
	}

	phone := info.PhoneNumber
	if phone == "" {
		phone = report.Placeholder
	}
	city := report.Placeholder
	if info.CityName != "" {
		city = fmt.Sprintf("%s, %s", info.CityName, info.CountryISOCode)
	}
	spentFmt := fmtCurrency0
	if info.CountryISOCode == countryEC {
		spentFmt = fmtCurrency2
	}

	for _, label := range []struct{ cell, text string }{
		{"D1", "Teléfono:"},
		{"D2", "Ciudad:"},
		{"F1", "Compras:"},
		{"F2", "Total gastado:"},
	} {
		if err := s.f.SetCellValue(sheetName, label.cell, label.text); err != nil {
			return fmt.Errorf("escribir etiqueta %s: %w", label.cell, err)
		}
		if err := s.f.SetCellStyle(sheetName, label.cell, label.cell, labelID); err != nil {
			return err
		}
	}

	// E1: teléfono como texto (conserva ceros a la izquierda).
	if err := s.f.SetCellStr(sheetName, "E1", phone); err != nil {
		return fmt.Errorf("escribir teléfono: %w", err)
	}
	phoneID, err := valueStyle(fmtText)
	if err != nil {
		return err
	}
	if err := s.f.SetCellStyle(sheetName, "E1", "E1", phoneID); err != nil {
		return err
	}

	// E2: ciudad, país.
	if err := s.f.SetCellValue(sheetName, "E2", city); err != nil {
		return fmt.Errorf("escribir ciudad: %w", err)
	}
	cityID, err := valueStyle("")
	if err != nil {
		return err
	}
	if err := s.f.SetCellStyle(sheetName, "E2", "E2", cityID); err != nil {
		return err
	}

	// G1: número de compras.
	if err := s.f.SetCellValue(sheetName, "G1", info.BillingsCount); err != nil {
		return fmt.Errorf("escribir compras: %w", err)
	}
	countID, err := valueStyle(fmtInteger)
	if err != nil {
		return err
	}
	if err := s.f.SetCellStyle(sheetName, "G1", "G1", countID); err != nil {
		return err
	}

	// G2: total gastado.
	if err := s.f.SetCellValue(sheetName, "G2", info.TotalSpent.InexactFloat64()); err != nil {
		return fmt.Errorf("escribir total gastado: %w", err)
	}
	spentID, err := valueStyle(spentFmt)
	if err != nil {
		return err
	}
	return s.f.SetCellStyle(sheetName, "G2", "G2", spentID)
}

// writeDate celda de fecha combinada en la última columna, filas 1-2.
func (s *sheet) writeDate(date time.Time) error {
	if date.IsZero() {
		date = time.Now()
	}
	letter := ColumnLetter(len(s.ds.Columns) - 1)
	start, end := letter+"1", letter+"2"
	if err := s.f.MergeCell(sheetName, start, end); err != nil {
		return fmt.Errorf("combinar fecha: %w", err)
	}
	if err := s.f.SetCellValue(sheetName, start, format.Date(date)); err != nil {
		return fmt.Errorf("escribir fecha: %w", err)
	}
	id, err := s.style(cellStyle{bold: true, align: "center", fill: fillTitle})
	if err != nil {
		return err
	}
	return s.f.SetCellStyle(sheetName, start, end, id)
}

// writeHeader fila 3: una celda por etiqueta de columna.
func (s *sheet) writeHeader() error {
	id, err := s.style(cellStyle{bold: true, align: "center", fill: fillHeader})
	if err != nil {
		return err
	}
	for j, col := range s.ds.Columns {
		cell := ColumnLetter(j) + "3"
		if err := s.f.SetCellValue(sheetName, cell, col.Label); err != nil {
			return fmt.Errorf("escribir encabezado %q: %w", col.Label, err)
		}
		if err := s.f.SetCellStyle(sheetName, cell, cell, id); err != nil {
			return err
		}
	}
	s.rowCount = 3
	return nil
}

// writeDataRows filas de datos desde la fila 4, aplicando la especificación
// de cada columna: formato numérico, alineación y relleno condicional.
func (s *sheet) writeDataRows() error {
	for i, row := range s.ds.Rows {
		rowNum := 4 + i
		view := s.ds.View(row)
		for j, col := range s.ds.Columns {
			if j >= len(row) {
				break
			}
			cell := ColumnLetter(j) + strconv.Itoa(rowNum)

			if col.Format == report.FormatText {
				// Forzar texto: códigos y seriales con ceros a la izquierda
				// no deben interpretarse como número.
				if err := s.f.SetCellStr(sheetName, cell, fmt.Sprint(row[j])); err != nil {
					return fmt.Errorf("escribir celda %s: %w", cell, err)
				}
			} else if err := s.f.SetCellValue(sheetName, cell, row[j]); err != nil {
				return fmt.Errorf("escribir celda %s: %w", cell, err)
			}

			cs := cellStyle{align: alignName(col.Align), numFmt: s.numFmt(col.Format)}
			if col.Fill != nil {
				cs.fill = col.Fill(view)
			}
			id, err := s.style(cs)
			if err != nil {
				return err
			}
			if err := s.f.SetCellStyle(sheetName, cell, cell, id); err != nil {
				return err
			}
		}
		s.rowCount = rowNum
	}
	return nil
}

// ── Filas agregadas ───────────────────────────────────────────────────────────

// writeAggregates añade las filas de totales que correspondan según las
// columnas presentes. Cada condición es independiente; una hoja puede cerrar
// con cero, una o dos filas agregadas.
func (s *sheet) writeAggregates() error {
	if err := s.writeRequiredQtyTotal(); err != nil {
		return err
	}
	if err := s.writeBillingTotals(); err != nil {
		return err
	}
	return s.writeStockValueTotals()
}

// writeRequiredQtyTotal total de "Cantidad requerida": etiqueta combinada en
// las dos columnas anteriores y fórmula SUM sobre el rango de datos.
func (s *sheet) writeRequiredQtyTotal() error {
	idx := s.ds.ColumnIndex(report.LabelRequiredQty)
	if idx < 0 {
		return nil
	}
	s.rowCount++
	rowNum := strconv.Itoa(s.rowCount)

	// La etiqueta ocupa las dos columnas anteriores; sin espacio a la
	// izquierda solo se escribe la fórmula.
	if idx >= 2 {
		start := ColumnLetter(idx-2) + rowNum
		end := ColumnLetter(idx-1) + rowNum
		if err := s.f.MergeCell(sheetName, start, end); err != nil {
			return fmt.Errorf("combinar etiqueta de total: %w", err)
		}
		if err := s.f.SetCellValue(sheetName, start, report.LabelRequiredQtyTotal); err != nil {
			return err
		}
		labelID, err := s.style(cellStyle{bold: true, align: "center", fill: fillHeader})
		if err != nil {
			return err
		}
		if err := s.f.SetCellStyle(sheetName, start, end, labelID); err != nil {
			return err
		}
	}

	letter := ColumnLetter(idx)
	sumCell := letter + rowNum
	formula := fmt.Sprintf("SUM(%s4:%s%d)", letter, letter, s.rowCount-1)
	if err := s.f.SetCellFormula(sheetName, sumCell, formula); err != nil {
		return fmt.Errorf("fórmula de total requerido: %w", err)
	}
	sumID, err := s.style(cellStyle{bold: true, align: "center", fill: fillHeader, numFmt: fmtInteger})
	if err != nil {
		return err
	}
	return s.f.SetCellStyle(sheetName, sumCell, sumCell, sumID)
}

// writeBillingTotals fila "Totales" del reporte de facturas: solo si están
// presentes Cliente, Subtotal, Descuento, Total y Flete.
func (s *sheet) writeBillingTotals() error {
	required := []string{
		report.LabelCustomer, report.LabelSubtotal, report.LabelDiscount,
		report.LabelTotal, report.LabelShipping,
	}
	for _, label := range required {
		if !s.ds.HasColumn(label) {
			return nil
		}
	}

	s.rowCount++
	if err := s.sumCell(s.ds.ColumnIndex(report.LabelSubtotal), report.LabelTotals); err != nil {
		return err
	}
	for _, label := range []string{report.LabelDiscount, report.LabelTotal, report.LabelShipping} {
		if err := s.sumCell(s.ds.ColumnIndex(label), ""); err != nil {
			return err
		}
	}
	return nil
}

// writeStockValueTotals fila de valoración del stock: totales de precio de
// venta y de costo, cada uno con su etiqueta a la izquierda.
func (s *sheet) writeStockValueTotals() error {
	priceIdx := s.ds.ColumnIndex(report.LabelTotalSalePrice)
	costIdx := s.ds.ColumnIndex(report.LabelTotalCost)
	if priceIdx < 0 || costIdx < 0 {
		return nil
	}

	s.rowCount++
	if err := s.sumCell(priceIdx, report.LabelTotalPriceValue); err != nil {
		return err
	}
	return s.sumCell(costIdx, report.LabelTotalCostValue)
}

// sumCell celda de fórmula SUM de la columna idx en la fila agregada actual,
// con formato de moneda; la etiqueta opcional va en la columna inmediatamente
// a la izquierda. El rango suma desde la fila 4 hasta la fila anterior.
func (s *sheet) sumCell(idx int, label string) error {
	letter := ColumnLetter(idx)
	rowNum := strconv.Itoa(s.rowCount)

	cell := letter + rowNum
	formula := fmt.Sprintf("SUM(%s4:%s%d)", letter, letter, s.rowCount-1)
	if err := s.f.SetCellFormula(sheetName, cell, formula); err != nil {
		return fmt.Errorf("fórmula SUM en %s: %w", cell, err)
	}
	id, err := s.style(cellStyle{bold: true, align: "right", fill: fillTotals, numFmt: s.currency})
	if err != nil {
		return err
	}
	if err := s.f.SetCellStyle(sheetName, cell, cell, id); err != nil {
		return err
	}

	if label == "" {
		return nil
	}
	labelCell := ColumnLetter(idx-1) + rowNum
	if err := s.f.SetCellValue(sheetName, labelCell, label); err != nil {
		return err
	}
	labelID, err := s.style(cellStyle{bold: true, align: "center", fill: fillHeader})
	if err != nil {
		return err
	}
	return s.f.SetCellStyle(sheetName, labelCell, labelCell, labelID)
}

// setColumnWidths anchos: "#" angosta, Producto ancha, Cliente media,
// el resto estándar.
func (s *sheet) setColumnWidths() error {
	for j, col := range s.ds.Columns {
		w := float64(defaultColumnWidth)
		if override, ok := columnWidths[col.Label]; ok {
			w = override
		}
		letter := ColumnLetter(j)
		if err := s.f.SetColWidth(sheetName, letter, letter, w); err != nil {
			return fmt.Errorf("ancho de columna %s: %w", letter, err)
		}
	}
	return nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

// numFmt formato numérico excelize de un formato de columna; la moneda usa
// el formato resuelto para este reporte.
func (s *sheet) numFmt(f report.Format) string {
	switch f {
	case report.FormatText:
		return fmtText
	case report.FormatCurrency:
		return s.currency
	case report.FormatPercent:
		return fmtPercent
	case report.FormatInteger:
		return fmtInteger
	default:
		return ""
	}
}

func alignName(a report.Align) string {
	switch a {
	case report.AlignLeft:
		return "left"
	case report.AlignRight:
		return "right"
	default:
		return "center"
	}
}
