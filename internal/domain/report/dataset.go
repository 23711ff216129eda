// Package report contiene los proyectores de reportes: funciones puras que
// transforman registros de negocio (stock, facturas, clientes, historial) en
// datasets tabulares planos listos para exportar a hoja de cálculo o PDF.
//
// Cada proyector devuelve un Dataset con su tabla de especificación de
// columnas (etiqueta, formato, alineación y relleno condicional), de modo que
// el constructor de hojas itera posicionalmente y no compara etiquetas.
package report

import (
	"github.com/shopspring/decimal"
)

// Format identifica el formato numérico de una columna en la hoja exportada.
type Format int

const (
	FormatGeneral  Format = iota
	FormatText            // "@": fuerza texto (códigos, seriales, teléfonos)
	FormatCurrency        // "$" #,##0 o "$" #,##0.00 según moneda del reporte
	FormatPercent         // 0.00%
	FormatInteger         // #,##0
)

// Align alineación horizontal de una columna.
type Align int

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

// FillFunc decide el color de relleno (RGB hex, ej. "E53535") de una celda a
// partir de los valores de toda su fila. Cadena vacía = sin relleno.
type FillFunc func(row RowView) string

// Column especificación de una columna: etiqueta visible, formato, alineación
// y relleno condicional. El orden de la tabla de columnas fija el orden físico
// en la hoja.
type Column struct {
	Label  string
	Format Format
	Align  Align
	Fill   FillFunc
}

// Row valores de una fila, en el mismo orden que las columnas del Dataset.
// Solo primitivos: string o float64.
type Row []any

// Dataset resultado de un proyector: especificación de columnas más filas.
type Dataset struct {
	Columns []Column
	Rows    []Row
}

// Empty reporta si el dataset no tiene filas (ninguna exportación se produce).
func (d *Dataset) Empty() bool {
	return d == nil || len(d.Rows) == 0
}

// Labels etiquetas de columna en orden (fila de encabezado).
func (d *Dataset) Labels() []string {
	labels := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		labels[i] = c.Label
	}
	return labels
}

// ColumnIndex índice base 0 de la columna con esa etiqueta, -1 si no existe.
func (d *Dataset) ColumnIndex(label string) int {
	for i, c := range d.Columns {
		if c.Label == label {
			return i
		}
	}
	return -1
}

// HasColumn reporta si existe una columna con esa etiqueta.
func (d *Dataset) HasColumn(label string) bool {
	return d.ColumnIndex(label) >= 0
}

// View devuelve la vista por etiqueta de una fila (para rellenos condicionales).
func (d *Dataset) View(row Row) RowView {
	return RowView{ds: d, row: row}
}

// RowView acceso por etiqueta a los valores de una fila.
type RowView struct {
	ds  *Dataset
	row Row
}

// Value valor crudo de la columna, nil si la etiqueta no existe.
func (v RowView) Value(label string) any {
	i := v.ds.ColumnIndex(label)
	if i < 0 || i >= len(v.row) {
		return nil
	}
	return v.row[i]
}

// Number valor numérico de la columna; coerción con fallback a 0.
func (v RowView) Number(label string) float64 {
	return toFloat(v.Value(label))
}

// Text valor textual de la columna; cadena vacía si no existe.
func (v RowView) Text(label string) string {
	s, _ := v.Value(label).(string)
	return s
}

// toFloat coerción a número con fallback a 0 (política uniforme: ningún
// valor no numérico se propaga a la hoja).
func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case decimal.Decimal:
		return n.InexactFloat64()
	case string:
		d, err := decimal.NewFromString(n)
		if err != nil {
			return 0
		}
		return d.InexactFloat64()
	default:
		return 0
	}
}

// Etiquetas de columna y de filas agregadas. Son el contrato de presentación
// en español de los reportes ya generados: deben reproducirse tal cual.
const (
	LabelIndex          = "#"
	LabelCode           = "Código"
	LabelProduct        = "Producto"
	LabelMinQty         = "Cantidad mínima"
	LabelMaxQty         = "Cantidad máxima"
	LabelCurrentQty     = "Cantidad actual"
	LabelTransitQty     = "Cantidad en tránsito"
	LabelRequiredQty    = "Cantidad requerida"
	LabelQty            = "Cantidad"
	LabelSalePrice      = "Precio Venta"
	LabelTotalSalePrice = "Total Precio Venta"
	LabelCostPrice      = "Precio Costo"
	LabelTotalCost      = "Costo Total"
	LabelUnitProfit     = "Ganancia Unitaria"
	LabelProfitPct      = "% de Ganancia"
	LabelDate           = "Fecha"
	LabelTransaction    = "Transacción"
	LabelStockBefore    = "Stock Antes"
	LabelStockAfter     = "Stock Después"
	LabelSerialNumber   = "Número de Serial"
	LabelCustomer       = "Cliente"
	LabelPaymentMethods = "Métodos de Pago"
	LabelSubtotal       = "Subtotal"
	LabelDiscount       = "Descuento"
	LabelTotal          = "Total"
	LabelShipping       = "Flete"
	LabelDocumentNumber = "Nro de Documento"
	LabelName           = "Nombre"
	LabelPhone          = "Teléfono"
	LabelCity           = "Ciudad"
	LabelPurchases      = "Compras"
	LabelBilled         = "Facturado"

	LabelRequiredQtyTotal = "Cantidad total requerida de items"
	LabelTotals           = "Totales"
	LabelTotalPriceValue  = "Valor total precio"
	LabelTotalCostValue   = "Valor total costo"
)

// Placeholder para celdas sin valor ("--" en los reportes existentes).
const Placeholder = "--"
