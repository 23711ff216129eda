package report

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/comercia/backoffice-api/internal/domain/entity"
	"github.com/comercia/backoffice-api/pkg/format"
)

// restockColumns especificación del reporte de reposición de stock.
func restockColumns() []Column {
	return []Column{
		{Label: LabelIndex},
		{Label: LabelCode, Format: FormatText},
		{Label: LabelProduct, Align: AlignLeft},
		{Label: LabelMinQty},
		{Label: LabelMaxQty},
		{Label: LabelCurrentQty, Fill: stockHealthFill},
		{Label: LabelTransitQty},
		{Label: LabelRequiredQty},
	}
}

// RestockDataset proyecta los items de stock que necesitan reposición.
// Cruza las cantidades en tránsito por variante (ausente = 0, el último valor
// gana si hay duplicados) y calcula la cantidad requerida:
//
//	requerida = máxima - actual - en tránsito
//
// Solo emite filas con máxima > 0, mínima > 0 y requerida > 0: items sin
// umbrales configurados o que no necesitan pedido se excluyen en silencio.
// La columna "#" es el ordinal de la fila emitida, no el índice de origen.
func RestockDataset(items []entity.StockItem, transit []entity.TransitQuantity) *Dataset {
	ds := &Dataset{Columns: restockColumns()}

	inTransit := make(map[string]decimal.Decimal, len(transit))
	for _, t := range transit {
		inTransit[t.ProductVariantID] = t.QtyInTransit
	}

	for _, item := range items {
		qtyInTransit := inTransit[item.ProductVariantID]
		requiredQty := item.MaxQty.Sub(item.Quantity).Sub(qtyInTransit)

		if !item.MaxQty.IsPositive() || !item.MinQty.IsPositive() || !requiredQty.IsPositive() {
			continue
		}

		ds.Rows = append(ds.Rows, Row{
			float64(len(ds.Rows) + 1),
			item.VariantCode,
			productLabel(item),
			item.MinQty.InexactFloat64(),
			item.MaxQty.InexactFloat64(),
			item.Quantity.InexactFloat64(),
			qtyInTransit.InexactFloat64(),
			requiredQty.InexactFloat64(),
		})
	}
	return ds
}

// costStockColumns especificación del reporte de costo de stock.
func costStockColumns() []Column {
	return []Column{
		{Label: LabelIndex},
		{Label: LabelCode, Format: FormatText},
		{Label: LabelProduct, Align: AlignLeft},
		{Label: LabelQty},
		{Label: LabelSalePrice, Format: FormatCurrency, Align: AlignRight},
		{Label: LabelTotalSalePrice, Format: FormatCurrency, Align: AlignRight},
		{Label: LabelCostPrice, Format: FormatCurrency, Align: AlignRight},
		{Label: LabelTotalCost, Format: FormatCurrency, Align: AlignRight},
		{Label: LabelUnitProfit, Format: FormatCurrency, Align: AlignRight},
		{Label: LabelProfitPct, Format: FormatPercent},
	}
}

// CostStockDataset proyecta la valoración del stock: solo items con cantidad
// y costo positivos. Calcula total venta, total costo, ganancia unitaria y
// % de ganancia = (precio - costo) / costo. El filtro garantiza costo > 0,
// pero la división se protege igualmente por si el dato llega inconsistente.
func CostStockDataset(items []entity.StockItem) *Dataset {
	ds := &Dataset{Columns: costStockColumns()}

	for _, item := range items {
		if !item.Quantity.IsPositive() || !item.Cost.IsPositive() {
			continue
		}

		unitProfit := item.Price.Sub(item.Cost)
		profitPct := decimal.Zero
		if !item.Cost.IsZero() {
			profitPct = unitProfit.Div(item.Cost)
		}

		ds.Rows = append(ds.Rows, Row{
			float64(len(ds.Rows) + 1),
			item.VariantCode,
			productLabel(item),
			item.Quantity.InexactFloat64(),
			item.Price.InexactFloat64(),
			item.Quantity.Mul(item.Price).InexactFloat64(),
			item.Cost.InexactFloat64(),
			item.Quantity.Mul(item.Cost).InexactFloat64(),
			unitProfit.InexactFloat64(),
			profitPct.InexactFloat64(),
		})
	}
	return ds
}

// stockHistoryColumns especificación del reporte de historial de stock.
func stockHistoryColumns() []Column {
	return []Column{
		{Label: LabelIndex},
		{Label: LabelDate},
		{Label: LabelTransaction, Fill: transactionFill},
		{Label: LabelStockBefore},
		{Label: LabelQty},
		{Label: LabelStockAfter},
	}
}

// StockHistoryDataset proyecta el historial de movimientos de un item de
// stock. El stock resultante lo aporta la entidad (ENTER suma, el resto
// resta) y la etiqueta de transacción aplica la precedencia BILLING→Factura.
func StockHistoryDataset(entries []entity.StockItemHistoryEntry) *Dataset {
	ds := &Dataset{Columns: stockHistoryColumns()}

	for i, e := range entries {
		ds.Rows = append(ds.Rows, Row{
			float64(i + 1),
			format.Date(e.CreatedDate),
			TransactionLabel(e.Type),
			e.StockBefore.InexactFloat64(),
			e.Quantity.InexactFloat64(),
			e.StockAfter().InexactFloat64(),
		})
	}
	return ds
}

// productLabel nombre visible de la variante: "Producto - Variante".
func productLabel(item entity.StockItem) string {
	return fmt.Sprintf("%s - %s", item.ProductName, item.ProductVariantName)
}
