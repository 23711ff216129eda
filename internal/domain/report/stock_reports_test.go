package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comercia/backoffice-api/internal/domain/entity"
	"github.com/comercia/backoffice-api/internal/domain/report"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func stockItem(code, product, variant, qty, min, max, cost, price string) entity.StockItem {
	return entity.StockItem{
		ID:                 "stock-" + code,
		ProductVariantID:   "variant-" + code,
		VariantCode:        code,
		ProductName:        product,
		ProductVariantName: variant,
		Quantity:           d(qty),
		MinQty:             d(min),
		MaxQty:             d(max),
		Cost:               d(cost),
		Price:              d(price),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte de reposición
// ──────────────────────────────────────────────────────────────────────────────

func TestRestockDataset_CalculaCantidadRequerida(t *testing.T) {
	items := []entity.StockItem{
		stockItem("A-01", "Camisa", "Talla M", "10", "5", "50", "8", "15"),
	}
	transit := []entity.TransitQuantity{
		{ProductVariantID: "variant-A-01", QtyInTransit: d("12")},
	}

	ds := report.RestockDataset(items, transit)
	require.Len(t, ds.Rows, 1)

	row := ds.Rows[0]
	assert.Equal(t, 1.0, row[0], "la primera fila lleva ordinal 1")
	assert.Equal(t, "A-01", row[1])
	assert.Equal(t, "Camisa - Talla M", row[2], "el producto se muestra como 'Producto - Variante'")
	assert.Equal(t, 12.0, row[6], "la cantidad en tránsito viene del cruce por variante")
	assert.Equal(t, 28.0, row[7], "requerida = máxima - actual - tránsito (50 - 10 - 12)")
}

func TestRestockDataset_ExcluyeItemsSinUmbralOSinNecesidad(t *testing.T) {
	items := []entity.StockItem{
		stockItem("SIN-MAX", "Camisa", "M", "1", "5", "0", "8", "15"),  // máxima 0
		stockItem("SIN-MIN", "Camisa", "L", "1", "0", "50", "8", "15"), // mínima 0
		stockItem("LLENO", "Camisa", "XL", "50", "5", "50", "8", "15"), // requerida 0
		stockItem("OK", "Camisa", "S", "10", "5", "50", "8", "15"),
	}

	ds := report.RestockDataset(items, nil)
	require.Len(t, ds.Rows, 1, "solo el item con umbrales y necesidad real se emite")
	assert.Equal(t, "OK", ds.Rows[0][1])
	assert.Equal(t, 1.0, ds.Rows[0][0], "el ordinal es de filas emitidas, no del índice de origen")
}

func TestRestockDataset_TransitoAusenteEsCero(t *testing.T) {
	items := []entity.StockItem{
		stockItem("A-01", "Camisa", "M", "10", "5", "50", "8", "15"),
	}

	ds := report.RestockDataset(items, nil)
	require.Len(t, ds.Rows, 1)
	assert.Equal(t, 0.0, ds.Rows[0][6])
	assert.Equal(t, 40.0, ds.Rows[0][7])
}

func TestRestockDataset_TransitoDuplicadoGanaElUltimo(t *testing.T) {
	items := []entity.StockItem{
		stockItem("A-01", "Camisa", "M", "10", "5", "50", "8", "15"),
	}
	transit := []entity.TransitQuantity{
		{ProductVariantID: "variant-A-01", QtyInTransit: d("3")},
		{ProductVariantID: "variant-A-01", QtyInTransit: d("7")},
	}

	ds := report.RestockDataset(items, transit)
	require.Len(t, ds.Rows, 1)
	assert.Equal(t, 7.0, ds.Rows[0][6])
}

func TestRestockDataset_SinItemsEsVacio(t *testing.T) {
	ds := report.RestockDataset(nil, nil)
	assert.True(t, ds.Empty())
	assert.Len(t, ds.Columns, 8, "la especificación de columnas existe aunque no haya filas")
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte de costo de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestCostStockDataset_CalculaTotalesYGanancia(t *testing.T) {
	items := []entity.StockItem{
		stockItem("A-01", "Camisa", "M", "4", "5", "50", "10", "25"),
	}

	ds := report.CostStockDataset(items)
	require.Len(t, ds.Rows, 1)

	row := ds.Rows[0]
	assert.Equal(t, 4.0, row[3], "cantidad")
	assert.Equal(t, 25.0, row[4], "precio venta")
	assert.Equal(t, 100.0, row[5], "total venta = cantidad * precio")
	assert.Equal(t, 10.0, row[6], "precio costo")
	assert.Equal(t, 40.0, row[7], "total costo = cantidad * costo")
	assert.Equal(t, 15.0, row[8], "ganancia unitaria = precio - costo")
	assert.InDelta(t, 1.5, row[9], 1e-9, "% de ganancia = (precio - costo) / costo")
}

func TestCostStockDataset_ExcluyeSinCantidadOSinCosto(t *testing.T) {
	items := []entity.StockItem{
		stockItem("SIN-QTY", "Camisa", "M", "0", "5", "50", "10", "25"),
		stockItem("SIN-COSTO", "Camisa", "L", "4", "5", "50", "0", "25"),
		stockItem("OK", "Camisa", "S", "2", "5", "50", "10", "25"),
	}

	ds := report.CostStockDataset(items)
	require.Len(t, ds.Rows, 1)
	assert.Equal(t, "OK", ds.Rows[0][1])
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte de historial de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestStockHistoryDataset_EntradaSumaRestoResta(t *testing.T) {
	created := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	entries := []entity.StockItemHistoryEntry{
		{ID: "1", Type: entity.TransactionEnter, Quantity: d("5"), StockBefore: d("10"), CreatedDate: created},
		{ID: "2", Type: entity.TransactionExit, Quantity: d("3"), StockBefore: d("15"), CreatedDate: created},
		{ID: "3", Type: entity.TransactionTransfer, Quantity: d("2"), StockBefore: d("12"), CreatedDate: created},
	}

	ds := report.StockHistoryDataset(entries)
	require.Len(t, ds.Rows, 3)

	assert.Equal(t, "Entrada", ds.Rows[0][2])
	assert.Equal(t, 15.0, ds.Rows[0][5], "ENTER suma: 10 + 5")

	assert.Equal(t, "Salida", ds.Rows[1][2])
	assert.Equal(t, 12.0, ds.Rows[1][5], "EXIT resta: 15 - 3")

	assert.Equal(t, "Transferencia", ds.Rows[2][2])
	assert.Equal(t, 10.0, ds.Rows[2][5], "TRANSFER resta: 12 - 2")
}

func TestStockHistoryDataset_BillingSeEtiquetaFactura(t *testing.T) {
	entries := []entity.StockItemHistoryEntry{
		{ID: "1", Type: entity.TransactionBilling, Quantity: d("1"), StockBefore: d("10"),
			CreatedDate: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)},
	}

	ds := report.StockHistoryDataset(entries)
	require.Len(t, ds.Rows, 1)
	assert.Equal(t, "Factura", ds.Rows[0][2], "BILLING tiene precedencia sobre la tabla genérica")
	assert.Equal(t, 9.0, ds.Rows[0][5], "BILLING resta como cualquier salida")
	assert.Equal(t, "02/01/2026", ds.Rows[0][1])
}
