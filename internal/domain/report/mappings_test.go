package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/comercia/backoffice-api/internal/domain/entity"
	"github.com/comercia/backoffice-api/internal/domain/report"
)

func TestTransactionLabel(t *testing.T) {
	assert.Equal(t, "Entrada", report.TransactionLabel(entity.TransactionEnter))
	assert.Equal(t, "Salida", report.TransactionLabel(entity.TransactionExit))
	assert.Equal(t, "Transferencia", report.TransactionLabel(entity.TransactionTransfer))
	assert.Equal(t, "Factura", report.TransactionLabel(entity.TransactionBilling))
	assert.Equal(t, "AJUSTE", report.TransactionLabel("AJUSTE"),
		"un tipo desconocido se muestra tal cual llegó")
}

func TestPaymentMethodLabels(t *testing.T) {
	assert.Equal(t, "Efectivo, Tarjeta, Transferencia, Crédito",
		report.PaymentMethodLabels([]string{"CASH", "CARD", "TRANSFER", "CREDIT"}))
	assert.Equal(t, "Efectivo, CHEQUE",
		report.PaymentMethodLabels([]string{"CASH", "CHEQUE"}),
		"un código desconocido pasa sin traducir")
	assert.Equal(t, "", report.PaymentMethodLabels(nil))
}

// El relleno de la columna Transacción depende de la etiqueta ya traducida.
func TestTransactionFill_PorEtiqueta(t *testing.T) {
	cases := []struct {
		label string
		color string
	}{
		{"Entrada", report.FillBlue},
		{"Transferencia", report.FillYellow},
		{"Salida", report.FillRed},
		{"Factura", report.FillGreen},
		{"Cotización", report.FillBlue},
		{"Otro", report.FillWhite},
	}

	for _, tc := range cases {
		entries := []entity.StockItemHistoryEntry{{Type: "X", Quantity: d("1"), StockBefore: d("5")}}
		ds := report.StockHistoryDataset(entries)
		ds.Rows[0][2] = tc.label

		col := ds.Columns[2]
		assert.Equal(t, tc.color, col.Fill(ds.View(ds.Rows[0])),
			"color para la etiqueta %q", tc.label)
	}
}

// El semáforo de "Cantidad actual" se evalúa sobre toda la fila.
func TestStockHealthFill(t *testing.T) {
	build := func(qty, min, max string) (report.Column, report.RowView) {
		items := []entity.StockItem{stockItem("A", "P", "V", qty, min, max, "1", "2")}
		ds := report.RestockDataset(items, nil)
		return ds.Columns[5], ds.View(ds.Rows[0])
	}

	col, view := build("5", "5", "100")
	assert.Equal(t, report.FillRed, col.Fill(view), "actual <= mínima es rojo")

	col, view = build("70", "5", "100")
	assert.Equal(t, report.FillYellow, col.Fill(view), "actual/máxima <= 75% es amarillo")

	col, view = build("80", "5", "100")
	assert.Equal(t, report.FillGreen, col.Fill(view), "por encima del 75% es verde")
}
