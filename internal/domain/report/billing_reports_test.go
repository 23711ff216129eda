package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comercia/backoffice-api/internal/domain/entity"
	"github.com/comercia/backoffice-api/internal/domain/report"
)

// ──────────────────────────────────────────────────────────────────────────────
// Reporte de facturas
// ──────────────────────────────────────────────────────────────────────────────

func TestBillingsDataset_DescuentoPorcentual(t *testing.T) {
	billings := []entity.Billing{{
		SerialNumber:   "FAC-0001",
		CustomerName:   "juan PÉREZ",
		PaymentMethods: []string{"CASH", "CARD"},
		Subtotal:       d("1000"),
		Discount:       d("10"),
		DiscountType:   entity.DiscountPercentage,
		Shipping:       d("15"),
		CreatedDate:    time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
	}}

	ds := report.BillingsDataset(billings)
	require.Len(t, ds.Rows, 1)

	row := ds.Rows[0]
	assert.Equal(t, "FAC-0001", row[1])
	assert.Equal(t, "Juan Pérez", row[2], "el nombre del cliente se capitaliza")
	assert.Equal(t, "Efectivo, Tarjeta", row[3])
	assert.Equal(t, 1000.0, row[4])
	assert.Equal(t, 100.0, row[5], "10% de 1000")
	assert.Equal(t, 900.0, row[6], "total = subtotal - descuento")
	assert.Equal(t, 15.0, row[7])
}

func TestBillingsDataset_DescuentoFijo(t *testing.T) {
	billings := []entity.Billing{{
		SerialNumber: "FAC-0002",
		CustomerName: "Ana Gómez",
		Subtotal:     d("1000"),
		Discount:     d("50"),
		DiscountType: entity.DiscountFixed,
	}}

	ds := report.BillingsDataset(billings)
	require.Len(t, ds.Rows, 1)
	assert.Equal(t, 50.0, ds.Rows[0][5])
	assert.Equal(t, 950.0, ds.Rows[0][6])
}

func TestBillingsDataset_SinDescuentoEsCero(t *testing.T) {
	billings := []entity.Billing{{
		SerialNumber: "FAC-0003",
		Subtotal:     d("200"),
	}}

	ds := report.BillingsDataset(billings)
	require.Len(t, ds.Rows, 1)
	assert.Equal(t, 0.0, ds.Rows[0][5], "sin tipo de descuento no se descuenta nada")
	assert.Equal(t, 200.0, ds.Rows[0][6])
}

func TestBillingsDataset_DescuentoNegativoEsCero(t *testing.T) {
	billings := []entity.Billing{{
		SerialNumber: "FAC-0005",
		Subtotal:     d("100"),
		Discount:     d("-20"),
		DiscountType: entity.DiscountFixed,
	}}

	ds := report.BillingsDataset(billings)
	require.Len(t, ds.Rows, 1)
	assert.Equal(t, 0.0, ds.Rows[0][5], "un descuento negativo no aumenta el total")
	assert.Equal(t, 100.0, ds.Rows[0][6])
}

func TestBillingsDataset_ClienteVacioEsConsumidorFinal(t *testing.T) {
	billings := []entity.Billing{{SerialNumber: "FAC-0004", Subtotal: d("10")}}

	ds := report.BillingsDataset(billings)
	require.Len(t, ds.Rows, 1)
	assert.Equal(t, "Consumidor Final", ds.Rows[0][2])
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte de actividad de cliente
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomerActivityDataset_FacturaYCotizacion(t *testing.T) {
	created := time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC)
	records := []entity.ActivityRecord{
		{
			Kind:           entity.ActivityBilling,
			SerialNumber:   "FAC-0010",
			PaymentMethods: []string{"TRANSFER"},
			Subtotal:       d("320.50"),
			Shipping:       d("5"),
			CreatedDate:    created,
		},
		{
			Kind:         entity.ActivityQuote,
			SerialNumber: "COT-0003",
			Shipping:     d("2"),
			CreatedDate:  created,
		},
	}

	ds := report.CustomerActivityDataset(records)
	require.Len(t, ds.Rows, 2)

	factura := ds.Rows[0]
	assert.Equal(t, "Factura", factura[1])
	assert.Equal(t, "FAC-0010", factura[2])
	assert.Equal(t, "Transferencia", factura[3])
	assert.Equal(t, 5.0, factura[4])
	assert.Equal(t, 320.5, factura[5])
	assert.Equal(t, "20/07/2026", factura[6])

	cotizacion := ds.Rows[1]
	assert.Equal(t, "Cotización", cotizacion[1])
	assert.Equal(t, "--", cotizacion[3], "una cotización no tiene métodos de pago")
	assert.Equal(t, 0.0, cotizacion[5], "una cotización no tiene total")
}

func TestCustomerActivityDataset_SinRegistrosEsVacio(t *testing.T) {
	ds := report.CustomerActivityDataset(nil)
	assert.True(t, ds.Empty())
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte de mejores clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestTopCustomersDataset_MapeoDirecto(t *testing.T) {
	customers := []entity.Customer{
		{DNI: "0912345678", FullName: "Juan Pérez", PhoneNumber: "0991234567",
			City: "Guayaquil", BillingCount: 12, TotalSpent: d("4520.75")},
		{DNI: "0987654321", FullName: "Ana Gómez", BillingCount: 3, TotalSpent: d("310")},
	}

	ds := report.TopCustomersDataset(customers)
	require.Len(t, ds.Rows, 2)

	assert.Equal(t, 1.0, ds.Rows[0][0])
	assert.Equal(t, "0912345678", ds.Rows[0][1])
	assert.Equal(t, "Guayaquil", ds.Rows[0][4])
	assert.Equal(t, 12.0, ds.Rows[0][5])
	assert.Equal(t, 4520.75, ds.Rows[0][6])

	assert.Equal(t, "--", ds.Rows[1][4], "ciudad vacía se muestra como --")
}
