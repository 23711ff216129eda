package report

import (
	"github.com/comercia/backoffice-api/internal/domain/entity"
	"github.com/comercia/backoffice-api/pkg/format"
)

// Nombre mostrado cuando una factura no tiene cliente asociado.
const consumidorFinal = "Consumidor Final"

// billingsColumns especificación del reporte de facturas.
func billingsColumns() []Column {
	return []Column{
		{Label: LabelIndex},
		{Label: LabelSerialNumber, Format: FormatText},
		{Label: LabelCustomer, Align: AlignLeft},
		{Label: LabelPaymentMethods, Align: AlignLeft},
		{Label: LabelSubtotal, Format: FormatCurrency, Align: AlignRight},
		{Label: LabelDiscount, Format: FormatCurrency, Align: AlignRight},
		{Label: LabelTotal, Format: FormatCurrency, Align: AlignRight},
		{Label: LabelShipping, Format: FormatCurrency, Align: AlignRight},
	}
}

// BillingsDataset proyecta el listado de facturas. El descuento efectivo y el
// total los aporta la entidad (PERCENTAGE sobre el subtotal, FIXED directo,
// ausente = 0). El nombre del cliente se capitaliza; vacío es consumidor final.
func BillingsDataset(billings []entity.Billing) *Dataset {
	ds := &Dataset{Columns: billingsColumns()}

	for i, b := range billings {
		customer := format.TitleCase(b.CustomerName)
		if customer == "" {
			customer = consumidorFinal
		}

		ds.Rows = append(ds.Rows, Row{
			float64(i + 1),
			b.SerialNumber,
			customer,
			PaymentMethodLabels(b.PaymentMethods),
			b.Subtotal.InexactFloat64(),
			b.EffectiveDiscount().InexactFloat64(),
			b.Total().InexactFloat64(),
			b.Shipping.InexactFloat64(),
		})
	}
	return ds
}

// customerActivityColumns especificación del reporte de actividad de cliente.
func customerActivityColumns() []Column {
	return []Column{
		{Label: LabelIndex},
		{Label: LabelTransaction, Fill: transactionFill},
		{Label: LabelSerialNumber, Format: FormatText},
		{Label: LabelPaymentMethods, Align: AlignLeft},
		{Label: LabelShipping, Format: FormatCurrency, Align: AlignRight},
		{Label: LabelTotal, Format: FormatCurrency, Align: AlignRight},
		{Label: LabelDate},
	}
}

// CustomerActivityDataset proyecta la actividad reciente de un cliente:
// facturas y cotizaciones ya discriminadas por Kind. Una factura se etiqueta
// "Factura" con sus métodos de pago; una cotización se etiqueta "Cotización",
// muestra "--" en métodos de pago y total 0 (no tiene subtotal).
func CustomerActivityDataset(records []entity.ActivityRecord) *Dataset {
	ds := &Dataset{Columns: customerActivityColumns()}

	for i, r := range records {
		label := labelCotizacion
		methods := Placeholder
		total := 0.0
		if r.Kind == entity.ActivityBilling {
			label = labelFactura
			methods = PaymentMethodLabels(r.PaymentMethods)
			total = r.Subtotal.InexactFloat64()
		}

		ds.Rows = append(ds.Rows, Row{
			float64(i + 1),
			label,
			r.SerialNumber,
			methods,
			r.Shipping.InexactFloat64(),
			total,
			format.Date(r.CreatedDate),
		})
	}
	return ds
}
