package report

import (
	"github.com/comercia/backoffice-api/internal/domain/entity"
)

// topCustomersColumns especificación del reporte de mejores clientes.
func topCustomersColumns() []Column {
	return []Column{
		{Label: LabelIndex},
		{Label: LabelDocumentNumber, Format: FormatText},
		{Label: LabelName},
		{Label: LabelPhone, Format: FormatText},
		{Label: LabelCity},
		{Label: LabelPurchases, Format: FormatInteger},
		{Label: LabelBilled, Format: FormatCurrency, Align: AlignRight},
	}
}

// TopCustomersDataset proyecta el ranking de clientes por facturación.
// Mapeo directo sin filtros; ciudad vacía se muestra como "--".
func TopCustomersDataset(customers []entity.Customer) *Dataset {
	ds := &Dataset{Columns: topCustomersColumns()}

	for i, c := range customers {
		city := c.City
		if city == "" {
			city = Placeholder
		}

		ds.Rows = append(ds.Rows, Row{
			float64(i + 1),
			c.DNI,
			c.FullName,
			c.PhoneNumber,
			city,
			float64(c.BillingCount),
			c.TotalSpent.InexactFloat64(),
		})
	}
	return ds
}
