package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/comercia/backoffice-api/internal/domain/report"
)

func TestDataset_EmptyYColumnIndex(t *testing.T) {
	var nilDS *report.Dataset
	assert.True(t, nilDS.Empty(), "un dataset nil cuenta como vacío")

	ds := &report.Dataset{Columns: []report.Column{
		{Label: report.LabelIndex},
		{Label: report.LabelProduct},
	}}
	assert.True(t, ds.Empty())
	assert.Equal(t, 1, ds.ColumnIndex(report.LabelProduct))
	assert.Equal(t, -1, ds.ColumnIndex("no existe"))
	assert.Equal(t, []string{"#", "Producto"}, ds.Labels())
}

func TestRowView_CoercionNumerica(t *testing.T) {
	ds := &report.Dataset{
		Columns: []report.Column{{Label: "a"}, {Label: "b"}, {Label: "c"}, {Label: "d"}},
		Rows:    []report.Row{{1.5, "2.75", "no-numérico", nil}},
	}
	view := ds.View(ds.Rows[0])

	assert.Equal(t, 1.5, view.Number("a"))
	assert.Equal(t, 2.75, view.Number("b"), "los strings numéricos se parsean")
	assert.Equal(t, 0.0, view.Number("c"), "lo no parseable cuenta como 0")
	assert.Equal(t, 0.0, view.Number("d"), "nil cuenta como 0")
	assert.Equal(t, 0.0, view.Number("no existe"), "etiqueta ausente cuenta como 0")
}
