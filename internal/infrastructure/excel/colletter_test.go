package excel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/comercia/backoffice-api/internal/infrastructure/excel"
)

func TestColumnLetter(t *testing.T) {
	cases := map[int]string{
		0:   "A",
		1:   "B",
		25:  "Z",
		26:  "AA",
		27:  "AB",
		51:  "AZ",
		52:  "BA",
		701: "ZZ",
		702: "AAA",
	}
	for index, want := range cases {
		assert.Equal(t, want, excel.ColumnLetter(index), "índice %d", index)
	}
}
