package format_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/comercia/backoffice-api/pkg/format"
)

func TestDate(t *testing.T) {
	assert.Equal(t, "05/03/2026", format.Date(time.Date(2026, 3, 5, 14, 30, 0, 0, time.UTC)))
	assert.Equal(t, "--", format.Date(time.Time{}), "fecha cero se muestra como --")
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Juan Pérez", format.TitleCase("juan PÉREZ"))
	assert.Equal(t, "María De Los Ángeles", format.TitleCase("MARÍA DE LOS ÁNGELES"))
	assert.Equal(t, "", format.TitleCase("   "))
	assert.Equal(t, "", format.TitleCase(""))
}
