package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comercia/backoffice-api/pkg/logger"
)

func TestComponent_AgregaElCampoAlEvento(t *testing.T) {
	log := logger.New(logger.Config{Env: "production", Level: "info"})

	var buf bytes.Buffer
	zl := log.Component("reports").Zerolog().Output(&buf)
	zl.Info().Msg("reporte generado")

	require.NotEmpty(t, buf.String())
	assert.Contains(t, buf.String(), `"component":"reports"`,
		"el sublogger debe llevar el campo component")
	assert.Contains(t, buf.String(), "reporte generado")
}

func TestComponent_NoContaminaElLoggerBase(t *testing.T) {
	log := logger.New(logger.Config{Env: "production", Level: "info"})
	_ = log.Component("http")

	var buf bytes.Buffer
	zl := log.Zerolog().Output(&buf)
	zl.Info().Msg("mensaje base")

	assert.NotContains(t, buf.String(), "component",
		"el logger original no debe heredar el campo del sublogger")
}

func TestNew_NivelDesconocidoUsaInfo(t *testing.T) {
	log := logger.New(logger.Config{Env: "production", Level: "verboso"})

	var buf bytes.Buffer
	zl := log.Zerolog().Output(&buf)
	zl.Debug().Msg("no debería salir")
	assert.Empty(t, buf.String(), "con nivel info los eventos debug se descartan")
}
