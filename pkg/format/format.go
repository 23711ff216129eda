// Package format helpers de presentación compartidos por los reportes.
package format

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Date formatea una fecha como dd/mm/aaaa. Una fecha cero devuelve "--".
func Date(t time.Time) string {
	if t.IsZero() {
		return "--"
	}
	return t.Format("02/01/2006")
}

// TitleCase capitaliza un nombre propio: "juan PÉREZ" -> "Juan Pérez".
// Cadena vacía o solo espacios devuelve "".
func TitleCase(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	// cases.Caser no es seguro para uso concurrente: se crea por llamada.
	return cases.Title(language.LatinAmericanSpanish).String(strings.ToLower(s))
}
