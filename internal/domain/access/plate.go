// Package access contiene las reglas puras del control de acceso perimetral.
package access

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizePlate canoniza una placa: mayúsculas y sin espacios ni guiones.
// Se aplica igual al registrar y al consultar; es idempotente.
func NormalizePlate(raw string) string {
	upper := cases.Upper(language.Und).String(raw)
	return strings.Map(func(r rune) rune {
		if r == '-' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, upper)
}
