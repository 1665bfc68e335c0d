// Package textnorm normaliza nombres y claves de búsqueda en español.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Name recorta, colapsa espacios internos y compone en NFC ("Peluquería" escrito con
// tilde combinante y con tilde precompuesta terminan siendo la misma cadena).
func Name(s string) string {
	return norm.NFC.String(strings.Join(strings.Fields(s), " "))
}

// SearchKey minúsculas sin diacríticos: "Peluquería Ñandú" -> "peluqueria nandu".
func SearchKey(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, Name(s))
	if err != nil {
		out = Name(s)
	}
	return strings.ToLower(out)
}

// Contains búsqueda parcial insensible a mayúsculas y tildes. Un patrón vacío coincide siempre.
func Contains(value, pattern string) bool {
	if strings.TrimSpace(pattern) == "" {
		return true
	}
	return strings.Contains(SearchKey(value), SearchKey(pattern))
}
