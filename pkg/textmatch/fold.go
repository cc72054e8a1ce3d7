// Package textmatch compara texto ignorando mayúsculas y tildes ("Peña" ~ "pena").
package textmatch

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold normaliza s: descompone, elimina marcas diacríticas y aplica case folding.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return cases.Fold().String(out)
}

// Contains indica si needle aparece en alguno de los textos. needle vacío coincide siempre.
func Contains(needle string, haystacks ...string) bool {
	n := Fold(strings.TrimSpace(needle))
	if n == "" {
		return true
	}
	for _, h := range haystacks {
		if strings.Contains(Fold(h), n) {
			return true
		}
	}
	return false
}
