package textmatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/gestion-api/pkg/textmatch"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "pena", textmatch.Fold("Peña"))
	assert.Equal(t, "jose munoz", textmatch.Fold("JOSÉ MUÑOZ"))
	assert.Equal(t, "900.123.456-7", textmatch.Fold("900.123.456-7"), "los NIT no cambian")
}

func TestContains(t *testing.T) {
	assert.True(t, textmatch.Contains("munoz", "Distribuidora Muñoz S.A.S."))
	assert.True(t, textmatch.Contains("ÁLVAREZ", "Comercial Alvarez"))
	assert.True(t, textmatch.Contains("123", "Nombre", "900123456"), "busca en cualquiera de los textos")
	assert.True(t, textmatch.Contains("  ", "lo que sea"), "filtro vacío coincide siempre")
	assert.False(t, textmatch.Contains("perez", "Gómez", "800"))
}
