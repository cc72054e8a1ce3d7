package phone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-api/pkg/phone"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"celular local", "3001234567", "+573001234567"},
		{"con espacios", " 300 123 4567 ", "+573001234567"},
		{"ya internacional", "+57 300 123 4567", "+573001234567"},
		{"vacío", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := phone.Normalize(tt.raw, "CO")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_Invalido(t *testing.T) {
	_, err := phone.Normalize("12", "")
	assert.ErrorIs(t, err, phone.ErrInvalid)
}
