// Package phone normaliza teléfonos de terceros a formato E.164.
package phone

import (
	"errors"
	"strings"

	"github.com/ttacon/libphonenumber"
)

// DefaultRegion región usada cuando el número no trae indicativo internacional.
const DefaultRegion = "CO"

// ErrInvalid el número no es válido para la región.
var ErrInvalid = errors.New("phone: número inválido")

// Normalize devuelve el número en E.164 (+573001234567). Vacío devuelve vacío.
func Normalize(raw, region string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	if region == "" {
		region = DefaultRegion
	}
	p, err := libphonenumber.Parse(raw, region)
	if err != nil {
		return "", errors.Join(ErrInvalid, err)
	}
	if !libphonenumber.IsValidNumber(p) {
		return "", ErrInvalid
	}
	return libphonenumber.Format(p, libphonenumber.E164), nil
}
