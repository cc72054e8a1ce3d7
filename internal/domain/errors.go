package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")

	// Conciliación de órdenes de compra y pagos.
	ErrInvalidAmount        = errors.New("monto de pago inválido")
	ErrAmountExceedsBalance = errors.New("el pago excede el saldo pendiente")
	ErrReceivingIncomplete  = errors.New("la orden aún no ha sido recibida por completo")
	ErrInvalidLine          = errors.New("línea inválida")

	// ErrStoreUnavailable la base de datos no responde (fallo transitorio, 5xx).
	ErrStoreUnavailable = errors.New("almacenamiento no disponible")
)

// DetailError envuelve un error de dominio con un detalle legible para el cliente.
// errors.Is sigue funcionando contra el sentinel original.
type DetailError struct {
	Err     error
	Details string
}

func (e *DetailError) Error() string {
	if e.Details != "" {
		return e.Err.Error() + ": " + e.Details
	}
	return e.Err.Error()
}

func (e *DetailError) Unwrap() error { return e.Err }

// Detail construye un DetailError sobre err.
func Detail(err error, details string) error {
	return &DetailError{Err: err, Details: details}
}
