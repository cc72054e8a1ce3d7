package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Article representa un artículo del catálogo. Active=false es un borrado lógico.
type Article struct {
	ID             string
	Code           string // código único del catálogo
	Name           string
	UnitPrice      decimal.Decimal
	QuantityOnHand decimal.Decimal // se incrementa con cada entrada de almacén
	AverageCost    decimal.Decimal // costo promedio ponderado de las entradas
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
