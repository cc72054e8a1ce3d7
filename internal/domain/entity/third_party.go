package entity

import "time"

// Relation tipo de relación comercial de un tercero.
type Relation string

const (
	RelationClient   Relation = "CLIENT"
	RelationSupplier Relation = "SUPPLIER"
	RelationBoth     Relation = "BOTH"
)

// Valid indica si la relación es una de las conocidas.
func (r Relation) Valid() bool {
	switch r {
	case RelationClient, RelationSupplier, RelationBoth:
		return true
	}
	return false
}

// ThirdParty representa un cliente, un proveedor o ambos.
type ThirdParty struct {
	ID        string
	TaxID     string // NIT o Cédula
	Name      string
	Relation  Relation
	Email     string
	Phone     string // E.164
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsSupplier puede figurar como proveedor de una orden de compra.
func (t *ThirdParty) IsSupplier() bool {
	return t.Relation == RelationSupplier || t.Relation == RelationBoth
}

// IsClient puede figurar como contraparte de una factura de venta.
func (t *ThirdParty) IsClient() bool {
	return t.Relation == RelationClient || t.Relation == RelationBoth
}
