package dto

import "time"

// CreateThirdPartyRequest entrada para crear un cliente o proveedor.
type CreateThirdPartyRequest struct {
	TaxID    string `json:"tax_id" validate:"required,min=3,max=30"`
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Relation string `json:"relation" validate:"required,oneof=CLIENT SUPPLIER BOTH"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
}

// UpdateThirdPartyRequest entrada para actualizar un tercero.
type UpdateThirdPartyRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	Relation *string `json:"relation" validate:"omitempty,oneof=CLIENT SUPPLIER BOTH"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone"`
	Active   *bool   `json:"active"`
}

// ThirdPartyResponse salida de un tercero.
type ThirdPartyResponse struct {
	ID        string    `json:"id"`
	TaxID     string    `json:"tax_id"`
	Name      string    `json:"name"`
	Relation  string    `json:"relation"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ThirdPartyListResponse lista paginada de terceros.
type ThirdPartyListResponse struct {
	Items []ThirdPartyResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
