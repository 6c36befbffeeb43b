package dto

import "time"

// CreateLocationRequest entrada para crear una ubicación.
type CreateLocationRequest struct {
	Name string `json:"name" validate:"required"`
}

// UpdateLocationRequest entrada para renombrar una ubicación.
type UpdateLocationRequest struct {
	Name string `json:"name" validate:"required"`
}

// LocationResponse salida de una ubicación.
// Los nombres de campo en camelCase son el contrato que consume el cliente Angular.
type LocationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LocationRef referencia mínima {id, name} embebida en cada artículo del listado.
type LocationRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
