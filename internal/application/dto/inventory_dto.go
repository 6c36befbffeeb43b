package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ListInventoryRequest parámetros de consulta del listado paginado.
// PageSize es fijo (20) y no lo controla el cliente.
type ListInventoryRequest struct {
	Page       int    `query:"page"`
	LocationID string `query:"locationId"` // "all" o vacío = sin filtro
	SortBy     string `query:"sortBy"`     // name | price | location
	SortOrder  string `query:"sortOrder"`  // ASC | DESC
}

// CreateInventoryItemRequest entrada para crear un artículo.
// Price es puntero para distinguir "ausente" de 0: un precio de 0 es válido.
type CreateInventoryItemRequest struct {
	Name       string           `json:"name" validate:"required"`
	LocationID string           `json:"locationId" validate:"required"`
	Price      *decimal.Decimal `json:"price" validate:"required"`
}

// InventoryItemResponse salida de un artículo con su ubicación embebida.
type InventoryItemResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	LocationID string          `json:"locationId"`
	Location   LocationRef     `json:"location"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// InventoryListResponse página del listado más metadatos de paginación.
type InventoryListResponse struct {
	Items      []InventoryItemResponse `json:"items"`
	Total      int                     `json:"total"`
	Page       int                     `json:"page"`
	TotalPages int                     `json:"totalPages"`
}

// LocationStatsResponse agregado por ubicación para /statistics.
type LocationStatsResponse struct {
	LocationName  string          `json:"locationName"`
	TotalProducts int64           `json:"totalProducts"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
}
