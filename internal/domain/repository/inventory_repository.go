package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
)

// Claves públicas de ordenamiento del listado de inventario.
// Cualquier otro valor se rechaza antes de llegar al repositorio.
const (
	SortByName     = "name"
	SortByPrice    = "price"
	SortByLocation = "location" // ordena por el nombre de la ubicación asociada
)

// ListFilter parámetros ya validados para el listado paginado.
// LocationID vacío significa sin filtro.
type ListFilter struct {
	LocationID string
	SortBy     string
	Descending bool
	Limit      int
	Offset     int
}

// LocationStats agregado por ubicación (solo ubicaciones con al menos un artículo).
type LocationStats struct {
	LocationName  string
	TotalProducts int64
	TotalPrice    decimal.Decimal
}

// InventoryRepository define el puerto de persistencia para InventoryItem (DIP).
// GetByID devuelve (nil, nil) si el registro no existe; Delete devuelve false si no hubo fila.
type InventoryRepository interface {
	List(ctx context.Context, f ListFilter) ([]*entity.InventoryItem, int, error)
	GetByID(id string) (*entity.InventoryItem, error)
	Create(item *entity.InventoryItem) error
	Delete(id string) (bool, error)
	CountByLocation(locationID string) (int, error)
	StatsByLocation(ctx context.Context) ([]LocationStats, error)
}
