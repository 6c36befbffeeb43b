package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa una unidad de stock con precio, asignada a exactamente una ubicación.
// Location se puebla en las lecturas con JOIN; puede ser nil en escrituras.
type InventoryItem struct {
	ID         string
	Name       string
	LocationID string
	Price      decimal.Decimal // NUMERIC(10,2), nunca negativo
	Location   *Location
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
