package entity

import "time"

// Location representa una sede física que posee cero o más artículos de inventario.
// Name es único a nivel global (constraint en la tabla locations).
type Location struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
