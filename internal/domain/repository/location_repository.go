package repository

import "github.com/jhoicas/inventory-tracker/internal/domain/entity"

// LocationRepository define el puerto de persistencia para Location (DIP).
// GetByID y GetByName devuelven (nil, nil) si el registro no existe.
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	GetByName(name string) (*entity.Location, error)
	Update(location *entity.Location) error
	List() ([]*entity.Location, error)
	Delete(id string) (bool, error)
}
