package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/inventory-tracker/internal/application/dto"
	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
)

// LocationUseCase casos de uso CRUD para ubicaciones.
// Los duplicados se pre-verifican por nombre y además se traducen desde el
// constraint único de la tabla (la pre-verificación no cierra la ventana de carrera).
type LocationUseCase struct {
	locations repository.LocationRepository
	items     repository.InventoryRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(locations repository.LocationRepository, items repository.InventoryRepository) *LocationUseCase {
	return &LocationUseCase{locations: locations, items: items}
}

// GetByID obtiene una ubicación por ID. Devuelve (nil, nil) si no existe.
func (uc *LocationUseCase) GetByID(id string) (*dto.LocationResponse, error) {
	location, err := uc.locations.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	return toLocationResponse(location), nil
}

// List lista todas las ubicaciones ordenadas por nombre.
func (uc *LocationUseCase) List() ([]dto.LocationResponse, error) {
	list, err := uc.locations.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		out = append(out, *toLocationResponse(l))
	}
	return out, nil
}

// Create crea una nueva ubicación. El nombre se recorta y debe ser no vacío y único.
func (uc *LocationUseCase) Create(in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.locations.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	location := &entity.Location{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.locations.Create(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// Update renombra una ubicación. Devuelve (nil, nil) si el ID no existe.
func (uc *LocationUseCase) Update(id string, in dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	location, err := uc.locations.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	if other, err := uc.locations.GetByName(name); err != nil {
		return nil, err
	} else if other != nil && other.ID != location.ID {
		return nil, domain.ErrDuplicate
	}
	location.Name = name
	location.UpdatedAt = time.Now()
	if err := uc.locations.Update(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// Delete elimina una ubicación. Falla con ErrHasDependents si algún artículo
// todavía la referencia: el borrado nunca cascada ni deja artículos huérfanos.
func (uc *LocationUseCase) Delete(id string) error {
	location, err := uc.locations.GetByID(id)
	if err != nil {
		return err
	}
	if location == nil {
		return domain.ErrNotFound
	}
	count, err := uc.items.CountByLocation(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrHasDependents
	}
	deleted, err := uc.locations.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	if l == nil {
		return nil
	}
	return &dto.LocationResponse{
		ID:        l.ID,
		Name:      l.Name,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
