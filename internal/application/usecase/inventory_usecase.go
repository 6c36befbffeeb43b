package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/inventory-tracker/internal/application/dto"
	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
)

// PageSize tamaño fijo de página del listado; no lo controla el cliente.
const PageSize = 20

// allLocations valor centinela del filtro: sin filtro por ubicación.
const allLocations = "all"

// InventoryUseCase consultas y mutaciones sobre artículos de inventario.
type InventoryUseCase struct {
	items     repository.InventoryRepository
	locations repository.LocationRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(items repository.InventoryRepository, locations repository.LocationRepository) *InventoryUseCase {
	return &InventoryUseCase{items: items, locations: locations}
}

// List devuelve una página de artículos con su ubicación embebida.
// sortBy se restringe a una lista blanca explícita; cualquier otra clave
// es ErrInvalidInput (nunca se interpola texto del cliente en el SQL).
// Una página más allá de la última devuelve items vacío con total correcto.
func (uc *InventoryUseCase) List(ctx context.Context, in dto.ListInventoryRequest) (*dto.InventoryListResponse, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}

	sortBy := in.SortBy
	if sortBy == "" {
		sortBy = repository.SortByName
	}
	switch sortBy {
	case repository.SortByName, repository.SortByPrice, repository.SortByLocation:
	default:
		return nil, domain.ErrInvalidInput
	}

	descending := false
	switch strings.ToUpper(in.SortOrder) {
	case "", "ASC":
	case "DESC":
		descending = true
	default:
		return nil, domain.ErrInvalidInput
	}

	locationID := in.LocationID
	if locationID == allLocations {
		locationID = ""
	}

	items, total, err := uc.items.List(ctx, repository.ListFilter{
		LocationID: locationID,
		SortBy:     sortBy,
		Descending: descending,
		Limit:      PageSize,
		Offset:     (page - 1) * PageSize,
	})
	if err != nil {
		return nil, err
	}

	out := make([]dto.InventoryItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, *toInventoryItemResponse(item))
	}
	return &dto.InventoryListResponse{
		Items:      out,
		Total:      total,
		Page:       page,
		TotalPages: (total + PageSize - 1) / PageSize,
	}, nil
}

// Create crea un artículo y lo relee con su ubicación (segunda vuelta con JOIN).
// La existencia de la ubicación se pre-verifica; la violación de FK en la
// inserción queda como red de seguridad. Un precio de 0 es válido (artículo
// gratuito): la presencia se comprueba con el puntero, no con el valor.
func (uc *InventoryUseCase) Create(in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	if strings.TrimSpace(in.Name) == "" || in.LocationID == "" || in.Price == nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	location, err := uc.locations.GetByID(in.LocationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.InventoryItem{
		ID:         uuid.New().String(),
		Name:       in.Name,
		LocationID: in.LocationID,
		Price:      in.Price.Round(2),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.items.Create(item); err != nil {
		return nil, err
	}
	created, err := uc.items.GetByID(item.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, domain.ErrNotFound
	}
	return toInventoryItemResponse(created), nil
}

// Delete elimina un artículo por ID. ErrNotFound si ninguna fila coincidió.
func (uc *InventoryUseCase) Delete(id string) error {
	deleted, err := uc.items.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

// Statistics agrupa los artículos por ubicación (semántica de INNER JOIN:
// las ubicaciones sin artículos no aparecen), ordenado por nombre de ubicación.
func (uc *InventoryUseCase) Statistics(ctx context.Context) ([]dto.LocationStatsResponse, error) {
	stats, err := uc.items.StatsByLocation(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LocationStatsResponse, 0, len(stats))
	for _, s := range stats {
		out = append(out, dto.LocationStatsResponse{
			LocationName:  s.LocationName,
			TotalProducts: s.TotalProducts,
			TotalPrice:    s.TotalPrice,
		})
	}
	return out, nil
}

func toInventoryItemResponse(item *entity.InventoryItem) *dto.InventoryItemResponse {
	if item == nil {
		return nil
	}
	resp := &dto.InventoryItemResponse{
		ID:         item.ID,
		Name:       item.Name,
		Price:      item.Price,
		LocationID: item.LocationID,
		CreatedAt:  item.CreatedAt,
		UpdatedAt:  item.UpdatedAt,
	}
	if item.Location != nil {
		resp.Location = dto.LocationRef{ID: item.Location.ID, Name: item.Location.Name}
	}
	return resp
}
