// Package testutil provee repositorios en memoria para los tests de casos de
// uso y de handlers. Emulan la semántica del adaptador PostgreSQL: (nil, nil)
// para registros inexistentes y los errores de dominio que allí produce la
// traducción de constraints (nombre único, FK de inventory).
package testutil

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
)

// MemStore almacén compartido por ambos repos de prueba.
type MemStore struct {
	Locations map[string]*entity.Location
	Items     []*entity.InventoryItem
}

// NewMemStore construye un almacén vacío.
func NewMemStore() *MemStore {
	return &MemStore{Locations: make(map[string]*entity.Location)}
}

// AddLocation siembra una ubicación directamente y devuelve su ID.
func (s *MemStore) AddLocation(name string) string {
	id := uuid.New().String()
	now := time.Now()
	s.Locations[id] = &entity.Location{ID: id, Name: name, CreatedAt: now, UpdatedAt: now}
	return id
}

// AddItem siembra un artículo directamente y devuelve su ID.
func (s *MemStore) AddItem(name, locationID string, price decimal.Decimal) string {
	id := uuid.New().String()
	now := time.Now()
	s.Items = append(s.Items, &entity.InventoryItem{
		ID: id, Name: name, LocationID: locationID, Price: price,
		CreatedAt: now, UpdatedAt: now,
	})
	return id
}

var _ repository.LocationRepository = LocationRepo{}

// LocationRepo implementación en memoria del puerto LocationRepository.
type LocationRepo struct {
	S *MemStore
}

// NewLocationRepo construye el repo sobre el almacén dado.
func NewLocationRepo(s *MemStore) LocationRepo {
	return LocationRepo{S: s}
}

func (r LocationRepo) Create(location *entity.Location) error {
	for _, l := range r.S.Locations {
		if l.Name == location.Name {
			return domain.ErrDuplicate // emula el constraint único de locations.name
		}
	}
	cp := *location
	r.S.Locations[location.ID] = &cp
	return nil
}

func (r LocationRepo) GetByID(id string) (*entity.Location, error) {
	l, ok := r.S.Locations[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r LocationRepo) GetByName(name string) (*entity.Location, error) {
	for _, l := range r.S.Locations {
		if l.Name == name {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (r LocationRepo) Update(location *entity.Location) error {
	for _, l := range r.S.Locations {
		if l.Name == location.Name && l.ID != location.ID {
			return domain.ErrDuplicate // mismo constraint único que en Create
		}
	}
	cp := *location
	r.S.Locations[location.ID] = &cp
	return nil
}

func (r LocationRepo) List() ([]*entity.Location, error) {
	list := make([]*entity.Location, 0, len(r.S.Locations))
	for _, l := range r.S.Locations {
		cp := *l
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r LocationRepo) Delete(id string) (bool, error) {
	if _, ok := r.S.Locations[id]; !ok {
		return false, nil
	}
	delete(r.S.Locations, id)
	return true, nil
}

var _ repository.InventoryRepository = InventoryRepo{}

// InventoryRepo implementación en memoria del puerto InventoryRepository.
type InventoryRepo struct {
	S *MemStore
}

// NewInventoryRepo construye el repo sobre el almacén dado.
func NewInventoryRepo(s *MemStore) InventoryRepo {
	return InventoryRepo{S: s}
}

func (r InventoryRepo) join(item *entity.InventoryItem) *entity.InventoryItem {
	cp := *item
	cp.Location = r.S.Locations[item.LocationID]
	return &cp
}

func (r InventoryRepo) List(_ context.Context, f repository.ListFilter) ([]*entity.InventoryItem, int, error) {
	var matched []*entity.InventoryItem
	for _, item := range r.S.Items {
		if f.LocationID != "" && item.LocationID != f.LocationID {
			continue
		}
		matched = append(matched, r.join(item))
	}
	sort.SliceStable(matched, func(i, j int) bool {
		var less bool
		switch f.SortBy {
		case repository.SortByPrice:
			less = matched[i].Price.LessThan(matched[j].Price)
		case repository.SortByLocation:
			less = matched[i].Location.Name < matched[j].Location.Name
		default:
			less = matched[i].Name < matched[j].Name
		}
		if f.Descending {
			return !less
		}
		return less
	})
	total := len(matched)
	if f.Offset >= total {
		return nil, total, nil
	}
	end := f.Offset + f.Limit
	if end > total {
		end = total
	}
	return matched[f.Offset:end], total, nil
}

func (r InventoryRepo) GetByID(id string) (*entity.InventoryItem, error) {
	for _, item := range r.S.Items {
		if item.ID == id {
			return r.join(item), nil
		}
	}
	return nil, nil
}

func (r InventoryRepo) Create(item *entity.InventoryItem) error {
	if _, ok := r.S.Locations[item.LocationID]; !ok {
		return domain.ErrInvalidInput // emula la violación de FK
	}
	cp := *item
	r.S.Items = append(r.S.Items, &cp)
	return nil
}

func (r InventoryRepo) Delete(id string) (bool, error) {
	for i, item := range r.S.Items {
		if item.ID == id {
			r.S.Items = append(r.S.Items[:i], r.S.Items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r InventoryRepo) CountByLocation(locationID string) (int, error) {
	count := 0
	for _, item := range r.S.Items {
		if item.LocationID == locationID {
			count++
		}
	}
	return count, nil
}

func (r InventoryRepo) StatsByLocation(_ context.Context) ([]repository.LocationStats, error) {
	grouped := make(map[string]*repository.LocationStats)
	for _, item := range r.S.Items {
		name := r.S.Locations[item.LocationID].Name
		st, ok := grouped[name]
		if !ok {
			st = &repository.LocationStats{LocationName: name, TotalPrice: decimal.Zero}
			grouped[name] = st
		}
		st.TotalProducts++
		st.TotalPrice = st.TotalPrice.Add(item.Price)
	}
	var results []repository.LocationStats
	for _, st := range grouped {
		results = append(results, *st)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].LocationName < results[j].LocationName })
	return results, nil
}
