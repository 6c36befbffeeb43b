package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// sortColumns mapea las claves públicas de ordenamiento a columnas reales.
// El caso de uso ya validó la clave; nunca se interpola texto del cliente.
var sortColumns = map[string]string{
	repository.SortByName:     "i.name",
	repository.SortByPrice:    "i.price",
	repository.SortByLocation: "l.name",
}

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL.
type InventoryRepo struct {
	pool *pgxpool.Pool
}

// NewInventoryRepository construye el adaptador de persistencia para artículos.
func NewInventoryRepository(pool *pgxpool.Pool) *InventoryRepo {
	return &InventoryRepo{pool: pool}
}

// List devuelve la página pedida (con JOIN a locations) y el total de filas
// que coinciden con el filtro, ignorando la paginación.
func (r *InventoryRepo) List(ctx context.Context, f repository.ListFilter) ([]*entity.InventoryItem, int, error) {
	column, ok := sortColumns[f.SortBy]
	if !ok {
		column = sortColumns[repository.SortByName]
	}
	direction := "ASC"
	if f.Descending {
		direction = "DESC"
	}

	where := ""
	args := []any{}
	if f.LocationID != "" {
		where = "WHERE i.location_id = $1"
		args = append(args, f.LocationID)
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM inventory i %s`, where)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count inventory: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT i.id, i.name, i.location_id, i.price, i.created_at, i.updated_at, l.id, l.name
		FROM inventory i
		JOIN locations l ON l.id = i.location_id
		%s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d`,
		where, column, direction, len(args)+1, len(args)+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventoryItem
	for rows.Next() {
		var item entity.InventoryItem
		var loc entity.Location
		if err := rows.Scan(&item.ID, &item.Name, &item.LocationID, &item.Price,
			&item.CreatedAt, &item.UpdatedAt, &loc.ID, &loc.Name); err != nil {
			return nil, 0, fmt.Errorf("scan inventory item: %w", err)
		}
		item.Location = &loc
		list = append(list, &item)
	}
	return list, total, rows.Err()
}

// GetByID obtiene un artículo por ID con su ubicación embebida.
func (r *InventoryRepo) GetByID(id string) (*entity.InventoryItem, error) {
	query := `
		SELECT i.id, i.name, i.location_id, i.price, i.created_at, i.updated_at, l.id, l.name
		FROM inventory i
		JOIN locations l ON l.id = i.location_id
		WHERE i.id = $1`
	var item entity.InventoryItem
	var loc entity.Location
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&item.ID, &item.Name, &item.LocationID, &item.Price,
		&item.CreatedAt, &item.UpdatedAt, &loc.ID, &loc.Name,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	item.Location = &loc
	return &item, nil
}

// Create persiste un nuevo artículo. Una FK inválida (ubicación inexistente,
// red de seguridad tras la pre-verificación del caso de uso) es ErrInvalidInput.
func (r *InventoryRepo) Create(item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory (id, name, location_id, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		item.ID, item.Name, item.LocationID, item.Price, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// Delete elimina un artículo por ID. Devuelve false si ninguna fila coincidió.
func (r *InventoryRepo) Delete(id string) (bool, error) {
	cmd, err := r.pool.Exec(context.Background(), `DELETE FROM inventory WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete inventory item: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// CountByLocation cuenta los artículos que referencian una ubicación
// (pre-verificación del borrado de ubicaciones).
func (r *InventoryRepo) CountByLocation(locationID string) (int, error) {
	var count int
	err := r.pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM inventory WHERE location_id = $1`, locationID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count inventory by location: %w", err)
	}
	return count, nil
}

// StatsByLocation agrega cantidad y suma de precios por ubicación.
// INNER JOIN: las ubicaciones sin artículos no aparecen. Orden por nombre
// de ubicación para resultados reproducibles.
func (r *InventoryRepo) StatsByLocation(ctx context.Context) ([]repository.LocationStats, error) {
	const query = `
	SELECT
	    l.name           AS location_name,
	    COUNT(i.id)      AS total_products,
	    SUM(i.price)     AS total_price
	FROM inventory i
	JOIN locations l ON l.id = i.location_id
	GROUP BY l.id, l.name
	ORDER BY l.name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("inventory.StatsByLocation: %w", err)
	}
	defer rows.Close()

	var results []repository.LocationStats
	for rows.Next() {
		var row repository.LocationStats
		if err := rows.Scan(&row.LocationName, &row.TotalProducts, &row.TotalPrice); err != nil {
			return nil, fmt.Errorf("inventory.StatsByLocation scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
