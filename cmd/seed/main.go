// seed puebla la base con datos sintéticos para pruebas de paginación:
// las 5 sedes por defecto y 500.000 artículos en lotes de 5.000 (COPY).
//
// Uso: go run ./cmd/seed [total]
// Script operativo de un solo uso; vacía las tablas antes de insertar.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/postgres"
	"github.com/jhoicas/inventory-tracker/pkg/config"
)

var locations = []string{
	"მთავარი ოფისი",
	"კავეა გალერია",
	"კავეა თბილისი მოლი",
	"კავეა ისთ ფოინთი",
	"კავეა სითი მოლი",
}

const batchSize = 5000

func main() {
	total := 500000
	if len(os.Args) > 1 {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil || n <= 0 {
			fmt.Fprintf(os.Stderr, "total inválido: %s\n", os.Args[1])
			os.Exit(1)
		}
		total = n
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, `TRUNCATE inventory, locations`); err != nil {
		fmt.Fprintf(os.Stderr, "vaciar tablas: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Sembrando ubicaciones...")
	now := time.Now()
	locationIDs := make([]string, 0, len(locations))
	for _, name := range locations {
		id := uuid.New().String()
		if _, err := pool.Exec(ctx,
			`INSERT INTO locations (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
			id, name, now, now,
		); err != nil {
			fmt.Fprintf(os.Stderr, "insertar ubicación %q: %v\n", name, err)
			os.Exit(1)
		}
		locationIDs = append(locationIDs, id)
	}

	fmt.Printf("Sembrando %d artículos. Esto puede tardar...\n", total)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for inserted := 0; inserted < total; {
		n := batchSize
		if total-inserted < n {
			n = total - inserted
		}
		batch := make([][]any, 0, n)
		for j := 0; j < n; j++ {
			price := decimal.NewFromInt(int64(rng.Intn(500) + 10))
			batch = append(batch, []any{
				uuid.New().String(),
				fmt.Sprintf("Item %d", inserted+j+1),
				locationIDs[rng.Intn(len(locationIDs))],
				price,
				now,
				now,
			})
		}
		_, err := pool.CopyFrom(ctx,
			pgx.Identifier{"inventory"},
			[]string{"id", "name", "location_id", "price", "created_at", "updated_at"},
			pgx.CopyFromRows(batch),
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "copiar lote: %v\n", err)
			os.Exit(1)
		}
		inserted += n
		if inserted%50000 == 0 {
			fmt.Printf("Insertados %d artículos...\n", inserted)
		}
	}

	fmt.Println("Listo.")
}
