package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventory-tracker/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventoryUC *usecase.InventoryUseCase
	LocationUC  *usecase.LocationUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	api.Get("/inventory", inventoryHandler.List)
	api.Post("/inventory", inventoryHandler.Create)
	api.Delete("/inventory/:id", inventoryHandler.Delete)
	api.Get("/statistics", inventoryHandler.Statistics)

	locations := api.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Post("/", locationHandler.Create)
	locations.Put("/:id", locationHandler.Update)
	locations.Delete("/:id", locationHandler.Delete)
}
