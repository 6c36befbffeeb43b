package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// RegisterSwagger monta la UI de Swagger en /docs cuando el JSON generado
// existe. El archivo se produce con `swag init -g cmd/api/main.go -o docs`
// y no se versiona; sin él la API arranca igual, solo sin documentación.
func RegisterSwagger(app *fiber.App, filePath, title string) {
	if _, err := os.Stat(filePath); err != nil {
		log.Warn().Str("file", filePath).Msg("swagger.json no encontrado, se omite la UI de documentación")
		return
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    title,
	}))
}
