package http_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/inventory-tracker/internal/interfaces/http"
)

// Sin swagger.json generado la API debe arrancar igual: el middleware no se
// monta y /docs simplemente no existe.
func TestRegisterSwagger_SinArchivoNoMontaNiEntraEnPanico(t *testing.T) {
	app := fiber.New()

	assert.NotPanics(t, func() {
		apphttp.RegisterSwagger(app, filepath.Join(t.TempDir(), "swagger.json"), "Inventory Tracker API")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRegisterSwagger_ConArchivoSirveLaUI(t *testing.T) {
	dir := t.TempDir()
	specPath := filepath.Join(dir, "swagger.json")
	doc := `{"swagger":"2.0","info":{"title":"Inventory Tracker API","version":"1.0.0"},"paths":{}}`
	require.NoError(t, os.WriteFile(specPath, []byte(doc), 0o644))

	app := fiber.New()
	apphttp.RegisterSwagger(app, specPath, "Inventory Tracker API")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
