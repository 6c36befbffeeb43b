package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-tracker/internal/application/dto"
	"github.com/jhoicas/inventory-tracker/internal/application/usecase"
	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/testutil"
)

func newLocationUC() (*usecase.LocationUseCase, *testutil.MemStore, testutil.InventoryRepo) {
	store := testutil.NewMemStore()
	items := testutil.NewInventoryRepo(store)
	return usecase.NewLocationUseCase(testutil.NewLocationRepo(store), items), store, items
}

// ──────────────────────────────────────────────────────────────────────────────
// Crear ubicación
// ──────────────────────────────────────────────────────────────────────────────

func TestCrearUbicacion_RecortaElNombre(t *testing.T) {
	uc, _, _ := newLocationUC()

	out, err := uc.Create(dto.CreateLocationRequest{Name: "  Sede Norte  "})
	require.NoError(t, err)
	assert.Equal(t, "Sede Norte", out.Name)
	assert.NotEmpty(t, out.ID)
}

func TestCrearUbicacion_NombreVacio(t *testing.T) {
	uc, _, _ := newLocationUC()

	for _, name := range []string{"", "   ", "\t"} {
		_, err := uc.Create(dto.CreateLocationRequest{Name: name})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre %q", name)
	}
}

// Dos creaciones con el mismo nombre: la primera pasa, la segunda es duplicado.
func TestCrearUbicacion_NombreDuplicado(t *testing.T) {
	uc, _, _ := newLocationUC()

	_, err := uc.Create(dto.CreateLocationRequest{Name: "Sede Única"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateLocationRequest{Name: "Sede Única"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listar / obtener
// ──────────────────────────────────────────────────────────────────────────────

// La ubicación recién creada aparece exactamente una vez, en orden alfabético.
func TestListarUbicaciones_OrdenAlfabetico(t *testing.T) {
	uc, store, _ := newLocationUC()
	store.AddLocation("Centro")
	store.AddLocation("Anexo")

	_, err := uc.Create(dto.CreateLocationRequest{Name: "Bodega"})
	require.NoError(t, err)

	out, err := uc.List()
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "Anexo", out[0].Name)
	assert.Equal(t, "Bodega", out[1].Name)
	assert.Equal(t, "Centro", out[2].Name)
}

func TestObtenerUbicacion_Inexistente(t *testing.T) {
	uc, _, _ := newLocationUC()

	out, err := uc.GetByID("00000000-0000-0000-0000-000000000099")
	require.NoError(t, err)
	assert.Nil(t, out, "id desconocido devuelve nil sin error; el handler lo convierte en 404")
}

// ──────────────────────────────────────────────────────────────────────────────
// Renombrar
// ──────────────────────────────────────────────────────────────────────────────

func TestRenombrarUbicacion(t *testing.T) {
	uc, store, _ := newLocationUC()
	id := store.AddLocation("Nombre Viejo")

	out, err := uc.Update(id, dto.UpdateLocationRequest{Name: " Nombre Nuevo "})
	require.NoError(t, err)
	assert.Equal(t, "Nombre Nuevo", out.Name)
	assert.Equal(t, id, out.ID)
}

func TestRenombrarUbicacion_IDInexistente(t *testing.T) {
	uc, _, _ := newLocationUC()

	out, err := uc.Update("00000000-0000-0000-0000-000000000099", dto.UpdateLocationRequest{Name: "Da igual"})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestRenombrarUbicacion_ColisionConOtra(t *testing.T) {
	uc, store, _ := newLocationUC()
	store.AddLocation("Ocupado")
	id := store.AddLocation("Libre")

	_, err := uc.Update(id, dto.UpdateLocationRequest{Name: "Ocupado"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Renombrar a su propio nombre actual no es una colisión.
func TestRenombrarUbicacion_MismoNombrePropio(t *testing.T) {
	uc, store, _ := newLocationUC()
	id := store.AddLocation("Estable")

	out, err := uc.Update(id, dto.UpdateLocationRequest{Name: "Estable"})
	require.NoError(t, err)
	assert.Equal(t, "Estable", out.Name)
}

func TestRenombrarUbicacion_NombreVacio(t *testing.T) {
	uc, store, _ := newLocationUC()
	id := store.AddLocation("Con Nombre")

	_, err := uc.Update(id, dto.UpdateLocationRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Eliminar
// ──────────────────────────────────────────────────────────────────────────────

func TestEliminarUbicacion_IDInexistente(t *testing.T) {
	uc, _, _ := newLocationUC()
	assert.ErrorIs(t, uc.Delete("00000000-0000-0000-0000-000000000099"), domain.ErrNotFound)
}

// Con artículos que la referencian la eliminación se rechaza; tras quitar
// el último artículo, procede. Nunca cascada ni deja huérfanos.
func TestEliminarUbicacion_ConArticulosYLuegoSinEllos(t *testing.T) {
	uc, store, items := newLocationUC()
	id := store.AddLocation("Transitoria")
	itemID := store.AddItem("bloqueante", id, price("10"))

	assert.ErrorIs(t, uc.Delete(id), domain.ErrHasDependents)

	// La ubicación sigue existiendo tras el rechazo.
	still, err := uc.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, still)

	_, err = items.Delete(itemID)
	require.NoError(t, err)

	require.NoError(t, uc.Delete(id))
	gone, err := uc.GetByID(id)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
