package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/espacio-evento/espacio-ui/internal/domain/model"
	apperrors "github.com/espacio-evento/espacio-ui/internal/errors"
	backendmocks "github.com/espacio-evento/espacio-ui/internal/mocks/backend"
)

var salasFixture = []model.Sala{
	{IDSala: 1, Nombre: "Auditorio Norte", Ubicacion: "Piso 1", Capacidad: 200, PrecioArriendo: 80000, Estado: model.SalaDisponible},
	{IDSala: 2, Nombre: "Sala Andes", Ubicacion: "Piso 2", Capacidad: 40, PrecioArriendo: 20000, Estado: model.SalaArrendada},
	{IDSala: 3, Nombre: "Terraza", Ubicacion: "Azotea norte", Capacidad: 90, PrecioArriendo: 50000, Estado: model.SalaDisponible},
}

func TestFilterSalas_Query(t *testing.T) {
	out := FilterSalas(salasFixture, SalaFilter{Q: "norte"})

	// Matches name ("Auditorio Norte") and location ("Azotea norte").
	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].IDSala)
	assert.Equal(t, 3, out[1].IDSala)
}

func TestFilterSalas_Estado(t *testing.T) {
	out := FilterSalas(salasFixture, SalaFilter{Estado: model.SalaArrendada})

	require.Len(t, out, 1)
	assert.Equal(t, 2, out[0].IDSala)
}

func TestFilterSalas_SortCapacidadDesc(t *testing.T) {
	out := FilterSalas(salasFixture, SalaFilter{Sort: "capacidad", Desc: true})

	require.Len(t, out, 3)
	assert.Equal(t, 200, out[0].Capacidad)
	assert.Equal(t, 90, out[1].Capacidad)
	assert.Equal(t, 40, out[2].Capacidad)
}

func TestFilterSalas_UnknownSortKeepsOrder(t *testing.T) {
	out := FilterSalas(salasFixture, SalaFilter{Sort: "otro"})

	require.Len(t, out, 3)
	assert.Equal(t, 1, out[0].IDSala)
}

func TestSalaService_List_AppliesFilter(t *testing.T) {
	api := &backendmocks.MockSalasAPI{Salas: salasFixture}
	svc := NewSalaService(SalaServiceOptions{Salas: api})

	out, err := svc.List(context.Background(), testSession(1, "asistente"), SalaFilter{Estado: model.SalaDisponible, Sort: "precio"})

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, 3, out[0].IDSala)
	assert.Equal(t, 1, out[1].IDSala)
}

func TestSalaService_Create_RequiresAdmin(t *testing.T) {
	svc := NewSalaService(SalaServiceOptions{Salas: &backendmocks.MockSalasAPI{}})

	_, err := svc.Create(context.Background(), testSession(1, "organizador"), model.Sala{Capacidad: 10})
	require.Error(t, err)
	assert.True(t, apperrors.IsForbidden(err))

	_, err = svc.Create(context.Background(), nil, model.Sala{Capacidad: 10})
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestSalaService_Create_DefaultEstado(t *testing.T) {
	api := &backendmocks.MockSalasAPI{}
	svc := NewSalaService(SalaServiceOptions{Salas: api})

	sala, err := svc.Create(context.Background(), testSession(1, "administrador"), model.Sala{
		Nombre:    "Sala Nueva",
		Capacidad: 30,
	})

	require.NoError(t, err)
	assert.Equal(t, model.SalaDisponible, sala.Estado)
}

func TestSalaService_Create_InvalidCapacidad(t *testing.T) {
	svc := NewSalaService(SalaServiceOptions{Salas: &backendmocks.MockSalasAPI{}})

	_, err := svc.Create(context.Background(), testSession(1, "administrador"), model.Sala{Capacidad: 0})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestSalaService_Delete_RequiresAdmin(t *testing.T) {
	api := &backendmocks.MockSalasAPI{Salas: []model.Sala{{IDSala: 1}}}
	svc := NewSalaService(SalaServiceOptions{Salas: api})

	err := svc.Delete(context.Background(), testSession(1, "organizador"), 1)
	require.Error(t, err)

	require.NoError(t, svc.Delete(context.Background(), testSession(1, "administrador"), 1))
	assert.Empty(t, api.Salas)
}
