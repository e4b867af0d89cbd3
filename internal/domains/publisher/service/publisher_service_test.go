package service

import (
	"testing"

	personModel "megaferia-backend/internal/domains/person/model"
	"megaferia-backend/internal/domains/publisher/model"
	"megaferia-backend/internal/shared/repository"
	"megaferia-backend/internal/shared/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type kindRecorder struct {
	kinds []string
}

func (r *kindRecorder) Update(kind string) { r.kinds = append(r.kinds, kind) }

func newTestService(t *testing.T) (*PublisherService, *repository.Memory[model.Publisher, string], *repository.Memory[personModel.Manager, int64], *kindRecorder) {
	t.Helper()

	publishers := repository.NewMemory[model.Publisher, string]()
	managers := repository.NewMemory[personModel.Manager, int64]()
	managers.Save(personModel.NewManager(7, "Marta", "Gómez"))

	events := &kindRecorder{}
	svc := NewPublisherService(publishers, managers)
	svc.Register(events)
	return svc, publishers, managers, events
}

func TestCreatePublisher_Success(t *testing.T) {
	svc, publishers, _, events := newTestService(t)

	res := svc.CreatePublisher(" 900.123.456-7 ", " Planeta ", " Calle 1 ", "7")

	require.Equal(t, response.StatusCreated, res.Status)
	assert.Equal(t, "Editorial creada correctamente.", res.Message)
	assert.Equal(t, "900.123.456-7", res.Data.NIT)
	assert.Equal(t, "Planeta", res.Data.Name)
	assert.Equal(t, "Calle 1", res.Data.Address)
	assert.Equal(t, int64(7), res.Data.Manager.ID)
	assert.Equal(t, []string{"publisher"}, events.kinds)
	assert.Equal(t, 1, publishers.Len())
}

func TestCreatePublisher_ManagerIsCopied(t *testing.T) {
	svc, _, managers, _ := newTestService(t)

	res := svc.CreatePublisher("900.123.456-7", "Planeta", "Calle 1", "7")
	require.True(t, res.IsSuccess())

	res.Data.Manager.Firstname = "tampered"
	managers.Update(personModel.NewManager(7, "Renamed", "Gómez"))

	all := svc.GetAllPublishers()
	require.Len(t, all.Data, 1)
	assert.Equal(t, "Marta", all.Data[0].Manager.Firstname)
}

func TestCreatePublisher_Failures(t *testing.T) {
	tests := []struct {
		name    string
		nit     string
		pubName string
		address string
		manager string
		status  response.StatusCode
		message string
	}{
		{"missing name", "900.123.456-7", "", "Calle", "7", response.StatusBadRequest, "NIT, nombre, dirección e id de gerente son obligatorios."},
		{"missing manager", "900.123.456-7", "P", "Calle", " ", response.StatusBadRequest, "NIT, nombre, dirección e id de gerente son obligatorios."},
		{"bad nit", "900123456-7", "P", "Calle", "7", response.StatusBadRequest, "El NIT debe tener el formato XXX.XXX.XXX-X."},
		{"manager not integer", "900.123.456-7", "P", "Calle", "siete", response.StatusBadRequest, "El id del gerente debe ser un número entero."},
		{"manager negative", "900.123.456-7", "P", "Calle", "-7", response.StatusBadRequest, "El id del gerente no puede ser negativo."},
		{"manager too long", "900.123.456-7", "P", "Calle", "1234567890123456", response.StatusBadRequest, "El id del gerente no puede tener más de 15 dígitos."},
		{"manager unknown", "900.123.456-7", "P", "Calle", "8", response.StatusNotFound, "El gerente con id 8 no existe."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, publishers, _, events := newTestService(t)

			res := svc.CreatePublisher(tt.nit, tt.pubName, tt.address, tt.manager)

			assert.Equal(t, tt.status, res.Status)
			assert.Equal(t, tt.message, res.Message)
			assert.False(t, res.HasData)
			assert.Equal(t, 0, publishers.Len())
			assert.Empty(t, events.kinds)
		})
	}
}

func TestCreatePublisher_DuplicateNIT(t *testing.T) {
	svc, publishers, _, _ := newTestService(t)
	require.True(t, svc.CreatePublisher("900.123.456-7", "Planeta", "Calle 1", "7").IsSuccess())

	res := svc.CreatePublisher("900.123.456-7", "Otra", "Calle 2", "7")

	assert.Equal(t, response.StatusConflict, res.Status)
	assert.Equal(t, "Ya existe una editorial con ese NIT.", res.Message)
	assert.Equal(t, 1, publishers.Len())
}

func TestCreatePublisher_ManagerMayBackSeveralPublishers(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	require.True(t, svc.CreatePublisher("900.000.000-2", "B", "Calle", "7").IsSuccess())
	require.True(t, svc.CreatePublisher("900.000.000-1", "A", "Calle", "7").IsSuccess())

	all := svc.GetAllPublishers()
	assert.Equal(t, response.StatusOK, all.Status)
	assert.Equal(t, "Listado de editoriales.", all.Message)
	require.Len(t, all.Data, 2)
	assert.Equal(t, "900.000.000-1", all.Data[0].NIT)
	assert.Equal(t, "900.000.000-2", all.Data[1].NIT)
}
