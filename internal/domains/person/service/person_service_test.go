package service

import (
	"testing"

	"megaferia-backend/internal/domains/person/model"
	"megaferia-backend/internal/shared/repository"
	"megaferia-backend/internal/shared/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type kindRecorder struct {
	kinds []string
}

func (r *kindRecorder) Update(kind string) { r.kinds = append(r.kinds, kind) }

type fixture struct {
	svc       *PersonService
	authors   *repository.Memory[model.Author, int64]
	managers  *repository.Memory[model.Manager, int64]
	narrators *repository.Memory[model.Narrator, int64]
	events    *kindRecorder
}

func newFixture() fixture {
	f := fixture{
		authors:   repository.NewMemory[model.Author, int64](),
		managers:  repository.NewMemory[model.Manager, int64](),
		narrators: repository.NewMemory[model.Narrator, int64](),
		events:    &kindRecorder{},
	}
	f.svc = NewPersonService(f.authors, f.managers, f.narrators)
	f.svc.Register(f.events)
	return f
}

func TestCreateAuthor_Success(t *testing.T) {
	f := newFixture()

	res := f.svc.CreateAuthor(" 10 ", "  Gabriel ", "García Márquez ")

	require.Equal(t, response.StatusCreated, res.Status)
	assert.Equal(t, "Autor creado correctamente.", res.Message)
	require.True(t, res.HasData)
	assert.Equal(t, int64(10), res.Data.ID)
	assert.Equal(t, "Gabriel", res.Data.Firstname)
	assert.Equal(t, "García Márquez", res.Data.Lastname)
	assert.Equal(t, []string{"author"}, f.events.kinds)

	stored := f.authors.FindAll()
	require.Len(t, stored, 1)
	assert.Equal(t, res.Data, stored[0])
}

func TestCreatePerson_EachKindNotifiesItsTag(t *testing.T) {
	f := newFixture()

	assert.Equal(t, "Gerente creado correctamente.", f.svc.CreateManager("1", "Ana", "Ruiz").Message)
	assert.Equal(t, "Narrador creado correctamente.", f.svc.CreateNarrator("2", "Luis", "Paz").Message)

	assert.Equal(t, []string{"manager", "narrator"}, f.events.kinds)
	assert.Equal(t, 1, f.managers.Len())
	assert.Equal(t, 1, f.narrators.Len())
}

func TestCreatePerson_IDSharedAcrossKinds(t *testing.T) {
	f := newFixture()
	require.Equal(t, response.StatusCreated, f.svc.CreateManager("5", "Ana", "Ruiz").Status)

	author := f.svc.CreateAuthor("5", "Otro", "Autor")
	narrator := f.svc.CreateNarrator("005", "Otro", "Narrador")

	assert.Equal(t, response.StatusConflict, author.Status)
	assert.Equal(t, "Ya existe una persona con ese id.", author.Message)
	assert.False(t, author.HasData)
	assert.Equal(t, response.StatusConflict, narrator.Status)

	assert.Equal(t, 0, f.authors.Len())
	assert.Equal(t, 0, f.narrators.Len())
	assert.Equal(t, []string{"manager"}, f.events.kinds)
}

func TestCreatePerson_Validation(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		firstname string
		lastname  string
		message   string
	}{
		{"missing id", "", "A", "B", "El id de la persona es obligatorio."},
		{"non numeric id", "x1", "A", "B", "El id de la persona debe ser un número entero."},
		{"negative id", "-1", "A", "B", "El id de la persona no puede ser negativo."},
		{"too many digits", "1234567890123456", "A", "B", "El id de la persona no puede tener más de 15 dígitos."},
		{"blank firstname", "1", " ", "B", "El nombre y apellido del narrador son obligatorios."},
		{"blank lastname", "1", "A", "", "El nombre y apellido del narrador son obligatorios."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()

			res := f.svc.CreateNarrator(tt.id, tt.firstname, tt.lastname)

			assert.Equal(t, response.StatusBadRequest, res.Status)
			assert.Equal(t, tt.message, res.Message)
			assert.Equal(t, 0, f.narrators.Len())
			assert.Empty(t, f.events.kinds)
		})
	}
}

func TestGetAll_SortedAndDefensive(t *testing.T) {
	f := newFixture()
	f.svc.CreateAuthor("30", "C", "C")
	f.svc.CreateAuthor("10", "A", "A")
	f.svc.CreateAuthor("20", "B", "B")

	first := f.svc.GetAllAuthors()
	require.Equal(t, response.StatusOK, first.Status)
	assert.Equal(t, "Listado de autores", first.Message)
	require.Len(t, first.Data, 3)
	assert.Equal(t, []int64{10, 20, 30}, []int64{first.Data[0].ID, first.Data[1].ID, first.Data[2].ID})

	first.Data[0].Firstname = "tampered"
	first.Data[0].PublisherNITs = append(first.Data[0].PublisherNITs, "900.000.000-1")

	second := f.svc.GetAllAuthors()
	assert.Equal(t, "A", second.Data[0].Firstname)
	assert.Empty(t, second.Data[0].PublisherNITs)
}

func TestGetAllManagersAndNarrators(t *testing.T) {
	f := newFixture()
	f.svc.CreateManager("2", "M", "M")
	f.svc.CreateNarrator("3", "N", "N")

	managers := f.svc.GetAllManagers()
	assert.Equal(t, "Listado de gerentes", managers.Message)
	assert.Len(t, managers.Data, 1)

	narrators := f.svc.GetAllNarrators()
	assert.Equal(t, "Listado de narradores", narrators.Message)
	assert.Len(t, narrators.Data, 1)
}

func TestRemovedObserverIsNotNotified(t *testing.T) {
	f := newFixture()
	f.svc.Remove(f.events)

	f.svc.CreateAuthor("1", "A", "B")

	assert.Empty(t, f.events.kinds)
}
