package service

import (
	"strings"
	"sync"

	"megaferia-backend/internal/domains/person/model"
	"megaferia-backend/internal/shared/observer"
	"megaferia-backend/internal/shared/repository"
	"megaferia-backend/internal/shared/response"
	"megaferia-backend/internal/shared/validation"

	"github.com/rs/zerolog/log"
)

const (
	personIDSubject = "El id de la persona"

	msgPersonConflict = "Ya existe una persona con ese id."
)

type (
	AuthorRepository   = repository.Repository[model.Author, int64]
	ManagerRepository  = repository.Repository[model.Manager, int64]
	NarratorRepository = repository.Repository[model.Narrator, int64]
)

// PersonService creates and lists authors, managers and narrators.
// The three kinds share a single id space.
type PersonService struct {
	observer.Subject

	mu           sync.Mutex
	authorRepo   AuthorRepository
	managerRepo  ManagerRepository
	narratorRepo NarratorRepository
}

// NewPersonService creates a new person service instance
func NewPersonService(authors AuthorRepository, managers ManagerRepository, narrators NarratorRepository) *PersonService {
	return &PersonService{
		authorRepo:   authors,
		managerRepo:  managers,
		narratorRepo: narrators,
	}
}

// personSpec describes how one person kind is created and reported.
type personSpec[T repository.Entity[T, int64]] struct {
	kind         string
	namesMessage string
	createdMsg   string
	repo         repository.Repository[T, int64]
	build        func(id int64, firstname, lastname string) T
}

func (s *PersonService) CreateAuthor(idText, firstname, lastname string) response.Response[model.Author] {
	return createPerson(s, personSpec[model.Author]{
		kind:         observer.KindAuthor,
		namesMessage: "El nombre y apellido del autor son obligatorios.",
		createdMsg:   "Autor creado correctamente.",
		repo:         s.authorRepo,
		build:        model.NewAuthor,
	}, idText, firstname, lastname)
}

func (s *PersonService) CreateManager(idText, firstname, lastname string) response.Response[model.Manager] {
	return createPerson(s, personSpec[model.Manager]{
		kind:         observer.KindManager,
		namesMessage: "El nombre y apellido del gerente son obligatorios.",
		createdMsg:   "Gerente creado correctamente.",
		repo:         s.managerRepo,
		build:        model.NewManager,
	}, idText, firstname, lastname)
}

func (s *PersonService) CreateNarrator(idText, firstname, lastname string) response.Response[model.Narrator] {
	return createPerson(s, personSpec[model.Narrator]{
		kind:         observer.KindNarrator,
		namesMessage: "El nombre y apellido del narrador son obligatorios.",
		createdMsg:   "Narrador creado correctamente.",
		repo:         s.narratorRepo,
		build:        model.NewNarrator,
	}, idText, firstname, lastname)
}

func createPerson[T repository.Entity[T, int64]](s *PersonService, spec personSpec[T], idText, firstname, lastname string) response.Response[T] {
	res := func() response.Response[T] {
		s.mu.Lock()
		defer s.mu.Unlock()

		id, err := validation.ParseID(idText, personIDSubject)
		if err != nil {
			return response.Of[T](response.StatusBadRequest, err.Error())
		}

		if validation.IsBlank(firstname) || validation.IsBlank(lastname) {
			return response.Of[T](response.StatusBadRequest, spec.namesMessage)
		}

		if s.existsPersonID(id) {
			return response.Of[T](response.StatusConflict, msgPersonConflict)
		}

		saved := spec.repo.Save(spec.build(id, strings.TrimSpace(firstname), strings.TrimSpace(lastname)))
		return response.WithData(response.StatusCreated, spec.createdMsg, saved)
	}()

	if !res.IsSuccess() {
		log.Debug().
			Str("kind", spec.kind).
			Str("status", string(res.Status)).
			Str("reason", res.Message).
			Msg("Person rejected")
		return res
	}

	log.Info().
		Str("kind", spec.kind).
		Int64("id", res.Data.Key()).
		Msg("Person created")

	s.Notify(spec.kind)
	return res
}

func (s *PersonService) GetAllAuthors() response.Response[[]model.Author] {
	return response.WithData(response.StatusOK, "Listado de autores", s.authorRepo.FindAll())
}

func (s *PersonService) GetAllManagers() response.Response[[]model.Manager] {
	return response.WithData(response.StatusOK, "Listado de gerentes", s.managerRepo.FindAll())
}

func (s *PersonService) GetAllNarrators() response.Response[[]model.Narrator] {
	return response.WithData(response.StatusOK, "Listado de narradores", s.narratorRepo.FindAll())
}

// existsPersonID checks the id against all three person repositories.
func (s *PersonService) existsPersonID(id int64) bool {
	if _, ok := s.authorRepo.FindByID(id); ok {
		return true
	}
	if _, ok := s.managerRepo.FindByID(id); ok {
		return true
	}
	_, ok := s.narratorRepo.FindByID(id)
	return ok
}
