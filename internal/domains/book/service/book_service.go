package service

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"

	"megaferia-backend/internal/domains/book/model"
	personModel "megaferia-backend/internal/domains/person/model"
	publisherModel "megaferia-backend/internal/domains/publisher/model"
	"megaferia-backend/internal/shared/observer"
	"megaferia-backend/internal/shared/repository"
	"megaferia-backend/internal/shared/response"
	"megaferia-backend/internal/shared/validation"

	"github.com/rs/zerolog/log"
)

const authorIDSubject = "El id del autor"

type (
	BookRepository      = repository.Repository[model.Book, string]
	AuthorRepository    = repository.Repository[personModel.Author, int64]
	PublisherRepository = repository.Repository[publisherModel.Publisher, string]
	NarratorRepository  = repository.Repository[personModel.Narrator, int64]
)

// BookInput carries the raw fields shared by every book variant.
type BookInput struct {
	Title        string
	AuthorIDs    []string
	ISBN         string
	Genre        string
	Format       string
	Value        string
	PublisherNIT string
}

// BookService creates printed, digital and audio books and answers the
// catalogue queries.
type BookService struct {
	observer.Subject

	mu            sync.Mutex
	bookRepo      BookRepository
	authorRepo    AuthorRepository
	publisherRepo PublisherRepository
	narratorRepo  NarratorRepository
}

// NewBookService creates a new book service instance
func NewBookService(books BookRepository, authors AuthorRepository, publishers PublisherRepository, narrators NarratorRepository) *BookService {
	return &BookService{
		bookRepo:      books,
		authorRepo:    authors,
		publisherRepo: publishers,
		narratorRepo:  narrators,
	}
}

// ========================================
// CREATE
// ========================================

func (s *BookService) CreatePrintedBook(in BookInput, pagesText, copiesText string) response.Response[model.Book] {
	return s.createBook(in, "Libro impreso creado correctamente.", func() (model.Edition, response.Response[model.Book]) {
		const notInteger = "Páginas y número de ejemplares deben ser números enteros."

		pages, err := validation.ParseInt(pagesText, notInteger)
		if err != nil {
			return nil, response.Of[model.Book](response.StatusBadRequest, err.Error())
		}
		copies, err := validation.ParseInt(copiesText, notInteger)
		if err != nil {
			return nil, response.Of[model.Book](response.StatusBadRequest, err.Error())
		}
		if pages <= 0 || copies <= 0 {
			return nil, response.Of[model.Book](response.StatusBadRequest,
				"Páginas y número de ejemplares deben ser mayores que cero.")
		}
		return model.PrintedEdition{Pages: pages, Copies: copies}, response.Response[model.Book]{}
	})
}

func (s *BookService) CreateDigitalBook(in BookInput, hyperlink string) response.Response[model.Book] {
	return s.createBook(in, "Libro digital creado correctamente.", func() (model.Edition, response.Response[model.Book]) {
		if validation.IsBlank(hyperlink) {
			return model.DigitalEdition{}, response.Response[model.Book]{}
		}
		return model.DigitalEdition{Hyperlink: strings.TrimSpace(hyperlink)}, response.Response[model.Book]{}
	})
}

func (s *BookService) CreateAudiobook(in BookInput, narratorIDText, durationText string) response.Response[model.Book] {
	return s.createBook(in, "Audiolibro creado correctamente.", func() (model.Edition, response.Response[model.Book]) {
		narratorID, err := validation.ParseID(narratorIDText, "El id del narrador")
		if err != nil {
			return nil, response.Of[model.Book](response.StatusBadRequest, err.Error())
		}

		narrator, found := s.narratorRepo.FindByID(narratorID)
		if !found {
			return nil, response.Of[model.Book](response.StatusNotFound,
				fmt.Sprintf("El narrador con id %d no existe.", narratorID))
		}

		duration, err := validation.ParseInt(durationText,
			"La duración debe ser un número entero (minutos, por ejemplo).")
		if err != nil {
			return nil, response.Of[model.Book](response.StatusBadRequest, err.Error())
		}
		if duration <= 0 {
			return nil, response.Of[model.Book](response.StatusBadRequest, "La duración debe ser mayor que cero.")
		}

		return model.AudioEdition{Duration: duration, Narrator: narrator}, response.Response[model.Book]{}
	})
}

// editionFunc validates the variant fields. A zero-status response means success.
type editionFunc func() (model.Edition, response.Response[model.Book])

func (s *BookService) createBook(in BookInput, createdMsg string, edition editionFunc) response.Response[model.Book] {
	res := func() response.Response[model.Book] {
		s.mu.Lock()
		defer s.mu.Unlock()

		common := s.validateCommonBookData(in)
		if !common.IsSuccess() {
			return response.Forward[model.Book](common)
		}

		ed, rejected := edition()
		if rejected.Status != "" {
			return rejected
		}

		saved := s.bookRepo.Save(model.New(common.Data, ed))
		s.trackAuthorPublishers(saved)
		return response.WithData(response.StatusCreated, createdMsg, saved)
	}()

	if !res.IsSuccess() {
		log.Debug().
			Str("status", string(res.Status)).
			Str("reason", res.Message).
			Msg("Book rejected")
		return res
	}

	log.Info().
		Str("isbn", res.Data.ISBN).
		Str("kind", string(res.Data.Kind())).
		Str("publisher_nit", res.Data.Publisher.NIT).
		Msg("Book created")

	s.Notify(observer.KindBook)
	return res
}

// validateCommonBookData checks the shared fields in a fixed order and stops
// at the first failure.
func (s *BookService) validateCommonBookData(in BookInput) response.Response[model.Common] {
	reject := func(status response.StatusCode, message string) response.Response[model.Common] {
		return response.Of[model.Common](status, message)
	}

	if validation.IsBlank(in.Title) {
		return reject(response.StatusBadRequest, "El título del libro es obligatorio.")
	}

	if len(in.AuthorIDs) == 0 {
		return reject(response.StatusBadRequest, "Debe seleccionar al menos un autor.")
	}

	authors := make([]personModel.Author, 0, len(in.AuthorIDs))
	for _, text := range in.AuthorIDs {
		if validation.IsBlank(text) {
			continue
		}

		id, err := validation.ParseID(text, authorIDSubject)
		if err != nil {
			return reject(response.StatusBadRequest, err.Error())
		}

		if slices.ContainsFunc(authors, func(a personModel.Author) bool { return a.ID == id }) {
			return reject(response.StatusBadRequest, "No se puede repetir un autor en el mismo libro.")
		}

		author, found := s.authorRepo.FindByID(id)
		if !found {
			return reject(response.StatusNotFound, fmt.Sprintf("El autor con id %d no existe.", id))
		}
		authors = append(authors, author)
	}
	if len(authors) == 0 {
		return reject(response.StatusBadRequest, "Debe seleccionar al menos un autor.")
	}

	isbn := strings.TrimSpace(in.ISBN)
	if err := validation.ValidateISBN(isbn); err != nil {
		return reject(response.StatusBadRequest, err.Error())
	}
	if _, exists := s.bookRepo.FindByID(isbn); exists {
		return reject(response.StatusConflict, "Ya existe un libro con ese ISBN.")
	}

	if validation.IsBlank(in.Genre) {
		return reject(response.StatusBadRequest, "El género del libro es obligatorio.")
	}

	if validation.IsBlank(in.Format) {
		return reject(response.StatusBadRequest, "El formato del libro es obligatorio.")
	}

	if err := validation.Required(in.Value, "El valor del libro es obligatorio."); err != nil {
		return reject(response.StatusBadRequest, err.Error())
	}
	value, err := validation.ParsePositiveDecimal(in.Value,
		"El valor del libro debe ser un número.",
		"El valor del libro debe ser mayor que cero.")
	if err != nil {
		return reject(response.StatusBadRequest, err.Error())
	}

	if validation.IsBlank(in.PublisherNIT) {
		return reject(response.StatusBadRequest, "El NIT de la editorial es obligatorio.")
	}
	nit := strings.TrimSpace(in.PublisherNIT)
	publisher, found := s.publisherRepo.FindByID(nit)
	if !found {
		return reject(response.StatusNotFound, fmt.Sprintf("La editorial con NIT %s no existe.", nit))
	}

	return response.WithData(response.StatusOK, "Datos del libro válidos.", model.Common{
		Title:     strings.TrimSpace(in.Title),
		Authors:   authors,
		ISBN:      isbn,
		Genre:     strings.TrimSpace(in.Genre),
		Format:    strings.TrimSpace(in.Format),
		Value:     value,
		Publisher: publisher,
	})
}

// trackAuthorPublishers records the book's publisher on every stored author
// so the distinct publisher count stays current.
func (s *BookService) trackAuthorPublishers(book model.Book) {
	for _, a := range book.Authors {
		stored, found := s.authorRepo.FindByID(a.ID)
		if !found {
			continue
		}
		if stored.AddPublisher(book.Publisher.NIT) {
			s.authorRepo.Update(stored)
		}
	}
}

// ========================================
// QUERIES
// ========================================

// GetBooksByType filters by one of the type labels, keeping ISBN order.
func (s *BookService) GetBooksByType(label string) response.Response[[]model.Book] {
	result := []model.Book{}
	for _, b := range s.bookRepo.FindAll() {
		if b.MatchesTypeLabel(label) {
			result = append(result, b)
		}
	}
	return response.WithData(response.StatusOK, "Libros filtrados por tipo.", result)
}

func (s *BookService) GetBooksByAuthor(authorIDText string) response.Response[[]model.Book] {
	authorID, err := validation.ParseID(authorIDText, authorIDSubject)
	if err != nil {
		return response.Of[[]model.Book](response.StatusBadRequest, err.Error())
	}

	if _, found := s.authorRepo.FindByID(authorID); !found {
		return response.Of[[]model.Book](response.StatusNotFound,
			fmt.Sprintf("El autor con id %d no existe.", authorID))
	}

	result := []model.Book{}
	for _, b := range s.bookRepo.FindAll() {
		if b.HasAuthor(authorID) {
			result = append(result, b)
		}
	}
	return response.WithData(response.StatusOK, fmt.Sprintf("Libros del autor con id %d.", authorID), result)
}

// GetBooksByFormat matches the format exactly as given.
func (s *BookService) GetBooksByFormat(format string) response.Response[[]model.Book] {
	if validation.IsBlank(format) {
		return response.Of[[]model.Book](response.StatusBadRequest, "El formato es obligatorio.")
	}

	result := []model.Book{}
	for _, b := range s.bookRepo.FindAll() {
		if b.Format == format {
			result = append(result, b)
		}
	}
	return response.WithData(response.StatusOK, "Libros filtrados por formato.", result)
}

// GetAuthorsWithMostDifferentPublishers returns every author tying the
// highest distinct publisher count, ordered by id.
func (s *BookService) GetAuthorsWithMostDifferentPublishers() response.Response[[]personModel.Author] {
	authors := s.authorRepo.FindAll()
	if len(authors) == 0 {
		return response.WithData(response.StatusOK, "No hay autores registrados.", []personModel.Author{})
	}

	maxPublishers := -1
	var top []personModel.Author
	for _, a := range authors {
		qty := a.PublisherQuantity()
		switch {
		case qty > maxPublishers:
			maxPublishers = qty
			top = []personModel.Author{a}
		case qty == maxPublishers:
			top = append(top, a)
		}
	}

	slices.SortFunc(top, func(a, b personModel.Author) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return response.WithData(response.StatusOK,
		fmt.Sprintf("Autores con más libros en diferentes editoriales: %d", maxPublishers), top)
}
