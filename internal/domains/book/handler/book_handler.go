package handler

import (
	"megaferia-backend/internal/domains/book/model"
	"megaferia-backend/internal/domains/book/service"
	"megaferia-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// BookRequest holds the raw fields shared by every book variant.
type BookRequest struct {
	Title        string   `json:"title"`
	AuthorIDs    []string `json:"author_ids"`
	ISBN         string   `json:"isbn"`
	Genre        string   `json:"genre"`
	Format       string   `json:"format"`
	Value        string   `json:"value"`
	PublisherNIT string   `json:"publisher_nit"`
}

func (r BookRequest) toInput() service.BookInput {
	return service.BookInput{
		Title:        r.Title,
		AuthorIDs:    r.AuthorIDs,
		ISBN:         r.ISBN,
		Genre:        r.Genre,
		Format:       r.Format,
		Value:        r.Value,
		PublisherNIT: r.PublisherNIT,
	}
}

// CreatePrintedBookRequest - POST /v1/books/printed
type CreatePrintedBookRequest struct {
	BookRequest
	Pages  string `json:"pages"`
	Copies string `json:"copies"`
}

// CreateDigitalBookRequest - POST /v1/books/digital
type CreateDigitalBookRequest struct {
	BookRequest
	Hyperlink string `json:"hyperlink"`
}

// CreateAudiobookRequest - POST /v1/books/audio
type CreateAudiobookRequest struct {
	BookRequest
	NarratorID string `json:"narrator_id"`
	Duration   string `json:"duration"`
}

// BookHandler handles HTTP requests for book domain
type BookHandler struct {
	service *service.BookService
}

func NewBookHandler(service *service.BookService) *BookHandler {
	return &BookHandler{service: service}
}

// CreatePrintedBook handles POST /books/printed
func (h *BookHandler) CreatePrintedBook(c *gin.Context) {
	var req CreatePrintedBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.JSON(c, h.service.CreatePrintedBook(req.toInput(), req.Pages, req.Copies))
}

// CreateDigitalBook handles POST /books/digital
func (h *BookHandler) CreateDigitalBook(c *gin.Context) {
	var req CreateDigitalBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.JSON(c, h.service.CreateDigitalBook(req.toInput(), req.Hyperlink))
}

// CreateAudiobook handles POST /books/audio
func (h *BookHandler) CreateAudiobook(c *gin.Context) {
	var req CreateAudiobookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.JSON(c, h.service.CreateAudiobook(req.toInput(), req.NarratorID, req.Duration))
}

// ListBooks handles GET /books?type=
// Without a type every book is listed.
func (h *BookHandler) ListBooks(c *gin.Context) {
	label := c.DefaultQuery("type", model.TypeLabelAll)
	response.JSON(c, h.service.GetBooksByType(label))
}

// ListBooksByFormat handles GET /books/format?format=
func (h *BookHandler) ListBooksByFormat(c *gin.Context) {
	response.JSON(c, h.service.GetBooksByFormat(c.Query("format")))
}

// ListBooksByAuthor handles GET /books/by-author/:id
func (h *BookHandler) ListBooksByAuthor(c *gin.Context) {
	response.JSON(c, h.service.GetBooksByAuthor(c.Param("id")))
}

// ListAuthorsWithMostPublishers handles GET /books/top-authors
func (h *BookHandler) ListAuthorsWithMostPublishers(c *gin.Context) {
	response.JSON(c, h.service.GetAuthorsWithMostDifferentPublishers())
}
