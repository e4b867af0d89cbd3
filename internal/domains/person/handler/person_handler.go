package handler

import (
	"megaferia-backend/internal/domains/person/service"
	"megaferia-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// CreatePersonRequest - POST /v1/authors, /v1/managers, /v1/narrators
// Fields are raw text; parsing belongs to the service.
type CreatePersonRequest struct {
	ID        string `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// PersonHandler handles HTTP requests for authors, managers and narrators
type PersonHandler struct {
	service *service.PersonService
}

func NewPersonHandler(service *service.PersonService) *PersonHandler {
	return &PersonHandler{service: service}
}

// CreateAuthor handles POST /authors
func (h *PersonHandler) CreateAuthor(c *gin.Context) {
	var req CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.JSON(c, h.service.CreateAuthor(req.ID, req.Firstname, req.Lastname))
}

// CreateManager handles POST /managers
func (h *PersonHandler) CreateManager(c *gin.Context) {
	var req CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.JSON(c, h.service.CreateManager(req.ID, req.Firstname, req.Lastname))
}

// CreateNarrator handles POST /narrators
func (h *PersonHandler) CreateNarrator(c *gin.Context) {
	var req CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.JSON(c, h.service.CreateNarrator(req.ID, req.Firstname, req.Lastname))
}

// ListAuthors handles GET /authors
func (h *PersonHandler) ListAuthors(c *gin.Context) {
	response.JSON(c, h.service.GetAllAuthors())
}

// ListManagers handles GET /managers
func (h *PersonHandler) ListManagers(c *gin.Context) {
	response.JSON(c, h.service.GetAllManagers())
}

// ListNarrators handles GET /narrators
func (h *PersonHandler) ListNarrators(c *gin.Context) {
	response.JSON(c, h.service.GetAllNarrators())
}
