package handler

import (
	"megaferia-backend/internal/domains/publisher/service"
	"megaferia-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// CreatePublisherRequest - POST /v1/publishers
type CreatePublisherRequest struct {
	NIT       string `json:"nit"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	ManagerID string `json:"manager_id"`
}

// PublisherHandler handles HTTP requests for publisher domain
type PublisherHandler struct {
	service *service.PublisherService
}

// NewPublisherHandler creates a new publisher handler instance
// Dependency injection pattern - receives service from container
func NewPublisherHandler(service *service.PublisherService) *PublisherHandler {
	return &PublisherHandler{
		service: service,
	}
}

// CreatePublisher handles POST /publishers
func (h *PublisherHandler) CreatePublisher(c *gin.Context) {
	var req CreatePublisherRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.JSON(c, h.service.CreatePublisher(req.NIT, req.Name, req.Address, req.ManagerID))
}

// ListPublishers handles GET /publishers
func (h *PublisherHandler) ListPublishers(c *gin.Context) {
	response.JSON(c, h.service.GetAllPublishers())
}
