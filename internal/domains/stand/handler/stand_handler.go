package handler

import (
	"megaferia-backend/internal/domains/stand/service"
	"megaferia-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// CreateStandRequest - POST /v1/stands
type CreateStandRequest struct {
	ID    string `json:"id"`
	Price string `json:"price"`
}

// BuyStandsRequest - POST /v1/stands/purchase
type BuyStandsRequest struct {
	StandIDs      []string `json:"stand_ids"`
	PublisherNITs []string `json:"publisher_nits"`
}

// StandHandler handles HTTP requests for stand domain
type StandHandler struct {
	service *service.StandService
}

func NewStandHandler(service *service.StandService) *StandHandler {
	return &StandHandler{service: service}
}

// CreateStand handles POST /stands
func (h *StandHandler) CreateStand(c *gin.Context) {
	var req CreateStandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.JSON(c, h.service.CreateStand(req.ID, req.Price))
}

// ListStands handles GET /stands
func (h *StandHandler) ListStands(c *gin.Context) {
	response.JSON(c, h.service.GetAllStands())
}

// BuyStands handles POST /stands/purchase
func (h *StandHandler) BuyStands(c *gin.Context) {
	var req BuyStandsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.JSON(c, h.service.BuyStands(req.StandIDs, req.PublisherNITs))
}
