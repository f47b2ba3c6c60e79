package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/saan-system/services/routing/internal/domain"
	"github.com/saan-system/services/routing/internal/store"
)

// StopHandler serves CRUD over delivery stops.
type StopHandler struct {
	Stops *store.StopRepository
}

type createStopRequest struct {
	Address         string  `json:"address" binding:"required"`
	Latitude        float64 `json:"latitude" binding:"required"`
	Longitude       float64 `json:"longitude" binding:"required"`
	EarliestTime    string  `json:"earliest_time" binding:"required"`
	LatestTime      string  `json:"latest_time" binding:"required"`
	PackageWeightKg float64 `json:"package_weight_kg" binding:"required"`
}

func (h *StopHandler) Create(c *gin.Context) {
	var req createStopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stop, err := domain.NewStop(req.Address, req.Latitude, req.Longitude, req.EarliestTime, req.LatestTime, req.PackageWeightKg)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.Stops.Create(c.Request.Context(), stop); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, stop)
}

func (h *StopHandler) List(c *gin.Context) {
	stops, err := h.Stops.GetPending(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stops)
}

func (h *StopHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid stop id"})
		return
	}

	stop, err := h.Stops.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stop)
}
