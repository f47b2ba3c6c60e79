package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/saan-system/services/routing/internal/domain"
	"github.com/saan-system/services/routing/internal/store"
)

// DepotHandler serves CRUD over depots. Depot persistence isn't in the
// original HTTP table but the data model requires depots to exist before a
// route can reference one.
type DepotHandler struct {
	Depots *store.DepotRepository
}

type createDepotRequest struct {
	Name      string  `json:"name" binding:"required"`
	Latitude  float64 `json:"latitude" binding:"required"`
	Longitude float64 `json:"longitude" binding:"required"`
	OpenTime  string  `json:"open_time" binding:"required"`
	CloseTime string  `json:"close_time" binding:"required"`
}

func (h *DepotHandler) Create(c *gin.Context) {
	var req createDepotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	depot, err := domain.NewDepot(req.Name, req.Latitude, req.Longitude, req.OpenTime, req.CloseTime)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.Depots.Create(c.Request.Context(), depot); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, depot)
}

func (h *DepotHandler) List(c *gin.Context) {
	depots, err := h.Depots.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, depots)
}

func (h *DepotHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid depot id"})
		return
	}

	depot, err := h.Depots.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, depot)
}
