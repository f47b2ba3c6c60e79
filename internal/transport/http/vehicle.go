package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/saan-system/services/routing/internal/domain"
	"github.com/saan-system/services/routing/internal/store"
)

// VehicleHandler serves CRUD over vehicles.
type VehicleHandler struct {
	Vehicles *store.VehicleRepository
}

type createVehicleRequest struct {
	DepotID    uuid.UUID `json:"depot_id" binding:"required"`
	CapacityKg float64   `json:"capacity_kg" binding:"required"`
	DriverName string    `json:"driver_name"`
}

func (h *VehicleHandler) Create(c *gin.Context) {
	var req createVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vehicle, err := domain.NewVehicle(req.DepotID, req.CapacityKg, req.DriverName)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.Vehicles.Create(c.Request.Context(), vehicle); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}

func (h *VehicleHandler) List(c *gin.Context) {
	if depotID := c.Query("depot_id"); depotID != "" {
		id, err := uuid.Parse(depotID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid depot_id"})
			return
		}
		vehicles, err := h.Vehicles.GetByDepot(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, vehicles)
		return
	}

	vehicles, err := h.Vehicles.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

func (h *VehicleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle id"})
		return
	}

	vehicle, err := h.Vehicles.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}
