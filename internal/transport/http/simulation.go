package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/saan-system/services/routing/internal/simulate"
	"github.com/saan-system/services/routing/internal/store"
)

// SimulationHandler generates and persists synthetic scenarios for demoing
// the pipeline end to end, and proposes traffic-injection events against an
// existing persisted route.
type SimulationHandler struct {
	Depots   *store.DepotRepository
	Vehicles *store.VehicleRepository
	Stops    *store.StopRepository
	Routes   *store.RouteRepository
}

type simulationStartRequest struct {
	City        string `json:"city" binding:"required"`
	NumStops    int    `json:"num_stops" binding:"required"`
	NumVehicles int    `json:"num_vehicles" binding:"required"`
	Seed        *int64 `json:"seed"`
}

func (h *SimulationHandler) Start(c *gin.Context) {
	var req simulationStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	scenario, err := simulate.Start(simulate.Request{
		City:        req.City,
		NumStops:    req.NumStops,
		NumVehicles: req.NumVehicles,
		Seed:        seed,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.Depots.Create(ctx, scenario.Depot); err != nil {
		respondError(c, err)
		return
	}

	vehicleIDs := make([]uuid.UUID, len(scenario.Vehicles))
	for i, v := range scenario.Vehicles {
		if err := h.Vehicles.Create(ctx, v); err != nil {
			respondError(c, err)
			return
		}
		vehicleIDs[i] = v.ID
	}

	stopIDs := make([]uuid.UUID, len(scenario.Stops))
	for i, s := range scenario.Stops {
		if err := h.Stops.Create(ctx, s); err != nil {
			respondError(c, err)
			return
		}
		stopIDs[i] = s.ID
	}

	c.JSON(http.StatusCreated, gin.H{
		"depot_id":    scenario.Depot.ID,
		"vehicle_ids": vehicleIDs,
		"stop_ids":    stopIDs,
	})
}

type injectTrafficRequest struct {
	RouteID     uuid.UUID `json:"route_id" binding:"required"`
	DelayFactor float64   `json:"delay_factor"`
}

// InjectTraffic picks a random edge on the named route's matrix and
// proposes a delay event the caller can feed straight into /reroute.
func (h *SimulationHandler) InjectTraffic(c *gin.Context) {
	var req injectTrafficRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	if _, err := h.Routes.GetByID(ctx, req.RouteID); err != nil {
		respondError(c, err)
		return
	}

	routeStops, err := h.Routes.GetStops(ctx, req.RouteID)
	if err != nil {
		respondError(c, err)
		return
	}

	from, to, factor := simulate.InjectTraffic(len(routeStops)+1, req.DelayFactor, int64(uuid.New().ID()))

	c.JSON(http.StatusOK, gin.H{
		"route_id": req.RouteID,
		"traffic_events": []gin.H{
			{"from_idx": from, "to_idx": to, "delay_factor": factor},
		},
	})
}
