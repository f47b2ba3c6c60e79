package http

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/saan-system/services/routing/internal/hub"
	"github.com/saan-system/services/routing/internal/jobs"
	"github.com/saan-system/services/routing/internal/reroute"
	"github.com/saan-system/services/routing/internal/store"
)

// RouteHandler serves the optimisation job surface, persisted-route reads,
// and the reroute/websocket pair.
type RouteHandler struct {
	Routes   *store.RouteRepository
	Stops    *store.StopRepository
	Queue    *jobs.Queue
	Rerouter *reroute.Rerouter
	Hub      *hub.Hub
}

type optimizeRequest struct {
	DepotID    uuid.UUID   `json:"depot_id" binding:"required"`
	VehicleIDs []uuid.UUID `json:"vehicle_ids" binding:"required"`
	StopIDs    []uuid.UUID `json:"stop_ids" binding:"required"`
	Date       string      `json:"date" binding:"required"`
}

// Optimize enqueues an optimisation job and returns immediately — it never
// blocks on matrix building or solving.
func (h *RouteHandler) Optimize(c *gin.Context) {
	var req optimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	jobID, err := jobs.Submit(c.Request.Context(), h.Queue, req.DepotID, req.VehicleIDs, req.StopIDs, req.Date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"job_id": jobID, "status": jobs.StatusQueued})
}

// Status reports a job's current lifecycle state.
func (h *RouteHandler) Status(c *gin.Context) {
	record, err := h.Queue.GetStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if record.Status == jobs.StatusFailed {
		c.JSON(http.StatusOK, gin.H{"status": record.Status, "error": record.Error})
		return
	}

	resp := gin.H{"status": record.Status}
	if record.Result != nil {
		resp["result"] = record.Result
	}
	c.JSON(http.StatusOK, resp)
}

type stopSummary struct {
	StopID         uuid.UUID `json:"stop_id"`
	Sequence       int       `json:"sequence"`
	PlannedArrival *string   `json:"planned_arrival,omitempty"`
}

// Stops returns a route's ordered stop sequence.
func (h *RouteHandler) Stops(c *gin.Context) {
	routeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid route id"})
		return
	}

	if _, err := h.Routes.GetByID(c.Request.Context(), routeID); err != nil {
		respondError(c, err)
		return
	}

	routeStops, err := h.Routes.GetStops(c.Request.Context(), routeID)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]stopSummary, len(routeStops))
	for i, rs := range routeStops {
		out[i] = stopSummary{StopID: rs.StopID, Sequence: rs.Sequence, PlannedArrival: rs.PlannedArrival}
	}
	c.JSON(http.StatusOK, out)
}

type stopDetail struct {
	StopID          uuid.UUID `json:"stop_id"`
	Sequence        int       `json:"sequence"`
	PlannedArrival  *string   `json:"planned_arrival,omitempty"`
	Lat             float64   `json:"lat"`
	Lng             float64   `json:"lng"`
	Address         string    `json:"address"`
	EarliestTime    string    `json:"earliest_time"`
	LatestTime      string    `json:"latest_time"`
	PackageWeightKg float64   `json:"package_weight_kg"`
}

// Detail returns a route's ordered stops enriched with coordinates and
// delivery windows, for a dispatcher-facing view.
func (h *RouteHandler) Detail(c *gin.Context) {
	routeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid route id"})
		return
	}

	if _, err := h.Routes.GetByID(c.Request.Context(), routeID); err != nil {
		respondError(c, err)
		return
	}

	routeStops, err := h.Routes.GetStops(c.Request.Context(), routeID)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]stopDetail, len(routeStops))
	for i, rs := range routeStops {
		stop, err := h.Stops.GetByID(c.Request.Context(), rs.StopID)
		if err != nil {
			respondError(c, err)
			return
		}
		out[i] = stopDetail{
			StopID:          rs.StopID,
			Sequence:        rs.Sequence,
			PlannedArrival:  rs.PlannedArrival,
			Lat:             stop.Latitude,
			Lng:             stop.Longitude,
			Address:         stop.Address,
			EarliestTime:    stop.EarliestTime,
			LatestTime:      stop.LatestTime,
			PackageWeightKg: stop.WeightKg,
		}
	}
	c.JSON(http.StatusOK, out)
}

type rerouteRequest struct {
	TrafficEvents []reroute.TrafficEvent `json:"traffic_events"`
}

// Reroute recomputes ETAs for a route's unchanged stop sequence and
// broadcasts the result to anyone subscribed over the websocket.
func (h *RouteHandler) Reroute(c *gin.Context) {
	routeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid route id"})
		return
	}

	var req rerouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Rerouter.Reroute(c.Request.Context(), routeID, req.TrafficEvents)
	if err != nil {
		respondError(c, err)
		return
	}

	if payload, err := json.Marshal(result); err == nil {
		h.Hub.Broadcast(routeID.String(), payload)
	}

	c.JSON(http.StatusOK, result)
}

// WebSocket upgrades the connection and subscribes it to a route's reroute
// broadcasts until the client disconnects.
func (h *RouteHandler) WebSocket(c *gin.Context) {
	routeID := c.Param("id")

	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	sink := newWSSink(conn)
	h.Hub.Subscribe(routeID, sink)
	defer h.Hub.Unsubscribe(routeID, sink)

	sink.readUntilClose()
}
