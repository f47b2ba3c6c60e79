package http

import (
	"github.com/gin-gonic/gin"

	"github.com/saan-system/services/routing/internal/hub"
	"github.com/saan-system/services/routing/internal/jobs"
	"github.com/saan-system/services/routing/internal/reroute"
	"github.com/saan-system/services/routing/internal/store"
)

// Dependencies bundles everything SetupRoutes needs to wire handlers. The
// paths below are registered at the root rather than under an /api/v1
// group: the external contract names bare paths like /routes/optimize
// verbatim.
type Dependencies struct {
	Depots   *store.DepotRepository
	Vehicles *store.VehicleRepository
	Stops    *store.StopRepository
	Routes   *store.RouteRepository
	Queue    *jobs.Queue
	Rerouter *reroute.Rerouter
	Hub      *hub.Hub
}

// SetupRoutes registers every HTTP route this service exposes.
func SetupRoutes(router *gin.Engine, deps *Dependencies) {
	depotHandler := &DepotHandler{Depots: deps.Depots}
	vehicleHandler := &VehicleHandler{Vehicles: deps.Vehicles}
	stopHandler := &StopHandler{Stops: deps.Stops}
	routeHandler := &RouteHandler{
		Routes:   deps.Routes,
		Stops:    deps.Stops,
		Queue:    deps.Queue,
		Rerouter: deps.Rerouter,
		Hub:      deps.Hub,
	}
	simulationHandler := &SimulationHandler{
		Depots:   deps.Depots,
		Vehicles: deps.Vehicles,
		Stops:    deps.Stops,
		Routes:   deps.Routes,
	}

	router.GET("/health", Health)

	routes := router.Group("/routes")
	{
		// gin's routing tree rejects two different wildcard names at the
		// same path depth, so job_id and route_id both bind to :id here —
		// handlers read whichever name applies to their own endpoint.
		routes.POST("/optimize", routeHandler.Optimize)
		routes.GET("/:id/status", routeHandler.Status)
		routes.GET("/:id/stops", routeHandler.Stops)
		routes.GET("/:id/detail", routeHandler.Detail)
		routes.POST("/:id/reroute", routeHandler.Reroute)
		routes.GET("/ws/:id", routeHandler.WebSocket)
	}

	stops := router.Group("/stops")
	{
		stops.POST("", stopHandler.Create)
		stops.GET("", stopHandler.List)
		stops.GET("/:id", stopHandler.Get)
	}

	vehicles := router.Group("/vehicles")
	{
		vehicles.POST("", vehicleHandler.Create)
		vehicles.GET("", vehicleHandler.List)
		vehicles.GET("/:id", vehicleHandler.Get)
	}

	depots := router.Group("/depots")
	{
		depots.POST("", depotHandler.Create)
		depots.GET("", depotHandler.List)
		depots.GET("/:id", depotHandler.Get)
	}

	simulation := router.Group("/simulation")
	{
		simulation.POST("/start", simulationHandler.Start)
		simulation.POST("/inject-traffic", simulationHandler.InjectTraffic)
	}
}
