package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saan-system/services/routing/internal/domain"
)

// respondError is the single place HTTP status codes get decided from
// domain errors: not-found sentinels map to 404, validation sentinels map
// to 400, everything else is a 500. Handlers never duplicate this switch.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrDepotNotFound),
		errors.Is(err, domain.ErrVehicleNotFound),
		errors.Is(err, domain.ErrStopNotFound),
		errors.Is(err, domain.ErrRouteNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrDepotInvalidName),
		errors.Is(err, domain.ErrDepotInvalidWindow),
		errors.Is(err, domain.ErrVehicleInvalidCapacity),
		errors.Is(err, domain.ErrStopInvalidWeight),
		errors.Is(err, domain.ErrStopInvalidWindow),
		errors.Is(err, domain.ErrRouteInvalidDistance),
		errors.Is(err, domain.ErrRouteInvalidTime),
		errors.Is(err, domain.ErrInvalidTimeString):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
