package handlers

import (
	"net/http"

	"docport/services/availability"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler serves slot-availability queries.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

// NewAvailabilityHandler creates a new AvailabilityHandler.
func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// GetAppointmentOptionsHandler handles GET /appointmentOption?date=.
// It returns the catalog with each option's slots reduced to those still
// open on the requested date. A date with no bookings returns full capacity.
func (h *AvailabilityHandler) GetAppointmentOptionsHandler(c *gin.Context) {
	date := c.Query("date")

	options, err := h.Service.ComputeAvailability(date)
	if err != nil {
		respondServiceError(c, "failed to compute availability", err)
		return
	}
	c.JSON(http.StatusOK, options)
}
