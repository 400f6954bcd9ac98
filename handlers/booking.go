package handlers

import (
	"errors"
	"net/http"

	"docport/middleware"
	"docport/models"
	"docport/services/booking"
	"docport/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves booking creation and lookups.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBookingHandler handles POST /bookings. A duplicate
// (email, date, treatment) candidate is answered with
// {acknowledge:false, message} and nothing is written.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var candidate models.Booking
	if err := c.ShouldBindJSON(&candidate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking payload", "details": err.Error()})
		return
	}
	if candidate.Email == "" || candidate.AppointmentDate == "" || candidate.Treatment == "" || candidate.Slot == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email, appointmentDate, treatment and slot are required"})
		return
	}

	created, err := h.Service.CreateBooking(candidate)
	if err != nil {
		var conflict booking.ConflictError
		if errors.As(err, &conflict) {
			c.JSON(http.StatusOK, gin.H{"acknowledge": false, "message": conflict.Error()})
			return
		}
		respondServiceError(c, "failed to create booking", err)
		return
	}
	c.JSON(http.StatusOK, created)
}

// GetBookingsHandler handles GET /bookings?email=. The query is self-scoped:
// the email must match the verified token identity.
func (h *BookingHandler) GetBookingsHandler(c *gin.Context) {
	email := c.Query("email")

	callerEmail, ok := middleware.CallerEmail(c)
	if !ok || email != callerEmail {
		utils.GetLogger().Warn("Booking list identity mismatch",
			zap.String("query", email), zap.String("caller", callerEmail))
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	bookings, err := h.Service.GetByEmail(email)
	if err != nil {
		respondServiceError(c, "failed to fetch bookings", err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingByIDHandler handles GET /bookings/:id. An absent booking is
// answered with a JSON null body rather than a 404.
func (h *BookingHandler) GetBookingByIDHandler(c *gin.Context) {
	id := c.Param("id")

	bk, err := h.Service.GetByID(id)
	if err != nil {
		respondServiceError(c, "failed to fetch booking", err)
		return
	}
	c.JSON(http.StatusOK, bk)
}
