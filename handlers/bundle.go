// File: docport/handlers/bundle.go
package handlers

import (
	userRepoPkg "docport/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// UserRepo backs the admin guard's role resolution.
	UserRepo userRepoPkg.UserRepository

	// Availability endpoints.
	GetAppointmentOptionsHandler gin.HandlerFunc
	GetSpecialtiesHandler        gin.HandlerFunc

	// Booking endpoints.
	CreateBookingHandler  gin.HandlerFunc
	GetBookingsHandler    gin.HandlerFunc
	GetBookingByIDHandler gin.HandlerFunc

	// User endpoints.
	RegisterUserHandler gin.HandlerFunc
	ListUsersHandler    gin.HandlerFunc
	CheckAdminHandler   gin.HandlerFunc
	PromoteAdminHandler gin.HandlerFunc
	IssueTokenHandler   gin.HandlerFunc

	// Catalog endpoints (admin).
	CreateTreatmentHandler gin.HandlerFunc
	UpdatePricesHandler    gin.HandlerFunc
	GetDoctorsHandler      gin.HandlerFunc
	AddDoctorHandler       gin.HandlerFunc
	RemoveDoctorHandler    gin.HandlerFunc
}
