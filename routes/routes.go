package routes

import (
	"net/http"
	"time"

	"docport/config"
	"docport/handlers"
	"docport/middleware"
	"docport/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers the public slot-availability endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/appointmentOption", hb.GetAppointmentOptionsHandler)
	r.GET("/appointmentSpecialty", hb.GetSpecialtiesHandler)
}

// RegisterBookingRoutes registers booking endpoints. Listing a patient's
// bookings requires authentication; creation and single lookup do not.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/bookings", hb.CreateBookingHandler)
	r.GET("/bookings/:id", hb.GetBookingByIDHandler)
	r.GET("/bookings", middleware.JWTAuthMiddleware(), hb.GetBookingsHandler)
}

// RegisterUserRoutes registers user account and token endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/users", hb.RegisterUserHandler)
	r.GET("/users", hb.ListUsersHandler)
	r.GET("/users/admin/:email", hb.CheckAdminHandler)
	r.GET("/jwt", hb.IssueTokenHandler)

	r.PUT("/users/admin/:id",
		middleware.JWTAuthMiddleware(),
		middleware.AdminOnlyMiddleware(hb.UserRepo, config.AppConfig.AdminStrictRole),
		hb.PromoteAdminHandler,
	)
}

// RegisterCatalogRoutes registers admin-only catalog management endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	admin := r.Group("")
	admin.Use(
		middleware.JWTAuthMiddleware(),
		middleware.AdminOnlyMiddleware(hb.UserRepo, config.AppConfig.AdminStrictRole),
	)
	admin.POST("/appointmentOption", hb.CreateTreatmentHandler)
	admin.PUT("/appointmentOption/price", hb.UpdatePricesHandler)
	admin.GET("/doctors", hb.GetDoctorsHandler)
	admin.POST("/doctors", hb.AddDoctorHandler)
	admin.DELETE("/doctors/:id", hb.RemoveDoctorHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "checks": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAvailabilityRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterHealthRoute(r)
}
