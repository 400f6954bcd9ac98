// File: docport/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"docport/config"
	"docport/database"
	bookingRepoPkg "docport/database/repository/booking"
	doctorRepoPkg "docport/database/repository/doctor"
	treatmentRepoPkg "docport/database/repository/treatment"
	userRepoPkg "docport/database/repository/user"
	"docport/handlers"
	"docport/middleware"
	"docport/routes"
	"docport/services/availability"
	"docport/services/booking"
	"docport/services/catalog"
	"docport/services/user"
	"docport/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	treatmentRepo := treatmentRepoPkg.NewMongoTreatmentRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	doctorRepo := doctorRepoPkg.NewMongoDoctorRepo()

	// services.
	availabilityService := &availability.DefaultAvailabilityService{
		Treatments: treatmentRepo,
		Bookings:   bookingRepo,
		Cache:      utils.GetCacheClient(),
		CacheTTL:   config.AppConfig.AvailabilityCacheTTL,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:         bookingRepo,
		Availability: availabilityService,
	}
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	catalogService := &catalog.DefaultCatalogService{
		Treatments:   treatmentRepo,
		Doctors:      doctorRepo,
		Availability: availabilityService,
	}

	// handlers.
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	userHandler := handlers.NewUserHandler(userService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		GetAppointmentOptionsHandler: availabilityHandler.GetAppointmentOptionsHandler,
		GetSpecialtiesHandler:        catalogHandler.GetSpecialtiesHandler,

		CreateBookingHandler:  bookingHandler.CreateBookingHandler,
		GetBookingsHandler:    bookingHandler.GetBookingsHandler,
		GetBookingByIDHandler: bookingHandler.GetBookingByIDHandler,

		RegisterUserHandler: userHandler.RegisterUserHandler,
		ListUsersHandler:    userHandler.ListUsersHandler,
		CheckAdminHandler:   userHandler.CheckAdminHandler,
		PromoteAdminHandler: userHandler.PromoteAdminHandler,
		IssueTokenHandler:   userHandler.IssueTokenHandler,

		CreateTreatmentHandler: catalogHandler.CreateTreatmentHandler,
		UpdatePricesHandler:    catalogHandler.UpdatePricesHandler,
		GetDoctorsHandler:      catalogHandler.GetDoctorsHandler,
		AddDoctorHandler:       catalogHandler.AddDoctorHandler,
		RemoveDoctorHandler:    catalogHandler.RemoveDoctorHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Periodic dependency health snapshots for /health.
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
