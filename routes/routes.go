package routes

import (
	"MerakiHMS/cache"
	"MerakiHMS/config"
	"MerakiHMS/controllers"
	"MerakiHMS/handlers"
	"MerakiHMS/middlewares"
	"MerakiHMS/repositories"
	"MerakiHMS/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cacheInstance *cache.Cache, config *config.AppConfig, db *gorm.DB) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.Default()

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   []string{"http://localhost:3000", "https://admin.merakihms.com", "https://doctor.merakihms.com"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15,
		Burst:             30,
	}))

	// Apply logging middleware
	router.Use(middlewares.LoggingMiddleware())

	// Initialize repositories, services, and handlers
	appointmentRepo := repositories.NewAppointmentRepository(cacheInstance)
	recordRepo := repositories.NewRecordRepository(cacheInstance)
	doctorRepo := repositories.NewDoctorRepository(cacheInstance)
	patientRepo := repositories.NewPatientRepository(cacheInstance)
	userRepo := repositories.NewUserRepository(db, cacheInstance)

	appointmentService := services.NewAppointmentService(appointmentRepo, patientRepo)
	recordService := services.NewRecordService(recordRepo)
	prescriptionService := services.NewPrescriptionService(recordRepo, appointmentRepo)
	doctorService := services.NewDoctorService(doctorRepo)
	userService := services.NewUserService(userRepo)

	contextStore := cache.NewPrescriptionContextStore(cacheInstance)

	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	recordHandler := handlers.NewRecordHandler(recordService)
	prescriptionHandler := handlers.NewPrescriptionHandler(prescriptionService, contextStore)
	doctorHandler := handlers.NewDoctorHandler(doctorService)
	patientHandler := handlers.NewPatientHandler(patientRepo)
	authHandler := handlers.NewAuthHandler(userService, contextStore)

	// Register routes
	controllers.SetupDoctorRoutes(router, appointmentHandler, doctorHandler, prescriptionHandler)
	controllers.SetupRecordRoutes(router, recordHandler)
	controllers.SetupAdminRoutes(router, appointmentHandler, doctorHandler, patientHandler)

	authController := controllers.NewAuthController(authHandler)
	authController.RegisterRoutes(router)

	controllers.SetupRootRoute(router)

	return router
}
