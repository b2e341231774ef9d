package main

import (
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/salonhq/salon_backend/config"
	"github.com/salonhq/salon_backend/controllers"
	"github.com/salonhq/salon_backend/middleware"
	"github.com/salonhq/salon_backend/repositories"
	"github.com/salonhq/salon_backend/routes"
	"github.com/salonhq/salon_backend/services"
)

// CustomValidator is a custom validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates the request body
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found")
	}

	// Connect to Redis (optional, dashboard caching only)
	redisClient := config.ConnectRedis()

	// Connect to database
	client := config.ConnectDB()
	salonDB := config.GetDatabase(client)

	// Create a new Echo instance
	e := echo.New()

	// Initialize custom validator
	customValidator := &CustomValidator{validator: validator.New()}
	e.Validator = customValidator

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter()

	// Middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.Secure())
	e.Use(rateLimiter.RateLimit())

	e.Match([]string{"GET", "HEAD"}, "/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status":  "OK",
			"message": "Salon Backend is running",
			"version": "1.0",
		})
	})

	e.Match([]string{"GET", "HEAD"}, "/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status":   "healthy",
			"database": "connected",
		})
	})

	// Initialize repositories
	staffRepo := repositories.NewStaffRepository(salonDB)
	appointmentRepo := repositories.NewAppointmentRepository(salonDB)
	paymentRepo := repositories.NewPaymentRepository(salonDB)
	commissionRepo := repositories.NewCommissionRepository(salonDB)
	earningRepo := repositories.NewEarningRepository(salonDB)
	payoutRepo := repositories.NewPayoutRepository(salonDB)

	// Initialize the earnings engine
	earningsService := services.NewEarningsService(staffRepo, appointmentRepo, paymentRepo, commissionRepo, earningRepo, payoutRepo)

	// Initialize controllers
	earningController := controllers.NewStaffEarningController(earningsService)
	paymentController := controllers.NewStaffPaymentController(salonDB)
	dashboardController := controllers.NewDashboardController(salonDB, redisClient)
	detailsController := controllers.NewStaffDetailsController(salonDB)

	// Register routes
	routes.RegisterSalonRoutes(e, earningController, paymentController, dashboardController, detailsController)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}
