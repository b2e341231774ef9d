// routes/salon_routes.go
package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/salonhq/salon_backend/controllers"
)

// RegisterSalonRoutes wires the back-office API endpoints
func RegisterSalonRoutes(e *echo.Echo, earningController *controllers.StaffEarningController, paymentController *controllers.StaffPaymentController, dashboardController *controllers.DashboardController, detailsController *controllers.StaffDetailsController) {
	api := e.Group("/api")

	// Staff earnings & settlement
	earningGroup := api.Group("/staff-earnings")
	earningGroup.GET("", earningController.GetStaffEarnings)
	earningGroup.GET("/:id", earningController.GetStaffEarningDetail)
	earningGroup.POST("/pay/:id", earningController.PayStaff)
	earningGroup.DELETE("/:id", earningController.DeleteStaffEarning)

	// Payout ledger and roster
	api.GET("/staff-payments", paymentController.GetStaffPayments)
	api.GET("/staff-details", detailsController.GetStaffDetails)

	// Dashboard
	api.GET("/dashboard", dashboardController.GetDashboard)
	api.GET("/dashboard/summary", dashboardController.GetDashboardSummary)
}
