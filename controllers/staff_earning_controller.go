package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/salonhq/salon_backend/models"
	"github.com/salonhq/salon_backend/services"
)

// StaffEarningController handles staff earnings and settlement endpoints
type StaffEarningController struct {
	service *services.EarningsService
}

// NewStaffEarningController creates a new staff earning controller
func NewStaffEarningController(service *services.EarningsService) *StaffEarningController {
	return &StaffEarningController{service: service}
}

// GetStaffEarnings handles GET /api/staff-earnings. Batch mode: computes
// and upserts the balance of every staff member in the salon.
func (c *StaffEarningController) GetStaffEarnings(ctx echo.Context) error {
	salonID, err := primitive.ObjectIDFromHex(ctx.QueryParam("salon_id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid or missing salon ID",
		})
	}

	earnings, err := c.service.GetStaffEarningsSummary(ctx.Request().Context(), salonID)
	if err != nil {
		return respondServiceError(ctx, err, "Error saving staff earnings")
	}

	return ctx.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Staff earnings fetched successfully",
		Data:    earnings,
	})
}

// GetStaffEarningDetail handles GET /api/staff-earnings/:id. Pending-detail
// mode: unpaid work only, no balance write.
func (c *StaffEarningController) GetStaffEarningDetail(ctx echo.Context) error {
	staffID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid or missing staff ID",
		})
	}
	salonID, err := primitive.ObjectIDFromHex(ctx.QueryParam("salon_id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid or missing salon ID",
		})
	}

	detail, err := c.service.GetStaffEarningsDetail(ctx.Request().Context(), staffID, salonID)
	if err != nil {
		return respondServiceError(ctx, err, "Error calculating earnings")
	}

	return ctx.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Staff earnings calculated successfully",
		Data:    detail,
	})
}

// PayStaff handles POST /api/staff-earnings/pay/:id
func (c *StaffEarningController) PayStaff(ctx echo.Context) error {
	staffID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid or missing staff ID",
		})
	}

	var request models.SettleRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request",
		})
	}
	if err := ctx.Validate(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Salon ID and payment method are required",
		})
	}

	salonID, err := primitive.ObjectIDFromHex(request.SalonID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid salon ID",
		})
	}

	payout, err := c.service.Settle(ctx.Request().Context(), staffID, salonID, request.PaymentMethod, request.Description)
	if err != nil {
		return respondServiceError(ctx, err, "Error processing payment")
	}

	return ctx.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Payment processed successfully",
		Data:    payout,
	})
}

// DeleteStaffEarning handles DELETE /api/staff-earnings/:id
func (c *StaffEarningController) DeleteStaffEarning(ctx echo.Context) error {
	staffID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid or missing staff ID",
		})
	}
	salonID, err := primitive.ObjectIDFromHex(ctx.QueryParam("salon_id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid or missing salon ID",
		})
	}

	if err := c.service.DeleteEarningsBalance(ctx.Request().Context(), staffID, salonID); err != nil {
		return respondServiceError(ctx, err, "Error deleting staff earning")
	}

	return ctx.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Staff earning deleted successfully",
	})
}

// respondServiceError maps engine error kinds onto HTTP statuses.
func respondServiceError(ctx echo.Context, err error, fallback string) error {
	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		switch svcErr.Kind {
		case services.KindInvalidArgument:
			return ctx.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: svcErr.Message,
			})
		case services.KindNotFound:
			return ctx.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: svcErr.Message,
			})
		}
	}
	log.Printf("%s: %v", fallback, err)
	return ctx.JSON(http.StatusInternalServerError, models.Response{
		Status:  http.StatusInternalServerError,
		Message: fallback,
	})
}
