package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/salonhq/salon_backend/models"
)

// StaffPaymentController serves the payout ledger
type StaffPaymentController struct {
	db *mongo.Database
}

// NewStaffPaymentController creates a new staff payment controller
func NewStaffPaymentController(db *mongo.Database) *StaffPaymentController {
	return &StaffPaymentController{db: db}
}

// GetStaffPayments handles GET /api/staff-payments, joining each payout
// with the staff member it was issued to. Read-only: listing payouts never
// mutates the earnings balances.
func (c *StaffPaymentController) GetStaffPayments(ctx echo.Context) error {
	salonID, err := primitive.ObjectIDFromHex(ctx.QueryParam("salon_id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid or missing salon ID",
		})
	}

	dbCtx, cancel := context.WithTimeout(ctx.Request().Context(), 10*time.Second)
	defer cancel()

	var salon models.Salon
	err = c.db.Collection("salons").FindOne(dbCtx, bson.M{"_id": salonID}).Decode(&salon)
	if err == mongo.ErrNoDocuments {
		return ctx.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Salon not found",
		})
	}
	if err != nil {
		log.Printf("Failed to load salon %s: %v", salonID.Hex(), err)
		return ctx.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch payments",
		})
	}

	cursor, err := c.db.Collection("staffPayments").Find(dbCtx, bson.M{"salon_id": salonID})
	if err != nil {
		log.Printf("Failed to load staff payments for salon %s: %v", salonID.Hex(), err)
		return ctx.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch payments",
		})
	}
	var payouts []models.StaffPayment
	if err := cursor.All(dbCtx, &payouts); err != nil {
		log.Printf("Failed to decode staff payments: %v", err)
		return ctx.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch payments",
		})
	}

	staffIDs := make([]primitive.ObjectID, 0, len(payouts))
	seen := make(map[primitive.ObjectID]struct{})
	for _, payout := range payouts {
		if _, ok := seen[payout.StaffID]; !ok {
			seen[payout.StaffID] = struct{}{}
			staffIDs = append(staffIDs, payout.StaffID)
		}
	}

	staffByID := make(map[primitive.ObjectID]models.Staff)
	if len(staffIDs) > 0 {
		staffCursor, err := c.db.Collection("staffs").Find(dbCtx, bson.M{"_id": bson.M{"$in": staffIDs}})
		if err != nil {
			log.Printf("Failed to load staff for payments: %v", err)
			return ctx.JSON(http.StatusInternalServerError, models.Response{
				Status:  http.StatusInternalServerError,
				Message: "Failed to fetch payments",
			})
		}
		var staffList []models.Staff
		if err := staffCursor.All(dbCtx, &staffList); err != nil {
			log.Printf("Failed to decode staff for payments: %v", err)
			return ctx.JSON(http.StatusInternalServerError, models.Response{
				Status:  http.StatusInternalServerError,
				Message: "Failed to fetch payments",
			})
		}
		for _, staff := range staffList {
			staffByID[staff.ID] = staff
		}
	}

	entries := make([]models.StaffPaymentEntry, 0, len(payouts))
	for _, payout := range payouts {
		staff, ok := staffByID[payout.StaffID]
		if !ok {
			continue
		}
		if payout.TotalPaid <= 0 {
			continue
		}
		entries = append(entries, models.StaffPaymentEntry{
			PaymentDate:      payout.PaidAt,
			Staff:            staffPaymentInfo(staff),
			CommissionAmount: payout.CommissionAmount,
			Tips:             payout.Tips,
			PaymentType:      payout.PaymentMethod,
			TotalPay:         payout.TotalPaid,
			StaffID:          payout.StaffID.Hex(),
		})
	}

	return ctx.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Payments fetched successfully",
		Data:    entries,
	})
}

func staffPaymentInfo(staff models.Staff) models.StaffPaymentInfo {
	info := models.StaffPaymentInfo{
		Name:  staff.FullName,
		Email: staff.Email,
		Phone: staff.PhoneNumber,
		Image: staff.Image,
	}
	if info.Name == "" {
		info.Name = "N/A"
	}
	if info.Email == "" {
		info.Email = "N/A"
	}
	if info.Phone == "" {
		info.Phone = "N/A"
	}
	return info
}
