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

// StaffDetailsController serves the staff roster join
type StaffDetailsController struct {
	db *mongo.Database
}

// NewStaffDetailsController creates a new staff details controller
func NewStaffDetailsController(db *mongo.Database) *StaffDetailsController {
	return &StaffDetailsController{db: db}
}

// GetStaffDetails handles GET /api/staff-details: the salon roster joined
// with offered services, the current earnings projection and past payouts.
func (c *StaffDetailsController) GetStaffDetails(ctx echo.Context) error {
	salonID, err := primitive.ObjectIDFromHex(ctx.QueryParam("salon_id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid or missing salon ID",
		})
	}

	dbCtx, cancel := context.WithTimeout(ctx.Request().Context(), 15*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"salon_id": salonID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "services",
			"localField":   "service_id",
			"foreignField": "_id",
			"as":           "services_provided",
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "staffEarnings",
			"localField":   "_id",
			"foreignField": "staff_id",
			"as":           "earnings",
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "staffPayments",
			"localField":   "_id",
			"foreignField": "staff_id",
			"as":           "payouts",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"earning": bson.M{"$arrayElemAt": bson.A{"$earnings", 0}},
		}}},
		{{Key: "$addFields", Value: bson.M{
			"commission_earn": bson.M{"$ifNull": bson.A{"$earning.commission_earning", 0}},
			"tips_earn":       bson.M{"$ifNull": bson.A{"$earning.tip_earning", 0}},
			"services":        bson.M{"$size": bson.M{"$ifNull": bson.A{"$services_provided", bson.A{}}}},
		}}},
		{{Key: "$addFields", Value: bson.M{
			"total_earning": bson.M{"$add": bson.A{
				bson.M{"$ifNull": bson.A{"$salary", 0}},
				"$tips_earn",
				"$commission_earn",
			}},
		}}},
		{{Key: "$project", Value: bson.M{
			"staff_id":        "$_id",
			"staff_name":      "$full_name",
			"staff_image":     "$image",
			"staff_email":     "$email",
			"services":        1,
			"total_amount":    "$salary",
			"commission_earn": 1,
			"tips_earn":       1,
			"total_earning":   1,
		}}},
	}

	cursor, err := c.db.Collection("staffs").Aggregate(dbCtx, pipeline)
	if err != nil {
		log.Printf("Error fetching staff details: %v", err)
		return ctx.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Server error",
		})
	}
	var details []models.StaffDetails
	if err := cursor.All(dbCtx, &details); err != nil {
		log.Printf("Error decoding staff details: %v", err)
		return ctx.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Server error",
		})
	}
	if details == nil {
		details = []models.StaffDetails{}
	}

	return ctx.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Staff details fetched successfully",
		Data:    details,
	})
}
