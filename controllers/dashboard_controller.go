package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/salonhq/salon_backend/models"
)

const dashboardCacheTTL = 5 * time.Minute

// DashboardController serves the salon dashboard counters and charts
type DashboardController struct {
	db    *mongo.Database
	cache *redis.Client
}

// NewDashboardController creates a new dashboard controller. The cache
// client may be nil, in which case summary responses are computed on every
// request.
func NewDashboardController(db *mongo.Database, cache *redis.Client) *DashboardController {
	return &DashboardController{db: db, cache: cache}
}

// dateFilter builds an optional month/year predicate on a date field.
func dateFilter(field string, month, year int) bson.M {
	if month > 0 && year > 0 {
		return bson.M{"$expr": bson.M{"$and": bson.A{
			bson.M{"$eq": bson.A{bson.M{"$month": "$" + field}, month}},
			bson.M{"$eq": bson.A{bson.M{"$year": "$" + field}, year}},
		}}}
	}
	if year > 0 {
		return bson.M{"$expr": bson.M{"$eq": bson.A{bson.M{"$year": "$" + field}, year}}}
	}
	return bson.M{}
}

func withSalon(salonID primitive.ObjectID, filter bson.M) bson.M {
	merged := bson.M{"salon_id": salonID}
	for key, value := range filter {
		merged[key] = value
	}
	return merged
}

// GetDashboard handles GET /api/dashboard
func (c *DashboardController) GetDashboard(ctx echo.Context) error {
	salonID, err := primitive.ObjectIDFromHex(ctx.QueryParam("salon_id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid or missing salon ID",
		})
	}
	month, _ := strconv.Atoi(ctx.QueryParam("month"))
	year, _ := strconv.Atoi(ctx.QueryParam("year"))

	dbCtx, cancel := context.WithTimeout(ctx.Request().Context(), 15*time.Second)
	defer cancel()

	data := models.DashboardData{
		UpcomingAppointments: []models.UpcomingAppointment{},
		TopServices:          []models.TopService{},
	}

	data.AppointmentCount, err = c.db.Collection("appointments").CountDocuments(dbCtx,
		withSalon(salonID, dateFilter("appointment_date", month, year)))
	if err != nil {
		return c.dashboardError(ctx, "appointment count", err)
	}

	data.CustomerCount, err = c.db.Collection("customers").CountDocuments(dbCtx,
		withSalon(salonID, dateFilter("createdAt", month, year)))
	if err != nil {
		return c.dashboardError(ctx, "customer count", err)
	}

	data.OrderCount, err = c.db.Collection("payments").CountDocuments(dbCtx,
		withSalon(salonID, dateFilter("payment_date", month, year)))
	if err != nil {
		return c.dashboardError(ctx, "order count", err)
	}

	data.ProductSales, err = c.sumPipeline(dbCtx, "appointments", mongo.Pipeline{
		{{Key: "$match", Value: withSalon(salonID, dateFilter("appointment_date", month, year))}},
		{{Key: "$unwind", Value: "$products"}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$products.total_price"}}}},
	})
	if err != nil {
		return c.dashboardError(ctx, "product sales", err)
	}

	data.TotalCommission, err = c.sumPipeline(dbCtx, "staffPayments", mongo.Pipeline{
		{{Key: "$match", Value: withSalon(salonID, dateFilter("paid_at", month, year))}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$total_paid"}}}},
	})
	if err != nil {
		return c.dashboardError(ctx, "total commission", err)
	}

	upcomingPipeline := mongo.Pipeline{
		{{Key: "$match", Value: withSalon(salonID, mergeFilters(
			bson.M{"status": models.AppointmentStatusUpcoming},
			dateFilter("appointment_date", month, year),
		))}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "customers",
			"localField":   "customer_id",
			"foreignField": "_id",
			"as":           "customer",
		}}},
		{{Key: "$unwind", Value: "$customer"}},
		{{Key: "$unwind", Value: "$services"}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "services",
			"localField":   "services.service_id",
			"foreignField": "_id",
			"as":           "service",
		}}},
		{{Key: "$unwind", Value: "$service"}},
		{{Key: "$project", Value: bson.M{
			"_id":              0,
			"customer_name":    "$customer.full_name",
			"customer_image":   "$customer.image",
			"appointment_date": 1,
			"appointment_time": 1,
			"service_name":     "$service.name",
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "appointment_date", Value: 1}, {Key: "appointment_time", Value: 1}}}},
		{{Key: "$limit", Value: 5}},
	}
	cursor, err := c.db.Collection("appointments").Aggregate(dbCtx, upcomingPipeline)
	if err != nil {
		return c.dashboardError(ctx, "upcoming appointments", err)
	}
	if err := cursor.All(dbCtx, &data.UpcomingAppointments); err != nil {
		return c.dashboardError(ctx, "upcoming appointments", err)
	}

	topServicesPipeline := mongo.Pipeline{
		{{Key: "$match", Value: withSalon(salonID, dateFilter("appointment_date", month, year))}},
		{{Key: "$unwind", Value: "$services"}},
		{{Key: "$group", Value: bson.M{
			"_id":         "$services.service_id",
			"count":       bson.M{"$sum": 1},
			"totalAmount": bson.M{"$sum": bson.M{"$ifNull": bson.A{"$services.service_amount", 0}}},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "services",
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "service",
		}}},
		{{Key: "$unwind", Value: "$service"}},
		{{Key: "$project", Value: bson.M{
			"_id":          0,
			"service_name": "$service.name",
			"count":        1,
			// Fall back to count * catalog price when lines carry no amount
			"totalAmount": bson.M{"$cond": bson.M{
				"if":   bson.M{"$eq": bson.A{"$totalAmount", 0}},
				"then": bson.M{"$multiply": bson.A{"$count", bson.M{"$ifNull": bson.A{"$service.regular_price", 0}}}},
				"else": "$totalAmount",
			}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
		{{Key: "$limit", Value: 5}},
	}
	cursor, err = c.db.Collection("appointments").Aggregate(dbCtx, topServicesPipeline)
	if err != nil {
		return c.dashboardError(ctx, "top services", err)
	}
	if err := cursor.All(dbCtx, &data.TopServices); err != nil {
		return c.dashboardError(ctx, "top services", err)
	}

	return ctx.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Dashboard data fetched successfully",
		Data:    data,
	})
}

// GetDashboardSummary handles GET /api/dashboard/summary: per-day sales and
// appointment counts over a date range, default the last 7 days. Responses
// are cached in Redis for a short interval.
func (c *DashboardController) GetDashboardSummary(ctx echo.Context) error {
	salonID, err := primitive.ObjectIDFromHex(ctx.QueryParam("salon_id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid or missing salon ID",
		})
	}

	end := time.Now()
	start := end.AddDate(0, 0, -7)
	if startParam := ctx.QueryParam("startDate"); startParam != "" {
		if parsed, err := time.Parse("2006-01-02", startParam); err == nil {
			start = parsed
		}
	}
	if endParam := ctx.QueryParam("endDate"); endParam != "" {
		if parsed, err := time.Parse("2006-01-02", endParam); err == nil {
			end = parsed
		}
	}

	cacheKey := fmt.Sprintf("dashboard:summary:%s:%s:%s",
		salonID.Hex(), start.Format("2006-01-02"), end.Format("2006-01-02"))
	if c.cache != nil {
		if cached, err := c.cache.Get(ctx.Request().Context(), cacheKey).Result(); err == nil {
			var summary models.DashboardSummary
			if err := json.Unmarshal([]byte(cached), &summary); err == nil {
				return ctx.JSON(http.StatusOK, models.Response{
					Status:  http.StatusOK,
					Message: "Dashboard summary fetched successfully",
					Data:    summary,
				})
			}
		}
	}

	dbCtx, cancel := context.WithTimeout(ctx.Request().Context(), 15*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"salon_id":  salonID,
			"createdAt": bson.M{"$gte": start, "$lte": end},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":          bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$createdAt"}},
			"sales":        bson.M{"$sum": "$total_payment"},
			"appointments": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
	cursor, err := c.db.Collection("appointments").Aggregate(dbCtx, pipeline)
	if err != nil {
		return c.dashboardError(ctx, "dashboard summary", err)
	}
	var points []models.DashboardPoint
	if err := cursor.All(dbCtx, &points); err != nil {
		return c.dashboardError(ctx, "dashboard summary", err)
	}
	if points == nil {
		points = []models.DashboardPoint{}
	}

	summary := models.DashboardSummary{LineChart: points, BarChart: points}

	if c.cache != nil {
		if encoded, err := json.Marshal(summary); err == nil {
			if err := c.cache.Set(ctx.Request().Context(), cacheKey, encoded, dashboardCacheTTL).Err(); err != nil {
				log.Printf("Failed to cache dashboard summary: %v", err)
			}
		}
	}

	return ctx.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Dashboard summary fetched successfully",
		Data:    summary,
	})
}

func (c *DashboardController) sumPipeline(ctx context.Context, collection string, pipeline mongo.Pipeline) (float64, error) {
	cursor, err := c.db.Collection(collection).Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

func (c *DashboardController) dashboardError(ctx echo.Context, what string, err error) error {
	log.Printf("Error fetching dashboard data (%s): %v", what, err)
	return ctx.JSON(http.StatusInternalServerError, models.Response{
		Status:  http.StatusInternalServerError,
		Message: "Error fetching dashboard data",
	})
}

func mergeFilters(filters ...bson.M) bson.M {
	merged := bson.M{}
	for _, filter := range filters {
		for key, value := range filter {
			merged[key] = value
		}
	}
	return merged
}
