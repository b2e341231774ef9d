package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/salonhq/salon_backend/models"
)

type AppointmentRepository struct {
	collection *mongo.Collection
}

func NewAppointmentRepository(db *mongo.Database) *AppointmentRepository {
	return &AppointmentRepository{collection: db.Collection("appointments")}
}

// FindCheckedOutByStaff returns the salon's checked-out appointments that
// carry at least one service line for the staff member. With unpaidOnly set
// the line must additionally not be marked paid; an absent paid field
// counts as unpaid.
func (r *AppointmentRepository) FindCheckedOutByStaff(ctx context.Context, salonID, staffID primitive.ObjectID, unpaidOnly bool) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"status":   models.AppointmentStatusCheckOut,
		"salon_id": salonID,
	}
	if unpaidOnly {
		filter["services"] = bson.M{"$elemMatch": bson.M{
			"staff_id": staffID,
			"$or": []bson.M{
				{"paid": false},
				{"paid": bson.M{"$exists": false}},
			},
		}}
	} else {
		filter["services.staff_id"] = staffID
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

// MarkServicesPaid flags every service line belonging to the staff member
// across checked-out appointments as paid, using an array filter so only
// their lines inside each document are touched.
func (r *AppointmentRepository) MarkServicesPaid(ctx context.Context, staffID primitive.ObjectID) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	result, err := r.collection.UpdateMany(ctx,
		bson.M{
			"status":            models.AppointmentStatusCheckOut,
			"services.staff_id": staffID,
		},
		bson.M{"$set": bson.M{"services.$[elem].paid": true}},
		options.Update().SetArrayFilters(options.ArrayFilters{
			Filters: []interface{}{bson.M{"elem.staff_id": staffID}},
		}),
	)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}
