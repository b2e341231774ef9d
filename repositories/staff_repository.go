package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/salonhq/salon_backend/models"
)

type StaffRepository struct {
	collection *mongo.Collection
}

func NewStaffRepository(db *mongo.Database) *StaffRepository {
	return &StaffRepository{collection: db.Collection("staffs")}
}

func (r *StaffRepository) FindBySalon(ctx context.Context, salonID primitive.ObjectID) ([]models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{"salon_id": salonID})
	if err != nil {
		return nil, err
	}
	var staff []models.Staff
	if err := cursor.All(ctx, &staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *StaffRepository) FindByIDAndSalon(ctx context.Context, staffID, salonID primitive.ObjectID) (*models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var staff models.Staff
	err := r.collection.FindOne(ctx, bson.M{"_id": staffID, "salon_id": salonID}).Decode(&staff)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &staff, nil
}
