package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/salonhq/salon_backend/models"
)

type PaymentRepository struct {
	collection *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{collection: db.Collection("payments")}
}

func (r *PaymentRepository) FindByAppointmentIDs(ctx context.Context, appointmentIDs []primitive.ObjectID) ([]models.Payment, error) {
	if len(appointmentIDs) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{"appointment_id": bson.M{"$in": appointmentIDs}})
	if err != nil {
		return nil, err
	}
	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
