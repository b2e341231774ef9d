package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/salonhq/salon_backend/models"
)

type PayoutRepository struct {
	collection *mongo.Collection
}

func NewPayoutRepository(db *mongo.Database) *PayoutRepository {
	return &PayoutRepository{collection: db.Collection("staffPayments")}
}

// Insert appends a payout record. The collection is append-only; records
// are never updated once written.
func (r *PayoutRepository) Insert(ctx context.Context, payout models.StaffPayment) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, payout)
	return err
}

func (r *PayoutRepository) FindBySalon(ctx context.Context, salonID primitive.ObjectID) ([]models.StaffPayment, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{"salon_id": salonID})
	if err != nil {
		return nil, err
	}
	var payouts []models.StaffPayment
	if err := cursor.All(ctx, &payouts); err != nil {
		return nil, err
	}
	return payouts, nil
}
