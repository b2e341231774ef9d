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

type EarningRepository struct {
	collection *mongo.Collection
}

func NewEarningRepository(db *mongo.Database) *EarningRepository {
	return &EarningRepository{collection: db.Collection("staffEarnings")}
}

// Upsert replaces the balance document keyed by staff_id, creating it when
// absent. Every numeric field is overwritten; nothing accumulates onto the
// stored value.
func (r *EarningRepository) Upsert(ctx context.Context, earning models.StaffEarning) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.collection.UpdateOne(ctx,
		bson.M{"staff_id": earning.StaffID},
		bson.M{"$set": bson.M{
			"staff_id":           earning.StaffID,
			"salon_id":           earning.SalonID,
			"total_booking":      earning.TotalBooking,
			"service_amount":     earning.ServiceAmount,
			"commission_earning": earning.CommissionEarning,
			"tip_earning":        earning.TipEarning,
			"staff_earning":      earning.StaffEarning,
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *EarningRepository) FindByStaff(ctx context.Context, staffID primitive.ObjectID) (*models.StaffEarning, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var earning models.StaffEarning
	err := r.collection.FindOne(ctx, bson.M{"staff_id": staffID}).Decode(&earning)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &earning, nil
}

// ResetAfterPayout zeroes the earning fields and records what was paid and
// how. The balance document survives settlement; it is reset, not deleted.
func (r *EarningRepository) ResetAfterPayout(ctx context.Context, staffID, salonID primitive.ObjectID, paidAmount float64, paymentMethod string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.collection.UpdateOne(ctx,
		bson.M{"staff_id": staffID},
		bson.M{"$set": bson.M{
			"salon_id":           salonID,
			"paid_amount":        paidAmount,
			"payment_method":     paymentMethod,
			"staff_earning":      0,
			"commission_earning": 0,
			"tip_earning":        0,
			"total_booking":      0,
		}},
	)
	return err
}

func (r *EarningRepository) SetTotalBooking(ctx context.Context, staffID primitive.ObjectID, totalBooking int) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.collection.UpdateOne(ctx,
		bson.M{"staff_id": staffID},
		bson.M{"$set": bson.M{"total_booking": totalBooking}},
	)
	return err
}

func (r *EarningRepository) DeleteByStaff(ctx context.Context, staffID, salonID primitive.ObjectID) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"staff_id": staffID, "salon_id": salonID})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
