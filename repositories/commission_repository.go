package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/salonhq/salon_backend/models"
)

type CommissionRepository struct {
	collection *mongo.Collection
}

func NewCommissionRepository(db *mongo.Database) *CommissionRepository {
	return &CommissionRepository{collection: db.Collection("revenueCommissions")}
}

// FindByBranch returns the branch's commission schedule, or nil when the
// branch has none configured.
func (r *CommissionRepository) FindByBranch(ctx context.Context, branchID primitive.ObjectID) (*models.RevenueCommission, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var schedule models.RevenueCommission
	err := r.collection.FindOne(ctx, bson.M{"branch_id": branchID}).Decode(&schedule)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}
