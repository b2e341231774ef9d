package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Commission schedule types
const (
	CommissionTypeFixed      = "Fixed"
	CommissionTypePercentage = "Percentage"
)

// CommissionTier is one named entry of a branch commission schedule. Under
// a Fixed schedule Amount is a flat payout; under Percentage it is a rate
// applied to the staff member's service revenue.
type CommissionTier struct {
	ID     primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name   string             `json:"name,omitempty" bson:"name,omitempty"`
	Amount float64            `json:"amount" bson:"amount"`
}

// RevenueCommission is the commission schedule of a branch. Each staff
// member references at most one tier via assigned_commission_id.
type RevenueCommission struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	BranchID       primitive.ObjectID `json:"branchId" bson:"branch_id"`
	CommissionType string             `json:"commissionType" bson:"commission_type"`
	Commission     []CommissionTier   `json:"commission" bson:"commission"`
}
