package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Staff model
type Staff struct {
	ID                   primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	SalonID              primitive.ObjectID   `json:"salonId" bson:"salon_id"`
	BranchID             primitive.ObjectID   `json:"branchId,omitempty" bson:"branch_id,omitempty"`
	FullName             string               `json:"fullName" bson:"full_name"`
	Email                string               `json:"email,omitempty" bson:"email,omitempty"`
	PhoneNumber          string               `json:"phoneNumber,omitempty" bson:"phone_number,omitempty"`
	Image                string               `json:"image,omitempty" bson:"image,omitempty"`
	Salary               float64              `json:"salary,omitempty" bson:"salary,omitempty"`
	ServiceIDs           []primitive.ObjectID `json:"serviceIds,omitempty" bson:"service_id,omitempty"`
	AssignedCommissionID primitive.ObjectID   `json:"assignedCommissionId,omitempty" bson:"assigned_commission_id,omitempty"`
	CreatedAt            time.Time            `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt            time.Time            `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
