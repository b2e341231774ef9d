package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer model
type Customer struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	SalonID   primitive.ObjectID `json:"salonId" bson:"salon_id"`
	FullName  string             `json:"fullName" bson:"full_name"`
	Image     string             `json:"image,omitempty" bson:"image,omitempty"`
	CreatedAt time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

// Salon model
type Salon struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	CreatedAt time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

// Service is a catalog entry, not to be confused with a ServiceLine inside
// an appointment.
type Service struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	SalonID      primitive.ObjectID `json:"salonId" bson:"salon_id"`
	Name         string             `json:"name" bson:"name"`
	RegularPrice float64            `json:"regularPrice,omitempty" bson:"regular_price,omitempty"`
}
