package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment model. One per appointment, written by the checkout flow. Tips is
// the pooled gratuity for the whole appointment, not attributed to any one
// staff member.
type Payment struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	SalonID       primitive.ObjectID `json:"salonId" bson:"salon_id"`
	AppointmentID primitive.ObjectID `json:"appointmentId" bson:"appointment_id"`
	Amount        float64            `json:"amount,omitempty" bson:"amount,omitempty"`
	Tips          float64            `json:"tips,omitempty" bson:"tips,omitempty"`
	PaymentDate   time.Time          `json:"paymentDate,omitempty" bson:"payment_date,omitempty"`
}
