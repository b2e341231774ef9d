package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Appointment statuses
const (
	AppointmentStatusUpcoming  = "upcoming"
	AppointmentStatusCheckOut  = "check-out"
	AppointmentStatusCancelled = "cancelled"
)

// ServiceLine is one unit of work inside an appointment, performed by
// exactly one staff member. Paid flips to true when a settlement covers it;
// an absent paid field counts as unpaid.
type ServiceLine struct {
	ServiceID     primitive.ObjectID `json:"serviceId,omitempty" bson:"service_id,omitempty"`
	StaffID       primitive.ObjectID `json:"staffId" bson:"staff_id"`
	ServiceAmount float64            `json:"serviceAmount,omitempty" bson:"service_amount,omitempty"`
	Paid          bool               `json:"paid,omitempty" bson:"paid,omitempty"`
}

// ProductLine is a retail product sold during an appointment.
type ProductLine struct {
	ProductID  primitive.ObjectID `json:"productId,omitempty" bson:"product_id,omitempty"`
	Quantity   int                `json:"quantity,omitempty" bson:"quantity,omitempty"`
	TotalPrice float64            `json:"totalPrice,omitempty" bson:"total_price,omitempty"`
}

// Appointment model. A single appointment may carry service lines for
// several distinct staff members.
type Appointment struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	SalonID         primitive.ObjectID `json:"salonId" bson:"salon_id"`
	CustomerID      primitive.ObjectID `json:"customerId,omitempty" bson:"customer_id,omitempty"`
	Status          string             `json:"status" bson:"status"`
	AppointmentDate time.Time          `json:"appointmentDate,omitempty" bson:"appointment_date,omitempty"`
	AppointmentTime string             `json:"appointmentTime,omitempty" bson:"appointment_time,omitempty"`
	Services        []ServiceLine      `json:"services" bson:"services"`
	Products        []ProductLine      `json:"products,omitempty" bson:"products,omitempty"`
	TotalPayment    float64            `json:"totalPayment,omitempty" bson:"total_payment,omitempty"`
	CreatedAt       time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt       time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
