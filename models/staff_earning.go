package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StaffEarning is the per-staff unsettled earnings balance. Exactly one
// document per staff member, upserted on every aggregation pass and zeroed
// by settlement. It is a projection rebuilt from the appointment and payment
// collections, not the system of record.
//
// Invariant: StaffEarning == CommissionEarning + TipEarning outside an
// in-flight settlement.
type StaffEarning struct {
	ID                primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	StaffID           primitive.ObjectID `json:"staffId" bson:"staff_id"`
	SalonID           primitive.ObjectID `json:"salonId" bson:"salon_id"`
	TotalBooking      int                `json:"totalBooking" bson:"total_booking"`
	ServiceAmount     float64            `json:"serviceAmount" bson:"service_amount"`
	CommissionEarning float64            `json:"commissionEarning" bson:"commission_earning"`
	TipEarning        float64            `json:"tipEarning" bson:"tip_earning"`
	StaffEarning      float64            `json:"staffEarning" bson:"staff_earning"`
	PaidAmount        float64            `json:"paidAmount,omitempty" bson:"paid_amount,omitempty"`
	PaymentMethod     string             `json:"paymentMethod,omitempty" bson:"payment_method,omitempty"`
}

// StaffEarningSummary is the wire shape returned by the earnings endpoints.
type StaffEarningSummary struct {
	StaffID           string  `json:"staff_id"`
	StaffName         string  `json:"staff_name"`
	StaffImage        string  `json:"staff_image,omitempty"`
	TotalBooking      int     `json:"total_booking"`
	ServiceAmount     float64 `json:"service_amount"`
	CommissionEarning float64 `json:"commission_earning"`
	TipEarning        float64 `json:"tip_earning"`
	StaffEarning      float64 `json:"staff_earning"`
}
