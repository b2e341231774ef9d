package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StaffPayment is one settlement payout. Append-only: documents are never
// updated or deleted once written.
type StaffPayment struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Reference        string             `json:"reference" bson:"reference"`
	StaffID          primitive.ObjectID `json:"staffId" bson:"staff_id"`
	SalonID          primitive.ObjectID `json:"salonId" bson:"salon_id"`
	TotalPaid        float64            `json:"totalPaid" bson:"total_paid"`
	Tips             float64            `json:"tips" bson:"tips"`
	CommissionAmount float64            `json:"commissionAmount" bson:"commission_amount"`
	PaymentMethod    string             `json:"paymentMethod" bson:"payment_method"`
	Description      string             `json:"description,omitempty" bson:"description,omitempty"`
	PaidAt           time.Time          `json:"paidAt" bson:"paid_at"`
}

// SettleRequest is the body of the settlement endpoint.
type SettleRequest struct {
	SalonID       string `json:"salon_id" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required"`
	Description   string `json:"description"`
}

// StaffPaymentEntry is the payout-ledger listing shape, joining the payout
// with the staff member it was issued to.
type StaffPaymentEntry struct {
	PaymentDate      time.Time        `json:"payment_date"`
	Staff            StaffPaymentInfo `json:"staff"`
	CommissionAmount float64          `json:"commission_amount"`
	Tips             float64          `json:"tips"`
	PaymentType      string           `json:"payment_type"`
	TotalPay         float64          `json:"total_pay"`
	StaffID          string           `json:"staff_id"`
}

// StaffPaymentInfo is the staff identity block embedded in a ledger entry.
type StaffPaymentInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Image string `json:"image,omitempty"`
}
