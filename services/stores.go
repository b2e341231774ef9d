package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/salonhq/salon_backend/models"
)

// Store interfaces consumed by the earnings engine. The Mongo-backed
// implementations live in the repositories package; tests supply in-memory
// fakes. Lookups return (nil, nil) when the document is simply absent —
// only storage failures produce an error.

type StaffStore interface {
	FindBySalon(ctx context.Context, salonID primitive.ObjectID) ([]models.Staff, error)
	FindByIDAndSalon(ctx context.Context, staffID, salonID primitive.ObjectID) (*models.Staff, error)
}

type AppointmentStore interface {
	// FindCheckedOutByStaff returns checked-out appointments of the salon
	// containing at least one service line for the staff member; with
	// unpaidOnly set, at least one line that is not yet marked paid.
	FindCheckedOutByStaff(ctx context.Context, salonID, staffID primitive.ObjectID, unpaidOnly bool) ([]models.Appointment, error)
	// MarkServicesPaid flags every service line of the staff member across
	// checked-out appointments as paid and reports how many documents
	// changed. Re-running it is a no-op.
	MarkServicesPaid(ctx context.Context, staffID primitive.ObjectID) (int64, error)
}

type PaymentStore interface {
	FindByAppointmentIDs(ctx context.Context, appointmentIDs []primitive.ObjectID) ([]models.Payment, error)
}

type CommissionStore interface {
	FindByBranch(ctx context.Context, branchID primitive.ObjectID) (*models.RevenueCommission, error)
}

type EarningStore interface {
	// Upsert replaces the staff member's balance wholesale, keyed by
	// staff_id. It never accumulates onto the stored value.
	Upsert(ctx context.Context, earning models.StaffEarning) error
	FindByStaff(ctx context.Context, staffID primitive.ObjectID) (*models.StaffEarning, error)
	// ResetAfterPayout zeroes the earning fields and records what was paid
	// and how. Zeroing an already-zero balance is a no-op.
	ResetAfterPayout(ctx context.Context, staffID, salonID primitive.ObjectID, paidAmount float64, paymentMethod string) error
	SetTotalBooking(ctx context.Context, staffID primitive.ObjectID, totalBooking int) error
	DeleteByStaff(ctx context.Context, staffID, salonID primitive.ObjectID) (bool, error)
}

type PayoutStore interface {
	// Insert appends an immutable payout record.
	Insert(ctx context.Context, payout models.StaffPayment) error
}
