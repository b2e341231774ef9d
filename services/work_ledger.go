package services

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/salonhq/salon_backend/models"
)

// LedgerMode selects which service lines the work ledger counts.
type LedgerMode int

const (
	// ModeAllCheckedOut counts every checked-out line, paid or not.
	// Feeds the dashboard summary.
	ModeAllCheckedOut LedgerMode = iota
	// ModePendingOnly counts lines not yet marked paid. This is the
	// authoritative amount-owed feed consumed by settlement.
	ModePendingOnly
)

func lineMatches(line models.ServiceLine, staffID primitive.ObjectID, mode LedgerMode) bool {
	if line.StaffID != staffID {
		return false
	}
	if mode == ModePendingOnly && line.Paid {
		return false
	}
	return true
}

// SumServiceLines returns the matching service-line count and revenue total
// for one staff member across the given appointments. A line counts only
// when its staff reference matches exactly; total_booking counts lines, not
// distinct appointments, so an appointment with two lines for the same
// staff contributes two. An absent amount counts as zero.
func SumServiceLines(appointments []models.Appointment, staffID primitive.ObjectID, mode LedgerMode) (int, float64) {
	var bookings int
	var amount float64
	for _, apt := range appointments {
		for _, line := range apt.Services {
			if lineMatches(line, staffID, mode) {
				bookings++
				amount += line.ServiceAmount
			}
		}
	}
	return bookings, amount
}

func appointmentIDs(appointments []models.Appointment) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(appointments))
	for _, apt := range appointments {
		ids = append(ids, apt.ID)
	}
	return ids
}
