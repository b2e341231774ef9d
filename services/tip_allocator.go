package services

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/salonhq/salon_backend/models"
)

// AllocateTips computes one staff member's share of the pooled tips
// recorded against the given appointments. Each appointment's tip is split
// evenly over the distinct set of staff appearing in any of its service
// lines, regardless of which lines are paid; the target staff member
// receives the per-head share only when they are part of that set. An
// appointment with no payment record, or a payment without tips,
// contributes nothing.
func AllocateTips(appointments []models.Appointment, payments []models.Payment, staffID primitive.ObjectID) float64 {
	byID := make(map[primitive.ObjectID]*models.Appointment, len(appointments))
	for i := range appointments {
		byID[appointments[i].ID] = &appointments[i]
	}

	var tips float64
	for _, pay := range payments {
		if pay.Tips == 0 || pay.AppointmentID.IsZero() {
			continue
		}
		apt, ok := byID[pay.AppointmentID]
		if !ok {
			continue
		}
		staffSet := make(map[primitive.ObjectID]struct{})
		for _, line := range apt.Services {
			if !line.StaffID.IsZero() {
				staffSet[line.StaffID] = struct{}{}
			}
		}
		if _, member := staffSet[staffID]; !member {
			continue
		}
		// Every appointment has at least one service line, so the set is
		// never empty here; the check keeps the division safe regardless.
		if len(staffSet) == 0 {
			continue
		}
		tips += pay.Tips / float64(len(staffSet))
	}
	return tips
}
