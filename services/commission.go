package services

import (
	"log"

	"github.com/salonhq/salon_backend/models"
)

// EvaluateCommission resolves the staff member's assigned tier inside the
// branch commission schedule and returns the commission owed on the given
// service revenue. A missing schedule, missing assignment, or unmatched
// tier is not an error: the commission is simply zero. An unrecognized
// commission_type also evaluates to zero but is logged so mis-migrated
// schedules stay visible.
func EvaluateCommission(staff *models.Staff, schedule *models.RevenueCommission, serviceAmount float64) float64 {
	if staff == nil || schedule == nil {
		return 0
	}
	if staff.AssignedCommissionID.IsZero() || len(schedule.Commission) == 0 {
		return 0
	}

	var tier *models.CommissionTier
	for i := range schedule.Commission {
		if schedule.Commission[i].ID == staff.AssignedCommissionID {
			tier = &schedule.Commission[i]
			break
		}
	}
	if tier == nil {
		return 0
	}

	switch schedule.CommissionType {
	case models.CommissionTypeFixed:
		return tier.Amount
	case models.CommissionTypePercentage:
		return serviceAmount * tier.Amount / 100
	default:
		log.Printf("Unrecognized commission_type %q on schedule %s, treating as zero", schedule.CommissionType, schedule.ID.Hex())
		return 0
	}
}
