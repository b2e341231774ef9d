package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/salonhq/salon_backend/models"
)

// EarningsService computes per-staff earnings and settles them. The
// StaffEarning balance it maintains is a derived projection rebuilt from
// the appointment and payment collections on every pass; those collections
// remain the system of record.
type EarningsService struct {
	staffs       StaffStore
	appointments AppointmentStore
	payments     PaymentStore
	commissions  CommissionStore
	earnings     EarningStore
	payouts      PayoutStore
	settleLocks  *keyedLock
}

// NewEarningsService creates the earnings engine over the given stores.
func NewEarningsService(staffs StaffStore, appointments AppointmentStore, payments PaymentStore, commissions CommissionStore, earnings EarningStore, payouts PayoutStore) *EarningsService {
	return &EarningsService{
		staffs:       staffs,
		appointments: appointments,
		payments:     payments,
		commissions:  commissions,
		earnings:     earnings,
		payouts:      payouts,
		settleLocks:  newKeyedLock(),
	}
}

// snapshot aggregates one staff member's service revenue, tip share and
// commission under the given ledger mode. Both modes share the tip
// allocator and commission evaluator; only the line predicate differs.
func (s *EarningsService) snapshot(ctx context.Context, staff *models.Staff, mode LedgerMode) (models.StaffEarningSummary, error) {
	appointments, err := s.appointments.FindCheckedOutByStaff(ctx, staff.SalonID, staff.ID, mode == ModePendingOnly)
	if err != nil {
		return models.StaffEarningSummary{}, internal("failed to load appointments", err)
	}

	totalBooking, serviceAmount := SumServiceLines(appointments, staff.ID, mode)

	payments, err := s.payments.FindByAppointmentIDs(ctx, appointmentIDs(appointments))
	if err != nil {
		return models.StaffEarningSummary{}, internal("failed to load payments", err)
	}
	tipEarning := AllocateTips(appointments, payments, staff.ID)

	schedule, err := s.commissions.FindByBranch(ctx, staff.BranchID)
	if err != nil {
		return models.StaffEarningSummary{}, internal("failed to load commission schedule", err)
	}
	commissionEarning := EvaluateCommission(staff, schedule, serviceAmount)

	return models.StaffEarningSummary{
		StaffID:           staff.ID.Hex(),
		StaffName:         staff.FullName,
		StaffImage:        staff.Image,
		TotalBooking:      totalBooking,
		ServiceAmount:     serviceAmount,
		CommissionEarning: commissionEarning,
		TipEarning:        tipEarning,
		StaffEarning:      commissionEarning + tipEarning,
	}, nil
}

// GetStaffEarningsSummary aggregates every staff member of the salon over
// all checked-out work (paid or not) and upserts each balance as a side
// effect. Staff members are processed independently; the context is checked
// between them so a whole-salon pass honors cancellation.
func (s *EarningsService) GetStaffEarningsSummary(ctx context.Context, salonID primitive.ObjectID) ([]models.StaffEarningSummary, error) {
	staffList, err := s.staffs.FindBySalon(ctx, salonID)
	if err != nil {
		return nil, internal("failed to load staff", err)
	}

	earningsList := make([]models.StaffEarningSummary, 0, len(staffList))
	for i := range staffList {
		if err := ctx.Err(); err != nil {
			return nil, internal("summary pass cancelled", err)
		}
		staff := &staffList[i]

		summary, err := s.snapshot(ctx, staff, ModeAllCheckedOut)
		if err != nil {
			return nil, err
		}

		err = s.earnings.Upsert(ctx, models.StaffEarning{
			StaffID:           staff.ID,
			SalonID:           salonID,
			TotalBooking:      summary.TotalBooking,
			ServiceAmount:     summary.ServiceAmount,
			CommissionEarning: summary.CommissionEarning,
			TipEarning:        summary.TipEarning,
			StaffEarning:      summary.StaffEarning,
		})
		if err != nil {
			return nil, internal("failed to save staff earning", err)
		}

		earningsList = append(earningsList, summary)
	}
	return earningsList, nil
}

// GetStaffEarningsDetail aggregates a single staff member over unpaid work
// only. Read-only: it does not touch the stored balance.
func (s *EarningsService) GetStaffEarningsDetail(ctx context.Context, staffID, salonID primitive.ObjectID) (*models.StaffEarningSummary, error) {
	staff, err := s.staffs.FindByIDAndSalon(ctx, staffID, salonID)
	if err != nil {
		return nil, internal("failed to load staff", err)
	}
	if staff == nil {
		return nil, notFound("Staff not found")
	}

	summary, err := s.snapshot(ctx, staff, ModePendingOnly)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// DeleteEarningsBalance removes the stored balance for a staff member.
func (s *EarningsService) DeleteEarningsBalance(ctx context.Context, staffID, salonID primitive.ObjectID) error {
	deleted, err := s.earnings.DeleteByStaff(ctx, staffID, salonID)
	if err != nil {
		return internal("failed to delete staff earning", err)
	}
	if !deleted {
		return notFound("Staff earning not found")
	}
	return nil
}
