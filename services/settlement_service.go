package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/salonhq/salon_backend/models"
)

// Settle pays out a staff member's accrued balance:
//
//  1. snapshot the balance fields
//  2. append an immutable StaffPayment record
//  3. mark every checked-out service line of the staff as paid
//  4. zero the balance's earning fields, recording amount and method
//  5. recount remaining unpaid lines into total_booking
//
// The payout insert in step 2 is the durability point: once it succeeds the
// payout is issued, and a failure in steps 3-5 surfaces as an internal
// error carrying the payout reference so the caller can retry. Steps 3-5
// are individually idempotent. Concurrent settlements for the same staff
// member are serialized by a per-staff lock; the stores have no
// cross-collection transaction, so this serialization is a correctness
// requirement, not an optimization.
//
// Step 3 is deliberately unconditional: a service line checked out between
// the snapshot and the bulk update is marked paid even though it was not
// part of the snapshot. The recount in step 5 logs when that race fires.
//
// Settling an already-zeroed balance yields a zero-amount payout; only a
// balance that does not exist at all is NotFound.
func (s *EarningsService) Settle(ctx context.Context, staffID, salonID primitive.ObjectID, paymentMethod, description string) (*models.StaffPayment, error) {
	if strings.TrimSpace(paymentMethod) == "" {
		return nil, invalidArgument("Payment method is required")
	}

	staff, err := s.staffs.FindByIDAndSalon(ctx, staffID, salonID)
	if err != nil {
		return nil, internal("failed to load staff", err)
	}
	if staff == nil {
		return nil, notFound("Staff not found")
	}

	s.settleLocks.Lock(staffID.Hex())
	defer s.settleLocks.Unlock(staffID.Hex())

	earning, err := s.earnings.FindByStaff(ctx, staffID)
	if err != nil {
		return nil, internal("failed to load staff earning", err)
	}
	if earning == nil {
		return nil, notFound("Staff earning not found")
	}

	method := strings.ToLower(strings.TrimSpace(paymentMethod))
	payout := models.StaffPayment{
		ID:               primitive.NewObjectID(),
		Reference:        uuid.NewString(),
		StaffID:          staffID,
		SalonID:          salonID,
		TotalPaid:        earning.StaffEarning,
		Tips:             earning.TipEarning,
		CommissionAmount: earning.CommissionEarning,
		PaymentMethod:    method,
		Description:      description,
		PaidAt:           time.Now(),
	}
	if err := s.payouts.Insert(ctx, payout); err != nil {
		return nil, internal("failed to record payout", err)
	}

	if err := s.finalizeSettlement(ctx, staffID, salonID, payout.TotalPaid, method); err != nil {
		return nil, internal(fmt.Sprintf("payout %s recorded for staff %s but settlement finalization failed, retry required", payout.Reference, staffID.Hex()), err)
	}

	return &payout, nil
}

// finalizeSettlement runs the post-payout steps. Safe to re-run: marking
// already-paid lines is a no-op, as is zeroing a zeroed balance.
func (s *EarningsService) finalizeSettlement(ctx context.Context, staffID, salonID primitive.ObjectID, paidAmount float64, paymentMethod string) error {
	if _, err := s.appointments.MarkServicesPaid(ctx, staffID); err != nil {
		return err
	}

	if err := s.earnings.ResetAfterPayout(ctx, staffID, salonID, paidAmount, paymentMethod); err != nil {
		return err
	}

	remaining, err := s.appointments.FindCheckedOutByStaff(ctx, salonID, staffID, true)
	if err != nil {
		return err
	}
	totalBooking, _ := SumServiceLines(remaining, staffID, ModePendingOnly)
	if totalBooking != 0 {
		log.Printf("Settlement recount: staff %s still has %d unpaid service lines, concurrent check-out or settlement hit", staffID.Hex(), totalBooking)
	}
	return s.earnings.SetTotalBooking(ctx, staffID, totalBooking)
}
