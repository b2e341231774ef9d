package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSettle_EndToEnd(t *testing.T) {
	fx := newEarningsFixture()

	// Accrue the balance first: S is owed 55 (200 revenue, 35 tips, 20
	// commission at 10%).
	_, err := fx.service.GetStaffEarningsSummary(context.Background(), fx.salonID)
	require.NoError(t, err)

	payout, err := fx.service.Settle(context.Background(), fx.staffS.ID, fx.salonID, "Cash", "weekly payout")
	require.NoError(t, err)

	assert.InDelta(t, 55, payout.TotalPaid, 1e-9)
	assert.InDelta(t, 35, payout.Tips, 1e-9)
	assert.InDelta(t, 20, payout.CommissionAmount, 1e-9)
	assert.Equal(t, "cash", payout.PaymentMethod, "payment method normalized to lowercase")
	assert.Equal(t, "weekly payout", payout.Description)
	assert.NotEmpty(t, payout.Reference)
	assert.False(t, payout.PaidAt.IsZero())

	// The payout record was appended.
	require.Len(t, fx.store.payouts, 1)
	assert.InDelta(t, 55, fx.store.payouts[0].TotalPaid, 1e-9)

	// Every service line of S is now marked paid; S2's lines are untouched.
	for _, apt := range fx.store.appointments {
		for _, line := range apt.Services {
			if line.StaffID == fx.staffS.ID {
				assert.True(t, line.Paid)
			} else {
				assert.False(t, line.Paid)
			}
		}
	}

	// The balance survives with zeroed earning fields and the payment
	// details recorded.
	balance, err := fx.store.FindByStaff(context.Background(), fx.staffS.ID)
	require.NoError(t, err)
	require.NotNil(t, balance)
	assert.Zero(t, balance.StaffEarning)
	assert.Zero(t, balance.CommissionEarning)
	assert.Zero(t, balance.TipEarning)
	assert.Zero(t, balance.TotalBooking)
	assert.InDelta(t, 55, balance.PaidAmount, 1e-9)
	assert.Equal(t, "cash", balance.PaymentMethod)

	// A subsequent pending-detail query owes nothing.
	detail, err := fx.service.GetStaffEarningsDetail(context.Background(), fx.staffS.ID, fx.salonID)
	require.NoError(t, err)
	assert.Zero(t, detail.TotalBooking)
	assert.Zero(t, detail.StaffEarning)
}

func TestSettle_TwiceYieldsZeroPayout(t *testing.T) {
	fx := newEarningsFixture()

	_, err := fx.service.GetStaffEarningsSummary(context.Background(), fx.salonID)
	require.NoError(t, err)

	first, err := fx.service.Settle(context.Background(), fx.staffS.ID, fx.salonID, "cash", "")
	require.NoError(t, err)
	assert.InDelta(t, 55, first.TotalPaid, 1e-9)

	// The balance still exists but is zeroed, so a second settlement with
	// no new work pays out nothing.
	second, err := fx.service.Settle(context.Background(), fx.staffS.ID, fx.salonID, "cash", "")
	require.NoError(t, err)
	assert.Zero(t, second.TotalPaid)
	assert.Zero(t, second.Tips)
	assert.Zero(t, second.CommissionAmount)
}

func TestSettle_Preconditions(t *testing.T) {
	fx := newEarningsFixture()

	var svcErr *Error

	// Missing payment method.
	_, err := fx.service.Settle(context.Background(), fx.staffS.ID, fx.salonID, "  ", "")
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindInvalidArgument, svcErr.Kind)

	// Unknown staff member.
	_, err = fx.service.Settle(context.Background(), primitive.NewObjectID(), fx.salonID, "cash", "")
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindNotFound, svcErr.Kind)

	// Staff exists but no balance has ever been aggregated: absence is an
	// error, not an implicit zero.
	_, err = fx.service.Settle(context.Background(), fx.staffS.ID, fx.salonID, "cash", "")
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindNotFound, svcErr.Kind)
	assert.Empty(t, fx.store.payouts)
}

func TestSettle_FailureAfterPayoutIsInternal(t *testing.T) {
	fx := newEarningsFixture()

	_, err := fx.service.GetStaffEarningsSummary(context.Background(), fx.salonID)
	require.NoError(t, err)

	fx.store.failMarkPaid = errors.New("socket closed")

	_, err = fx.service.Settle(context.Background(), fx.staffS.ID, fx.salonID, "cash", "")
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindInternal, svcErr.Kind)
	assert.Contains(t, svcErr.Message, fx.staffS.ID.Hex())

	// The payout is already durable; the error must say so for the retry.
	require.Len(t, fx.store.payouts, 1)
	assert.Contains(t, svcErr.Message, fx.store.payouts[0].Reference)

	// Retrying the post-payout steps once the store recovers is safe.
	fx.store.failMarkPaid = nil
	require.NoError(t, fx.service.finalizeSettlement(context.Background(), fx.staffS.ID, fx.salonID, 55, "cash"))

	balance, err := fx.store.FindByStaff(context.Background(), fx.staffS.ID)
	require.NoError(t, err)
	require.NotNil(t, balance)
	assert.Zero(t, balance.StaffEarning)

	detail, err := fx.service.GetStaffEarningsDetail(context.Background(), fx.staffS.ID, fx.salonID)
	require.NoError(t, err)
	assert.Zero(t, detail.TotalBooking)
}

func TestSettle_ConcurrentCallsAreSerialized(t *testing.T) {
	fx := newEarningsFixture()

	_, err := fx.service.GetStaffEarningsSummary(context.Background(), fx.salonID)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]float64, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			payout, err := fx.service.Settle(context.Background(), fx.staffS.ID, fx.salonID, "cash", "")
			if err == nil {
				results[i] = payout.TotalPaid
			}
		}(i)
	}
	wg.Wait()

	// Exactly one settlement captures the 55; the rest see a zeroed
	// balance and pay out nothing.
	var total float64
	for _, paid := range results {
		total += paid
	}
	assert.InDelta(t, 55, total, 1e-9)
}
