package services

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/salonhq/salon_backend/models"
)

// fakeStore is an in-memory implementation of every store interface the
// earnings engine consumes.
type fakeStore struct {
	mu           sync.Mutex
	staffs       []models.Staff
	appointments []models.Appointment
	payments     []models.Payment
	schedules    []models.RevenueCommission
	earnings     map[primitive.ObjectID]models.StaffEarning
	payouts      []models.StaffPayment

	failPayoutInsert error
	failMarkPaid     error
}

func newFakeStore() *fakeStore {
	return &fakeStore{earnings: make(map[primitive.ObjectID]models.StaffEarning)}
}

func (f *fakeStore) FindBySalon(_ context.Context, salonID primitive.ObjectID) ([]models.Staff, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Staff
	for _, staff := range f.staffs {
		if staff.SalonID == salonID {
			out = append(out, staff)
		}
	}
	return out, nil
}

func (f *fakeStore) FindByIDAndSalon(_ context.Context, staffID, salonID primitive.ObjectID) (*models.Staff, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, staff := range f.staffs {
		if staff.ID == staffID && staff.SalonID == salonID {
			found := staff
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) FindCheckedOutByStaff(_ context.Context, salonID, staffID primitive.ObjectID, unpaidOnly bool) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, apt := range f.appointments {
		if apt.Status != models.AppointmentStatusCheckOut || apt.SalonID != salonID {
			continue
		}
		for _, line := range apt.Services {
			if line.StaffID != staffID {
				continue
			}
			if unpaidOnly && line.Paid {
				continue
			}
			out = append(out, apt)
			break
		}
	}
	return out, nil
}

func (f *fakeStore) MarkServicesPaid(_ context.Context, staffID primitive.ObjectID) (int64, error) {
	if f.failMarkPaid != nil {
		return 0, f.failMarkPaid
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var modified int64
	for i := range f.appointments {
		if f.appointments[i].Status != models.AppointmentStatusCheckOut {
			continue
		}
		changed := false
		for j := range f.appointments[i].Services {
			line := &f.appointments[i].Services[j]
			if line.StaffID == staffID && !line.Paid {
				line.Paid = true
				changed = true
			}
		}
		if changed {
			modified++
		}
	}
	return modified, nil
}

func (f *fakeStore) FindByAppointmentIDs(_ context.Context, appointmentIDs []primitive.ObjectID) ([]models.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	wanted := make(map[primitive.ObjectID]struct{}, len(appointmentIDs))
	for _, id := range appointmentIDs {
		wanted[id] = struct{}{}
	}
	var out []models.Payment
	for _, pay := range f.payments {
		if _, ok := wanted[pay.AppointmentID]; ok {
			out = append(out, pay)
		}
	}
	return out, nil
}

func (f *fakeStore) FindByBranch(_ context.Context, branchID primitive.ObjectID) (*models.RevenueCommission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, schedule := range f.schedules {
		if schedule.BranchID == branchID {
			found := schedule
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) Upsert(_ context.Context, earning models.StaffEarning) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.earnings[earning.StaffID] = earning
	return nil
}

func (f *fakeStore) FindByStaff(_ context.Context, staffID primitive.ObjectID) (*models.StaffEarning, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	earning, ok := f.earnings[staffID]
	if !ok {
		return nil, nil
	}
	return &earning, nil
}

func (f *fakeStore) ResetAfterPayout(_ context.Context, staffID, salonID primitive.ObjectID, paidAmount float64, paymentMethod string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	earning, ok := f.earnings[staffID]
	if !ok {
		return nil
	}
	earning.SalonID = salonID
	earning.PaidAmount = paidAmount
	earning.PaymentMethod = paymentMethod
	earning.StaffEarning = 0
	earning.CommissionEarning = 0
	earning.TipEarning = 0
	earning.TotalBooking = 0
	f.earnings[staffID] = earning
	return nil
}

func (f *fakeStore) SetTotalBooking(_ context.Context, staffID primitive.ObjectID, totalBooking int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	earning, ok := f.earnings[staffID]
	if !ok {
		return nil
	}
	earning.TotalBooking = totalBooking
	f.earnings[staffID] = earning
	return nil
}

func (f *fakeStore) DeleteByStaff(_ context.Context, staffID, salonID primitive.ObjectID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	earning, ok := f.earnings[staffID]
	if !ok || earning.SalonID != salonID {
		return false, nil
	}
	delete(f.earnings, staffID)
	return true, nil
}

func (f *fakeStore) Insert(_ context.Context, payout models.StaffPayment) error {
	if f.failPayoutInsert != nil {
		return f.failPayoutInsert
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payouts = append(f.payouts, payout)
	return nil
}

func newTestService(store *fakeStore) *EarningsService {
	return NewEarningsService(store, store, store, store, store, store)
}
