package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/salonhq/salon_backend/models"
)

func TestSumServiceLines_CountsLinesNotAppointments(t *testing.T) {
	staffID := primitive.NewObjectID()
	otherID := primitive.NewObjectID()

	appointments := []models.Appointment{
		{
			ID:     primitive.NewObjectID(),
			Status: models.AppointmentStatusCheckOut,
			Services: []models.ServiceLine{
				{StaffID: staffID, ServiceAmount: 40},
				{StaffID: staffID, ServiceAmount: 60},
				{StaffID: otherID, ServiceAmount: 100},
			},
		},
		{
			ID:     primitive.NewObjectID(),
			Status: models.AppointmentStatusCheckOut,
			Services: []models.ServiceLine{
				{StaffID: staffID, ServiceAmount: 25},
			},
		},
	}

	bookings, amount := SumServiceLines(appointments, staffID, ModeAllCheckedOut)
	assert.Equal(t, 3, bookings, "two lines in one appointment count twice")
	assert.InDelta(t, 125, amount, 1e-9)

	bookings, amount = SumServiceLines(appointments, otherID, ModeAllCheckedOut)
	assert.Equal(t, 1, bookings)
	assert.InDelta(t, 100, amount, 1e-9)
}

func TestSumServiceLines_PendingOnlySkipsPaid(t *testing.T) {
	staffID := primitive.NewObjectID()

	appointments := []models.Appointment{
		{
			ID:     primitive.NewObjectID(),
			Status: models.AppointmentStatusCheckOut,
			Services: []models.ServiceLine{
				{StaffID: staffID, ServiceAmount: 40, Paid: true},
				{StaffID: staffID, ServiceAmount: 60},
			},
		},
	}

	bookings, amount := SumServiceLines(appointments, staffID, ModePendingOnly)
	assert.Equal(t, 1, bookings)
	assert.InDelta(t, 60, amount, 1e-9)

	bookings, amount = SumServiceLines(appointments, staffID, ModeAllCheckedOut)
	assert.Equal(t, 2, bookings)
	assert.InDelta(t, 100, amount, 1e-9)
}

func TestSumServiceLines_MissingAmountCountsAsZero(t *testing.T) {
	staffID := primitive.NewObjectID()

	appointments := []models.Appointment{
		{
			ID:     primitive.NewObjectID(),
			Status: models.AppointmentStatusCheckOut,
			Services: []models.ServiceLine{
				{StaffID: staffID},
				{StaffID: staffID, ServiceAmount: 30},
			},
		},
	}

	bookings, amount := SumServiceLines(appointments, staffID, ModeAllCheckedOut)
	assert.Equal(t, 2, bookings)
	assert.InDelta(t, 30, amount, 1e-9)
}
