package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DashboardData is the counters payload for the salon dashboard.
type DashboardData struct {
	AppointmentCount     int64                 `json:"appointmentCount"`
	CustomerCount        int64                 `json:"customerCount"`
	OrderCount           int64                 `json:"orderCount"`
	ProductSales         float64               `json:"productSales"`
	TotalCommission      float64               `json:"totalCommission"`
	UpcomingAppointments []UpcomingAppointment `json:"upcomingAppointments"`
	TopServices          []TopService          `json:"topServices"`
}

// UpcomingAppointment is one row of the dashboard's upcoming list.
type UpcomingAppointment struct {
	CustomerName    string    `json:"customer_name" bson:"customer_name"`
	CustomerImage   string    `json:"customer_image,omitempty" bson:"customer_image,omitempty"`
	AppointmentDate time.Time `json:"appointment_date" bson:"appointment_date"`
	AppointmentTime string    `json:"appointment_time" bson:"appointment_time"`
	ServiceName     string    `json:"service_name" bson:"service_name"`
}

// TopService is one row of the dashboard's top-services list.
type TopService struct {
	ServiceName string  `json:"service_name" bson:"service_name"`
	Count       int64   `json:"count" bson:"count"`
	TotalAmount float64 `json:"totalAmount" bson:"totalAmount"`
}

// DashboardPoint is one day of the summary charts.
type DashboardPoint struct {
	Date         string  `json:"date" bson:"_id"`
	Sales        float64 `json:"sales" bson:"sales"`
	Appointments int64   `json:"appointments" bson:"appointments"`
}

// DashboardSummary carries the chart series for the summary endpoint.
type DashboardSummary struct {
	LineChart []DashboardPoint `json:"lineChart"`
	BarChart  []DashboardPoint `json:"barChart"`
}

// StaffDetails is one row of the staff roster join.
type StaffDetails struct {
	StaffID        primitive.ObjectID `json:"staff_id" bson:"staff_id"`
	StaffName      string             `json:"staff_name" bson:"staff_name"`
	StaffImage     string             `json:"staff_image,omitempty" bson:"staff_image,omitempty"`
	StaffEmail     string             `json:"staff_email,omitempty" bson:"staff_email,omitempty"`
	Services       int64              `json:"services" bson:"services"`
	TotalAmount    float64            `json:"total_amount" bson:"total_amount"`
	CommissionEarn float64            `json:"commission_earn" bson:"commission_earn"`
	TipsEarn       float64            `json:"tips_earn" bson:"tips_earn"`
	TotalEarning   float64            `json:"total_earning" bson:"total_earning"`
}
