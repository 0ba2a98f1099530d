package models

import "time"

type AppointmentStatus string

const (
	AppointmentScheduled  AppointmentStatus = "scheduled"
	AppointmentInProgress AppointmentStatus = "in_progress"
	AppointmentCompleted  AppointmentStatus = "completed"
	AppointmentCancelled  AppointmentStatus = "cancelled"
)

// PaymentStatus is derived from the appointment status, it is never
// stored: a completed appointment counts as paid, everything else as
// unpaid.
type PaymentStatus string

const (
	PaymentPaid   PaymentStatus = "paid"
	PaymentUnpaid PaymentStatus = "unpaid"
)

type Appointment struct {
	ID                uint              `gorm:"primaryKey" json:"id"`
	AppointmentNumber string            `gorm:"size:20;uniqueIndex;not null" json:"appointment_number"` // e.g. APT-271845
	PatientID         uint              `gorm:"index;not null" json:"patient_id"`
	Patient           Patient           `json:"patient"`
	DoctorName        string            `gorm:"size:100;not null" json:"doctor_name"`
	DepartmentID      *uint             `json:"department_id"`
	Department        *Department       `json:"department,omitempty"`
	Date              time.Time         `gorm:"index;not null" json:"date"` // day of the appointment
	TimeSlot          string            `gorm:"size:20" json:"time_slot"`   // e.g. "10:30"
	Reason            string            `gorm:"size:255" json:"reason"`
	Status            AppointmentStatus `gorm:"size:20;not null;default:scheduled" json:"status"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// PaymentStatus applies the billing heuristic used by the cashier and
// appointment list views.
func (a Appointment) PaymentStatus() PaymentStatus {
	if a.Status == AppointmentCompleted {
		return PaymentPaid
	}
	return PaymentUnpaid
}
