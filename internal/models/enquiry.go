package models

import "time"

type EnquiryKind string

const (
	EnquiryContact            EnquiryKind = "contact"
	EnquiryAppointmentRequest EnquiryKind = "appointment_request"
)

// Enquiry stores submissions from the public marketing site forms
// (contact page and the book-an-appointment form). Reception reviews
// them from the dashboard.
type Enquiry struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	Kind           EnquiryKind `gorm:"size:30;index;not null" json:"kind"`
	Name           string      `gorm:"size:100;not null" json:"name"`
	Email          string      `gorm:"size:100" json:"email"`
	Phone          string      `gorm:"size:50" json:"phone"`
	Subject        string      `gorm:"size:100" json:"subject"`
	Message        string      `gorm:"size:1000" json:"message"`
	DepartmentName string      `gorm:"size:100" json:"department_name"`
	PreferredDate  *time.Time  `json:"preferred_date"`
	Handled        bool        `gorm:"default:false" json:"handled"`
	CreatedAt      time.Time   `json:"created_at"`
}
