package models

import "time"

type PatientCategory string

const (
	PatientOPD PatientCategory = "opd" // outpatient
	PatientIPD PatientCategory = "ipd" // inpatient (admitted)
)

type Patient struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	PatientNumber string          `gorm:"size:20;uniqueIndex;not null" json:"patient_number"` // e.g. PT-483920
	FirstName     string          `gorm:"size:100;not null" json:"first_name"`
	LastName      string          `gorm:"size:100;not null" json:"last_name"`
	Gender        string          `gorm:"size:10" json:"gender"`
	DateOfBirth   *time.Time      `json:"date_of_birth"`
	Phone         string          `gorm:"size:50;index;not null" json:"phone"`
	Address       string          `gorm:"size:255" json:"address"`
	BloodGroup    string          `gorm:"size:5" json:"blood_group"`
	Category      PatientCategory `gorm:"size:10;not null;default:opd" json:"category"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (p Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}
