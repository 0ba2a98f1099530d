package models

import "time"

type PrescriptionStatus string

const (
	PrescriptionPending   PrescriptionStatus = "pending"
	PrescriptionDispensed PrescriptionStatus = "dispensed"
)

type Prescription struct {
	ID                 uint               `gorm:"primaryKey" json:"id"`
	PrescriptionNumber string             `gorm:"size:20;uniqueIndex;not null" json:"prescription_number"` // e.g. RX-662041
	PatientID          uint               `gorm:"index;not null" json:"patient_id"`
	Patient            Patient            `json:"patient"`
	DoctorName         string             `gorm:"size:100;not null" json:"doctor_name"`
	Items              []PrescriptionItem `json:"items"`
	Status             PrescriptionStatus `gorm:"size:20;not null;default:pending" json:"status"`
	DispensedAt        *time.Time         `json:"dispensed_at"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

type PrescriptionItem struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	PrescriptionID uint   `gorm:"index;not null" json:"prescription_id"`
	DrugID         uint   `gorm:"index;not null" json:"drug_id"`
	Drug           Drug   `json:"drug"`
	Dosage         string `gorm:"size:100" json:"dosage"` // e.g. "500mg twice daily"
	Quantity       int    `gorm:"not null" json:"quantity"`
}
