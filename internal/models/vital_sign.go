package models

import "time"

// VitalSign is a nursing observation attached to a patient record.
type VitalSign struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	PatientID       uint      `gorm:"index;not null" json:"patient_id"`
	Patient         Patient   `json:"patient"`
	TemperatureC    float64   `json:"temperature_c"`
	BloodPressure   string    `gorm:"size:20" json:"blood_pressure"` // e.g. "120/80"
	PulseBPM        int       `json:"pulse_bpm"`
	RespiratoryRate int       `json:"respiratory_rate"`
	WeightKG        float64   `json:"weight_kg"`
	Note            string    `gorm:"size:255" json:"note"`
	RecordedBy      string    `gorm:"size:100" json:"recorded_by"`
	CreatedAt       time.Time `json:"created_at"`
}
