package models

import "time"

type LabOrderStatus string

const (
	LabOrderPending    LabOrderStatus = "pending"
	LabOrderInProgress LabOrderStatus = "in_progress"
	LabOrderCompleted  LabOrderStatus = "completed"
)

type LabOrder struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	OrderNumber string         `gorm:"size:20;uniqueIndex;not null" json:"order_number"` // e.g. LAB-904113
	PatientID   uint           `gorm:"index;not null" json:"patient_id"`
	Patient     Patient        `json:"patient"`
	TestType    string         `gorm:"size:100;not null" json:"test_type"` // e.g. "Full Blood Count"
	OrderedBy   string         `gorm:"size:100" json:"ordered_by"`         // requesting doctor
	Status      LabOrderStatus `gorm:"size:20;not null;default:pending" json:"status"`
	Result      string         `gorm:"size:1000" json:"result"`
	CompletedAt *time.Time     `json:"completed_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
