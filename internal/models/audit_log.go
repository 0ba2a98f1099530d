package models

import "time"

type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
	AuditActionUndo   AuditAction = "undo"
)

type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	// Acting user, denormalized from the session so the trail survives
	// credential table changes.
	UserEmail string    `gorm:"size:100" json:"user_email"`
	UserName  string    `gorm:"size:100" json:"user_name"`
	UserRole  StaffRole `gorm:"size:20" json:"user_role"`

	// Affected entity (e.g. "patient", "appointment", "invoice").
	EntityType string `gorm:"size:50;index" json:"entity_type"`
	EntityID   uint   `gorm:"index" json:"entity_id"`

	Action      AuditAction `gorm:"size:20" json:"action"`
	Description string      `gorm:"size:255" json:"description"`

	// State before and after the mutation (JSON).
	BeforeData string `gorm:"type:jsonb" json:"before_data"`
	AfterData  string `gorm:"type:jsonb" json:"after_data"`

	// True when this log row was itself produced by an undo.
	Undone bool `json:"undone"`

	// True when this logged action has been undone.
	IsUndone bool       `gorm:"default:false" json:"is_undone"`
	UndoneBy string     `gorm:"size:100" json:"undone_by"`
	UndoneAt *time.Time `json:"undone_at"`
}
