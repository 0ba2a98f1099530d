package models

import "time"

type NotificationLevel string

const (
	NotificationInfo    NotificationLevel = "info"
	NotificationSuccess NotificationLevel = "success"
	NotificationWarning NotificationLevel = "warning"
	NotificationError   NotificationLevel = "error"
)

// Notification is a per-role feed entry. Role is the audience, not the
// author. Notifications are the only entity the EMR hard-deletes.
type Notification struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	Role      StaffRole         `gorm:"size:20;index;not null" json:"role"`
	Title     string            `gorm:"size:100;not null" json:"title"`
	Message   string            `gorm:"size:255" json:"message"`
	Level     NotificationLevel `gorm:"size:10;not null;default:info" json:"level"`
	Read      bool              `gorm:"default:false" json:"read"`
	CreatedAt time.Time         `json:"created_at"`
}
