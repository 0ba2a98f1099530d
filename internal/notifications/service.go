package notifications

import (
	"godiya-emr-backend/internal/database"
	"godiya-emr-backend/internal/logger"
	"godiya-emr-backend/internal/models"
)

// Notify pushes a feed entry to everyone holding the given role. Used
// by the domain handlers at their boundary (new lab order, payment
// taken, low stock); failures are logged and swallowed, a notification
// must never fail the operation that produced it.
func Notify(role models.StaffRole, level models.NotificationLevel, title, message string) {
	n := models.Notification{
		Role:    role,
		Title:   title,
		Message: message,
		Level:   level,
	}
	if err := database.DB.Create(&n).Error; err != nil {
		logger.WithField("role", role).Warnf("Notification could not be written: %v", err)
	}
}
