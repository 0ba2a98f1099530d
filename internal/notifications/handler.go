package notifications

import (
	"godiya-emr-backend/internal/auth"
	"godiya-emr-backend/internal/database"
	"godiya-emr-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateNotificationRequest struct {
	Role    string `json:"role"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Level   string `json:"level"`
}

// -------------------------------------------------
// GET /api/notifications
// -------------------------------------------------
func ListNotificationsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := auth.SessionFromContext(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "No active session")
		}

		var items []models.Notification
		if err := database.DB.Where("role = ?", session.Role).
			Order("created_at desc").Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Notifications could not be listed")
		}

		return c.JSON(items)
	}
}

// -------------------------------------------------
// GET /api/notifications/unread-count
// -------------------------------------------------
func UnreadCountHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := auth.SessionFromContext(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "No active session")
		}

		var count int64
		if err := database.DB.Model(&models.Notification{}).
			Where("role = ? AND read = ?", session.Role, false).
			Count(&count).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Count failed")
		}

		return c.JSON(fiber.Map{"count": count})
	}
}

// -------------------------------------------------
// POST /api/admin/notifications
// -------------------------------------------------
func CreateNotificationHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateNotificationRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		role := models.StaffRole(body.Role)
		if !role.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid role")
		}
		if body.Title == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Title is required")
		}

		level := models.NotificationInfo
		switch models.NotificationLevel(body.Level) {
		case "":
		case models.NotificationInfo, models.NotificationSuccess,
			models.NotificationWarning, models.NotificationError:
			level = models.NotificationLevel(body.Level)
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Invalid level (info|success|warning|error)")
		}

		n := models.Notification{
			Role:    role,
			Title:   body.Title,
			Message: body.Message,
			Level:   level,
		}
		if err := database.DB.Create(&n).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Notification could not be created")
		}

		return c.Status(fiber.StatusCreated).JSON(n)
	}
}

// -------------------------------------------------
// PUT /api/notifications/:id/read
// -------------------------------------------------
func MarkReadHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid notification ID")
		}

		session, ok := auth.SessionFromContext(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "No active session")
		}

		res := database.DB.Model(&models.Notification{}).
			Where("id = ? AND role = ?", id, session.Role).
			Update("read", true)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Notification could not be updated")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Notification not found")
		}

		return c.JSON(fiber.Map{"message": "Marked as read"})
	}
}

// -------------------------------------------------
// DELETE /api/notifications/:id
// -------------------------------------------------
// Deleting an already-deleted notification succeeds; the delete is
// idempotent by contract.
func DeleteNotificationHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid notification ID")
		}

		session, ok := auth.SessionFromContext(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "No active session")
		}

		if err := database.DB.Where("id = ? AND role = ?", id, session.Role).
			Delete(&models.Notification{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Notification could not be deleted")
		}

		return c.JSON(fiber.Map{"message": "Notification deleted"})
	}
}
