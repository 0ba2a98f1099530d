package admin

import (
	"godiya-emr-backend/internal/database"
	"godiya-emr-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// -------------------------------------------------
// GET /api/admin/staff?role=doctor
// -------------------------------------------------
func ListStaffHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Staff{}).Preload("Department")

		if roleStr := c.Query("role"); roleStr != "" {
			role := models.StaffRole(roleStr)
			if !role.Valid() {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid role")
			}
			dbq = dbq.Where("role = ?", role)
		}

		var staff []models.Staff
		if err := dbq.Order("id asc").Find(&staff).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Staff could not be listed")
		}

		return c.JSON(staff)
	}
}
