package admin

import (
	"fmt"

	"godiya-emr-backend/internal/audit"
	"godiya-emr-backend/internal/auth"
	"godiya-emr-backend/internal/database"
	"godiya-emr-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreateDepartmentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	HeadOfUnit  string `json:"head_of_unit"`
}

type UpdateDepartmentRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	HeadOfUnit  *string `json:"head_of_unit"`
}

// -------------------------------------------------
// POST /api/admin/departments
// -------------------------------------------------
func CreateDepartmentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateDepartmentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Department name is required")
		}

		var count int64
		database.DB.Model(&models.Department{}).Where("name = ?", body.Name).Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusConflict, "A department with this name already exists")
		}

		dept := models.Department{
			Name:        body.Name,
			Description: body.Description,
			HeadOfUnit:  body.HeadOfUnit,
		}

		if err := database.DB.Create(&dept).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Department could not be created")
		}

		if session, ok := auth.SessionFromContext(c); ok {
			if logErr := audit.WriteLog(audit.LogOptions{
				Session:     session,
				EntityType:  "department",
				EntityID:    dept.ID,
				Action:      models.AuditActionCreate,
				Description: fmt.Sprintf("Department created: %s", dept.Name),
				After:       dept,
			}); logErr != nil {
				fmt.Printf("Audit log could not be written: %v\n", logErr)
			}
		}

		return c.Status(fiber.StatusCreated).JSON(dept)
	}
}

// -------------------------------------------------
// GET /api/departments
// -------------------------------------------------
func ListDepartmentsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var departments []models.Department
		if err := database.DB.Order("id asc").Find(&departments).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Departments could not be listed")
		}

		return c.JSON(departments)
	}
}

// -------------------------------------------------
// GET /api/admin/departments/:id
// -------------------------------------------------
func GetDepartmentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid department ID")
		}

		var dept models.Department
		if err := database.DB.First(&dept, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Department not found")
		}

		return c.JSON(dept)
	}
}

// -------------------------------------------------
// PUT /api/admin/departments/:id
// -------------------------------------------------
func UpdateDepartmentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid department ID")
		}

		var body UpdateDepartmentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		var dept models.Department
		if err := database.DB.First(&dept, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusNotFound, "Department not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Department could not be loaded")
		}

		before := dept

		if body.Name != nil && *body.Name != dept.Name {
			var count int64
			database.DB.Model(&models.Department{}).Where("name = ? AND id <> ?", *body.Name, dept.ID).Count(&count)
			if count > 0 {
				return fiber.NewError(fiber.StatusConflict, "A department with this name already exists")
			}
			dept.Name = *body.Name
		}
		if body.Description != nil {
			dept.Description = *body.Description
		}
		if body.HeadOfUnit != nil {
			dept.HeadOfUnit = *body.HeadOfUnit
		}

		if err := database.DB.Save(&dept).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Department could not be updated")
		}

		if session, ok := auth.SessionFromContext(c); ok {
			if logErr := audit.WriteLog(audit.LogOptions{
				Session:     session,
				EntityType:  "department",
				EntityID:    dept.ID,
				Action:      models.AuditActionUpdate,
				Description: fmt.Sprintf("Department updated: %s", dept.Name),
				Before:      before,
				After:       dept,
			}); logErr != nil {
				fmt.Printf("Audit log could not be written: %v\n", logErr)
			}
		}

		return c.JSON(dept)
	}
}
