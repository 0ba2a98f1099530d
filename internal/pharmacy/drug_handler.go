package pharmacy

import (
	"fmt"

	"godiya-emr-backend/internal/audit"
	"godiya-emr-backend/internal/auth"
	"godiya-emr-backend/internal/database"
	"godiya-emr-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreateDrugRequest struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Unit         string  `json:"unit"`
	UnitPrice    float64 `json:"unit_price"`
	ReorderLevel int     `json:"reorder_level"`
}

type UpdateDrugRequest struct {
	Name         *string  `json:"name"`
	Category     *string  `json:"category"`
	Unit         *string  `json:"unit"`
	UnitPrice    *float64 `json:"unit_price"`
	ReorderLevel *int     `json:"reorder_level"`
}

// -------------------------------------------------
// POST /api/pharmacy/drugs
// -------------------------------------------------
func CreateDrugHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateDrugRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Drug name is required")
		}
		if body.UnitPrice < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Unit price cannot be negative")
		}

		var count int64
		database.DB.Model(&models.Drug{}).Where("name = ?", body.Name).Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusConflict, "A drug with this name already exists")
		}

		drug := models.Drug{
			Name:         body.Name,
			Category:     body.Category,
			Unit:         body.Unit,
			UnitPrice:    body.UnitPrice,
			ReorderLevel: body.ReorderLevel,
		}
		if drug.ReorderLevel <= 0 {
			drug.ReorderLevel = 10
		}

		if err := database.DB.Create(&drug).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Drug could not be created")
		}

		if session, ok := auth.SessionFromContext(c); ok {
			if logErr := audit.WriteLog(audit.LogOptions{
				Session:     session,
				EntityType:  "drug",
				EntityID:    drug.ID,
				Action:      models.AuditActionCreate,
				Description: fmt.Sprintf("Drug added: %s", drug.Name),
				After:       drug,
			}); logErr != nil {
				fmt.Printf("Audit log could not be written: %v\n", logErr)
			}
		}

		return c.Status(fiber.StatusCreated).JSON(drug)
	}
}

// -------------------------------------------------
// GET /api/pharmacy/drugs?q=para&low_stock=true
// -------------------------------------------------
func ListDrugsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Drug{})

		if q := c.Query("q"); q != "" {
			dbq = dbq.Where("name ILIKE ? OR category ILIKE ?", "%"+q+"%", "%"+q+"%")
		}
		if c.QueryBool("low_stock", false) {
			dbq = dbq.Where("stock_quantity <= reorder_level")
		}

		var drugs []models.Drug
		if err := dbq.Order("id asc").Find(&drugs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Drugs could not be listed")
		}

		return c.JSON(drugs)
	}
}

// -------------------------------------------------
// GET /api/pharmacy/drugs/low-stock-count
// -------------------------------------------------
func LowStockCountHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var count int64
		if err := database.DB.Model(&models.Drug{}).
			Where("stock_quantity <= reorder_level").
			Count(&count).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Count failed")
		}
		return c.JSON(fiber.Map{"count": count})
	}
}

// -------------------------------------------------
// PUT /api/pharmacy/drugs/:id
// -------------------------------------------------
func UpdateDrugHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid drug ID")
		}

		var body UpdateDrugRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		var drug models.Drug
		if err := database.DB.First(&drug, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusNotFound, "Drug not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Drug could not be loaded")
		}

		before := drug

		if body.Name != nil && *body.Name != drug.Name {
			var count int64
			database.DB.Model(&models.Drug{}).Where("name = ? AND id <> ?", *body.Name, drug.ID).Count(&count)
			if count > 0 {
				return fiber.NewError(fiber.StatusConflict, "A drug with this name already exists")
			}
			drug.Name = *body.Name
		}
		if body.Category != nil {
			drug.Category = *body.Category
		}
		if body.Unit != nil {
			drug.Unit = *body.Unit
		}
		if body.UnitPrice != nil {
			if *body.UnitPrice < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Unit price cannot be negative")
			}
			drug.UnitPrice = *body.UnitPrice
		}
		if body.ReorderLevel != nil && *body.ReorderLevel > 0 {
			drug.ReorderLevel = *body.ReorderLevel
		}

		if err := database.DB.Save(&drug).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Drug could not be updated")
		}

		if session, ok := auth.SessionFromContext(c); ok {
			if logErr := audit.WriteLog(audit.LogOptions{
				Session:     session,
				EntityType:  "drug",
				EntityID:    drug.ID,
				Action:      models.AuditActionUpdate,
				Description: fmt.Sprintf("Drug updated: %s", drug.Name),
				Before:      before,
				After:       drug,
			}); logErr != nil {
				fmt.Printf("Audit log could not be written: %v\n", logErr)
			}
		}

		return c.JSON(drug)
	}
}
