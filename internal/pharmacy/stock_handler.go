package pharmacy

import (
	"fmt"

	"godiya-emr-backend/internal/audit"
	"godiya-emr-backend/internal/auth"
	"godiya-emr-backend/internal/database"
	"godiya-emr-backend/internal/models"
	"godiya-emr-backend/internal/notifications"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreateStockEntryRequest struct {
	DrugID   uint   `json:"drug_id"`
	Type     string `json:"type"` // "received" | "adjustment"
	Quantity int    `json:"quantity"`
	Note     string `json:"note"`
}

// applyStockEntry inserts the ledger row and moves the drug's stock
// level inside one transaction.
func applyStockEntry(entry *models.StockEntry) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var drug models.Drug
		if err := tx.First(&drug, "id = ?", entry.DrugID).Error; err != nil {
			return fmt.Errorf("drug not found: %w", err)
		}

		newQuantity := drug.StockQuantity + entry.Quantity
		if newQuantity < 0 {
			return fmt.Errorf("stock cannot go below zero (current %d, change %d)", drug.StockQuantity, entry.Quantity)
		}

		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		return tx.Model(&models.Drug{}).Where("id = ?", drug.ID).
			Update("stock_quantity", newQuantity).Error
	})
}

// -------------------------------------------------
// POST /api/pharmacy/stock-entries
// -------------------------------------------------
func CreateStockEntryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateStockEntryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.DrugID == 0 || body.Quantity == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Drug and a non-zero quantity are required")
		}

		entryType := models.StockEntryType(body.Type)
		switch entryType {
		case models.StockReceived:
			if body.Quantity < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Received quantity must be positive")
			}
		case models.StockAdjustment:
			// signed either way
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Invalid type (received|adjustment)")
		}

		session, _ := auth.SessionFromContext(c)

		entry := models.StockEntry{
			DrugID:    body.DrugID,
			Type:      entryType,
			Quantity:  body.Quantity,
			Note:      body.Note,
			CreatedBy: session.Name,
		}

		if err := applyStockEntry(&entry); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if logErr := audit.WriteLog(audit.LogOptions{
			Session:     session,
			EntityType:  "stock_entry",
			EntityID:    entry.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Stock %s: drug %d, quantity %d", entry.Type, entry.DrugID, entry.Quantity),
			After:       entry,
		}); logErr != nil {
			fmt.Printf("Audit log could not be written: %v\n", logErr)
		}

		return c.Status(fiber.StatusCreated).JSON(entry)
	}
}

// -------------------------------------------------
// GET /api/pharmacy/stock-entries?drug_id=1
// -------------------------------------------------
func ListStockEntriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.StockEntry{}).Preload("Drug")

		if did := c.QueryInt("drug_id", 0); did > 0 {
			dbq = dbq.Where("drug_id = ?", did)
		}

		var entries []models.StockEntry
		if err := dbq.Order("id asc").Find(&entries).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Stock entries could not be listed")
		}

		return c.JSON(entries)
	}
}

// -------------------------------------------------
// POST /api/pharmacy/prescriptions/:id/dispense
// -------------------------------------------------
func DispenseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid prescription ID")
		}

		var prescription models.Prescription
		if err := database.DB.Preload("Patient").Preload("Items").Preload("Items.Drug").
			First(&prescription, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusNotFound, "Prescription not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Prescription could not be loaded")
		}

		if prescription.Status == models.PrescriptionDispensed {
			return fiber.NewError(fiber.StatusBadRequest, "Prescription has already been dispensed")
		}

		session, _ := auth.SessionFromContext(c)

		// One ledger entry per prescription line, stock checked as we go.
		err = database.DB.Transaction(func(tx *gorm.DB) error {
			for _, item := range prescription.Items {
				var drug models.Drug
				if err := tx.First(&drug, "id = ?", item.DrugID).Error; err != nil {
					return fmt.Errorf("drug %d not found: %w", item.DrugID, err)
				}
				if drug.StockQuantity < item.Quantity {
					return fmt.Errorf("insufficient stock of %s (have %d, need %d)", drug.Name, drug.StockQuantity, item.Quantity)
				}

				entry := models.StockEntry{
					DrugID:    item.DrugID,
					Type:      models.StockDispensed,
					Quantity:  -item.Quantity,
					Note:      fmt.Sprintf("Dispensed for %s", prescription.PrescriptionNumber),
					CreatedBy: session.Name,
				}
				if err := tx.Create(&entry).Error; err != nil {
					return err
				}
				if err := tx.Model(&models.Drug{}).Where("id = ?", drug.ID).
					Update("stock_quantity", drug.StockQuantity-item.Quantity).Error; err != nil {
					return err
				}
			}

			now := tx.NowFunc()
			return tx.Model(&models.Prescription{}).Where("id = ?", prescription.ID).
				Updates(map[string]interface{}{
					"status":       models.PrescriptionDispensed,
					"dispensed_at": now,
				}).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if logErr := audit.WriteLog(audit.LogOptions{
			Session:     session,
			EntityType:  "prescription",
			EntityID:    prescription.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Prescription dispensed: %s for %s", prescription.PrescriptionNumber, prescription.Patient.FullName()),
			Before:      prescription,
		}); logErr != nil {
			fmt.Printf("Audit log could not be written: %v\n", logErr)
		}

		// Flag any line that dropped a drug to its reorder level.
		var lowCount int64
		database.DB.Model(&models.Drug{}).Where("stock_quantity <= reorder_level").Count(&lowCount)
		if lowCount > 0 {
			notifications.Notify(models.RolePharmacy, models.NotificationWarning,
				"Low stock",
				fmt.Sprintf("%d drug(s) at or below reorder level", lowCount))
		}

		return c.JSON(fiber.Map{"message": "Prescription dispensed"})
	}
}
