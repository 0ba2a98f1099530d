package laboratory

import (
	"fmt"
	"time"

	"godiya-emr-backend/internal/audit"
	"godiya-emr-backend/internal/auth"
	"godiya-emr-backend/internal/database"
	"godiya-emr-backend/internal/models"
	"godiya-emr-backend/internal/notifications"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreateLabOrderRequest struct {
	PatientID uint   `json:"patient_id"`
	TestType  string `json:"test_type"`
}

type UpdateLabOrderRequest struct {
	Status *string `json:"status"`
	Result *string `json:"result"`
}

func newOrderNumber() (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		candidate := models.NewRecordNumber("LAB")
		var count int64
		if err := database.DB.Model(&models.LabOrder{}).Where("order_number = ?", candidate).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique order number")
}

// -------------------------------------------------
// POST /api/lab-orders
// -------------------------------------------------
func CreateLabOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateLabOrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.PatientID == 0 || body.TestType == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Patient and test type are required")
		}

		var patient models.Patient
		if err := database.DB.First(&patient, "id = ?", body.PatientID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Patient not found")
		}

		number, err := newOrderNumber()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Order number could not be generated")
		}

		session, _ := auth.SessionFromContext(c)

		order := models.LabOrder{
			OrderNumber: number,
			PatientID:   body.PatientID,
			TestType:    body.TestType,
			OrderedBy:   session.Name,
			Status:      models.LabOrderPending,
		}

		if err := database.DB.Create(&order).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Lab order could not be created")
		}
		order.Patient = patient

		if logErr := audit.WriteLog(audit.LogOptions{
			Session:     session,
			EntityType:  "lab_order",
			EntityID:    order.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Lab order: %s (%s) for %s", order.OrderNumber, order.TestType, patient.FullName()),
			After:       order,
		}); logErr != nil {
			fmt.Printf("Audit log could not be written: %v\n", logErr)
		}

		notifications.Notify(models.RoleLaboratory, models.NotificationInfo,
			"New test order",
			fmt.Sprintf("%s: %s for %s", order.OrderNumber, order.TestType, patient.FullName()))

		return c.Status(fiber.StatusCreated).JSON(order)
	}
}

// -------------------------------------------------
// GET /api/lab-orders?status=pending&patient_id=2
// -------------------------------------------------
func ListLabOrdersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.LabOrder{}).Preload("Patient")

		switch s := c.Query("status"); s {
		case "":
		case string(models.LabOrderPending), string(models.LabOrderInProgress), string(models.LabOrderCompleted):
			dbq = dbq.Where("status = ?", s)
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Invalid status (pending|in_progress|completed)")
		}

		if pid := c.QueryInt("patient_id", 0); pid > 0 {
			dbq = dbq.Where("patient_id = ?", pid)
		}

		var orders []models.LabOrder
		if err := dbq.Order("id asc").Find(&orders).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Lab orders could not be listed")
		}

		return c.JSON(orders)
	}
}

// -------------------------------------------------
// GET /api/lab-orders/pending-count
// -------------------------------------------------
func PendingCountHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var count int64
		if err := database.DB.Model(&models.LabOrder{}).
			Where("status = ?", models.LabOrderPending).
			Count(&count).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Count failed")
		}
		return c.JSON(fiber.Map{"count": count})
	}
}

// -------------------------------------------------
// PUT /api/lab-orders/:id
// -------------------------------------------------
func UpdateLabOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid order ID")
		}

		var body UpdateLabOrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		var order models.LabOrder
		if err := database.DB.Preload("Patient").First(&order, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusNotFound, "Lab order not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Lab order could not be loaded")
		}

		before := order

		if body.Result != nil {
			order.Result = *body.Result
		}
		if body.Status != nil {
			switch models.LabOrderStatus(*body.Status) {
			case models.LabOrderPending, models.LabOrderInProgress:
				order.Status = models.LabOrderStatus(*body.Status)
			case models.LabOrderCompleted:
				if order.Result == "" {
					return fiber.NewError(fiber.StatusBadRequest, "A result is required to complete an order")
				}
				order.Status = models.LabOrderCompleted
				now := time.Now()
				order.CompletedAt = &now
			default:
				return fiber.NewError(fiber.StatusBadRequest, "Invalid status (pending|in_progress|completed)")
			}
		}

		if err := database.DB.Save(&order).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Lab order could not be updated")
		}

		if session, ok := auth.SessionFromContext(c); ok {
			if logErr := audit.WriteLog(audit.LogOptions{
				Session:     session,
				EntityType:  "lab_order",
				EntityID:    order.ID,
				Action:      models.AuditActionUpdate,
				Description: fmt.Sprintf("Lab order updated: %s (%s)", order.OrderNumber, order.Status),
				Before:      before,
				After:       order,
			}); logErr != nil {
				fmt.Printf("Audit log could not be written: %v\n", logErr)
			}
		}

		if order.Status == models.LabOrderCompleted && before.Status != models.LabOrderCompleted {
			notifications.Notify(models.RoleDoctor, models.NotificationSuccess,
				"Lab result ready",
				fmt.Sprintf("%s (%s) for %s is complete", order.OrderNumber, order.TestType, order.Patient.FullName()))
		}

		return c.JSON(order)
	}
}
