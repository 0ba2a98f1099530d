package prescriptions

import (
	"fmt"

	"godiya-emr-backend/internal/audit"
	"godiya-emr-backend/internal/auth"
	"godiya-emr-backend/internal/database"
	"godiya-emr-backend/internal/models"
	"godiya-emr-backend/internal/notifications"

	"github.com/gofiber/fiber/v2"
)

type PrescriptionItemRequest struct {
	DrugID   uint   `json:"drug_id"`
	Dosage   string `json:"dosage"`
	Quantity int    `json:"quantity"`
}

type CreatePrescriptionRequest struct {
	PatientID uint                      `json:"patient_id"`
	Items     []PrescriptionItemRequest `json:"items"`
}

func newPrescriptionNumber() (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		candidate := models.NewRecordNumber("RX")
		var count int64
		if err := database.DB.Model(&models.Prescription{}).Where("prescription_number = ?", candidate).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique prescription number")
}

// -------------------------------------------------
// POST /api/prescriptions
// -------------------------------------------------
func CreatePrescriptionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreatePrescriptionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.PatientID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Patient is required")
		}
		if len(body.Items) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "At least one drug is required")
		}

		var patient models.Patient
		if err := database.DB.First(&patient, "id = ?", body.PatientID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Patient not found")
		}

		items := make([]models.PrescriptionItem, 0, len(body.Items))
		for _, it := range body.Items {
			if it.DrugID == 0 || it.Quantity <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Each line needs a drug and a positive quantity")
			}
			var drug models.Drug
			if err := database.DB.First(&drug, "id = ?", it.DrugID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Drug %d not found", it.DrugID))
			}
			items = append(items, models.PrescriptionItem{
				DrugID:   it.DrugID,
				Dosage:   it.Dosage,
				Quantity: it.Quantity,
			})
		}

		number, err := newPrescriptionNumber()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Prescription number could not be generated")
		}

		session, _ := auth.SessionFromContext(c)

		prescription := models.Prescription{
			PrescriptionNumber: number,
			PatientID:          body.PatientID,
			DoctorName:         session.Name,
			Items:              items,
			Status:             models.PrescriptionPending,
		}

		if err := database.DB.Create(&prescription).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Prescription could not be created")
		}
		prescription.Patient = patient

		if logErr := audit.WriteLog(audit.LogOptions{
			Session:     session,
			EntityType:  "prescription",
			EntityID:    prescription.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Prescription written: %s for %s", prescription.PrescriptionNumber, patient.FullName()),
			After:       prescription,
		}); logErr != nil {
			fmt.Printf("Audit log could not be written: %v\n", logErr)
		}

		notifications.Notify(models.RolePharmacy, models.NotificationInfo,
			"New prescription",
			fmt.Sprintf("%s for %s awaits dispense", prescription.PrescriptionNumber, patient.FullName()))

		return c.Status(fiber.StatusCreated).JSON(prescription)
	}
}

// -------------------------------------------------
// GET /api/prescriptions?status=pending&patient_id=4
// -------------------------------------------------
func ListPrescriptionsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Prescription{}).
			Preload("Patient").Preload("Items").Preload("Items.Drug")

		switch s := c.Query("status"); s {
		case "":
		case string(models.PrescriptionPending), string(models.PrescriptionDispensed):
			dbq = dbq.Where("status = ?", s)
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Invalid status (pending|dispensed)")
		}

		if pid := c.QueryInt("patient_id", 0); pid > 0 {
			dbq = dbq.Where("patient_id = ?", pid)
		}

		var list []models.Prescription
		if err := dbq.Order("id asc").Find(&list).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Prescriptions could not be listed")
		}

		return c.JSON(list)
	}
}
