package nursing

import (
	"fmt"

	"godiya-emr-backend/internal/audit"
	"godiya-emr-backend/internal/auth"
	"godiya-emr-backend/internal/database"
	"godiya-emr-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type RecordVitalsRequest struct {
	PatientID       uint    `json:"patient_id"`
	TemperatureC    float64 `json:"temperature_c"`
	BloodPressure   string  `json:"blood_pressure"`
	PulseBPM        int     `json:"pulse_bpm"`
	RespiratoryRate int     `json:"respiratory_rate"`
	WeightKG        float64 `json:"weight_kg"`
	Note            string  `json:"note"`
}

// -------------------------------------------------
// POST /api/vitals
// -------------------------------------------------
func RecordVitalsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RecordVitalsRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.PatientID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Patient is required")
		}

		var patient models.Patient
		if err := database.DB.First(&patient, "id = ?", body.PatientID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Patient not found")
		}

		session, _ := auth.SessionFromContext(c)

		vitals := models.VitalSign{
			PatientID:       body.PatientID,
			TemperatureC:    body.TemperatureC,
			BloodPressure:   body.BloodPressure,
			PulseBPM:        body.PulseBPM,
			RespiratoryRate: body.RespiratoryRate,
			WeightKG:        body.WeightKG,
			Note:            body.Note,
			RecordedBy:      session.Name,
		}

		if err := database.DB.Create(&vitals).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Vitals could not be recorded")
		}
		vitals.Patient = patient

		if logErr := audit.WriteLog(audit.LogOptions{
			Session:     session,
			EntityType:  "vital_sign",
			EntityID:    vitals.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Vitals recorded for %s", patient.FullName()),
			After:       vitals,
		}); logErr != nil {
			fmt.Printf("Audit log could not be written: %v\n", logErr)
		}

		return c.Status(fiber.StatusCreated).JSON(vitals)
	}
}

// -------------------------------------------------
// GET /api/vitals?patient_id=3
// -------------------------------------------------
func ListVitalsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.VitalSign{}).Preload("Patient")

		if pid := c.QueryInt("patient_id", 0); pid > 0 {
			dbq = dbq.Where("patient_id = ?", pid)
		}

		var vitals []models.VitalSign
		if err := dbq.Order("created_at desc").Find(&vitals).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Vitals could not be listed")
		}

		return c.JSON(vitals)
	}
}
