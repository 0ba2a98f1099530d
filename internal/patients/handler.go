package patients

import (
	"fmt"
	"time"

	"godiya-emr-backend/internal/audit"
	"godiya-emr-backend/internal/auth"
	"godiya-emr-backend/internal/database"
	"godiya-emr-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreatePatientRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Gender      string `json:"gender"`
	DateOfBirth string `json:"date_of_birth"` // "2006-01-02", optional
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	BloodGroup  string `json:"blood_group"`
	Category    string `json:"category"` // "opd" | "ipd", defaults to opd
}

type UpdatePatientRequest struct {
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	Gender     *string `json:"gender"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
	BloodGroup *string `json:"blood_group"`
	Category   *string `json:"category"`
}

// newPatientNumber generates a candidate record number and retries on
// the rare collision with an existing row.
func newPatientNumber() (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		candidate := models.NewRecordNumber("PT")
		var count int64
		if err := database.DB.Model(&models.Patient{}).Where("patient_number = ?", candidate).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique patient number")
}

// -------------------------------------------------
// POST /api/patients
// -------------------------------------------------
func CreatePatientHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreatePatientRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.FirstName == "" || body.LastName == "" || body.Phone == "" {
			return fiber.NewError(fiber.StatusBadRequest, "First name, last name and phone are required")
		}

		category := models.PatientOPD
		switch body.Category {
		case "", string(models.PatientOPD):
			// default
		case string(models.PatientIPD):
			category = models.PatientIPD
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Invalid category (opd|ipd)")
		}

		// The registration modal warns on duplicate phone numbers
		// before saving; the server enforces the same rule.
		var existing int64
		if err := database.DB.Model(&models.Patient{}).Where("phone = ?", body.Phone).Count(&existing).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Duplicate check failed")
		}
		if existing > 0 {
			return fiber.NewError(fiber.StatusConflict, "A patient with this phone number already exists")
		}

		var dob *time.Time
		if body.DateOfBirth != "" {
			d, err := time.Parse("2006-01-02", body.DateOfBirth)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Date of birth must be 'YYYY-MM-DD'")
			}
			dob = &d
		}

		number, err := newPatientNumber()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Patient number could not be generated")
		}

		patient := models.Patient{
			PatientNumber: number,
			FirstName:     body.FirstName,
			LastName:      body.LastName,
			Gender:        body.Gender,
			DateOfBirth:   dob,
			Phone:         body.Phone,
			Address:       body.Address,
			BloodGroup:    body.BloodGroup,
			Category:      category,
		}

		if err := database.DB.Create(&patient).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Patient could not be registered")
		}

		if session, ok := auth.SessionFromContext(c); ok {
			if logErr := audit.WriteLog(audit.LogOptions{
				Session:     session,
				EntityType:  "patient",
				EntityID:    patient.ID,
				Action:      models.AuditActionCreate,
				Description: fmt.Sprintf("Patient registered: %s (%s)", patient.FullName(), patient.PatientNumber),
				After:       patient,
			}); logErr != nil {
				fmt.Printf("Audit log could not be written: %v\n", logErr)
			}
		}

		return c.Status(fiber.StatusCreated).JSON(patient)
	}
}

// -------------------------------------------------
// GET /api/patients?category=ipd&q=halima
// -------------------------------------------------
func ListPatientsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		category := c.Query("category")
		q := c.Query("q")

		dbq := database.DB.Model(&models.Patient{})

		switch category {
		case "":
			// all patients
		case string(models.PatientOPD), string(models.PatientIPD):
			dbq = dbq.Where("category = ?", category)
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Invalid category (opd|ipd)")
		}

		if q != "" {
			like := "%" + q + "%"
			dbq = dbq.Where(
				"first_name ILIKE ? OR last_name ILIKE ? OR patient_number ILIKE ? OR phone ILIKE ?",
				like, like, like, like,
			)
		}

		var patients []models.Patient
		if err := dbq.Order("id asc").Find(&patients).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Patients could not be listed")
		}

		return c.JSON(patients)
	}
}

// -------------------------------------------------
// GET /api/patients/:id
// -------------------------------------------------
func GetPatientHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid patient ID")
		}

		var patient models.Patient
		if err := database.DB.First(&patient, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Patient not found")
		}

		return c.JSON(patient)
	}
}

// -------------------------------------------------
// PUT /api/patients/:id
// -------------------------------------------------
func UpdatePatientHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid patient ID")
		}

		var body UpdatePatientRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		var patient models.Patient
		if err := database.DB.First(&patient, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusNotFound, "Patient not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Patient could not be loaded")
		}

		before := patient

		if body.FirstName != nil {
			patient.FirstName = *body.FirstName
		}
		if body.LastName != nil {
			patient.LastName = *body.LastName
		}
		if body.Gender != nil {
			patient.Gender = *body.Gender
		}
		if body.Phone != nil && *body.Phone != patient.Phone {
			var existing int64
			if err := database.DB.Model(&models.Patient{}).
				Where("phone = ? AND id <> ?", *body.Phone, patient.ID).
				Count(&existing).Error; err == nil && existing > 0 {
				return fiber.NewError(fiber.StatusConflict, "A patient with this phone number already exists")
			}
			patient.Phone = *body.Phone
		}
		if body.Address != nil {
			patient.Address = *body.Address
		}
		if body.BloodGroup != nil {
			patient.BloodGroup = *body.BloodGroup
		}
		if body.Category != nil {
			switch *body.Category {
			case string(models.PatientOPD):
				patient.Category = models.PatientOPD
			case string(models.PatientIPD):
				patient.Category = models.PatientIPD
			default:
				return fiber.NewError(fiber.StatusBadRequest, "Invalid category (opd|ipd)")
			}
		}

		if err := database.DB.Save(&patient).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Patient could not be updated")
		}

		if session, ok := auth.SessionFromContext(c); ok {
			if logErr := audit.WriteLog(audit.LogOptions{
				Session:     session,
				EntityType:  "patient",
				EntityID:    patient.ID,
				Action:      models.AuditActionUpdate,
				Description: fmt.Sprintf("Patient updated: %s (%s)", patient.FullName(), patient.PatientNumber),
				Before:      before,
				After:       patient,
			}); logErr != nil {
				fmt.Printf("Audit log could not be written: %v\n", logErr)
			}
		}

		return c.JSON(patient)
	}
}
