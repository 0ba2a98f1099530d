package appointments

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

type CreateAppointmentRequest struct {
	PatientID    uint   `json:"patient_id"`
	DoctorName   string `json:"doctor_name"`
	DepartmentID *uint  `json:"department_id"`
	Date         string `json:"date"` // "2006-01-02", empty means today
	TimeSlot     string `json:"time_slot"`
	Reason       string `json:"reason"`
}

type UpdateAppointmentRequest struct {
	DoctorName *string `json:"doctor_name"`
	Date       *string `json:"date"`
	TimeSlot   *string `json:"time_slot"`
	Reason     *string `json:"reason"`
	Status     *string `json:"status"`
}

type AppointmentResponse struct {
	models.Appointment
	PaymentStatus models.PaymentStatus `json:"payment_status"`
}

type AppointmentPageResponse struct {
	Items      []AppointmentResponse `json:"items"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"page_size"`
	TotalPages int                   `json:"total_pages"`
	TotalCount int                   `json:"total_count"`
}

func toResponse(list []models.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, AppointmentResponse{Appointment: a, PaymentStatus: a.PaymentStatus()})
	}
	return out
}

func parseStatus(s string) (models.AppointmentStatus, bool) {
	switch models.AppointmentStatus(s) {
	case models.AppointmentScheduled, models.AppointmentInProgress,
		models.AppointmentCompleted, models.AppointmentCancelled:
		return models.AppointmentStatus(s), true
	}
	return "", false
}

func newAppointmentNumber() (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		candidate := models.NewRecordNumber("APT")
		var count int64
		if err := database.DB.Model(&models.Appointment{}).Where("appointment_number = ?", candidate).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique appointment number")
}

// -------------------------------------------------
// POST /api/appointments
// -------------------------------------------------
func CreateAppointmentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateAppointmentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.PatientID == 0 || body.DoctorName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Patient and doctor are required")
		}

		var patient models.Patient
		if err := database.DB.First(&patient, "id = ?", body.PatientID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Patient not found")
		}

		if body.DepartmentID != nil {
			var dept models.Department
			if err := database.DB.First(&dept, "id = ?", *body.DepartmentID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Department not found")
			}
		}

		var date time.Time
		if body.Date == "" {
			now := time.Now()
			date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		} else {
			d, err := time.Parse("2006-01-02", body.Date)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Date must be 'YYYY-MM-DD'")
			}
			date = d
		}

		number, err := newAppointmentNumber()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Appointment number could not be generated")
		}

		appt := models.Appointment{
			AppointmentNumber: number,
			PatientID:         body.PatientID,
			DoctorName:        body.DoctorName,
			DepartmentID:      body.DepartmentID,
			Date:              date,
			TimeSlot:          body.TimeSlot,
			Reason:            body.Reason,
			Status:            models.AppointmentScheduled,
		}

		if err := database.DB.Create(&appt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Appointment could not be created")
		}
		appt.Patient = patient

		if session, ok := auth.SessionFromContext(c); ok {
			if logErr := audit.WriteLog(audit.LogOptions{
				Session:     session,
				EntityType:  "appointment",
				EntityID:    appt.ID,
				Action:      models.AuditActionCreate,
				Description: fmt.Sprintf("Appointment booked: %s for %s with %s", appt.AppointmentNumber, patient.FullName(), appt.DoctorName),
				After:       appt,
			}); logErr != nil {
				fmt.Printf("Audit log could not be written: %v\n", logErr)
			}
		}

		return c.Status(fiber.StatusCreated).JSON(AppointmentResponse{Appointment: appt, PaymentStatus: appt.PaymentStatus()})
	}
}

// -------------------------------------------------
// GET /api/appointments?q=amina&status=completed&payment=paid&page=2
// -------------------------------------------------
func ListAppointmentsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := Filter{Query: c.Query("q")}

		if s := c.Query("status"); s != "" {
			status, ok := parseStatus(s)
			if !ok {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid status (scheduled|in_progress|completed|cancelled)")
			}
			filter.Status = status
		}

		switch p := c.Query("payment"); p {
		case "":
		case string(models.PaymentPaid), string(models.PaymentUnpaid):
			filter.Payment = models.PaymentStatus(p)
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Invalid payment status (paid|unpaid)")
		}

		var all []models.Appointment
		if err := database.DB.Preload("Patient").Preload("Department").
			Order("id asc").Find(&all).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Appointments could not be listed")
		}

		filtered := filter.Apply(all)
		items, page, totalPages := Paginate(filtered, c.QueryInt("page", 1))

		return c.JSON(AppointmentPageResponse{
			Items:      toResponse(items),
			Page:       page,
			PageSize:   PageSize,
			TotalPages: totalPages,
			TotalCount: len(filtered),
		})
	}
}

// -------------------------------------------------
// GET /api/appointments/:id
// -------------------------------------------------
func GetAppointmentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid appointment ID")
		}

		var appt models.Appointment
		if err := database.DB.Preload("Patient").Preload("Department").First(&appt, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Appointment not found")
		}

		return c.JSON(AppointmentResponse{Appointment: appt, PaymentStatus: appt.PaymentStatus()})
	}
}

// -------------------------------------------------
// PUT /api/appointments/:id
// -------------------------------------------------
func UpdateAppointmentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid appointment ID")
		}

		var body UpdateAppointmentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		var appt models.Appointment
		if err := database.DB.Preload("Patient").First(&appt, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusNotFound, "Appointment not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Appointment could not be loaded")
		}

		before := appt

		if body.DoctorName != nil {
			appt.DoctorName = *body.DoctorName
		}
		if body.Date != nil {
			d, err := time.Parse("2006-01-02", *body.Date)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Date must be 'YYYY-MM-DD'")
			}
			appt.Date = d
		}
		if body.TimeSlot != nil {
			appt.TimeSlot = *body.TimeSlot
		}
		if body.Reason != nil {
			appt.Reason = *body.Reason
		}
		if body.Status != nil {
			status, ok := parseStatus(*body.Status)
			if !ok {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid status (scheduled|in_progress|completed|cancelled)")
			}
			appt.Status = status
		}

		if err := database.DB.Save(&appt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Appointment could not be updated")
		}

		if session, ok := auth.SessionFromContext(c); ok {
			if logErr := audit.WriteLog(audit.LogOptions{
				Session:     session,
				EntityType:  "appointment",
				EntityID:    appt.ID,
				Action:      models.AuditActionUpdate,
				Description: fmt.Sprintf("Appointment updated: %s (%s)", appt.AppointmentNumber, appt.Status),
				Before:      before,
				After:       appt,
			}); logErr != nil {
				fmt.Printf("Audit log could not be written: %v\n", logErr)
			}
		}

		return c.JSON(AppointmentResponse{Appointment: appt, PaymentStatus: appt.PaymentStatus()})
	}
}
