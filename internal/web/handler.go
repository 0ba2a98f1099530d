package web

import (
	"fmt"
	"time"

	"godiya-emr-backend/internal/config"
	"godiya-emr-backend/internal/database"
	"godiya-emr-backend/internal/models"
	"godiya-emr-backend/internal/notifications"

	"github.com/gofiber/fiber/v2"
)

// Handlers for the public marketing site forms. No session required;
// submissions land in the enquiry queue reception works through.

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type AppointmentRequestBody struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	DepartmentName string `json:"department_name"`
	PreferredDate  string `json:"preferred_date"` // "2006-01-02", optional
	Message        string `json:"message"`
}

// -------------------------------------------------
// POST /api/public/contact
// -------------------------------------------------
func ContactHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ContactRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Name == "" || body.Message == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name and message are required")
		}
		if body.Email == "" && body.Phone == "" {
			return fiber.NewError(fiber.StatusBadRequest, "An email or phone number is required")
		}

		enquiry := models.Enquiry{
			Kind:    models.EnquiryContact,
			Name:    body.Name,
			Email:   body.Email,
			Phone:   body.Phone,
			Subject: body.Subject,
			Message: body.Message,
		}

		if err := database.DB.Create(&enquiry).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Message could not be submitted")
		}

		// The marketing site shows a spinner while it "sends".
		time.Sleep(cfg.SimulatedLatency)

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Thank you, we will get back to you shortly",
		})
	}
}

// -------------------------------------------------
// POST /api/public/appointment-requests
// -------------------------------------------------
func AppointmentRequestHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body AppointmentRequestBody
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Name == "" || body.Phone == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name and phone are required")
		}

		var preferred *time.Time
		if body.PreferredDate != "" {
			d, err := time.Parse("2006-01-02", body.PreferredDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Preferred date must be 'YYYY-MM-DD'")
			}
			preferred = &d
		}

		enquiry := models.Enquiry{
			Kind:           models.EnquiryAppointmentRequest,
			Name:           body.Name,
			Email:          body.Email,
			Phone:          body.Phone,
			DepartmentName: body.DepartmentName,
			PreferredDate:  preferred,
			Message:        body.Message,
		}

		if err := database.DB.Create(&enquiry).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Request could not be submitted")
		}

		notifications.Notify(models.RoleReception, models.NotificationInfo,
			"Appointment request",
			fmt.Sprintf("%s requested an appointment (%s)", enquiry.Name, enquiry.DepartmentName))

		time.Sleep(cfg.SimulatedLatency)

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Request received, our reception desk will call you to confirm",
		})
	}
}

// -------------------------------------------------
// GET /api/enquiries?kind=appointment_request&handled=false
// -------------------------------------------------
func ListEnquiriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Enquiry{})

		switch k := c.Query("kind"); k {
		case "":
		case string(models.EnquiryContact), string(models.EnquiryAppointmentRequest):
			dbq = dbq.Where("kind = ?", k)
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Invalid kind (contact|appointment_request)")
		}

		if h := c.Query("handled"); h != "" {
			dbq = dbq.Where("handled = ?", h == "true")
		}

		var enquiries []models.Enquiry
		if err := dbq.Order("created_at desc").Find(&enquiries).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Enquiries could not be listed")
		}

		return c.JSON(enquiries)
	}
}

// -------------------------------------------------
// PUT /api/enquiries/:id/handled
// -------------------------------------------------
func MarkEnquiryHandledHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid enquiry ID")
		}

		res := database.DB.Model(&models.Enquiry{}).Where("id = ?", id).Update("handled", true)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Enquiry could not be updated")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Enquiry not found")
		}

		return c.JSON(fiber.Map{"message": "Marked as handled"})
	}
}
