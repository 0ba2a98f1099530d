package appointments

import (
	"encoding/csv"
	"fmt"

	"godiya-emr-backend/internal/database"
	"godiya-emr-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{
	"Appointment No", "Patient", "Patient No", "Doctor", "Date", "Time", "Status", "Payment",
}

func exportRow(a models.Appointment) []string {
	return []string{
		a.AppointmentNumber,
		a.Patient.FullName(),
		a.Patient.PatientNumber,
		a.DoctorName,
		a.Date.Format("2006-01-02"),
		a.TimeSlot,
		string(a.Status),
		string(a.PaymentStatus()),
	}
}

// BuildWorkbook renders the appointment register as an xlsx workbook.
func BuildWorkbook(appts []models.Appointment) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Appointments"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	for col, h := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for rowIdx, a := range appts {
		for col, v := range exportRow(a) {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

// -------------------------------------------------
// GET /api/admin/appointments/export?format=xlsx|csv&status=completed
// -------------------------------------------------
func ExportAppointmentsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		format := c.Query("format", "xlsx")
		if format != "xlsx" && format != "csv" {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid format (xlsx|csv)")
		}

		filter := Filter{Query: c.Query("q")}
		if s := c.Query("status"); s != "" {
			status, ok := parseStatus(s)
			if !ok {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid status (scheduled|in_progress|completed|cancelled)")
			}
			filter.Status = status
		}

		var all []models.Appointment
		if err := database.DB.Preload("Patient").Order("id asc").Find(&all).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Appointments could not be loaded")
		}
		appts := filter.Apply(all)

		if format == "csv" {
			c.Set(fiber.HeaderContentType, "text/csv")
			c.Set(fiber.HeaderContentDisposition, `attachment; filename="appointments.csv"`)

			w := csv.NewWriter(c.Response().BodyWriter())
			if err := w.Write(exportHeaders); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Export failed")
			}
			for _, a := range appts {
				if err := w.Write(exportRow(a)); err != nil {
					return fiber.NewError(fiber.StatusInternalServerError, "Export failed")
				}
			}
			w.Flush()
			if err := w.Error(); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Export failed")
			}
			return nil
		}

		f, err := BuildWorkbook(appts)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("Export failed: %v", err))
		}

		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="appointments.xlsx"`)

		if err := f.Write(c.Response().BodyWriter()); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Export failed")
		}
		return nil
	}
}
