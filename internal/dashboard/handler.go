package dashboard

import (
	"time"

	"godiya-emr-backend/internal/auth"
	"godiya-emr-backend/internal/database"
	"godiya-emr-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type StatsResponse struct {
	Role              models.StaffRole `json:"role"`
	Patients          int64            `json:"patients"`
	PatientsIPD       int64            `json:"patients_ipd"`
	AppointmentsToday int64            `json:"appointments_today"`
	PendingLabOrders  int64            `json:"pending_lab_orders"`
	UnpaidInvoices    int64            `json:"unpaid_invoices"`
	LowStockDrugs     int64            `json:"low_stock_drugs"`
	UnreadNotices     int64            `json:"unread_notifications"`
}

type AppointmentChartPoint struct {
	Label     string `json:"label"` // day, "2006-01-02"
	Scheduled int64  `json:"scheduled"`
	Completed int64  `json:"completed"`
	Cancelled int64  `json:"cancelled"`
	Total     int64  `json:"total"`
}

type AppointmentChartResponse struct {
	From   string                  `json:"from"`
	To     string                  `json:"to"`
	Points []AppointmentChartPoint `json:"points"`
}

// -------------------------------------------------
// GET /api/dashboard/stats
// -------------------------------------------------
// One stats payload serves every role's landing page; the frontend
// picks which cards to show.
func StatsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := auth.SessionFromContext(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "No active session")
		}

		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

		resp := StatsResponse{Role: session.Role}
		database.DB.Model(&models.Patient{}).Count(&resp.Patients)
		database.DB.Model(&models.Patient{}).Where("category = ?", models.PatientIPD).Count(&resp.PatientsIPD)
		database.DB.Model(&models.Appointment{}).
			Where("date >= ? AND date < ?", today, today.AddDate(0, 0, 1)).
			Count(&resp.AppointmentsToday)
		database.DB.Model(&models.LabOrder{}).
			Where("status = ?", models.LabOrderPending).Count(&resp.PendingLabOrders)
		database.DB.Model(&models.Invoice{}).
			Where("status <> ?", models.InvoicePaid).Count(&resp.UnpaidInvoices)
		database.DB.Model(&models.Drug{}).
			Where("stock_quantity <= reorder_level").Count(&resp.LowStockDrugs)
		database.DB.Model(&models.Notification{}).
			Where("role = ? AND read = ?", session.Role, false).Count(&resp.UnreadNotices)

		return c.JSON(resp)
	}
}

// -------------------------------------------------
// GET /api/dashboard/appointments-chart?days=7
// -------------------------------------------------
func AppointmentsChartHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		days := c.QueryInt("days", 7)
		if days <= 0 || days > 90 {
			return fiber.NewError(fiber.StatusBadRequest, "days must be between 1 and 90")
		}

		now := time.Now()
		loc := now.Location()
		end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
		start := end.AddDate(0, 0, -(days - 1))

		type row struct {
			Bucket time.Time `gorm:"column:bucket"`
			Status string    `gorm:"column:status"`
			Count  int64     `gorm:"column:count"`
		}
		var rows []row

		if err := database.DB.Model(&models.Appointment{}).
			Select("DATE_TRUNC('day', date) as bucket, status, COUNT(*) as count").
			Where("date >= ? AND date < ?", start, end.AddDate(0, 0, 1)).
			Group("bucket, status").
			Order("bucket asc").
			Scan(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Chart could not be computed")
		}

		// Emit a point per day so the chart has no gaps.
		pointIndex := make(map[string]*AppointmentChartPoint, days)
		points := make([]AppointmentChartPoint, days)
		for i := 0; i < days; i++ {
			label := start.AddDate(0, 0, i).Format("2006-01-02")
			points[i] = AppointmentChartPoint{Label: label}
			pointIndex[label] = &points[i]
		}

		for _, r := range rows {
			p, ok := pointIndex[r.Bucket.Format("2006-01-02")]
			if !ok {
				continue
			}
			switch models.AppointmentStatus(r.Status) {
			case models.AppointmentScheduled, models.AppointmentInProgress:
				p.Scheduled += r.Count
			case models.AppointmentCompleted:
				p.Completed += r.Count
			case models.AppointmentCancelled:
				p.Cancelled += r.Count
			}
			p.Total += r.Count
		}

		return c.JSON(AppointmentChartResponse{
			From:   start.Format("2006-01-02"),
			To:     end.Format("2006-01-02"),
			Points: points,
		})
	}
}
