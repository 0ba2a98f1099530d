package billing

import (
	"errors"
	"fmt"
	"time"

	"godiya-emr-backend/internal/audit"
	"godiya-emr-backend/internal/auth"
	"godiya-emr-backend/internal/database"
	"godiya-emr-backend/internal/models"
	"godiya-emr-backend/internal/notifications"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// errOverpaid aborts the payment transaction when the locked re-read
// shows the amount no longer fits the outstanding balance.
var errOverpaid = errors.New("amount exceeds outstanding balance")

type InvoiceItemRequest struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type CreateInvoiceRequest struct {
	PatientID uint                 `json:"patient_id"`
	Items     []InvoiceItemRequest `json:"items"`
}

type RecordPaymentRequest struct {
	Amount float64 `json:"amount"`
	Method string  `json:"method"` // "cash" | "pos" | "transfer"
}

type DailySummaryResponse struct {
	Date       string             `json:"date"`
	Items      []DailySummaryItem `json:"items"`
	GrandTotal float64            `json:"grand_total"`
}

type DailySummaryItem struct {
	Method models.PaymentMethod `json:"method"`
	Total  float64              `json:"total"`
}

func newInvoiceNumber() (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		candidate := models.NewRecordNumber("INV")
		var count int64
		if err := database.DB.Model(&models.Invoice{}).Where("invoice_number = ?", candidate).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique invoice number")
}

// -------------------------------------------------
// POST /api/billing/invoices
// -------------------------------------------------
func CreateInvoiceHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateInvoiceRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.PatientID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Patient is required")
		}
		if len(body.Items) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "At least one line item is required")
		}

		var patient models.Patient
		if err := database.DB.First(&patient, "id = ?", body.PatientID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Patient not found")
		}

		items := make([]models.InvoiceItem, 0, len(body.Items))
		total := 0.0
		for _, it := range body.Items {
			if it.Description == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Line item description is required")
			}
			qty := it.Quantity
			if qty <= 0 {
				qty = 1
			}
			if it.UnitPrice < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Unit price cannot be negative")
			}
			amount := float64(qty) * it.UnitPrice
			total += amount
			items = append(items, models.InvoiceItem{
				Description: it.Description,
				Quantity:    qty,
				UnitPrice:   it.UnitPrice,
				Amount:      amount,
			})
		}

		number, err := newInvoiceNumber()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Invoice number could not be generated")
		}

		session, _ := auth.SessionFromContext(c)

		invoice := models.Invoice{
			InvoiceNumber: number,
			PatientID:     body.PatientID,
			Items:         items,
			Total:         total,
			Status:        models.InvoiceUnpaid,
			IssuedBy:      session.Name,
		}

		if err := database.DB.Create(&invoice).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Invoice could not be created")
		}
		invoice.Patient = patient

		if logErr := audit.WriteLog(audit.LogOptions{
			Session:     session,
			EntityType:  "invoice",
			EntityID:    invoice.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Invoice issued: %s for %s, total %.2f", invoice.InvoiceNumber, patient.FullName(), invoice.Total),
			After:       invoice,
		}); logErr != nil {
			fmt.Printf("Audit log could not be written: %v\n", logErr)
		}

		return c.Status(fiber.StatusCreated).JSON(invoice)
	}
}

// -------------------------------------------------
// GET /api/billing/invoices?status=unpaid&patient_id=3
// -------------------------------------------------
func ListInvoicesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Invoice{}).Preload("Patient").Preload("Items")

		switch s := c.Query("status"); s {
		case "":
		case string(models.InvoiceUnpaid), string(models.InvoicePartial), string(models.InvoicePaid):
			dbq = dbq.Where("status = ?", s)
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Invalid status (unpaid|partial|paid)")
		}

		if pid := c.QueryInt("patient_id", 0); pid > 0 {
			dbq = dbq.Where("patient_id = ?", pid)
		}

		var invoices []models.Invoice
		if err := dbq.Order("id asc").Find(&invoices).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Invoices could not be listed")
		}

		return c.JSON(invoices)
	}
}

// -------------------------------------------------
// GET /api/billing/invoices/:id
// -------------------------------------------------
func GetInvoiceHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid invoice ID")
		}

		var invoice models.Invoice
		if err := database.DB.Preload("Patient").Preload("Items").First(&invoice, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Invoice not found")
		}

		return c.JSON(invoice)
	}
}

// -------------------------------------------------
// POST /api/billing/invoices/:id/payments
// -------------------------------------------------
func RecordPaymentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid invoice ID")
		}

		var body RecordPaymentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Amount <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Amount must be greater than 0")
		}

		method := models.PaymentMethod(body.Method)
		switch method {
		case models.PaymentMethodCash, models.PaymentMethodPOS, models.PaymentMethodTransfer:
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Invalid method (cash|pos|transfer)")
		}

		var invoice models.Invoice
		if err := database.DB.Preload("Patient").First(&invoice, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusNotFound, "Invoice not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Invoice could not be loaded")
		}

		if invoice.Status == models.InvoicePaid {
			return fiber.NewError(fiber.StatusBadRequest, "Invoice is already fully paid")
		}

		session, _ := auth.SessionFromContext(c)

		payment := models.Payment{
			InvoiceID:     invoice.ID,
			ReceiptNumber: uuid.NewString(),
			Amount:        body.Amount,
			Method:        method,
			ReceivedBy:    session.Name,
		}

		var before models.Invoice
		err = database.DB.Transaction(func(tx *gorm.DB) error {
			// The balance check must run on a locked re-read: two
			// payments taken at the same desk must not both pass it.
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&invoice, "id = ?", invoice.ID).Error; err != nil {
				return err
			}
			before = invoice

			if body.Amount > invoice.Total-invoice.AmountPaid {
				return errOverpaid
			}

			if err := tx.Create(&payment).Error; err != nil {
				return err
			}

			invoice.AmountPaid += body.Amount
			if invoice.AmountPaid >= invoice.Total {
				invoice.Status = models.InvoicePaid
			} else {
				invoice.Status = models.InvoicePartial
			}
			return tx.Model(&models.Invoice{}).Where("id = ?", invoice.ID).Updates(map[string]interface{}{
				"amount_paid": invoice.AmountPaid,
				"status":      invoice.Status,
			}).Error
		})
		if err == errOverpaid {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Amount exceeds outstanding balance of %.2f", invoice.Total-invoice.AmountPaid))
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Payment could not be recorded")
		}

		if logErr := audit.WriteLog(audit.LogOptions{
			Session:     session,
			EntityType:  "invoice",
			EntityID:    invoice.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Payment of %.2f (%s) on %s", payment.Amount, payment.Method, invoice.InvoiceNumber),
			Before:      before,
			After:       invoice,
		}); logErr != nil {
			fmt.Printf("Audit log could not be written: %v\n", logErr)
		}

		if invoice.Status == models.InvoicePaid {
			notifications.Notify(models.RoleCashier, models.NotificationSuccess,
				"Invoice settled",
				fmt.Sprintf("%s for %s is fully paid", invoice.InvoiceNumber, invoice.Patient.FullName()))
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"payment": payment,
			"invoice": invoice,
		})
	}
}

// -------------------------------------------------
// GET /api/billing/payments?date=2026-08-30
// -------------------------------------------------
func ListPaymentsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Payment{})

		if dateStr := c.Query("date"); dateStr != "" {
			day, err := time.Parse("2006-01-02", dateStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Date must be 'YYYY-MM-DD'")
			}
			dbq = dbq.Where("created_at >= ? AND created_at < ?", day, day.AddDate(0, 0, 1))
		}

		var payments []models.Payment
		if err := dbq.Order("id asc").Find(&payments).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Payments could not be listed")
		}

		return c.JSON(payments)
	}
}

// -------------------------------------------------
// GET /api/billing/summary/daily?date=2026-08-30
// -------------------------------------------------
func DailySummaryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dateStr := c.Query("date")
		var day time.Time
		if dateStr == "" {
			now := time.Now()
			day = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		} else {
			d, err := time.Parse("2006-01-02", dateStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Date must be 'YYYY-MM-DD'")
			}
			day = d
		}

		type row struct {
			Method string  `gorm:"column:method"`
			Total  float64 `gorm:"column:total"`
		}
		var rows []row

		if err := database.DB.Model(&models.Payment{}).
			Select("method, SUM(amount) as total").
			Where("created_at >= ? AND created_at < ?", day, day.AddDate(0, 0, 1)).
			Group("method").
			Scan(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Summary could not be computed")
		}

		resp := DailySummaryResponse{
			Date:  day.Format("2006-01-02"),
			Items: make([]DailySummaryItem, 0, len(rows)),
		}
		for _, r := range rows {
			resp.Items = append(resp.Items, DailySummaryItem{
				Method: models.PaymentMethod(r.Method),
				Total:  r.Total,
			})
			resp.GrandTotal += r.Total
		}

		return c.JSON(resp)
	}
}
