package billing

import (
	"bytes"
	"fmt"
	"html/template"

	"godiya-emr-backend/internal/database"
	"godiya-emr-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ReceiptData is everything the printable receipt template needs.
type ReceiptData struct {
	Hospital      string
	ReceiptNumber string
	InvoiceNumber string
	PatientName   string
	PatientNumber string
	Items         []models.InvoiceItem
	Total         float64
	AmountPaid    float64
	Outstanding   float64
	Amount        float64
	Method        models.PaymentMethod
	ReceivedBy    string
	Date          string
}

var receiptTmpl = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Receipt {{.ReceiptNumber}}</title>
<style>
  body { font-family: Arial, sans-serif; max-width: 640px; margin: 2rem auto; color: #222; }
  h1 { font-size: 1.2rem; margin-bottom: 0; }
  .muted { color: #777; font-size: 0.85rem; }
  table { width: 100%; border-collapse: collapse; margin: 1rem 0; }
  th, td { text-align: left; padding: 0.4rem 0.6rem; border-bottom: 1px solid #ddd; }
  td.num, th.num { text-align: right; }
  .totals td { border: none; padding: 0.2rem 0.6rem; }
  @media print { body { margin: 0; } }
</style>
</head>
<body>
<h1>{{.Hospital}}</h1>
<p class="muted">Official Payment Receipt</p>
<p>
  Receipt No: <strong>{{.ReceiptNumber}}</strong><br>
  Invoice No: {{.InvoiceNumber}}<br>
  Date: {{.Date}}
</p>
<p>
  Patient: <strong>{{.PatientName}}</strong> ({{.PatientNumber}})
</p>
<table>
  <tr><th>Description</th><th class="num">Qty</th><th class="num">Unit Price</th><th class="num">Amount</th></tr>
  {{range .Items}}
  <tr><td>{{.Description}}</td><td class="num">{{.Quantity}}</td><td class="num">{{printf "%.2f" .UnitPrice}}</td><td class="num">{{printf "%.2f" .Amount}}</td></tr>
  {{end}}
</table>
<table class="totals">
  <tr><td>Invoice total</td><td class="num">{{printf "%.2f" .Total}}</td></tr>
  <tr><td>Paid this receipt ({{.Method}})</td><td class="num">{{printf "%.2f" .Amount}}</td></tr>
  <tr><td>Total paid to date</td><td class="num">{{printf "%.2f" .AmountPaid}}</td></tr>
  <tr><td>Outstanding</td><td class="num">{{printf "%.2f" .Outstanding}}</td></tr>
</table>
<p class="muted">Received by {{.ReceivedBy}}. Thank you.</p>
</body>
</html>
`))

// RenderReceipt produces the printable HTML for one payment.
func RenderReceipt(data ReceiptData) (string, error) {
	var buf bytes.Buffer
	if err := receiptTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("receipt could not be rendered: %w", err)
	}
	return buf.String(), nil
}

// -------------------------------------------------
// GET /api/billing/payments/:id/receipt
// -------------------------------------------------
func ReceiptHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid payment ID")
		}

		var payment models.Payment
		if err := database.DB.First(&payment, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Payment not found")
		}

		var invoice models.Invoice
		if err := database.DB.Preload("Patient").Preload("Items").First(&invoice, "id = ?", payment.InvoiceID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Invoice could not be loaded")
		}

		html, err := RenderReceipt(ReceiptData{
			Hospital:      "Godiya Hospital",
			ReceiptNumber: payment.ReceiptNumber,
			InvoiceNumber: invoice.InvoiceNumber,
			PatientName:   invoice.Patient.FullName(),
			PatientNumber: invoice.Patient.PatientNumber,
			Items:         invoice.Items,
			Total:         invoice.Total,
			AmountPaid:    invoice.AmountPaid,
			Outstanding:   invoice.Total - invoice.AmountPaid,
			Amount:        payment.Amount,
			Method:        payment.Method,
			ReceivedBy:    payment.ReceivedBy,
			Date:          payment.CreatedAt.Format("2006-01-02 15:04"),
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Receipt could not be rendered")
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(html)
	}
}
