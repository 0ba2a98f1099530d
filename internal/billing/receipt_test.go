package billing

import (
	"testing"

	"godiya-emr-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderReceipt(t *testing.T) {
	html, err := RenderReceipt(ReceiptData{
		Hospital:      "Godiya Hospital",
		ReceiptNumber: "4f1c2a9e-0000-0000-0000-000000000000",
		InvoiceNumber: "INV-000042",
		PatientName:   "Grace Okafor",
		PatientNumber: "PT-000007",
		Items: []models.InvoiceItem{
			{Description: "Consultation", Quantity: 1, UnitPrice: 5000, Amount: 5000},
			{Description: "Malaria test", Quantity: 2, UnitPrice: 1500, Amount: 3000},
		},
		Total:       8000,
		AmountPaid:  5000,
		Outstanding: 3000,
		Amount:      5000,
		Method:      models.PaymentMethodCash,
		ReceivedBy:  "Musa Ibrahim",
		Date:        "2026-08-30 11:15",
	})
	require.NoError(t, err)

	assert.Contains(t, html, "Godiya Hospital")
	assert.Contains(t, html, "INV-000042")
	assert.Contains(t, html, "Grace Okafor")
	assert.Contains(t, html, "PT-000007")
	assert.Contains(t, html, "Malaria test")
	assert.Contains(t, html, "8000.00")
	assert.Contains(t, html, "3000.00")
	assert.Contains(t, html, "Musa Ibrahim")
}

func TestRenderReceiptEscapesPatientInput(t *testing.T) {
	html, err := RenderReceipt(ReceiptData{
		Hospital:    "Godiya Hospital",
		PatientName: "<script>alert(1)</script>",
		Method:      models.PaymentMethodCash,
	})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert(1)</script>")
}
