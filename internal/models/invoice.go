package models

import "time"

type InvoiceStatus string

const (
	InvoiceUnpaid  InvoiceStatus = "unpaid"
	InvoicePartial InvoiceStatus = "partial"
	InvoicePaid    InvoiceStatus = "paid"
)

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodPOS      PaymentMethod = "pos"
	PaymentMethodTransfer PaymentMethod = "transfer"
)

type Invoice struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	InvoiceNumber string        `gorm:"size:20;uniqueIndex;not null" json:"invoice_number"` // e.g. INV-518342
	PatientID     uint          `gorm:"index;not null" json:"patient_id"`
	Patient       Patient       `json:"patient"`
	Items         []InvoiceItem `json:"items"`
	Total         float64       `gorm:"not null" json:"total"`
	AmountPaid    float64       `gorm:"not null;default:0" json:"amount_paid"`
	Status        InvoiceStatus `gorm:"size:10;not null;default:unpaid" json:"status"`
	IssuedBy      string        `gorm:"size:100" json:"issued_by"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type InvoiceItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	InvoiceID   uint    `gorm:"index;not null" json:"invoice_id"`
	Description string  `gorm:"size:255;not null" json:"description"`
	Quantity    int     `gorm:"not null;default:1" json:"quantity"`
	UnitPrice   float64 `gorm:"not null" json:"unit_price"`
	Amount      float64 `gorm:"not null" json:"amount"`
}

// Payment records a single collection against an invoice. The receipt
// number is generated when the payment is taken and is what the printed
// receipt carries.
type Payment struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	InvoiceID     uint          `gorm:"index;not null" json:"invoice_id"`
	ReceiptNumber string        `gorm:"size:40;uniqueIndex;not null" json:"receipt_number"`
	Amount        float64       `gorm:"not null" json:"amount"`
	Method        PaymentMethod `gorm:"size:10;not null" json:"method"`
	ReceivedBy    string        `gorm:"size:100" json:"received_by"`
	CreatedAt     time.Time     `json:"created_at"`
}
