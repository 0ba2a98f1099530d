package models

import "time"

type StockEntryType string

const (
	StockReceived   StockEntryType = "received"
	StockDispensed  StockEntryType = "dispensed"
	StockAdjustment StockEntryType = "adjustment"
)

type Drug struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:100;not null;unique" json:"name"`
	Category      string    `gorm:"size:100" json:"category"` // e.g. "Antibiotic"
	Unit          string    `gorm:"size:20" json:"unit"`      // e.g. "tablet", "bottle"
	UnitPrice     float64   `gorm:"not null" json:"unit_price"`
	StockQuantity int       `gorm:"not null;default:0" json:"stock_quantity"`
	ReorderLevel  int       `gorm:"not null;default:10" json:"reorder_level"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BelowReorder reports whether the drug stock has fallen to or under
// its reorder level. Feeds the pharmacy low-stock badge.
func (d Drug) BelowReorder() bool {
	return d.StockQuantity <= d.ReorderLevel
}

// StockEntry is the pharmacy stock movement ledger. Quantity is signed:
// positive for received stock, negative for dispense and downward
// adjustments.
type StockEntry struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	DrugID    uint           `gorm:"index;not null" json:"drug_id"`
	Drug      Drug           `json:"drug"`
	Type      StockEntryType `gorm:"size:20;not null" json:"type"`
	Quantity  int            `gorm:"not null" json:"quantity"`
	Note      string         `gorm:"size:255" json:"note"`
	CreatedBy string         `gorm:"size:100" json:"created_by"`
	CreatedAt time.Time      `json:"created_at"`
}
