package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TimesheetEntry records hours an employee spent on an engagement on a given
// day. Entries are the raw material for timesheet-based invoice drafts.
type TimesheetEntry struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;" json:"id"`
	EmployeeID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"employee_id"`
	EngagementID uuid.UUID       `gorm:"type:uuid;not null;index" json:"engagement_id"`
	WorkDate     time.Time       `gorm:"type:date;not null;index" json:"work_date"`
	Hours        decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"hours"`
	Notes        *string         `json:"notes"`

	// Billing linkage; set once the entry lands on an invoice draft.
	Billed    bool       `gorm:"default:false" json:"billed"`
	InvoiceID *uuid.UUID `gorm:"type:uuid;index" json:"invoice_id"`

	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	LastUpdated time.Time `gorm:"autoUpdateTime" json:"last_updated"`
}
