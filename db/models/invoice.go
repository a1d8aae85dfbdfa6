package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "DRAFT"
	InvoiceIssued    InvoiceStatus = "ISSUED"
	InvoicePaid      InvoiceStatus = "PAID"
	InvoiceCancelled InvoiceStatus = "CANCELLED"
)

// TaxRate is the GST rate master. Only one rate per name is active at a
// time; line items reference a rate by id.
type TaxRate struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	Name string    `gorm:"not null" json:"name"` // e.g. "GST 18%"

	// Fraction, not percent: 18% is stored as 0.18.
	Rate decimal.Decimal `gorm:"type:decimal(6,4);not null" json:"rate"`

	Active    bool      `gorm:"default:true" json:"active"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Invoice is an ad-hoc or timesheet-drafted bill raised under a firm for a
// client. Stored amounts are the calculator's outputs at issue time.
type Invoice struct {
	ID            uuid.UUID     `gorm:"type:uuid;primary_key;" json:"id"`
	InvoiceNumber string        `gorm:"unique;not null" json:"invoice_number"`
	FirmID        uuid.UUID     `gorm:"type:uuid;not null;index" json:"firm_id"`
	ClientID      uuid.UUID     `gorm:"type:uuid;not null;index" json:"client_id"`
	Status        InvoiceStatus `gorm:"type:varchar(20);default:'DRAFT'" json:"status"`

	// Place of supply state; interstate when it differs from the firm's
	// state.
	PlaceOfSupply string `json:"place_of_supply"`

	AdditionalDiscount float64 `json:"additional_discount"`

	// Computed totals, persisted as decimals for storage/reporting. The
	// calculator itself works in float64.
	SubTotal      decimal.Decimal `gorm:"type:decimal(14,2)" json:"sub_total"`
	TaxableAmount decimal.Decimal `gorm:"type:decimal(14,2)" json:"taxable_amount"`
	CGST          decimal.Decimal `gorm:"type:decimal(14,2)" json:"cgst"`
	SGST          decimal.Decimal `gorm:"type:decimal(14,2)" json:"sgst"`
	IGST          decimal.Decimal `gorm:"type:decimal(14,2)" json:"igst"`
	Total         decimal.Decimal `gorm:"type:decimal(14,2)" json:"total"`

	LineItems []InvoiceLineItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"line_items"`

	IssueDate *time.Time `json:"issue_date"`
	DueDate   *time.Time `json:"due_date"`
	Notes     *string    `json:"notes"`

	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	LastUpdated time.Time `gorm:"autoUpdateTime" json:"last_updated"`
}

// InvoiceLineItem holds the raw inputs of one invoice line. The derived
// item total is quantity*rate - discount.
type InvoiceLineItem struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;" json:"id"`
	InvoiceID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"invoice_id"`
	Description string     `json:"description"`
	Quantity    float64    `json:"quantity"`
	Rate        float64    `json:"rate"`
	Discount    float64    `json:"discount"`
	TaxRateID   *uuid.UUID `gorm:"type:uuid" json:"tax_rate_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// ItemTotal is the line's contribution to the invoice sub-total.
func (li *InvoiceLineItem) ItemTotal() float64 {
	return li.Quantity*li.Rate - li.Discount
}
