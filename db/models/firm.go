package models

import (
	"time"

	"github.com/google/uuid"
)

// Firm is one of the practice's own billing entities. Invoices are raised
// under a firm; its GST registration and state drive the tax split.
type Firm struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	Name string    `gorm:"unique;not null" json:"name"`

	// GSTIN is nil when the firm holds no GST registration; invoices raised
	// under an unregistered firm carry no tax.
	GSTIN *string `json:"gstin"`

	// State is the firm's place of business. An invoice whose place of
	// supply differs from this state is interstate (IGST instead of
	// CGST+SGST).
	State string `json:"state"`

	Address *string `json:"address"`
	PAN     *string `json:"pan"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	LastUpdated time.Time `gorm:"autoUpdateTime" json:"last_updated"`
}
