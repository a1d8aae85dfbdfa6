package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Sentinel values substituted for soft-missing mandatory fields during
// bulk import. These exact strings are persisted; duplicate detection and
// display logic compare against them, so they are never converted to nulls.
const (
	UnassignedSentinel = "unassigned"
	MobileSentinel     = "1111111111"
	PANNotAvailable    = "PANNOTAVLBL"
)

// Client represents one client of the firm. Identity across import sessions
// is the natural key: PAN when present and not the sentinel, otherwise the
// (lowercased name, mobile number) pair.
type Client struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	Name         string    `gorm:"not null;index" json:"name"`
	MailID       string    `json:"mail_id"`
	MobileNumber string    `json:"mobile_number"`
	Category     string    `json:"category"`
	PAN          string    `gorm:"index" json:"pan"`
	GSTIN        *string   `json:"gstin"`

	// References
	PartnerID *uuid.UUID `gorm:"type:uuid;index" json:"partner_id"`
	FirmID    *uuid.UUID `gorm:"type:uuid;index" json:"firm_id"`

	// Optional contact details
	Address       *string `json:"address"`
	City          *string `json:"city"`
	State         *string `json:"state"`
	ContactPerson *string `json:"contact_person"`

	// Linked clients (group companies, family members) stored as a JSON
	// array of client ids.
	LinkedClientIDs datatypes.JSON `json:"linked_client_ids"`

	Active bool `gorm:"default:true" json:"active"`

	// Metadata
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	LastUpdated time.Time `gorm:"autoUpdateTime" json:"last_updated"`
}

// PANKey returns the PAN natural key, or "" when the PAN is absent or the
// "not available" sentinel.
func (c *Client) PANKey() string {
	pan := strings.TrimSpace(c.PAN)
	if pan == "" || pan == PANNotAvailable {
		return ""
	}
	return pan
}

// NameMobileKey returns the fallback natural key.
func (c *Client) NameMobileKey() string {
	return NameMobileKey(c.Name, c.MobileNumber)
}

// HasDeliverableEmail reports whether MailID is a real address rather than
// blank or the import placeholder.
func (c *Client) HasDeliverableEmail() bool {
	return c.MailID != "" && c.MailID != UnassignedSentinel
}

// NameMobileKey builds the (lowercased name, mobile) composite key used when
// no usable PAN exists.
func NameMobileKey(name, mobile string) string {
	return strings.ToLower(strings.TrimSpace(name)) + "|" + strings.TrimSpace(mobile)
}
