package models

import (
	"time"

	"github.com/google/uuid"
)

// Error types for bulk upload error rows. Duplicate and missing-data errors
// are "allowed" errors: the upload completes and the offending rows are
// reported back to the operator.
const (
	DuplicateErrorType   = "DUPLICATE"
	MissingDataErrorType = "MISSING_DATA"
	ReferenceErrorType   = "UNRESOLVED_REFERENCE"
)

const BulkAddedViaType = "BULK_UPLOAD"

// BulkUploadErrorClient is a persisted record of one client import row that
// could not be committed cleanly, kept for the downloadable error report.
type BulkUploadErrorClient struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	Name         string    `json:"name"`
	MailID       string    `json:"mail_id"`
	MobileNumber string    `json:"mobile_number"`
	Category     string    `json:"category"`
	PAN          string    `json:"pan"`
	PartnerName  string    `json:"partner_name"`
	FirmName     string    `json:"firm_name"`
	Reason       string    `json:"reason"`
	ErrorType    string    `json:"error_type"`
	AddedVia     string    `json:"added_via"`
	CreatedBy    string    `json:"created_by"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// BulkUploadErrorEngagement mirrors BulkUploadErrorClient for the
// engagement bulk import.
type BulkUploadErrorEngagement struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	ClientName   string    `json:"client_name"`
	Type         string    `json:"type"`
	AssigneeName string    `json:"assignee_name"`
	Period       string    `json:"period"`
	Reason       string    `json:"reason"`
	ErrorType    string    `json:"error_type"`
	AddedVia     string    `json:"added_via"`
	CreatedBy    string    `json:"created_by"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}
