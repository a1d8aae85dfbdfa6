package services

import (
	"time"

	"github.com/google/uuid"
)

// RowAction is the mutually exclusive classification assigned to each
// import row. Precedence when several could apply: mandatory-field failure
// (IGNORE) > duplicate > fixable defect > clean create/update.
type RowAction string

const (
	ActionCreate       RowAction = "CREATE"
	ActionUpdate       RowAction = "UPDATE"
	ActionFixAndCreate RowAction = "FIX_AND_CREATE"
	ActionFixAndUpdate RowAction = "FIX_AND_UPDATE"
	ActionDuplicate    RowAction = "DUPLICATE"
	ActionIgnore       RowAction = "IGNORE"
)

// CSV column names of the client import template. Mandatory columns carry a
// trailing '*' in generated templates, stripped by the normalizer.
const (
	FieldName          = "Name"
	FieldMailID        = "Mail ID"
	FieldMobileNumber  = "Mobile Number"
	FieldCategory      = "Category"
	FieldPartner       = "Partner"
	FieldFirmName      = "Firm Name"
	FieldPAN           = "PAN"
	FieldAddress       = "Address"
	FieldCity          = "City"
	FieldState         = "State"
	FieldGSTIN         = "GSTIN"
	FieldContactPerson = "Contact Person"
)

// MandatoryClientFields are the columns marked with '*' in the template.
// Only Name is fatal when missing; the rest are remediated with sentinel
// substitutions at commit time.
var MandatoryClientFields = []string{
	FieldName,
	FieldMailID,
	FieldMobileNumber,
	FieldCategory,
	FieldPartner,
	FieldFirmName,
}

// ClientTemplateColumns is the full column order of the generated template
// and of the invalid-rows export.
var ClientTemplateColumns = []string{
	FieldName,
	FieldMailID,
	FieldMobileNumber,
	FieldCategory,
	FieldPartner,
	FieldFirmName,
	FieldPAN,
	FieldAddress,
	FieldCity,
	FieldState,
	FieldGSTIN,
	FieldContactPerson,
}

// ImportRow is the transient per-row result of validation. It lives only
// for the duration of one import session and is consumed read-only by the
// commit engine.
type ImportRow struct {
	// Raw normalized field values keyed by clean column name.
	Fields map[string]string `json:"fields"`

	Action RowAction `json:"action"`

	// Field name -> human message. Presence of a non-fatal entry is what
	// promotes CREATE/UPDATE to FIX_AND_CREATE/FIX_AND_UPDATE.
	Errors map[string]string `json:"errors"`

	// Resolved references.
	ExistingClientID *uuid.UUID `json:"existing_client_id"`
	PartnerID        *uuid.UUID `json:"partner_id"`
	FirmID           *uuid.UUID `json:"firm_id"`

	DuplicateReason string `json:"duplicate_reason"`

	// Position of the row in the uploaded file, for traceability.
	OriginalIndex int `json:"original_index"`
}

// ErrorReason flattens the per-field errors and the duplicate reason into
// the single "Error Reason" column of the invalid-rows export.
func (r *ImportRow) ErrorReason() string {
	if r.DuplicateReason != "" {
		return r.DuplicateReason
	}
	reason := ""
	for field, msg := range r.Errors {
		if reason != "" {
			reason += "; "
		}
		reason += field + ": " + msg
	}
	return reason
}

// ImportSummary is the per-action count shown to the operator after
// validation completes.
type ImportSummary struct {
	Create       int `json:"create"`
	Update       int `json:"update"`
	FixAndCreate int `json:"fix_and_create"`
	FixAndUpdate int `json:"fix_and_update"`
	Duplicate    int `json:"duplicate"`
	Ignore       int `json:"ignore"`
	Total        int `json:"total"`
}

func (s *ImportSummary) count(action RowAction) {
	switch action {
	case ActionCreate:
		s.Create++
	case ActionUpdate:
		s.Update++
	case ActionFixAndCreate:
		s.FixAndCreate++
	case ActionFixAndUpdate:
		s.FixAndUpdate++
	case ActionDuplicate:
		s.Duplicate++
	case ActionIgnore:
		s.Ignore++
	}
	s.Total++
}

// ImportSession holds one validated upload between the validate and commit
// steps. Sessions are cached in Redis under SessionID with a TTL; discarding
// the dialog simply lets the session expire.
type ImportSession struct {
	SessionID string        `json:"session_id"`
	Rows      []ImportRow   `json:"rows"`
	Summary   ImportSummary `json:"summary"`
	CreatedBy string        `json:"created_by"`
	CreatedAt time.Time     `json:"created_at"`
}

// CommitMode is the operator's choice for rows classified DUPLICATE.
type CommitMode string

const (
	SkipDuplicates      CommitMode = "skip-duplicates"
	OverwriteDuplicates CommitMode = "overwrite-duplicates"
)

// CommitResult reports what the commit engine wrote.
type CommitResult struct {
	Created     int `json:"created"`
	Updated     int `json:"updated"`
	Overwritten int `json:"overwritten"`
	Skipped     int `json:"skipped"`
}
