package services

import (
	"fmt"
	"regexp"
	"strings"

	"ca-office-backend/db/models"

	"github.com/google/uuid"
)

var emailShape = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// MasterSnapshots are the in-memory copies of existing records the
// classifier cross-references. They are fetched once per validation pass;
// a fetch failure aborts the whole pass (the validator itself has no fatal
// error path).
type MasterSnapshots struct {
	Clients   []models.Client
	Employees []models.Employee
	Firms     []models.Firm
}

// seenKeys tracks natural keys observed earlier in the same file. The first
// occurrence wins as the canonical row; later collisions are DUPLICATE and
// do not re-mark the key.
type seenKeys struct {
	pan        map[string]int // key -> original row index of canonical row
	nameMobile map[string]int
}

// ClassifyClientRows runs the validation/classification stage of the client
// import pipeline over normalized rows. Pure: no I/O, no mutation of the
// snapshots.
func ClassifyClientRows(rows []map[string]string, snap MasterSnapshots) ([]ImportRow, ImportSummary) {
	existingByPAN := make(map[string]uuid.UUID, len(snap.Clients))
	existingByNameMobile := make(map[string]uuid.UUID, len(snap.Clients))
	for _, client := range snap.Clients {
		if key := client.PANKey(); key != "" {
			existingByPAN[key] = client.ID
		}
		existingByNameMobile[client.NameMobileKey()] = client.ID
	}

	partnersByName := make(map[string]uuid.UUID)
	for _, employee := range snap.Employees {
		if employee.IsPartner() {
			partnersByName[strings.ToLower(strings.TrimSpace(employee.Name))] = employee.ID
		}
	}

	firmsByName := make(map[string]uuid.UUID, len(snap.Firms))
	for _, firm := range snap.Firms {
		firmsByName[strings.ToLower(strings.TrimSpace(firm.Name))] = firm.ID
	}

	seen := seenKeys{
		pan:        make(map[string]int),
		nameMobile: make(map[string]int),
	}

	var summary ImportSummary
	classified := make([]ImportRow, 0, len(rows))

	for i, fields := range rows {
		row := classifyClientRow(fields, i, existingByPAN, existingByNameMobile, partnersByName, firmsByName, &seen)
		summary.count(row.Action)
		classified = append(classified, row)
	}

	return classified, summary
}

func classifyClientRow(
	fields map[string]string,
	index int,
	existingByPAN map[string]uuid.UUID,
	existingByNameMobile map[string]uuid.UUID,
	partnersByName map[string]uuid.UUID,
	firmsByName map[string]uuid.UUID,
	seen *seenKeys,
) ImportRow {
	row := ImportRow{
		Fields:        fields,
		Errors:        make(map[string]string),
		OriginalIndex: index,
	}

	name := strings.TrimSpace(fields[FieldName])
	mobile := strings.TrimSpace(fields[FieldMobileNumber])
	pan := strings.TrimSpace(fields[FieldPAN])

	// Missing Name is the only fatal defect: it cannot be placeholder
	// filled, so the row is excluded outright, before duplicate handling.
	// An ignored row never becomes the canonical holder of a natural key.
	if name == "" {
		row.Errors[FieldName] = "Name is required and cannot be substituted"
		row.Action = ActionIgnore
		return row
	}

	panKey := pan
	if panKey == models.PANNotAvailable {
		panKey = ""
	}
	nameMobileKey := models.NameMobileKey(name, mobile)

	// Duplicate within this file: first occurrence stays canonical.
	if canonical, ok := seen.pan[panKey]; ok && panKey != "" {
		row.Action = ActionDuplicate
		row.DuplicateReason = fmt.Sprintf("duplicate within file: PAN %s already used by row %d", pan, canonical+1)
		noteDefectsInformationally(&row, fields)
		return row
	}
	if canonical, ok := seen.nameMobile[nameMobileKey]; ok {
		row.Action = ActionDuplicate
		row.DuplicateReason = fmt.Sprintf("duplicate within file: name and mobile already used by row %d", canonical+1)
		noteDefectsInformationally(&row, fields)
		return row
	}

	// Collision with a persisted record means this row updates it.
	action := ActionCreate
	if panKey != "" {
		if id, ok := existingByPAN[panKey]; ok {
			action = ActionUpdate
			row.ExistingClientID = &id
		}
	}
	if row.ExistingClientID == nil {
		if id, ok := existingByNameMobile[nameMobileKey]; ok {
			action = ActionUpdate
			row.ExistingClientID = &id
		}
	}

	if panKey != "" {
		seen.pan[panKey] = index
	}
	seen.nameMobile[nameMobileKey] = index

	// Resolve references. Unresolved names are soft, fixable errors: the
	// record imports with the reference left empty.
	if partnerName := strings.TrimSpace(fields[FieldPartner]); partnerName != "" {
		if id, ok := partnersByName[strings.ToLower(partnerName)]; ok {
			row.PartnerID = &id
		} else {
			row.Errors[FieldPartner] = fmt.Sprintf("no partner named %q found", partnerName)
		}
	}
	if firmName := strings.TrimSpace(fields[FieldFirmName]); firmName != "" {
		if id, ok := firmsByName[strings.ToLower(firmName)]; ok {
			row.FirmID = &id
		} else {
			row.Errors[FieldFirmName] = fmt.Sprintf("no firm named %q found", firmName)
		}
	}

	// Mandatory-field and shape checks. Everything recorded here is
	// non-fatal: commit substitutes sentinel placeholders.
	noteFixableDefects(&row, fields, action == ActionCreate)

	if len(row.Errors) > 0 {
		if action == ActionCreate {
			row.Action = ActionFixAndCreate
		} else {
			row.Action = ActionFixAndUpdate
		}
	} else {
		row.Action = action
	}

	return row
}

// noteFixableDefects records the soft mandatory-field and email-shape
// defects that promote a row to FIX_AND_CREATE / FIX_AND_UPDATE.
func noteFixableDefects(row *ImportRow, fields map[string]string, isCreate bool) {
	mail := strings.TrimSpace(fields[FieldMailID])
	switch {
	case mail == "":
		row.Errors[FieldMailID] = fmt.Sprintf("missing; will be set to %q", models.UnassignedSentinel)
	case !emailShape.MatchString(mail):
		row.Errors[FieldMailID] = fmt.Sprintf("not a valid email; will be set to %q", models.UnassignedSentinel)
	}

	if strings.TrimSpace(fields[FieldMobileNumber]) == "" {
		row.Errors[FieldMobileNumber] = fmt.Sprintf("missing; will be set to %q", models.MobileSentinel)
	}
	if strings.TrimSpace(fields[FieldCategory]) == "" {
		row.Errors[FieldCategory] = fmt.Sprintf("missing; will be set to %q", models.UnassignedSentinel)
	}
	if strings.TrimSpace(fields[FieldPartner]) == "" {
		row.Errors[FieldPartner] = "missing; record imports without a partner"
	}
	if strings.TrimSpace(fields[FieldFirmName]) == "" {
		row.Errors[FieldFirmName] = "missing; record imports without a firm"
	}
	if isCreate && strings.TrimSpace(fields[FieldPAN]) == "" {
		row.Errors[FieldPAN] = fmt.Sprintf("missing; will be set to %q", models.PANNotAvailable)
	}
}

// noteDefectsInformationally runs the same defect checks for a DUPLICATE
// row. Duplicate precedence wins; the defects are reported only as
// information alongside the duplicate reason.
func noteDefectsInformationally(row *ImportRow, fields map[string]string) {
	noteFixableDefects(row, fields, false)
}
