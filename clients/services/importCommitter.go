package services

import (
	"fmt"
	"strings"
	"time"

	"ca-office-backend/db/models"
	"ca-office-backend/utils"

	"github.com/google/uuid"
)

// BuildClientRecord constructs the full persisted record for one eligible
// import row: raw fields merged with resolved references and sentinel
// substitutions, timestamps stamped. Pure; the caller decides the id.
func BuildClientRecord(row *ImportRow, id uuid.UUID, createdBy string, now time.Time) models.Client {
	fields := row.Fields

	mail := strings.TrimSpace(fields[FieldMailID])
	if mail == "" || !emailShape.MatchString(mail) {
		mail = models.UnassignedSentinel
	}

	mobile := strings.TrimSpace(fields[FieldMobileNumber])
	if mobile == "" {
		mobile = models.MobileSentinel
	}

	category := strings.TrimSpace(fields[FieldCategory])
	if category == "" {
		category = models.UnassignedSentinel
	}

	pan := strings.TrimSpace(fields[FieldPAN])
	if pan == "" && row.ExistingClientID == nil {
		// Only creates receive the PAN sentinel; an update with a blank
		// PAN column leaves the stored PAN untouched (see repository).
		pan = models.PANNotAvailable
	}

	client := models.Client{
		ID:           id,
		Name:         strings.TrimSpace(fields[FieldName]),
		MailID:       mail,
		MobileNumber: mobile,
		Category:     category,
		PAN:          pan,
		PartnerID:    row.PartnerID,
		FirmID:       row.FirmID,
		Active:       true,
		CreatedBy:    createdBy,
		CreatedAt:    now,
		LastUpdated:  now,
	}

	if v := strings.TrimSpace(fields[FieldAddress]); v != "" {
		client.Address = &v
	}
	if v := strings.TrimSpace(fields[FieldCity]); v != "" {
		client.City = &v
	}
	if v := strings.TrimSpace(fields[FieldState]); v != "" {
		client.State = &v
	}
	if v := strings.TrimSpace(fields[FieldGSTIN]); v != "" {
		client.GSTIN = &v
	}
	if v := strings.TrimSpace(fields[FieldContactPerson]); v != "" {
		client.ContactPerson = &v
	}

	return client
}

// PlanCommit translates a validated session into the create and update
// lists of the single batched write. Rows with action IGNORE never commit;
// DUPLICATE rows commit only in overwrite mode, and only when a persisted
// target can be resolved by natural key (an intra-file duplicate with no
// persisted match is skipped even when overwriting: the canonical first
// row already carries the data).
func PlanCommit(
	rows []ImportRow,
	mode CommitMode,
	existing []models.Client,
	createdBy string,
	now time.Time,
) (creates []models.Client, updates []models.Client, result CommitResult) {
	existingByPAN := make(map[string]uuid.UUID, len(existing))
	existingByNameMobile := make(map[string]uuid.UUID, len(existing))
	for _, client := range existing {
		if key := client.PANKey(); key != "" {
			existingByPAN[key] = client.ID
		}
		existingByNameMobile[client.NameMobileKey()] = client.ID
	}

	for i := range rows {
		row := &rows[i]

		switch row.Action {
		case ActionIgnore:
			result.Skipped++
			continue

		case ActionDuplicate:
			if mode != OverwriteDuplicates {
				result.Skipped++
				continue
			}
			target := resolveOverwriteTarget(row, existingByPAN, existingByNameMobile)
			if target == nil {
				result.Skipped++
				continue
			}
			record := BuildClientRecord(row, *target, createdBy, now)
			updates = append(updates, record)
			result.Overwritten++

		case ActionUpdate, ActionFixAndUpdate:
			record := BuildClientRecord(row, *row.ExistingClientID, createdBy, now)
			updates = append(updates, record)
			result.Updated++

		case ActionCreate, ActionFixAndCreate:
			record := BuildClientRecord(row, uuid.New(), createdBy, now)
			creates = append(creates, record)
			result.Created++
		}
	}

	return creates, updates, result
}

// resolveOverwriteTarget locates the persisted record a DUPLICATE row
// overwrites: PAN key first, then the name+mobile pair.
func resolveOverwriteTarget(
	row *ImportRow,
	existingByPAN map[string]uuid.UUID,
	existingByNameMobile map[string]uuid.UUID,
) *uuid.UUID {
	pan := strings.TrimSpace(row.Fields[FieldPAN])
	if pan != "" && pan != models.PANNotAvailable {
		if id, ok := existingByPAN[pan]; ok {
			return &id
		}
	}
	key := models.NameMobileKey(row.Fields[FieldName], row.Fields[FieldMobileNumber])
	if id, ok := existingByNameMobile[key]; ok {
		return &id
	}
	return nil
}

// SessionCacheKey is the Redis key an import session is cached under
// between validation and commit.
func SessionCacheKey(sessionID string) string {
	return fmt.Sprintf("client_import_session:%s", sessionID)
}

// NewImportSession wraps classified rows into a cacheable session.
func NewImportSession(rows []ImportRow, summary ImportSummary, createdBy string) *ImportSession {
	return &ImportSession{
		SessionID: uuid.New().String(),
		Rows:      rows,
		Summary:   summary,
		CreatedBy: createdBy,
		CreatedAt: utils.Today(),
	}
}
