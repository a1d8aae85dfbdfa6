package services

import (
	"testing"
	"time"

	"ca-office-backend/db/models"

	"github.com/google/uuid"
)

var commitNow = time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)

func TestBuildClientRecordSubstitutesSentinels(t *testing.T) {
	row := ImportRow{
		Fields: baseRow(map[string]string{
			FieldMailID:       "broken-email",
			FieldMobileNumber: "",
			FieldCategory:     "",
			FieldPAN:          "",
		}),
	}

	record := BuildClientRecord(&row, uuid.New(), "ops@example.com", commitNow)

	if record.MailID != models.UnassignedSentinel {
		t.Errorf("MailID = %q, want sentinel", record.MailID)
	}
	if record.MobileNumber != models.MobileSentinel {
		t.Errorf("MobileNumber = %q, want sentinel", record.MobileNumber)
	}
	if record.Category != models.UnassignedSentinel {
		t.Errorf("Category = %q, want sentinel", record.Category)
	}
	if record.PAN != models.PANNotAvailable {
		t.Errorf("PAN = %q, want sentinel on create", record.PAN)
	}
	if !record.Active {
		t.Error("imported client must be active")
	}
	if record.CreatedBy != "ops@example.com" {
		t.Errorf("CreatedBy = %q", record.CreatedBy)
	}
}

func TestBuildClientRecordBlankPANOnUpdate(t *testing.T) {
	existingID := uuid.New()
	row := ImportRow{
		Fields:           baseRow(map[string]string{FieldPAN: ""}),
		ExistingClientID: &existingID,
	}

	record := BuildClientRecord(&row, existingID, "ops@example.com", commitNow)

	// Updates leave PAN empty so the repository keeps the stored value.
	if record.PAN != "" {
		t.Errorf("PAN = %q, want empty on update with blank column", record.PAN)
	}
}

func TestBuildClientRecordOptionalFields(t *testing.T) {
	row := ImportRow{
		Fields: baseRow(map[string]string{
			FieldAddress: "12 MG Road",
			FieldCity:    "",
			FieldGSTIN:   "27ABCPD1234E1Z5",
		}),
	}

	record := BuildClientRecord(&row, uuid.New(), "ops", commitNow)

	if record.Address == nil || *record.Address != "12 MG Road" {
		t.Error("address not carried over")
	}
	if record.City != nil {
		t.Error("blank optional field must stay nil")
	}
	if record.GSTIN == nil || *record.GSTIN != "27ABCPD1234E1Z5" {
		t.Error("GSTIN not carried over")
	}
}

func classifiedRows(t *testing.T, raw []map[string]string, existing []models.Client) []ImportRow {
	t.Helper()
	snap := testSnapshots()
	snap.Clients = existing
	rows, _ := ClassifyClientRows(raw, snap)
	return rows
}

func TestPlanCommitSkipDuplicates(t *testing.T) {
	raw := []map[string]string{
		baseRow(nil),
		baseRow(nil), // in-file duplicate of the first
		baseRow(map[string]string{FieldName: ""}), // IGNORE
	}
	rows := classifiedRows(t, raw, nil)

	creates, updates, result := PlanCommit(rows, SkipDuplicates, nil, "ops", commitNow)

	if len(creates) != 1 || len(updates) != 0 {
		t.Fatalf("creates=%d updates=%d, want 1/0", len(creates), len(updates))
	}
	if result.Created != 1 || result.Skipped != 2 {
		t.Errorf("result = %+v, want Created=1 Skipped=2", result)
	}
}

func TestPlanCommitOverwriteResolvesPersistedTarget(t *testing.T) {
	persistedID := uuid.New()
	existing := []models.Client{
		{ID: persistedID, Name: "Acme Traders", MobileNumber: "9876543210", PAN: "ABCPD1234E"},
	}

	raw := []map[string]string{
		baseRow(nil), // UPDATE of the persisted record
		baseRow(map[string]string{FieldMailID: "second@example.com"}), // in-file DUPLICATE
	}
	rows := classifiedRows(t, raw, existing)
	if rows[1].Action != ActionDuplicate {
		t.Fatalf("setup: second row action = %s", rows[1].Action)
	}

	creates, updates, result := PlanCommit(rows, OverwriteDuplicates, existing, "ops", commitNow)

	if len(creates) != 0 {
		t.Fatalf("creates=%d, want 0", len(creates))
	}
	if len(updates) != 2 {
		t.Fatalf("updates=%d, want 2 (one UPDATE, one overwrite)", len(updates))
	}
	for _, u := range updates {
		if u.ID != persistedID {
			t.Errorf("update targets %s, want persisted id %s", u.ID, persistedID)
		}
	}
	if result.Updated != 1 || result.Overwritten != 1 {
		t.Errorf("result = %+v, want Updated=1 Overwritten=1", result)
	}
}

func TestPlanCommitOverwriteSkipsPurelyInFileDuplicate(t *testing.T) {
	// No persisted match exists, so the canonical first row creates the
	// record and the duplicate has nothing to overwrite.
	raw := []map[string]string{
		baseRow(nil),
		baseRow(nil),
	}
	rows := classifiedRows(t, raw, nil)

	creates, updates, result := PlanCommit(rows, OverwriteDuplicates, nil, "ops", commitNow)

	if len(creates) != 1 || len(updates) != 0 {
		t.Fatalf("creates=%d updates=%d, want 1/0", len(creates), len(updates))
	}
	if result.Skipped != 1 {
		t.Errorf("result = %+v, want Skipped=1", result)
	}
}

func TestPlanCommitIgnoreNeverCommits(t *testing.T) {
	raw := []map[string]string{baseRow(map[string]string{FieldName: ""})}
	rows := classifiedRows(t, raw, nil)

	creates, updates, result := PlanCommit(rows, OverwriteDuplicates, nil, "ops", commitNow)

	if len(creates) != 0 || len(updates) != 0 {
		t.Fatal("IGNORE row reached the write lists")
	}
	if result.Skipped != 1 {
		t.Errorf("result = %+v", result)
	}
}

func TestSessionCacheKey(t *testing.T) {
	if got := SessionCacheKey("abc"); got != "client_import_session:abc" {
		t.Errorf("SessionCacheKey = %q", got)
	}
}
