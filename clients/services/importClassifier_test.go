package services

import (
	"strings"
	"testing"

	"ca-office-backend/db/models"

	"github.com/google/uuid"
)

func baseRow(overrides map[string]string) map[string]string {
	fields := map[string]string{
		FieldName:         "Acme Traders",
		FieldMailID:       "acme@example.com",
		FieldMobileNumber: "9876543210",
		FieldCategory:     "Private Limited",
		FieldPartner:      "Ravi Mehta",
		FieldFirmName:     "Mehta & Associates",
		FieldPAN:          "ABCPD1234E",
	}
	for k, v := range overrides {
		fields[k] = v
	}
	return fields
}

func testSnapshots() MasterSnapshots {
	return MasterSnapshots{
		Employees: []models.Employee{
			{ID: uuid.New(), Name: "Ravi Mehta", Role: models.PartnerRole},
			{ID: uuid.New(), Name: "Junior Clerk", Role: models.StaffRole},
		},
		Firms: []models.Firm{
			{ID: uuid.New(), Name: "Mehta & Associates"},
		},
	}
}

func TestClassifyCleanCreate(t *testing.T) {
	rows, summary := ClassifyClientRows([]map[string]string{baseRow(nil)}, testSnapshots())

	if rows[0].Action != ActionCreate {
		t.Fatalf("action = %s, want CREATE (errors: %v)", rows[0].Action, rows[0].Errors)
	}
	if rows[0].PartnerID == nil {
		t.Error("partner reference was not resolved")
	}
	if rows[0].FirmID == nil {
		t.Error("firm reference was not resolved")
	}
	if summary.Create != 1 || summary.Total != 1 {
		t.Errorf("summary = %+v, want one CREATE", summary)
	}
}

func TestClassifyMissingNameIgnoresRow(t *testing.T) {
	// Missing Name outranks every other classification, including the
	// duplicate check: the same defective row twice yields two IGNOREs,
	// not an IGNORE plus a DUPLICATE.
	defective := baseRow(map[string]string{FieldName: "  "})
	rows, summary := ClassifyClientRows([]map[string]string{defective, defective}, testSnapshots())

	for i, row := range rows {
		if row.Action != ActionIgnore {
			t.Errorf("row %d action = %s, want IGNORE", i, row.Action)
		}
	}
	if summary.Ignore != 2 {
		t.Errorf("summary.Ignore = %d, want 2", summary.Ignore)
	}
}

func TestClassifyInFileDuplicateByPAN(t *testing.T) {
	first := baseRow(nil)
	second := baseRow(map[string]string{
		FieldName:         "Completely Different Name",
		FieldMobileNumber: "1231231230",
	})

	rows, summary := ClassifyClientRows([]map[string]string{first, second}, testSnapshots())

	if rows[0].Action != ActionCreate {
		t.Fatalf("canonical row action = %s, want CREATE", rows[0].Action)
	}
	if rows[1].Action != ActionDuplicate {
		t.Fatalf("second row action = %s, want DUPLICATE", rows[1].Action)
	}
	if !strings.Contains(rows[1].DuplicateReason, "row 1") {
		t.Errorf("duplicate reason %q does not cite the canonical row", rows[1].DuplicateReason)
	}
	if summary.Duplicate != 1 || summary.Create != 1 {
		t.Errorf("summary = %+v", summary)
	}
}

func TestClassifyInFileDuplicateByNameMobile(t *testing.T) {
	first := baseRow(map[string]string{FieldPAN: ""})
	second := baseRow(map[string]string{FieldPAN: ""})

	rows, _ := ClassifyClientRows([]map[string]string{first, second}, testSnapshots())

	if rows[1].Action != ActionDuplicate {
		t.Fatalf("second row action = %s, want DUPLICATE", rows[1].Action)
	}
	if !strings.Contains(rows[1].DuplicateReason, "name and mobile") {
		t.Errorf("duplicate reason = %q", rows[1].DuplicateReason)
	}
}

func TestClassifyPANSentinelIsNotAKey(t *testing.T) {
	// Two distinct clients both carrying the PAN sentinel must not
	// collide on it.
	first := baseRow(map[string]string{FieldPAN: models.PANNotAvailable})
	second := baseRow(map[string]string{
		FieldPAN:          models.PANNotAvailable,
		FieldName:         "Other Company",
		FieldMobileNumber: "1112223330",
	})

	rows, _ := ClassifyClientRows([]map[string]string{first, second}, testSnapshots())

	if rows[1].Action == ActionDuplicate {
		t.Fatalf("sentinel PAN treated as a natural key: %q", rows[1].DuplicateReason)
	}
}

func TestClassifyPersistedMatchBecomesUpdate(t *testing.T) {
	existingID := uuid.New()
	snap := testSnapshots()
	snap.Clients = []models.Client{
		{ID: existingID, Name: "Acme Traders", MobileNumber: "9876543210", PAN: "ABCPD1234E"},
	}

	rows, summary := ClassifyClientRows([]map[string]string{baseRow(nil)}, snap)

	if rows[0].Action != ActionUpdate {
		t.Fatalf("action = %s, want UPDATE", rows[0].Action)
	}
	if rows[0].ExistingClientID == nil || *rows[0].ExistingClientID != existingID {
		t.Error("existing client id was not resolved")
	}
	if summary.Update != 1 {
		t.Errorf("summary = %+v", summary)
	}
}

func TestClassifySoftDefectsPromoteToFix(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]string
		wantField string
	}{
		{"missing mail", map[string]string{FieldMailID: ""}, FieldMailID},
		{"malformed mail", map[string]string{FieldMailID: "not-an-email"}, FieldMailID},
		{"missing mobile", map[string]string{FieldMobileNumber: ""}, FieldMobileNumber},
		{"missing category", map[string]string{FieldCategory: ""}, FieldCategory},
		{"missing partner", map[string]string{FieldPartner: ""}, FieldPartner},
		{"missing firm", map[string]string{FieldFirmName: ""}, FieldFirmName},
		{"missing pan on create", map[string]string{FieldPAN: ""}, FieldPAN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, _ := ClassifyClientRows([]map[string]string{baseRow(tt.overrides)}, testSnapshots())

			if rows[0].Action != ActionFixAndCreate {
				t.Fatalf("action = %s, want FIX_AND_CREATE", rows[0].Action)
			}
			if _, ok := rows[0].Errors[tt.wantField]; !ok {
				t.Errorf("no error recorded for %s: %v", tt.wantField, rows[0].Errors)
			}
		})
	}
}

func TestClassifyUnresolvedPartnerIsSoft(t *testing.T) {
	row := baseRow(map[string]string{FieldPartner: "Nobody Here"})
	rows, _ := ClassifyClientRows([]map[string]string{row}, testSnapshots())

	if rows[0].Action != ActionFixAndCreate {
		t.Fatalf("action = %s, want FIX_AND_CREATE", rows[0].Action)
	}
	if rows[0].PartnerID != nil {
		t.Error("unresolved partner must leave the reference nil")
	}
	if msg, ok := rows[0].Errors[FieldPartner]; !ok || !strings.Contains(msg, "Nobody Here") {
		t.Errorf("partner error = %q", msg)
	}
}

func TestClassifyNonPartnerDoesNotResolve(t *testing.T) {
	// Only partner-role employees may back the Partner column.
	row := baseRow(map[string]string{FieldPartner: "Junior Clerk"})
	rows, _ := ClassifyClientRows([]map[string]string{row}, testSnapshots())

	if rows[0].PartnerID != nil {
		t.Error("staff employee resolved as partner")
	}
	if rows[0].Action != ActionFixAndCreate {
		t.Errorf("action = %s, want FIX_AND_CREATE", rows[0].Action)
	}
}

func TestErrorReasonPrefersDuplicate(t *testing.T) {
	row := ImportRow{
		DuplicateReason: "duplicate within file: PAN X already used by row 1",
		Errors:          map[string]string{FieldMailID: "missing"},
	}
	if got := row.ErrorReason(); got != row.DuplicateReason {
		t.Errorf("ErrorReason() = %q, want the duplicate reason", got)
	}

	row.DuplicateReason = ""
	if got := row.ErrorReason(); !strings.Contains(got, FieldMailID) {
		t.Errorf("ErrorReason() = %q, want the field errors", got)
	}
}
