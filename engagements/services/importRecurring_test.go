package services

import (
	"strings"
	"testing"

	"ca-office-backend/db/models"
)

func recurringRow(overrides map[string]string) map[string]string {
	fields := map[string]string{
		FieldClientName:    "Acme Traders",
		FieldType:          "GST Return",
		FieldAssigneeEmail: "staff@example.com",
		FieldFrequency:     "MONTHLY",
		FieldDueDay:        "11",
	}
	for k, v := range overrides {
		fields[k] = v
	}
	return fields
}

func TestClassifyRecurringRowsCreate(t *testing.T) {
	clients, employees := importFixtures()

	toCreate, importErrors := ClassifyRecurringRows(
		[]map[string]string{recurringRow(nil)},
		clients, employees, nil, "ops@example.com")

	if len(importErrors) != 0 {
		t.Fatalf("unexpected errors: %+v", importErrors)
	}
	if len(toCreate) != 1 {
		t.Fatalf("toCreate = %d, want 1", len(toCreate))
	}

	rec := toCreate[0]
	if rec.ClientID != clients[0].ID {
		t.Error("client not resolved")
	}
	if rec.AssigneeID == nil || *rec.AssigneeID != employees[0].ID {
		t.Error("assignee not resolved")
	}
	if rec.Frequency != models.FrequencyMonthly {
		t.Errorf("Frequency = %s, want MONTHLY", rec.Frequency)
	}
	if rec.DueDay != 11 {
		t.Errorf("DueDay = %d, want 11", rec.DueDay)
	}
	if !rec.Active {
		t.Error("new definitions should be active")
	}
	if rec.CreatedBy != "ops@example.com" {
		t.Errorf("CreatedBy = %q", rec.CreatedBy)
	}
}

func TestClassifyRecurringRowsFrequencyValidation(t *testing.T) {
	clients, employees := importFixtures()

	// Lowercase is accepted, anything outside the three frequencies is not.
	toCreate, importErrors := ClassifyRecurringRows(
		[]map[string]string{
			recurringRow(map[string]string{FieldFrequency: "quarterly"}),
			recurringRow(map[string]string{FieldFrequency: "WEEKLY", FieldType: "Payroll"}),
		},
		clients, employees, nil, "ops")

	if len(toCreate) != 1 || toCreate[0].Frequency != models.FrequencyQuarterly {
		t.Fatalf("toCreate = %+v, want one QUARTERLY definition", toCreate)
	}
	if len(importErrors) != 1 {
		t.Fatalf("importErrors = %d, want 1", len(importErrors))
	}
	if importErrors[0].ErrorType != models.MissingDataErrorType {
		t.Errorf("ErrorType = %s, want MISSING_DATA", importErrors[0].ErrorType)
	}
	if !strings.Contains(importErrors[0].Reason, "WEEKLY") {
		t.Errorf("Reason = %q, should name the bad frequency", importErrors[0].Reason)
	}
}

func TestClassifyRecurringRowsDueDay(t *testing.T) {
	clients, employees := importFixtures()

	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"", 20, false},
		{"1", 1, false},
		{"31", 31, false},
		{"0", 0, true},
		{"32", 0, true},
		{"soon", 0, true},
	}

	for _, tt := range tests {
		toCreate, importErrors := ClassifyRecurringRows(
			[]map[string]string{recurringRow(map[string]string{FieldDueDay: tt.raw})},
			clients, employees, nil, "ops")

		if tt.wantErr {
			if len(importErrors) != 1 || len(toCreate) != 0 {
				t.Errorf("due day %q: expected a single error, got %+v / %+v", tt.raw, toCreate, importErrors)
			}
			continue
		}
		if len(toCreate) != 1 || toCreate[0].DueDay != tt.want {
			t.Errorf("due day %q: DueDay = %+v, want %d", tt.raw, toCreate, tt.want)
		}
	}
}

func TestClassifyRecurringRowsDuplicates(t *testing.T) {
	clients, employees := importFixtures()

	existing := []models.RecurringEngagement{
		{ClientID: clients[0].ID, Type: "gst return", Frequency: models.FrequencyMonthly},
	}

	toCreate, importErrors := ClassifyRecurringRows(
		[]map[string]string{
			// matches the persisted definition, case-insensitively
			recurringRow(nil),
			// same client and type, different frequency: not a duplicate
			recurringRow(map[string]string{FieldFrequency: "YEARLY"}),
			// repeats the previous row within the file
			recurringRow(map[string]string{FieldFrequency: "YEARLY"}),
		},
		clients, employees, existing, "ops")

	if len(toCreate) != 1 || toCreate[0].Frequency != models.FrequencyYearly {
		t.Fatalf("toCreate = %+v, want one YEARLY definition", toCreate)
	}
	if len(importErrors) != 2 {
		t.Fatalf("importErrors = %d, want 2", len(importErrors))
	}
	for _, importError := range importErrors {
		if importError.ErrorType != models.DuplicateErrorType {
			t.Errorf("ErrorType = %s, want DUPLICATE", importError.ErrorType)
		}
	}
}

func TestClassifyRecurringRowsUnresolvedReferences(t *testing.T) {
	clients, employees := importFixtures()

	toCreate, importErrors := ClassifyRecurringRows(
		[]map[string]string{
			recurringRow(map[string]string{FieldClientName: "Nobody Ltd"}),
			recurringRow(map[string]string{FieldAssigneeEmail: "ghost@example.com"}),
		},
		clients, employees, nil, "ops")

	if len(toCreate) != 0 {
		t.Fatalf("toCreate = %+v, want none", toCreate)
	}
	if len(importErrors) != 2 {
		t.Fatalf("importErrors = %d, want 2", len(importErrors))
	}
	for _, importError := range importErrors {
		if importError.ErrorType != models.ReferenceErrorType {
			t.Errorf("ErrorType = %s, want UNRESOLVED_REFERENCE", importError.ErrorType)
		}
	}
}

func TestClassifyRecurringRowsBlankAssignee(t *testing.T) {
	clients, employees := importFixtures()

	toCreate, importErrors := ClassifyRecurringRows(
		[]map[string]string{recurringRow(map[string]string{FieldAssigneeEmail: ""})},
		clients, employees, nil, "ops")

	if len(importErrors) != 0 {
		t.Fatalf("unexpected errors: %+v", importErrors)
	}
	if len(toCreate) != 1 || toCreate[0].AssigneeID != nil {
		t.Fatalf("toCreate = %+v, want one unassigned definition", toCreate)
	}
}
