package services

import (
	"strings"
	"testing"

	"ca-office-backend/db/models"

	"github.com/google/uuid"
)

func engagementRow(overrides map[string]string) map[string]string {
	fields := map[string]string{
		FieldClientName:    "Acme Traders",
		FieldType:          "GST Return",
		FieldAssigneeEmail: "staff@example.com",
		FieldPeriod:        "2026-08",
		FieldDueDate:       "2026-08-20",
	}
	for k, v := range overrides {
		fields[k] = v
	}
	return fields
}

func importFixtures() ([]models.Client, []models.Employee) {
	clients := []models.Client{
		{ID: uuid.New(), Name: "Acme Traders"},
	}
	employees := []models.Employee{
		{ID: uuid.New(), Email: "staff@example.com", Name: "Staff Member"},
	}
	return clients, employees
}

func TestClassifyEngagementRowsCreate(t *testing.T) {
	clients, employees := importFixtures()

	toCreate, importErrors := ClassifyEngagementRows(
		[]map[string]string{engagementRow(nil)},
		clients, employees, nil, "ops@example.com")

	if len(importErrors) != 0 {
		t.Fatalf("unexpected errors: %+v", importErrors)
	}
	if len(toCreate) != 1 {
		t.Fatalf("toCreate = %d, want 1", len(toCreate))
	}

	engagement := toCreate[0]
	if engagement.ClientID != clients[0].ID {
		t.Error("client not resolved")
	}
	if engagement.AssigneeID == nil || *engagement.AssigneeID != employees[0].ID {
		t.Error("assignee not resolved")
	}
	if engagement.Status != models.EngagementPending {
		t.Errorf("Status = %s, want PENDING", engagement.Status)
	}
	if engagement.DueDate == nil || engagement.DueDate.Day() != 20 {
		t.Errorf("DueDate = %v", engagement.DueDate)
	}
	if engagement.CreatedBy != "ops@example.com" {
		t.Errorf("CreatedBy = %q", engagement.CreatedBy)
	}
}

func TestClassifyEngagementRowsMissingMandatory(t *testing.T) {
	clients, employees := importFixtures()

	tests := []map[string]string{
		engagementRow(map[string]string{FieldClientName: ""}),
		engagementRow(map[string]string{FieldType: "  "}),
	}

	for i, row := range tests {
		toCreate, importErrors := ClassifyEngagementRows(
			[]map[string]string{row}, clients, employees, nil, "ops")

		if len(toCreate) != 0 {
			t.Errorf("case %d: row with missing mandatory field created", i)
		}
		if len(importErrors) != 1 || importErrors[0].ErrorType != models.MissingDataErrorType {
			t.Errorf("case %d: errors = %+v", i, importErrors)
		}
	}
}

func TestClassifyEngagementRowsUnresolvedReferences(t *testing.T) {
	clients, employees := importFixtures()

	tests := []struct {
		name string
		row  map[string]string
	}{
		{"unknown client", engagementRow(map[string]string{FieldClientName: "Ghost Ltd"})},
		{"unknown assignee", engagementRow(map[string]string{FieldAssigneeEmail: "nobody@example.com"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toCreate, importErrors := ClassifyEngagementRows(
				[]map[string]string{tt.row}, clients, employees, nil, "ops")

			if len(toCreate) != 0 {
				t.Error("row with unresolved reference created")
			}
			if len(importErrors) != 1 || importErrors[0].ErrorType != models.ReferenceErrorType {
				t.Errorf("errors = %+v", importErrors)
			}
		})
	}
}

func TestClassifyEngagementRowsBlankAssigneeIsAllowed(t *testing.T) {
	clients, employees := importFixtures()

	toCreate, importErrors := ClassifyEngagementRows(
		[]map[string]string{engagementRow(map[string]string{FieldAssigneeEmail: ""})},
		clients, employees, nil, "ops")

	if len(importErrors) != 0 {
		t.Fatalf("unexpected errors: %+v", importErrors)
	}
	if len(toCreate) != 1 || toCreate[0].AssigneeID != nil {
		t.Error("blank assignee should create with a nil reference")
	}
}

func TestClassifyEngagementRowsDuplicates(t *testing.T) {
	clients, employees := importFixtures()

	// Case-insensitive on type: "gst return" collides with "GST Return".
	existing := []models.Engagement{
		{ClientID: clients[0].ID, Type: "gst return", Period: "2026-08"},
	}

	rows := []map[string]string{
		engagementRow(nil), // duplicate of the persisted engagement
		engagementRow(map[string]string{FieldPeriod: "2026-09"}), // new period, fine
		engagementRow(map[string]string{FieldPeriod: "2026-09"}), // in-file duplicate
	}

	toCreate, importErrors := ClassifyEngagementRows(rows, clients, employees, existing, "ops")

	if len(toCreate) != 1 {
		t.Fatalf("toCreate = %d, want 1", len(toCreate))
	}
	if toCreate[0].Period != "2026-09" {
		t.Errorf("created Period = %q", toCreate[0].Period)
	}
	if len(importErrors) != 2 {
		t.Fatalf("errors = %d, want 2", len(importErrors))
	}
	for _, importError := range importErrors {
		if importError.ErrorType != models.DuplicateErrorType {
			t.Errorf("error type = %s, want DUPLICATE", importError.ErrorType)
		}
		if !strings.Contains(importError.Reason, "already exists") {
			t.Errorf("reason = %q", importError.Reason)
		}
	}
}

func TestClassifyEngagementRowsBadDueDate(t *testing.T) {
	clients, employees := importFixtures()

	toCreate, importErrors := ClassifyEngagementRows(
		[]map[string]string{engagementRow(map[string]string{FieldDueDate: "20/08/2026"})},
		clients, employees, nil, "ops")

	if len(toCreate) != 0 {
		t.Error("row with malformed due date created")
	}
	if len(importErrors) != 1 || !strings.Contains(importErrors[0].Reason, "YYYY-MM-DD") {
		t.Errorf("errors = %+v", importErrors)
	}
}
