package services

import (
	"fmt"
	"strings"
	"time"

	"ca-office-backend/db/models"

	"github.com/google/uuid"
)

// CSV column names of the engagement import template.
const (
	FieldClientName    = "Client Name"
	FieldType          = "Type"
	FieldAssigneeEmail = "Assignee Email"
	FieldPeriod        = "Period"
	FieldDueDate       = "Due Date"
)

var EngagementTemplateColumns = []string{
	FieldClientName,
	FieldType,
	FieldAssigneeEmail,
	FieldPeriod,
	FieldDueDate,
}

// engagementKey is the dedup identity of an imported engagement: one piece
// of work of a given type, for a client, covering a period.
func engagementKey(clientID uuid.UUID, engagementType, period string) string {
	return clientID.String() + "|" + strings.ToLower(strings.TrimSpace(engagementType)) + "|" + strings.TrimSpace(period)
}

// ClassifyEngagementRows validates engagement import rows. The import is
// create-only: a row matching an existing engagement (same client, type and
// period) is a duplicate, never an update. Pure.
func ClassifyEngagementRows(
	rows []map[string]string,
	clients []models.Client,
	employees []models.Employee,
	existing []models.Engagement,
	createdBy string,
) ([]models.Engagement, []models.BulkUploadErrorEngagement) {
	clientsByName := make(map[string]uuid.UUID, len(clients))
	for _, client := range clients {
		clientsByName[strings.ToLower(strings.TrimSpace(client.Name))] = client.ID
	}

	employeesByEmail := make(map[string]uuid.UUID, len(employees))
	for _, employee := range employees {
		employeesByEmail[strings.ToLower(strings.TrimSpace(employee.Email))] = employee.ID
	}

	seen := make(map[string]struct{}, len(existing))
	for _, engagement := range existing {
		seen[engagementKey(engagement.ClientID, engagement.Type, engagement.Period)] = struct{}{}
	}

	var toCreate []models.Engagement
	var importErrors []models.BulkUploadErrorEngagement

	addError := func(fields map[string]string, reason, errorType string) {
		importErrors = append(importErrors, models.BulkUploadErrorEngagement{
			ID:           uuid.New(),
			ClientName:   fields[FieldClientName],
			Type:         fields[FieldType],
			AssigneeName: fields[FieldAssigneeEmail],
			Period:       fields[FieldPeriod],
			Reason:       reason,
			ErrorType:    errorType,
			AddedVia:     models.BulkAddedViaType,
			CreatedBy:    createdBy,
		})
	}

	for _, fields := range rows {
		clientName := strings.TrimSpace(fields[FieldClientName])
		engagementType := strings.TrimSpace(fields[FieldType])

		if clientName == "" || engagementType == "" {
			addError(fields, "Client Name and Type are required", models.MissingDataErrorType)
			continue
		}

		clientID, ok := clientsByName[strings.ToLower(clientName)]
		if !ok {
			addError(fields, fmt.Sprintf("no client named %q found", clientName), models.ReferenceErrorType)
			continue
		}

		var assigneeID *uuid.UUID
		if assigneeEmail := strings.TrimSpace(fields[FieldAssigneeEmail]); assigneeEmail != "" {
			id, ok := employeesByEmail[strings.ToLower(assigneeEmail)]
			if !ok {
				addError(fields, fmt.Sprintf("no employee with email %q found", assigneeEmail), models.ReferenceErrorType)
				continue
			}
			assigneeID = &id
		}

		period := strings.TrimSpace(fields[FieldPeriod])
		key := engagementKey(clientID, engagementType, period)
		if _, ok := seen[key]; ok {
			addError(fields, "engagement with the same client, type and period already exists", models.DuplicateErrorType)
			continue
		}
		seen[key] = struct{}{}

		engagement := models.Engagement{
			ID:         uuid.New(),
			ClientID:   clientID,
			Type:       engagementType,
			AssigneeID: assigneeID,
			Status:     models.EngagementPending,
			Period:     period,
			CreatedBy:  createdBy,
		}

		if raw := strings.TrimSpace(fields[FieldDueDate]); raw != "" {
			dueDate, err := time.Parse("2006-01-02", raw)
			if err != nil {
				addError(fields, fmt.Sprintf("invalid due date %q, expected YYYY-MM-DD", raw), models.MissingDataErrorType)
				continue
			}
			engagement.DueDate = &dueDate
		}

		toCreate = append(toCreate, engagement)
	}

	return toCreate, importErrors
}
