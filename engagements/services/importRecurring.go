package services

import (
	"fmt"
	"strconv"
	"strings"

	"ca-office-backend/db/models"

	"github.com/google/uuid"
)

// Extra CSV columns of the recurring-engagement import template; the rest
// are shared with the engagement template.
const (
	FieldFrequency = "Frequency"
	FieldDueDay    = "Due Day"
)

var RecurringTemplateColumns = []string{
	FieldClientName,
	FieldType,
	FieldAssigneeEmail,
	FieldFrequency,
	FieldDueDay,
}

func recurringKey(clientID uuid.UUID, engagementType string, frequency models.RecurrenceFrequency) string {
	return clientID.String() + "|" + strings.ToLower(strings.TrimSpace(engagementType)) + "|" + string(frequency)
}

// ClassifyRecurringRows validates recurring-engagement import rows.
// Create-only, like the engagement import: one definition per client, type
// and frequency. Pure.
func ClassifyRecurringRows(
	rows []map[string]string,
	clients []models.Client,
	employees []models.Employee,
	existing []models.RecurringEngagement,
	createdBy string,
) ([]models.RecurringEngagement, []models.BulkUploadErrorEngagement) {
	clientsByName := make(map[string]uuid.UUID, len(clients))
	for _, client := range clients {
		clientsByName[strings.ToLower(strings.TrimSpace(client.Name))] = client.ID
	}

	employeesByEmail := make(map[string]uuid.UUID, len(employees))
	for _, employee := range employees {
		employeesByEmail[strings.ToLower(strings.TrimSpace(employee.Email))] = employee.ID
	}

	seen := make(map[string]struct{}, len(existing))
	for _, rec := range existing {
		seen[recurringKey(rec.ClientID, rec.Type, rec.Frequency)] = struct{}{}
	}

	var toCreate []models.RecurringEngagement
	var importErrors []models.BulkUploadErrorEngagement

	addError := func(fields map[string]string, reason, errorType string) {
		importErrors = append(importErrors, models.BulkUploadErrorEngagement{
			ID:           uuid.New(),
			ClientName:   fields[FieldClientName],
			Type:         fields[FieldType],
			AssigneeName: fields[FieldAssigneeEmail],
			Period:       fields[FieldFrequency],
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

		frequency := models.RecurrenceFrequency(strings.ToUpper(strings.TrimSpace(fields[FieldFrequency])))
		switch frequency {
		case models.FrequencyMonthly, models.FrequencyQuarterly, models.FrequencyYearly:
		default:
			addError(fields, fmt.Sprintf("invalid frequency %q, expected MONTHLY, QUARTERLY or YEARLY", fields[FieldFrequency]), models.MissingDataErrorType)
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

		dueDay := 20
		if raw := strings.TrimSpace(fields[FieldDueDay]); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 || parsed > 31 {
				addError(fields, fmt.Sprintf("invalid due day %q, expected 1-31", raw), models.MissingDataErrorType)
				continue
			}
			dueDay = parsed
		}

		key := recurringKey(clientID, engagementType, frequency)
		if _, ok := seen[key]; ok {
			addError(fields, "recurring engagement with the same client, type and frequency already exists", models.DuplicateErrorType)
			continue
		}
		seen[key] = struct{}{}

		toCreate = append(toCreate, models.RecurringEngagement{
			ID:         uuid.New(),
			ClientID:   clientID,
			Type:       engagementType,
			AssigneeID: assigneeID,
			Frequency:  frequency,
			DueDay:     dueDay,
			Active:     true,
			CreatedBy:  createdBy,
		})
	}

	return toCreate, importErrors
}
