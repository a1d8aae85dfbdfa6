package controllers

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"ca-office-backend/clients/services"
	"ca-office-backend/config"
	"ca-office-backend/db/models"
	"ca-office-backend/internal/tasks"
	"ca-office-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// importSessionTTL is how long a validated upload waits for the operator's
// commit decision before expiring from Redis.
const importSessionTTL = 30 * time.Minute

// BulkUploadClients runs the validation stage of the client import pipeline.
// Nothing is written to the clients table here: the classified rows are
// cached as an import session and the operator commits (or abandons) the
// session in a separate call.
func (cc *ClientController) BulkUploadClients(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Failed to get file"})
	}

	tempFilePath := fmt.Sprintf("./tmp/%s", file.Filename)
	if err := c.SaveFile(file, tempFilePath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to save file"})
	}
	defer os.Remove(tempFilePath)

	userEmail := c.FormValue("created_by")
	if userEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing 'created_by' field in FormData"})
	}

	f, err := os.Open(tempFilePath)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to open file"})
	}
	defer f.Close()

	headers, rawRows, err := utils.ReadCSVRows(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	hasNameColumn := false
	for _, h := range headers {
		if services.NormalizeHeader(h) == services.FieldName {
			hasNameColumn = true
			break
		}
	}
	if !hasNameColumn {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "CSV is missing the mandatory 'Name' column",
		})
	}

	normalized := services.NormalizeRows(headers, rawRows)

	snapshots, err := cc.loadMasterSnapshots()
	if err != nil {
		config.Logger.Error("Failed to load master snapshots for import validation", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to load existing records for validation",
		})
	}

	rows, summary := services.ClassifyClientRows(normalized, snapshots)

	session := services.NewImportSession(rows, summary, userEmail)
	sessionData, err := json.Marshal(session)
	if err != nil {
		config.Logger.Error("Failed to serialize import session", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create import session",
		})
	}

	err = cc.RedisClient.Set(cc.Ctx, services.SessionCacheKey(session.SessionID), sessionData, importSessionTTL).Err()
	if err != nil {
		config.Logger.Error("Failed to cache import session in Redis", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to cache import session",
		})
	}

	downloadLink := cc.reportImportErrors(session, userEmail)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":         "Validation completed",
		"session_id":      session.SessionID,
		"summary":         summary,
		"rows":            rows,
		"error_file_path": downloadLink,
		"expires_in":      importSessionTTL.String(),
	})
}

func (cc *ClientController) loadMasterSnapshots() (services.MasterSnapshots, error) {
	var snap services.MasterSnapshots

	clients, err := cc.ClientRepo.GetAllClients()
	if err != nil {
		return snap, fmt.Errorf("failed to load clients: %w", err)
	}
	employees, err := cc.EmployeeRepo.GetAllEmployees()
	if err != nil {
		return snap, fmt.Errorf("failed to load employees: %w", err)
	}
	firms, err := cc.FirmRepo.GetAllFirms()
	if err != nil {
		return snap, fmt.Errorf("failed to load firms: %w", err)
	}

	snap.Clients = clients
	snap.Employees = employees
	snap.Firms = firms
	return snap, nil
}

// reportImportErrors writes the invalid-rows CSV, logs the error records and
// queues the report email. All of it is best effort: a failure here never
// blocks the validation response.
func (cc *ClientController) reportImportErrors(session *services.ImportSession, userEmail string) *string {
	var errorRows []services.ImportRow
	for _, row := range session.Rows {
		if row.ErrorReason() != "" {
			errorRows = append(errorRows, row)
		}
	}
	if len(errorRows) == 0 {
		return nil
	}

	var errorRecords []models.BulkUploadErrorClient
	for _, row := range errorRows {
		errorRecords = append(errorRecords, models.BulkUploadErrorClient{
			ID:           uuid.New(),
			Name:         row.Fields[services.FieldName],
			MailID:       row.Fields[services.FieldMailID],
			MobileNumber: row.Fields[services.FieldMobileNumber],
			Category:     row.Fields[services.FieldCategory],
			PAN:          row.Fields[services.FieldPAN],
			PartnerName:  row.Fields[services.FieldPartner],
			FirmName:     row.Fields[services.FieldFirmName],
			Reason:       row.ErrorReason(),
			ErrorType:    importErrorType(&row),
			AddedVia:     models.BulkAddedViaType,
			CreatedBy:    userEmail,
		})
	}
	if err := cc.ClientRepo.LogBulkUploadClientErrors(errorRecords); err != nil {
		config.Logger.Error("Warning: Failed to log client import errors", zap.Error(err))
	}

	// Invalid-rows CSV: template columns plus the flattened reason. The
	// file round-trips: fix the reported defects and upload it again.
	exportHeaders := append(append([]string{}, services.ClientTemplateColumns...), "Error Reason")
	exportRows := make([][]string, 0, len(errorRows))
	for _, row := range errorRows {
		record := make([]string, 0, len(exportHeaders))
		for _, col := range services.ClientTemplateColumns {
			record = append(record, row.Fields[col])
		}
		record = append(record, row.ErrorReason())
		exportRows = append(exportRows, record)
	}

	filePath := fmt.Sprintf("./public/files/client_import_errors_%s.csv", session.SessionID)
	if err := utils.WriteCSVFile(filePath, exportHeaders, exportRows, "Fix the reported rows and upload this file again"); err != nil {
		config.Logger.Error("Warning: Failed to write client import error CSV", zap.Error(err))
		return nil
	}

	link := utils.GenerateDownloadLink(filePath)

	payload := tasks.ImportReportEmailPayload{
		Recipient:      userEmail,
		Subject:        "Client Import Errors - " + time.Now().Format("2006-01-02 15:04:05"),
		Message:        "Please find the attached file with rows that need attention (missing fields, duplicates and unresolved references).",
		AttachmentPath: filePath,
	}
	task, err := tasks.NewImportReportEmailTask(payload)
	if err != nil {
		config.Logger.Error("Warning: Failed to build import report email task", zap.Error(err))
		return &link
	}
	if _, err := cc.AsynqClient.Enqueue(task); err != nil {
		config.Logger.Error("Warning: Failed to enqueue import report email", zap.Error(err))
	}

	return &link
}

func importErrorType(row *services.ImportRow) string {
	if row.DuplicateReason != "" {
		return models.DuplicateErrorType
	}
	for field, msg := range row.Errors {
		if (field == services.FieldPartner || field == services.FieldFirmName) && strings.Contains(msg, "found") {
			return models.ReferenceErrorType
		}
	}
	return models.MissingDataErrorType
}
