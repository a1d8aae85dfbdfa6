package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"ca-office-backend/config"
	"ca-office-backend/db/models"
	"ca-office-backend/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EmailTaskHandler processes queued outbound email tasks. Every send,
// successful or not, is recorded in the email log.
type EmailTaskHandler struct {
	db *gorm.DB
}

func NewEmailTaskHandler(db *gorm.DB) *EmailTaskHandler {
	return &EmailTaskHandler{db: db}
}

func (h *EmailTaskHandler) HandleImportReportEmail(ctx context.Context, t *asynq.Task) error {
	var payload ImportReportEmailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal import report payload: %w", err)
	}

	if err := utils.SendEmail(payload.Recipient, payload.Message, payload.Subject, payload.AttachmentPath); err != nil {
		config.Logger.Error("Failed to send import report email",
			zap.String("recipient", payload.Recipient),
			zap.Error(err),
		)
		return err
	}

	h.logEmail(payload.Recipient, payload.Subject, payload.Message, payload.AttachmentPath)
	return nil
}

func (h *EmailTaskHandler) HandleInvoiceEmail(ctx context.Context, t *asynq.Task) error {
	var payload InvoiceEmailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal invoice email payload: %w", err)
	}

	message := fmt.Sprintf("Please find attached invoice %s.", payload.InvoiceNumber)
	subject := "Invoice " + payload.InvoiceNumber

	if err := utils.SendEmail(payload.Recipient, message, subject, payload.PDFPath); err != nil {
		config.Logger.Error("Failed to send invoice email",
			zap.String("recipient", payload.Recipient),
			zap.String("invoice_number", payload.InvoiceNumber),
			zap.Error(err),
		)
		return err
	}

	h.logEmail(payload.Recipient, subject, message, payload.PDFPath)
	return nil
}

func (h *EmailTaskHandler) logEmail(recipient, subject, message, attachmentPath string) {
	active := true
	emailLog := models.EmailLog{
		ID:             uuid.New(),
		Recipient:      recipient,
		Subject:        subject,
		Message:        message,
		SentAt:         utils.Today(),
		Active:         &active,
		AttachmentPath: attachmentPath,
	}
	if err := h.db.Create(&emailLog).Error; err != nil {
		config.Logger.Error("Failed to log sent email", zap.Error(err))
	}
}
