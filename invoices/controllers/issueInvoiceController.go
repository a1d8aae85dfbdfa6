package controllers

import (
	"ca-office-backend/config"
	"ca-office-backend/db/models"
	"ca-office-backend/internal/tasks"
	"ca-office-backend/invoices/services"
	"ca-office-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IssueInvoiceController moves a draft to ISSUED, renders the PDF and queues
// the email to the client. Issuing is one-way; a cancelled or paid invoice
// cannot be re-issued.
func (ic *InvoiceController) IssueInvoiceController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid invoice ID",
		})
	}

	invoice, err := ic.InvoiceRepo.GetInvoiceByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Invoice not found",
		})
	}

	if invoice.Status != models.InvoiceDraft {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Only draft invoices can be issued",
			"status":  invoice.Status,
		})
	}

	firm, err := ic.FirmRepo.GetFirmByID(invoice.FirmID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Firm not found",
		})
	}
	client, err := ic.ClientRepo.GetClientByID(invoice.ClientID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Client not found",
		})
	}

	pdfPath, err := services.GenerateInvoicePDF(invoice, firm, client)
	if err != nil {
		config.Logger.Error("Failed to generate invoice PDF",
			zap.String("invoice_number", invoice.InvoiceNumber),
			zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to generate invoice PDF",
		})
	}

	now := utils.Today()
	invoice.Status = models.InvoiceIssued
	invoice.IssueDate = &now

	updated, err := ic.InvoiceRepo.UpdateInvoice(invoice)
	if err != nil {
		config.Logger.Error("Failed to mark invoice issued", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to issue invoice",
		})
	}

	if client.HasDeliverableEmail() {
		task, err := tasks.NewInvoiceEmailTask(tasks.InvoiceEmailPayload{
			Recipient:     client.MailID,
			InvoiceID:     invoice.ID.String(),
			InvoiceNumber: invoice.InvoiceNumber,
			PDFPath:       pdfPath,
		})
		if err == nil {
			if _, err := ic.AsynqClient.Enqueue(task); err != nil {
				config.Logger.Error("Failed to enqueue invoice email",
					zap.String("invoice_number", invoice.InvoiceNumber),
					zap.Error(err))
			}
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "Invoice issued successfully",
		"data":     updated,
		"pdf_path": utils.GenerateDownloadLink(pdfPath),
	})
}

// UpdateInvoiceStatusController handles the remaining transitions: ISSUED ->
// PAID and DRAFT/ISSUED -> CANCELLED.
func (ic *InvoiceController) UpdateInvoiceStatusController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid invoice ID",
		})
	}

	var req struct {
		Status models.InvoiceStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	invoice, err := ic.InvoiceRepo.GetInvoiceByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Invoice not found",
		})
	}

	allowed := false
	switch req.Status {
	case models.InvoicePaid:
		allowed = invoice.Status == models.InvoiceIssued
	case models.InvoiceCancelled:
		allowed = invoice.Status == models.InvoiceDraft || invoice.Status == models.InvoiceIssued
	}
	if !allowed {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Invalid status transition",
			"from":    invoice.Status,
			"to":      req.Status,
		})
	}

	invoice.Status = req.Status
	updated, err := ic.InvoiceRepo.UpdateInvoice(invoice)
	if err != nil {
		config.Logger.Error("Failed to update invoice status", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to update invoice status",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Invoice status updated successfully",
		"data":    updated,
	})
}
