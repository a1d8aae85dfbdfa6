package controllers

import (
	"strings"
	"time"

	"ca-office-backend/config"
	"ca-office-backend/db/models"
	"ca-office-backend/invoices/services"
	"ca-office-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type createInvoiceRequest struct {
	calculateTaxRequest
	ClientID  string     `json:"client_id"`
	DueDate   *time.Time `json:"due_date"`
	Notes     *string    `json:"notes"`
	CreatedBy string     `json:"created_by"`
}

// CreateInvoiceController persists a draft invoice. The tax breakdown is
// computed once, here, and stored; issuing later does not recompute it.
func (ic *InvoiceController) CreateInvoiceController(c *fiber.Ctx) error {
	var req createInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "A valid client_id is required",
		})
	}
	if len(req.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "At least one line item is required",
		})
	}

	if _, err := ic.ClientRepo.GetClientByID(clientID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Client not found",
		})
	}

	input, err := ic.buildCalculatorInput(&req.calculateTaxRequest)
	if err != nil {
		if fiberErr, ok := err.(*fiber.Error); ok {
			return c.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
		}
		config.Logger.Error("Failed to build tax calculation input", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Tax calculation failed",
		})
	}

	breakdown := services.CalculateInvoiceTax(input)

	firmID, _ := uuid.Parse(req.FirmID)
	firm, err := ic.FirmRepo.GetFirmByID(firmID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Firm not found",
		})
	}

	invoiceNumber, err := ic.InvoiceRepo.NextInvoiceNumber(utils.Today())
	if err != nil {
		config.Logger.Error("Failed to generate invoice number", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to generate invoice number",
		})
	}

	placeOfSupply := strings.TrimSpace(req.PlaceOfSupply)
	if placeOfSupply == "" {
		placeOfSupply = firm.State
	}

	invoiceID := uuid.New()
	invoice := models.Invoice{
		ID:                 invoiceID,
		InvoiceNumber:      invoiceNumber,
		FirmID:             firmID,
		ClientID:           clientID,
		Status:             models.InvoiceDraft,
		PlaceOfSupply:      placeOfSupply,
		AdditionalDiscount: req.AdditionalDiscount,
		SubTotal:           decimal.NewFromFloat(breakdown.SubTotal).Round(2),
		TaxableAmount:      decimal.NewFromFloat(breakdown.TaxableAmount).Round(2),
		CGST:               decimal.NewFromFloat(breakdown.CGST).Round(2),
		SGST:               decimal.NewFromFloat(breakdown.SGST).Round(2),
		IGST:               decimal.NewFromFloat(breakdown.IGST).Round(2),
		Total:              decimal.NewFromFloat(breakdown.Total).Round(2),
		DueDate:            req.DueDate,
		Notes:              req.Notes,
		CreatedBy:          req.CreatedBy,
	}

	for _, item := range req.Items {
		lineItem := models.InvoiceLineItem{
			ID:          uuid.New(),
			InvoiceID:   invoiceID,
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			Discount:    item.Discount,
			TaxRateID:   utils.StringToUUIDPtr(item.TaxRateID),
		}
		invoice.LineItems = append(invoice.LineItems, lineItem)
	}

	tx := ic.DB.Begin()
	if tx.Error != nil {
		config.Logger.Error("Failed to begin transaction for invoice create", zap.Error(tx.Error))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to begin database transaction",
		})
	}

	created, err := ic.InvoiceRepo.CreateInvoice(tx, &invoice)
	if err != nil {
		tx.Rollback()
		config.Logger.Error("Critical: Transaction rolled back due to invoice create error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create invoice",
			"error":   err.Error(),
		})
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		config.Logger.Error("Critical: Transaction rolled back due to commit error for invoice", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create invoice",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Invoice created successfully",
		"data":      created,
		"breakdown": breakdown,
	})
}
