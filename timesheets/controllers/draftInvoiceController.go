package controllers

import (
	"fmt"
	"strings"

	"ca-office-backend/config"
	"ca-office-backend/db/models"
	invoice_services "ca-office-backend/invoices/services"
	"ca-office-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type draftInvoiceRequest struct {
	ClientID           string  `json:"client_id"`
	FirmID             string  `json:"firm_id"`
	TaxRateID          string  `json:"tax_rate_id"`
	PlaceOfSupply      string  `json:"place_of_supply"`
	AdditionalDiscount float64 `json:"additional_discount"`
	CreatedBy          string  `json:"created_by"`
}

// billingGroup folds one employee's unbilled hours on one engagement into a
// single invoice line.
type billingGroup struct {
	engagementID uuid.UUID
	employeeID   uuid.UUID
	hours        decimal.Decimal
	entryIDs     []uuid.UUID
}

// DraftInvoiceFromTimesheetsController turns every unbilled timesheet entry
// of a client into a draft invoice. Lines are grouped per engagement and
// employee; the rate is the employee's hourly rate. Entries whose employee
// has no hourly rate are left unbilled and reported back.
func (tc *TimesheetController) DraftInvoiceFromTimesheetsController(c *fiber.Ctx) error {
	var req draftInvoiceRequest
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
	firmID, err := uuid.Parse(req.FirmID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "A valid firm_id is required",
		})
	}

	if _, err := tc.ClientRepo.GetClientByID(clientID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Client not found",
		})
	}
	firm, err := tc.FirmRepo.GetFirmByID(firmID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Firm not found",
		})
	}

	var taxRateID *uuid.UUID
	taxFraction := 0.0
	if req.TaxRateID != "" {
		id, err := uuid.Parse(req.TaxRateID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid tax_rate_id",
			})
		}
		rate, err := tc.InvoiceRepo.GetTaxRateByID(id)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Tax rate not found",
			})
		}
		taxRateID = &id
		taxFraction, _ = rate.Rate.Float64()
	}

	entries, err := tc.TimesheetRepo.GetUnbilledByClient(clientID)
	if err != nil {
		config.Logger.Error("Failed to fetch unbilled timesheet entries", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch unbilled timesheet entries",
		})
	}
	if len(entries) == 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "No unbilled timesheet entries for this client",
		})
	}

	// Group in entry order so line items come out oldest-work-first.
	groups := make(map[string]*billingGroup)
	var groupOrder []string
	var skipped []uuid.UUID

	employeeRates := make(map[uuid.UUID]*float64)
	employeeNames := make(map[uuid.UUID]string)

	for _, entry := range entries {
		rate, ok := employeeRates[entry.EmployeeID]
		if !ok {
			employee, err := tc.EmployeeRepo.GetEmployeeByID(entry.EmployeeID)
			if err != nil {
				skipped = append(skipped, entry.ID)
				continue
			}
			rate = employee.HourlyRate
			employeeRates[entry.EmployeeID] = rate
			employeeNames[entry.EmployeeID] = employee.Name
		}
		if rate == nil {
			skipped = append(skipped, entry.ID)
			continue
		}

		key := entry.EngagementID.String() + "|" + entry.EmployeeID.String()
		group, ok := groups[key]
		if !ok {
			group = &billingGroup{
				engagementID: entry.EngagementID,
				employeeID:   entry.EmployeeID,
			}
			groups[key] = group
			groupOrder = append(groupOrder, key)
		}
		group.hours = group.hours.Add(entry.Hours)
		group.entryIDs = append(group.entryIDs, entry.ID)
	}

	if len(groupOrder) == 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "All unbilled entries belong to employees without an hourly rate",
			"skipped": skipped,
		})
	}

	input := invoice_services.TaxInvoiceInput{
		AdditionalDiscount: req.AdditionalDiscount,
		FirmRegistered:     firm.GSTIN != nil && *firm.GSTIN != "",
	}
	placeOfSupply := strings.TrimSpace(req.PlaceOfSupply)
	if placeOfSupply == "" {
		placeOfSupply = firm.State
	}
	input.Interstate = !strings.EqualFold(placeOfSupply, firm.State)

	var lineItems []models.InvoiceLineItem
	var billedEntryIDs []uuid.UUID

	for _, key := range groupOrder {
		group := groups[key]
		hours, _ := group.hours.Float64()
		hourlyRate := *employeeRates[group.employeeID]

		description := fmt.Sprintf("Professional services: %s", employeeNames[group.employeeID])
		if engagement, err := tc.EngagementRepo.GetEngagementByID(group.engagementID); err == nil {
			description = fmt.Sprintf("%s %s (%s)", engagement.Type, engagement.Period, employeeNames[group.employeeID])
		}

		input.Items = append(input.Items, invoice_services.LineItemInput{
			Description: description,
			Quantity:    hours,
			Rate:        hourlyRate,
			TaxRate:     taxFraction,
		})
		lineItems = append(lineItems, models.InvoiceLineItem{
			ID:          uuid.New(),
			Description: description,
			Quantity:    hours,
			Rate:        hourlyRate,
			TaxRateID:   taxRateID,
		})
		billedEntryIDs = append(billedEntryIDs, group.entryIDs...)
	}

	breakdown := invoice_services.CalculateInvoiceTax(input)

	invoiceNumber, err := tc.InvoiceRepo.NextInvoiceNumber(utils.Today())
	if err != nil {
		config.Logger.Error("Failed to generate invoice number", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to generate invoice number",
		})
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
		CreatedBy:          req.CreatedBy,
	}
	for i := range lineItems {
		lineItems[i].InvoiceID = invoiceID
	}
	invoice.LineItems = lineItems

	tx := tc.DB.Begin()
	if tx.Error != nil {
		config.Logger.Error("Failed to begin transaction for timesheet invoice", zap.Error(tx.Error))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to begin database transaction",
		})
	}

	created, err := tc.InvoiceRepo.CreateInvoice(tx, &invoice)
	if err != nil {
		tx.Rollback()
		config.Logger.Error("Critical: Transaction rolled back due to timesheet invoice create error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create invoice from timesheets",
			"error":   err.Error(),
		})
	}

	if err := tc.TimesheetRepo.MarkBilled(tx, billedEntryIDs, invoiceID); err != nil {
		tx.Rollback()
		config.Logger.Error("Critical: Transaction rolled back due to mark-billed error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to mark timesheet entries billed",
		})
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		config.Logger.Error("Critical: Transaction rolled back due to commit error for timesheet invoice", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create invoice from timesheets",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "Draft invoice created from unbilled timesheets",
		"data":         created,
		"breakdown":    breakdown,
		"billed_count": len(billedEntryIDs),
		"skipped":      skipped,
	})
}
