package controllers

import (
	"strings"

	"ca-office-backend/config"
	"ca-office-backend/invoices/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type lineItemRequest struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Discount    float64 `json:"discount"`
	TaxRateID   string  `json:"tax_rate_id"`
}

type calculateTaxRequest struct {
	FirmID             string            `json:"firm_id"`
	PlaceOfSupply      string            `json:"place_of_supply"`
	AdditionalDiscount float64           `json:"additional_discount"`
	Items              []lineItemRequest `json:"items"`
}

// buildCalculatorInput resolves firm registration, place of supply and tax
// rate references into the pure calculator's input.
func (ic *InvoiceController) buildCalculatorInput(req *calculateTaxRequest) (services.TaxInvoiceInput, error) {
	var input services.TaxInvoiceInput

	firmID, err := uuid.Parse(req.FirmID)
	if err != nil {
		return input, fiber.NewError(fiber.StatusBadRequest, "A valid firm_id is required")
	}
	firm, err := ic.FirmRepo.GetFirmByID(firmID)
	if err != nil {
		return input, fiber.NewError(fiber.StatusNotFound, "Firm not found")
	}

	input.FirmRegistered = firm.GSTIN != nil && *firm.GSTIN != ""
	input.AdditionalDiscount = req.AdditionalDiscount

	placeOfSupply := strings.TrimSpace(req.PlaceOfSupply)
	if placeOfSupply == "" {
		placeOfSupply = firm.State
	}
	input.Interstate = !strings.EqualFold(placeOfSupply, firm.State)

	rateCache := make(map[string]float64)
	for _, item := range req.Items {
		line := services.LineItemInput{
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			Discount:    item.Discount,
		}

		if item.TaxRateID != "" {
			fraction, ok := rateCache[item.TaxRateID]
			if !ok {
				rateID, err := uuid.Parse(item.TaxRateID)
				if err != nil {
					return input, fiber.NewError(fiber.StatusBadRequest, "Invalid tax_rate_id on line item")
				}
				rate, err := ic.InvoiceRepo.GetTaxRateByID(rateID)
				if err != nil {
					return input, fiber.NewError(fiber.StatusNotFound, "Tax rate not found")
				}
				fraction, _ = rate.Rate.Float64()
				rateCache[item.TaxRateID] = fraction
			}
			line.TaxRate = fraction
		}

		input.Items = append(input.Items, line)
	}

	return input, nil
}

// CalculateTaxController is the ad-hoc GST calculator: it returns the full
// breakdown without persisting anything.
func (ic *InvoiceController) CalculateTaxController(c *fiber.Ctx) error {
	var req calculateTaxRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if len(req.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "At least one line item is required",
		})
	}

	input, err := ic.buildCalculatorInput(&req)
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

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": breakdown,
	})
}
