package controllers

import (
	"ca-office-backend/config"
	"ca-office-backend/db/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func (ic *InvoiceController) CreateTaxRateController(c *fiber.Ctx) error {
	type taxRateRequest struct {
		Name      string          `json:"name"`
		Rate      decimal.Decimal `json:"rate"`
		CreatedBy string          `json:"created_by"`
	}

	var req taxRateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Tax rate name is required",
		})
	}
	// Rates are fractions: 18% arrives as 0.18.
	if req.Rate.IsNegative() || req.Rate.GreaterThan(decimal.NewFromInt(1)) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Rate must be a fraction between 0 and 1",
		})
	}

	rate := models.TaxRate{
		ID:        uuid.New(),
		Name:      req.Name,
		Rate:      req.Rate,
		Active:    true,
		CreatedBy: req.CreatedBy,
	}

	created, err := ic.InvoiceRepo.CreateTaxRate(&rate)
	if err != nil {
		config.Logger.Error("Failed to create tax rate", zap.String("name", req.Name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create tax rate",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Tax rate created successfully",
		"data":    created,
	})
}

func (ic *InvoiceController) GetActiveTaxRatesController(c *fiber.Ctx) error {
	rates, err := ic.InvoiceRepo.GetActiveTaxRates()
	if err != nil {
		config.Logger.Error("Failed to fetch tax rates", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch tax rates",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": rates,
	})
}

func (ic *InvoiceController) DeactivateTaxRateController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid tax rate ID",
		})
	}

	if err := ic.InvoiceRepo.DeactivateTaxRate(id); err != nil {
		config.Logger.Error("Failed to deactivate tax rate", zap.String("id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to deactivate tax rate",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Tax rate deactivated successfully",
	})
}
