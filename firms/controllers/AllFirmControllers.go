package controllers

import (
	"ca-office-backend/config"
	"ca-office-backend/db/models"
	"ca-office-backend/firms/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FirmController struct {
	FirmRepo repositories.FirmRepository
}

type firmRequest struct {
	Name      string  `json:"name"`
	GSTIN     *string `json:"gstin"`
	State     string  `json:"state"`
	Address   *string `json:"address"`
	PAN       *string `json:"pan"`
	CreatedBy string  `json:"created_by"`
}

func (fc *FirmController) CreateFirmController(c *fiber.Ctx) error {
	var req firmRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if req.Name == "" || req.State == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Firm name and state are required",
		})
	}

	firm := models.Firm{
		ID:        uuid.New(),
		Name:      req.Name,
		GSTIN:     req.GSTIN,
		State:     req.State,
		Address:   req.Address,
		PAN:       req.PAN,
		Active:    true,
		CreatedBy: req.CreatedBy,
	}

	created, err := fc.FirmRepo.CreateFirm(&firm)
	if err != nil {
		config.Logger.Error("Failed to create firm", zap.String("name", req.Name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create firm",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Firm created successfully",
		"data":    created,
	})
}

func (fc *FirmController) UpdateFirmController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid firm ID",
		})
	}

	firm, err := fc.FirmRepo.GetFirmByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Firm not found",
		})
	}

	var req firmRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if req.Name != "" {
		firm.Name = req.Name
	}
	if req.State != "" {
		firm.State = req.State
	}
	if req.GSTIN != nil {
		firm.GSTIN = req.GSTIN
	}
	if req.Address != nil {
		firm.Address = req.Address
	}
	if req.PAN != nil {
		firm.PAN = req.PAN
	}

	updated, err := fc.FirmRepo.UpdateFirm(firm)
	if err != nil {
		config.Logger.Error("Failed to update firm", zap.String("id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to update firm",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Firm updated successfully",
		"data":    updated,
	})
}

func (fc *FirmController) GetAllFirmsController(c *fiber.Ctx) error {
	firms, err := fc.FirmRepo.GetAllFirms()
	if err != nil {
		config.Logger.Error("Failed to fetch firms", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch firms",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": firms,
	})
}

func (fc *FirmController) RetrieveSingleFirmController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid firm ID",
		})
	}

	firm, err := fc.FirmRepo.GetFirmByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Firm not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": firm,
	})
}

func (fc *FirmController) DeactivateFirmController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid firm ID",
		})
	}

	if err := fc.FirmRepo.DeactivateFirm(id); err != nil {
		config.Logger.Error("Failed to deactivate firm", zap.String("id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to deactivate firm",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Firm deactivated successfully",
	})
}
