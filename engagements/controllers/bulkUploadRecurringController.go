package controllers

import (
	"fmt"
	"os"

	client_services "ca-office-backend/clients/services"
	"ca-office-backend/config"
	"ca-office-backend/engagements/services"
	"ca-office-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// BulkUploadRecurringEngagements imports recurring engagement templates from a
// CSV file. Create-only: rows matching an existing template by client, type
// and frequency are reported as duplicates and skipped.
func (ec *EngagementController) BulkUploadRecurringEngagements(c *fiber.Ctx) error {
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
	normalized := client_services.NormalizeRows(headers, rawRows)

	clients, err := ec.ClientRepo.GetAllClients()
	if err != nil {
		config.Logger.Error("Failed to load clients for recurring engagement import", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to load clients"})
	}
	employees, err := ec.EmployeeRepo.GetAllEmployees()
	if err != nil {
		config.Logger.Error("Failed to load employees for recurring engagement import", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to load employees"})
	}
	existing, err := ec.EngagementRepo.GetAllRecurringEngagements()
	if err != nil {
		config.Logger.Error("Failed to load recurring engagements for import", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to load existing recurring engagements"})
	}

	toCreate, importErrors := services.ClassifyRecurringRows(normalized, clients, employees, existing, userEmail)

	if len(importErrors) > 0 {
		if err := ec.EngagementRepo.LogBulkUploadEngagementErrors(importErrors); err != nil {
			config.Logger.Error("Warning: Failed to log recurring engagement import errors", zap.Error(err))
		}
	}

	if len(toCreate) > 0 {
		tx := ec.DB.Begin()
		if tx.Error != nil {
			config.Logger.Error("Failed to begin transaction for recurring engagement import", zap.Error(tx.Error))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to begin database transaction"})
		}

		if err := ec.EngagementRepo.BulkCreateRecurringEngagements(tx, toCreate); err != nil {
			tx.Rollback()
			config.Logger.Error("Critical: Transaction rolled back due to BulkCreateRecurringEngagements error", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": fmt.Sprintf("Failed to insert recurring engagements: %v. Database changes rolled back.", err.Error()),
			})
		}

		if err := tx.Commit().Error; err != nil {
			tx.Rollback()
			config.Logger.Error("Critical: Transaction rolled back due to commit error for recurring engagements", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": fmt.Sprintf("Failed to commit recurring engagement insertions: %v. Database changes rolled back.", err.Error()),
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":          "Bulk upload completed",
		"successful_count": len(toCreate),
		"error_count":      len(importErrors),
		"errors":           importErrors,
	})
}
