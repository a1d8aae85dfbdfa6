package controllers

import (
	"ca-office-backend/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (c *SearchController) SearchClientsController(ctx *fiber.Ctx) error {
	queryString := ctx.Query("q")
	if queryString == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Query parameter 'q' is required",
			"status":  "error",
		})
	}

	result, err := c.bleveRepo.SearchClients(queryString)
	if err != nil {
		config.Logger.Error("Client search failed", zap.String("query", queryString), zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Search failed",
			"status":  "error",
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"results": c.bleveRepo.GetDocumentFields(result),
		"total":   result.Total,
		"status":  "success",
	})
}

func (c *SearchController) SearchEmployeesController(ctx *fiber.Ctx) error {
	queryString := ctx.Query("q")
	if queryString == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Query parameter 'q' is required",
			"status":  "error",
		})
	}

	result, err := c.bleveRepo.SearchEmployees(queryString)
	if err != nil {
		config.Logger.Error("Employee search failed", zap.String("query", queryString), zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Search failed",
			"status":  "error",
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"results": c.bleveRepo.GetDocumentFields(result),
		"total":   result.Total,
		"status":  "success",
	})
}
