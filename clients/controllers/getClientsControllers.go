package controllers

import (
	"ca-office-backend/config"
	"ca-office-backend/utils"
	"ca-office-backend/utils/pagination"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (cc *ClientController) GetAllClientsController(c *fiber.Ctx) error {
	clients, err := cc.ClientRepo.GetAllClients()
	if err != nil {
		config.Logger.Error("Failed to fetch clients", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch clients",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": clients,
	})
}

func (cc *ClientController) GetFilteredClientsController(c *fiber.Ctx) error {
	params := pagination.ParsePaginationParams(c)
	if err := pagination.ValidatePaginationParams(params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	offset := (params.Page - 1) * params.PageSize

	clients, total, err := cc.ClientRepo.GetFilteredClients(params.PageSize, offset, params.Filters)
	if err != nil {
		config.Logger.Error("Failed to fetch filtered clients", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch clients",
		})
	}

	return c.Status(fiber.StatusOK).JSON(pagination.NewPaginatedResponse(c, clients, total, params))
}

func (cc *ClientController) RetrieveSingleClientController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid client ID",
		})
	}

	client, err := cc.ClientRepo.GetClientByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Client not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": client,
	})
}

// DeleteClientController removes a client and everything that hangs off it:
// engagements and recurring engagement definitions go in the same
// transaction.
func (cc *ClientController) DeleteClientController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid client ID",
		})
	}

	if _, err := cc.ClientRepo.GetClientByID(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Client not found",
		})
	}

	tx := cc.DB.Begin()
	if tx.Error != nil {
		config.Logger.Error("Failed to begin transaction for client delete", zap.Error(tx.Error))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to begin database transaction",
		})
	}

	if err := cc.ClientRepo.DeleteClientCascade(tx, id); err != nil {
		tx.Rollback()
		config.Logger.Error("Critical: Transaction rolled back due to cascade delete error",
			zap.String("clientID", id.String()),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to delete client",
			"error":   err.Error(),
		})
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		config.Logger.Error("Critical: Transaction rolled back due to commit error on client delete", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to delete client",
		})
	}

	if cc.BleveRepo != nil {
		if err := cc.BleveRepo.DeleteClient(id.String()); err != nil {
			config.Logger.Error("Warning: Failed to remove client from Bleve index",
				zap.String("clientID", id.String()),
				zap.Error(err),
			)
		}
	}

	utils.InvalidateCacheAsync("clients")

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Client and related records deleted successfully",
	})
}
