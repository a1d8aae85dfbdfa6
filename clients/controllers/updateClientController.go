package controllers

import (
	"ca-office-backend/config"
	"ca-office-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type updateClientRequest struct {
	Name            *string        `json:"name"`
	MailID          *string        `json:"mail_id"`
	MobileNumber    *string        `json:"mobile_number"`
	Category        *string        `json:"category"`
	PAN             *string        `json:"pan"`
	GSTIN           *string        `json:"gstin"`
	PartnerID       *string        `json:"partner_id"`
	FirmID          *string        `json:"firm_id"`
	Address         *string        `json:"address"`
	City            *string        `json:"city"`
	State           *string        `json:"state"`
	ContactPerson   *string        `json:"contact_person"`
	LinkedClientIDs datatypes.JSON `json:"linked_client_ids"`
	Active          *bool          `json:"active"`
}

func (cc *ClientController) UpdateClientController(c *fiber.Ctx) error {
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

	var req updateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if req.Name != nil && *req.Name != "" {
		client.Name = *req.Name
	}
	if req.MailID != nil {
		client.MailID = *req.MailID
	}
	if req.MobileNumber != nil {
		client.MobileNumber = *req.MobileNumber
	}
	if req.Category != nil {
		client.Category = *req.Category
	}
	if req.PAN != nil && *req.PAN != "" {
		client.PAN = *req.PAN
	}
	if req.GSTIN != nil {
		client.GSTIN = req.GSTIN
	}
	if req.PartnerID != nil {
		client.PartnerID = utils.StringToUUIDPtr(*req.PartnerID)
	}
	if req.FirmID != nil {
		client.FirmID = utils.StringToUUIDPtr(*req.FirmID)
	}
	if req.Address != nil {
		client.Address = req.Address
	}
	if req.City != nil {
		client.City = req.City
	}
	if req.State != nil {
		client.State = req.State
	}
	if req.ContactPerson != nil {
		client.ContactPerson = req.ContactPerson
	}
	if req.LinkedClientIDs != nil {
		client.LinkedClientIDs = req.LinkedClientIDs
	}
	if req.Active != nil {
		client.Active = *req.Active
	}

	updated, err := cc.ClientRepo.UpdateClient(cc.DB, client)
	if err != nil {
		config.Logger.Error("Failed to update client", zap.String("id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to update client",
			"error":   err.Error(),
		})
	}

	if cc.BleveRepo != nil {
		if err := cc.BleveRepo.IndexSingleClient(*updated); err != nil {
			config.Logger.Error("Warning: Failed to re-index client in Bleve",
				zap.String("clientID", updated.ID.String()),
				zap.Error(err),
			)
		}
	}

	utils.InvalidateCacheAsync("clients")

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Client updated successfully",
		"data":    updated,
	})
}
