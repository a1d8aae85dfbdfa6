package controllers

import (
	"ca-office-backend/config"
	"ca-office-backend/db/models"
	"ca-office-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type clientRequest struct {
	Name            string         `json:"name"`
	MailID          string         `json:"mail_id"`
	MobileNumber    string         `json:"mobile_number"`
	Category        string         `json:"category"`
	PAN             string         `json:"pan"`
	GSTIN           *string        `json:"gstin"`
	PartnerID       string         `json:"partner_id"`
	FirmID          string         `json:"firm_id"`
	Address         *string        `json:"address"`
	City            *string        `json:"city"`
	State           *string        `json:"state"`
	ContactPerson   *string        `json:"contact_person"`
	LinkedClientIDs datatypes.JSON `json:"linked_client_ids"`
	CreatedBy       string         `json:"created_by"`
}

func (cc *ClientController) CreateClientController(c *fiber.Ctx) error {
	var req clientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Client name is required",
		})
	}

	client := models.Client{
		ID:              uuid.New(),
		Name:            req.Name,
		MailID:          req.MailID,
		MobileNumber:    req.MobileNumber,
		Category:        req.Category,
		PAN:             req.PAN,
		GSTIN:           req.GSTIN,
		PartnerID:       utils.StringToUUIDPtr(req.PartnerID),
		FirmID:          utils.StringToUUIDPtr(req.FirmID),
		Address:         req.Address,
		City:            req.City,
		State:           req.State,
		ContactPerson:   req.ContactPerson,
		LinkedClientIDs: req.LinkedClientIDs,
		Active:          true,
		CreatedBy:       req.CreatedBy,
	}
	if client.PAN == "" {
		client.PAN = models.PANNotAvailable
	}

	created, err := cc.ClientRepo.CreateClient(cc.DB, &client)
	if err != nil {
		config.Logger.Error("Failed to create client", zap.String("name", req.Name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create client",
			"error":   err.Error(),
		})
	}

	if cc.BleveRepo != nil {
		if err := cc.BleveRepo.IndexSingleClient(*created); err != nil {
			config.Logger.Error("Warning: Failed to index client in Bleve",
				zap.String("clientID", created.ID.String()),
				zap.Error(err),
			)
		}
	}

	utils.InvalidateCacheAsync("clients")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Client created successfully",
		"data":    created,
	})
}
