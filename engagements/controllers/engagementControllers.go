package controllers

import (
	"time"

	"ca-office-backend/config"
	"ca-office-backend/db/models"
	"ca-office-backend/utils"
	"ca-office-backend/utils/pagination"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type engagementRequest struct {
	ClientID   string                  `json:"client_id"`
	Type       string                  `json:"type"`
	AssigneeID string                  `json:"assignee_id"`
	Status     models.EngagementStatus `json:"status"`
	Period     string                  `json:"period"`
	DueDate    *time.Time              `json:"due_date"`
	Checklist  datatypes.JSON          `json:"checklist"`
	Notes      *string                 `json:"notes"`
	CreatedBy  string                  `json:"created_by"`
}

func (ec *EngagementController) CreateEngagementController(c *fiber.Ctx) error {
	var req engagementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	clientID, err := uuid.Parse(req.ClientID)
	if err != nil || req.Type == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "A valid client_id and a type are required",
		})
	}

	if _, err := ec.ClientRepo.GetClientByID(clientID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Client not found",
		})
	}

	engagement := models.Engagement{
		ID:         uuid.New(),
		ClientID:   clientID,
		Type:       req.Type,
		AssigneeID: utils.StringToUUIDPtr(req.AssigneeID),
		Status:     models.EngagementPending,
		Period:     req.Period,
		DueDate:    req.DueDate,
		Checklist:  req.Checklist,
		Notes:      req.Notes,
		CreatedBy:  req.CreatedBy,
	}
	if req.Status != "" {
		engagement.Status = req.Status
	}

	created, err := ec.EngagementRepo.CreateEngagement(&engagement)
	if err != nil {
		config.Logger.Error("Failed to create engagement", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create engagement",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Engagement created successfully",
		"data":    created,
	})
}

func (ec *EngagementController) UpdateEngagementController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid engagement ID",
		})
	}

	engagement, err := ec.EngagementRepo.GetEngagementByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Engagement not found",
		})
	}

	var req engagementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if req.Type != "" {
		engagement.Type = req.Type
	}
	if req.Status != "" {
		engagement.Status = req.Status
	}
	if req.AssigneeID != "" {
		engagement.AssigneeID = utils.StringToUUIDPtr(req.AssigneeID)
	}
	if req.Period != "" {
		engagement.Period = req.Period
	}
	if req.DueDate != nil {
		engagement.DueDate = req.DueDate
	}
	if req.Checklist != nil {
		engagement.Checklist = req.Checklist
	}
	if req.Notes != nil {
		engagement.Notes = req.Notes
	}

	updated, err := ec.EngagementRepo.UpdateEngagement(engagement)
	if err != nil {
		config.Logger.Error("Failed to update engagement", zap.String("id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to update engagement",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Engagement updated successfully",
		"data":    updated,
	})
}

func (ec *EngagementController) GetFilteredEngagementsController(c *fiber.Ctx) error {
	params := pagination.ParsePaginationParams(c)
	if err := pagination.ValidatePaginationParams(params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	offset := (params.Page - 1) * params.PageSize

	engagements, total, err := ec.EngagementRepo.GetFilteredEngagements(params.PageSize, offset, params.Filters)
	if err != nil {
		config.Logger.Error("Failed to fetch filtered engagements", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch engagements",
		})
	}

	return c.Status(fiber.StatusOK).JSON(pagination.NewPaginatedResponse(c, engagements, total, params))
}

func (ec *EngagementController) RetrieveSingleEngagementController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid engagement ID",
		})
	}

	engagement, err := ec.EngagementRepo.GetEngagementByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Engagement not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": engagement,
	})
}

func (ec *EngagementController) DeleteEngagementController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid engagement ID",
		})
	}

	if err := ec.EngagementRepo.DeleteEngagement(id); err != nil {
		config.Logger.Error("Failed to delete engagement", zap.String("id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to delete engagement",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Engagement deleted successfully",
	})
}
