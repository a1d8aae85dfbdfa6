package controllers

import (
	"ca-office-backend/config"
	"ca-office-backend/db/models"
	engagement_services "ca-office-backend/engagements/services"
	"ca-office-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type recurringEngagementRequest struct {
	ClientID   string                     `json:"client_id"`
	Type       string                     `json:"type"`
	AssigneeID string                     `json:"assignee_id"`
	Frequency  models.RecurrenceFrequency `json:"frequency"`
	DueDay     int                        `json:"due_day"`
	Active     *bool                      `json:"active"`
	CreatedBy  string                     `json:"created_by"`
}

func (ec *EngagementController) CreateRecurringEngagementController(c *fiber.Ctx) error {
	var req recurringEngagementRequest
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

	switch req.Frequency {
	case models.FrequencyMonthly, models.FrequencyQuarterly, models.FrequencyYearly:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "frequency must be MONTHLY, QUARTERLY or YEARLY",
		})
	}

	if _, err := ec.ClientRepo.GetClientByID(clientID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Client not found",
		})
	}

	rec := models.RecurringEngagement{
		ID:         uuid.New(),
		ClientID:   clientID,
		Type:       req.Type,
		AssigneeID: utils.StringToUUIDPtr(req.AssigneeID),
		Frequency:  req.Frequency,
		DueDay:     req.DueDay,
		Active:     true,
		CreatedBy:  req.CreatedBy,
	}
	if rec.DueDay == 0 {
		rec.DueDay = 20
	}

	created, err := ec.EngagementRepo.CreateRecurringEngagement(&rec)
	if err != nil {
		config.Logger.Error("Failed to create recurring engagement", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create recurring engagement",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Recurring engagement created successfully",
		"data":    created,
	})
}

func (ec *EngagementController) UpdateRecurringEngagementController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid recurring engagement ID",
		})
	}

	rec, err := ec.EngagementRepo.GetRecurringEngagementByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Recurring engagement not found",
		})
	}

	var req recurringEngagementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if req.Type != "" {
		rec.Type = req.Type
	}
	if req.AssigneeID != "" {
		rec.AssigneeID = utils.StringToUUIDPtr(req.AssigneeID)
	}
	if req.Frequency != "" {
		switch req.Frequency {
		case models.FrequencyMonthly, models.FrequencyQuarterly, models.FrequencyYearly:
			rec.Frequency = req.Frequency
		default:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "frequency must be MONTHLY, QUARTERLY or YEARLY",
			})
		}
	}
	if req.DueDay > 0 {
		rec.DueDay = req.DueDay
	}
	if req.Active != nil {
		rec.Active = *req.Active
	}

	updated, err := ec.EngagementRepo.UpdateRecurringEngagement(rec)
	if err != nil {
		config.Logger.Error("Failed to update recurring engagement", zap.String("id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to update recurring engagement",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Recurring engagement updated successfully",
		"data":    updated,
	})
}

func (ec *EngagementController) GetAllRecurringEngagementsController(c *fiber.Ctx) error {
	recs, err := ec.EngagementRepo.GetAllRecurringEngagements()
	if err != nil {
		config.Logger.Error("Failed to fetch recurring engagements", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch recurring engagements",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": recs,
	})
}

// RunMaterialisationController triggers the recurring materialiser on
// demand, outside its nightly schedule.
func (ec *EngagementController) RunMaterialisationController(c *fiber.Ctx) error {
	created, err := engagement_services.MaterialiseDueEngagements(ec.DB, ec.EngagementRepo, utils.Today())
	if err != nil {
		config.Logger.Error("Manual recurring materialisation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Materialisation failed",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Materialisation completed",
		"created": created,
	})
}
