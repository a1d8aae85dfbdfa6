package controllers

import (
	"time"

	"ca-office-backend/config"
	"ca-office-backend/db/models"
	"ca-office-backend/utils/pagination"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type timesheetEntryRequest struct {
	EmployeeID   string  `json:"employee_id"`
	EngagementID string  `json:"engagement_id"`
	WorkDate     string  `json:"work_date"` // YYYY-MM-DD
	Hours        float64 `json:"hours"`
	Notes        *string `json:"notes"`
	CreatedBy    string  `json:"created_by"`
}

func (tc *TimesheetController) CreateTimesheetEntryController(c *fiber.Ctx) error {
	var req timesheetEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "A valid employee_id is required",
		})
	}
	engagementID, err := uuid.Parse(req.EngagementID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "A valid engagement_id is required",
		})
	}
	workDate, err := time.Parse("2006-01-02", req.WorkDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "work_date must be in YYYY-MM-DD format",
		})
	}
	if req.Hours <= 0 || req.Hours > 24 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "hours must be between 0 and 24",
		})
	}

	if _, err := tc.EmployeeRepo.GetEmployeeByID(employeeID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Employee not found",
		})
	}
	if _, err := tc.EngagementRepo.GetEngagementByID(engagementID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Engagement not found",
		})
	}

	entry := models.TimesheetEntry{
		ID:           uuid.New(),
		EmployeeID:   employeeID,
		EngagementID: engagementID,
		WorkDate:     workDate,
		Hours:        decimal.NewFromFloat(req.Hours),
		Notes:        req.Notes,
		CreatedBy:    req.CreatedBy,
	}

	created, err := tc.TimesheetRepo.CreateEntry(&entry)
	if err != nil {
		config.Logger.Error("Failed to create timesheet entry", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create timesheet entry",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Timesheet entry created successfully",
		"data":    created,
	})
}

func (tc *TimesheetController) UpdateTimesheetEntryController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid timesheet entry ID",
		})
	}

	entry, err := tc.TimesheetRepo.GetEntryByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Timesheet entry not found",
		})
	}

	if entry.Billed {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Billed entries cannot be edited",
		})
	}

	var req struct {
		WorkDate *string  `json:"work_date"`
		Hours    *float64 `json:"hours"`
		Notes    *string  `json:"notes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if req.WorkDate != nil {
		workDate, err := time.Parse("2006-01-02", *req.WorkDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "work_date must be in YYYY-MM-DD format",
			})
		}
		entry.WorkDate = workDate
	}
	if req.Hours != nil {
		if *req.Hours <= 0 || *req.Hours > 24 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "hours must be between 0 and 24",
			})
		}
		entry.Hours = decimal.NewFromFloat(*req.Hours)
	}
	if req.Notes != nil {
		entry.Notes = req.Notes
	}

	updated, err := tc.TimesheetRepo.UpdateEntry(entry)
	if err != nil {
		config.Logger.Error("Failed to update timesheet entry", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to update timesheet entry",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Timesheet entry updated successfully",
		"data":    updated,
	})
}

func (tc *TimesheetController) GetFilteredTimesheetEntriesController(c *fiber.Ctx) error {
	params := pagination.ParsePaginationParams(c)
	if err := pagination.ValidatePaginationParams(params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	offset := (params.Page - 1) * params.PageSize
	entries, total, err := tc.TimesheetRepo.GetFilteredEntries(params.PageSize, offset, params.Filters)
	if err != nil {
		config.Logger.Error("Failed to fetch filtered timesheet entries", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch timesheet entries",
		})
	}

	return c.Status(fiber.StatusOK).JSON(pagination.NewPaginatedResponse(c, entries, total, params))
}

func (tc *TimesheetController) RetrieveSingleTimesheetEntryController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid timesheet entry ID",
		})
	}

	entry, err := tc.TimesheetRepo.GetEntryByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Timesheet entry not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Timesheet entry retrieved successfully",
		"data":    entry,
	})
}

func (tc *TimesheetController) DeleteTimesheetEntryController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid timesheet entry ID",
		})
	}

	entry, err := tc.TimesheetRepo.GetEntryByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Timesheet entry not found",
		})
	}
	if entry.Billed {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Billed entries cannot be deleted",
		})
	}

	if err := tc.TimesheetRepo.DeleteEntry(id); err != nil {
		config.Logger.Error("Failed to delete timesheet entry", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to delete timesheet entry",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Timesheet entry deleted successfully",
	})
}
