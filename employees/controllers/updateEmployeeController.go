package controllers

import (
	"ca-office-backend/config"
	"ca-office-backend/db/models"
	"ca-office-backend/employees/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type updateEmployeeRequest struct {
	Name            *string              `json:"name"`
	Phone           *string              `json:"phone"`
	Role            *models.EmployeeRole `json:"role"`
	Password        *string              `json:"password"`
	HourlyRate      *float64             `json:"hourly_rate"`
	AnnualLeaveDays *int                 `json:"annual_leave_days"`
	Active          *bool                `json:"active"`
}

func (ec *EmployeeController) UpdateEmployeeController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid employee ID",
		})
	}

	employee, err := ec.EmployeeRepo.GetEmployeeByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Employee not found",
		})
	}

	var req updateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Phone != nil {
		employee.Phone = *req.Phone
	}
	if req.Role != nil {
		employee.Role = *req.Role
	}
	if req.HourlyRate != nil {
		employee.HourlyRate = req.HourlyRate
	}
	if req.AnnualLeaveDays != nil {
		employee.AnnualLeaveDays = *req.AnnualLeaveDays
	}
	if req.Active != nil {
		employee.Active = *req.Active
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := repositories.HashPassword(*req.Password)
		if err != nil {
			config.Logger.Error("Failed to hash password on update", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to update employee",
			})
		}
		employee.Password = hashed
	}

	updated, err := ec.EmployeeRepo.UpdateEmployee(employee)
	if err != nil {
		config.Logger.Error("Failed to update employee", zap.String("id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to update employee",
			"error":   err.Error(),
		})
	}

	if ec.BleveRepo != nil {
		if err := ec.BleveRepo.IndexSingleEmployee(*updated); err != nil {
			config.Logger.Error("Warning: Failed to re-index employee in Bleve",
				zap.String("employeeID", updated.ID.String()),
				zap.Error(err),
			)
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Employee updated successfully",
		"data":    updated,
	})
}
