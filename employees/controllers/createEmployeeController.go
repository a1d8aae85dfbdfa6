package controllers

import (
	"ca-office-backend/config"
	"ca-office-backend/db/models"
	"ca-office-backend/employees/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type createEmployeeRequest struct {
	Name            string              `json:"name"`
	Email           string              `json:"email"`
	Phone           string              `json:"phone"`
	Role            models.EmployeeRole `json:"role"`
	Password        string              `json:"password"`
	HourlyRate      *float64            `json:"hourly_rate"`
	AnnualLeaveDays int                 `json:"annual_leave_days"`
	CreatedBy       string              `json:"created_by"`
}

func (ec *EmployeeController) CreateEmployeeController(c *fiber.Ctx) error {
	var req createEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if req.Name == "" || req.Email == "" || req.Role == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Name, email, role and password are required",
		})
	}

	hashed, err := repositories.HashPassword(req.Password)
	if err != nil {
		config.Logger.Error("Failed to hash password", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create employee",
		})
	}

	employee := models.Employee{
		ID:              uuid.New(),
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Role:            req.Role,
		Password:        hashed,
		HourlyRate:      req.HourlyRate,
		AnnualLeaveDays: req.AnnualLeaveDays,
		Active:          true,
		CreatedBy:       req.CreatedBy,
	}
	if employee.AnnualLeaveDays == 0 {
		employee.AnnualLeaveDays = 24
	}

	created, err := ec.EmployeeRepo.CreateEmployee(&employee)
	if err != nil {
		config.Logger.Error("Failed to create employee", zap.String("email", req.Email), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create employee",
			"error":   err.Error(),
		})
	}

	if ec.BleveRepo != nil {
		if err := ec.BleveRepo.IndexSingleEmployee(*created); err != nil {
			config.Logger.Error("Warning: Failed to index employee in Bleve",
				zap.String("employeeID", created.ID.String()),
				zap.Error(err),
			)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Employee created successfully",
		"data":    created,
	})
}
