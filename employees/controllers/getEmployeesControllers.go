package controllers

import (
	"ca-office-backend/config"
	"ca-office-backend/utils/pagination"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (ec *EmployeeController) GetAllEmployeesController(c *fiber.Ctx) error {
	employees, err := ec.EmployeeRepo.GetAllEmployees()
	if err != nil {
		config.Logger.Error("Failed to fetch employees", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch employees",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": employees,
	})
}

// GetPartnersController lists active partners; the frontend uses this to
// populate the Partner selector on client forms.
func (ec *EmployeeController) GetPartnersController(c *fiber.Ctx) error {
	partners, err := ec.EmployeeRepo.GetPartners()
	if err != nil {
		config.Logger.Error("Failed to fetch partners", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch partners",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": partners,
	})
}

func (ec *EmployeeController) GetFilteredEmployeesController(c *fiber.Ctx) error {
	params := pagination.ParsePaginationParams(c)
	if err := pagination.ValidatePaginationParams(params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	offset := (params.Page - 1) * params.PageSize

	employees, total, err := ec.EmployeeRepo.GetFilteredEmployees(params.PageSize, offset, params.Filters)
	if err != nil {
		config.Logger.Error("Failed to fetch filtered employees", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch employees",
		})
	}

	return c.Status(fiber.StatusOK).JSON(pagination.NewPaginatedResponse(c, employees, total, params))
}

func (ec *EmployeeController) RetrieveSingleEmployeeController(c *fiber.Ctx) error {
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

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": employee,
	})
}

func (ec *EmployeeController) DeleteEmployeeController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid employee ID",
		})
	}

	if err := ec.EmployeeRepo.DeleteEmployee(id); err != nil {
		config.Logger.Error("Failed to delete employee", zap.String("id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to delete employee",
		})
	}

	if ec.BleveRepo != nil {
		if err := ec.BleveRepo.DeleteEmployee(id.String()); err != nil {
			config.Logger.Error("Warning: Failed to remove employee from Bleve index",
				zap.String("employeeID", id.String()),
				zap.Error(err),
			)
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Employee deleted successfully",
	})
}
