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
)

type todoRequest struct {
	AssigneeID   string     `json:"assignee_id"`
	Title        string     `json:"title"`
	Notes        *string    `json:"notes"`
	DueDate      *time.Time `json:"due_date"`
	ClientID     string     `json:"client_id"`
	EngagementID string     `json:"engagement_id"`
	CreatedBy    string     `json:"created_by"`
}

func (tc *TodoController) CreateTodoController(c *fiber.Ctx) error {
	var req todoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	assigneeID, err := uuid.Parse(req.AssigneeID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "A valid assignee_id is required",
		})
	}
	if req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "title is required",
		})
	}
	if _, err := tc.EmployeeRepo.GetEmployeeByID(assigneeID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Assignee not found",
		})
	}

	todo := models.Todo{
		ID:           uuid.New(),
		AssigneeID:   assigneeID,
		Title:        req.Title,
		Notes:        req.Notes,
		DueDate:      req.DueDate,
		Status:       models.TodoOpen,
		ClientID:     utils.StringToUUIDPtr(req.ClientID),
		EngagementID: utils.StringToUUIDPtr(req.EngagementID),
		CreatedBy:    req.CreatedBy,
	}

	created, err := tc.TodoRepo.CreateTodo(&todo)
	if err != nil {
		config.Logger.Error("Failed to create todo", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create todo",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Todo created successfully",
		"data":    created,
	})
}

func (tc *TodoController) UpdateTodoController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid todo ID",
		})
	}

	todo, err := tc.TodoRepo.GetTodoByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Todo not found",
		})
	}

	var req struct {
		Title   *string            `json:"title"`
		Notes   *string            `json:"notes"`
		DueDate *time.Time         `json:"due_date"`
		Status  *models.TodoStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if req.Title != nil && *req.Title != "" {
		todo.Title = *req.Title
	}
	if req.Notes != nil {
		todo.Notes = req.Notes
	}
	if req.DueDate != nil {
		todo.DueDate = req.DueDate
		// A moved deadline gets a fresh reminder.
		todo.RemindedAt = nil
	}
	if req.Status != nil {
		if *req.Status != models.TodoOpen && *req.Status != models.TodoDone {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "status must be OPEN or DONE",
			})
		}
		todo.Status = *req.Status
	}

	updated, err := tc.TodoRepo.UpdateTodo(todo)
	if err != nil {
		config.Logger.Error("Failed to update todo", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to update todo",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Todo updated successfully",
		"data":    updated,
	})
}

func (tc *TodoController) GetFilteredTodosController(c *fiber.Ctx) error {
	params := pagination.ParsePaginationParams(c)
	if err := pagination.ValidatePaginationParams(params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	offset := (params.Page - 1) * params.PageSize
	todos, total, err := tc.TodoRepo.GetFilteredTodos(params.PageSize, offset, params.Filters)
	if err != nil {
		config.Logger.Error("Failed to fetch filtered todos", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch todos",
		})
	}

	return c.Status(fiber.StatusOK).JSON(pagination.NewPaginatedResponse(c, todos, total, params))
}

func (tc *TodoController) RetrieveSingleTodoController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid todo ID",
		})
	}

	todo, err := tc.TodoRepo.GetTodoByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Todo not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Todo retrieved successfully",
		"data":    todo,
	})
}

func (tc *TodoController) DeleteTodoController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid todo ID",
		})
	}

	if err := tc.TodoRepo.DeleteTodo(id); err != nil {
		config.Logger.Error("Failed to delete todo", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to delete todo",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Todo deleted successfully",
	})
}
