package controllers

import (
	"fmt"
	"strconv"
	"time"

	"ca-office-backend/config"
	"ca-office-backend/db/models"
	"ca-office-backend/utils"
	"ca-office-backend/utils/pagination"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var validLeaveTypes = map[models.LeaveType]bool{
	models.CasualLeave: true,
	models.SickLeave:   true,
	models.EarnedLeave: true,
	models.UnpaidLeave: true,
}

type leaveRequestBody struct {
	EmployeeID string  `json:"employee_id"`
	Type       string  `json:"type"`
	FromDate   string  `json:"from_date"` // YYYY-MM-DD
	ToDate     string  `json:"to_date"`
	Reason     *string `json:"reason"`
}

func (lc *LeaveController) RequestLeaveController(c *fiber.Ctx) error {
	var req leaveRequestBody
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
	leaveType := models.LeaveType(req.Type)
	if !validLeaveTypes[leaveType] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "type must be one of CASUAL, SICK, EARNED, UNPAID",
		})
	}
	fromDate, err := time.Parse("2006-01-02", req.FromDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "from_date must be in YYYY-MM-DD format",
		})
	}
	toDate, err := time.Parse("2006-01-02", req.ToDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "to_date must be in YYYY-MM-DD format",
		})
	}
	if toDate.Before(fromDate) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "to_date must not be before from_date",
		})
	}

	if _, err := lc.EmployeeRepo.GetEmployeeByID(employeeID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Employee not found",
		})
	}

	overlapping, err := lc.LeaveRepo.HasOverlappingLeave(employeeID, fromDate, toDate)
	if err != nil {
		config.Logger.Error("Failed to check leave overlap", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create leave request",
		})
	}
	if overlapping {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "An overlapping leave request already exists",
		})
	}

	leave := models.LeaveRequest{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Type:       leaveType,
		FromDate:   fromDate,
		ToDate:     toDate,
		Reason:     req.Reason,
		Status:     models.LeavePending,
	}

	created, err := lc.LeaveRepo.CreateLeaveRequest(&leave)
	if err != nil {
		config.Logger.Error("Failed to create leave request", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create leave request",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Leave request submitted successfully",
		"data":    created,
	})
}

// ReviewLeaveController approves or rejects a pending request and notifies
// the employee.
func (lc *LeaveController) ReviewLeaveController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid leave request ID",
		})
	}

	var req struct {
		Status     models.LeaveStatus `json:"status"`
		ReviewedBy string             `json:"reviewed_by"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.Status != models.LeaveApproved && req.Status != models.LeaveRejected {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "status must be APPROVED or REJECTED",
		})
	}

	leave, err := lc.LeaveRepo.GetLeaveRequestByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Leave request not found",
		})
	}
	if leave.Status != models.LeavePending {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Only pending leave requests can be reviewed",
			"status":  leave.Status,
		})
	}

	now := utils.Today()
	leave.Status = req.Status
	leave.ReviewedBy = &req.ReviewedBy
	leave.ReviewedAt = &now

	updated, err := lc.LeaveRepo.UpdateLeaveRequest(leave)
	if err != nil {
		config.Logger.Error("Failed to review leave request", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to review leave request",
		})
	}

	if lc.Notifier != nil {
		verb := "approved"
		if req.Status == models.LeaveRejected {
			verb = "rejected"
		}
		message := fmt.Sprintf("Your %s leave from %s to %s was %s",
			leave.Type,
			leave.FromDate.Format("02 Jan 2006"),
			leave.ToDate.Format("02 Jan 2006"),
			verb)
		if _, err := lc.Notifier.Notify(leave.EmployeeID, models.NotificationLeaveReviewed, message, updated); err != nil {
			config.Logger.Error("Failed to notify employee of leave review", zap.Error(err))
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Leave request reviewed successfully",
		"data":    updated,
	})
}

func (lc *LeaveController) GetFilteredLeaveRequestsController(c *fiber.Ctx) error {
	params := pagination.ParsePaginationParams(c)
	if err := pagination.ValidatePaginationParams(params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	offset := (params.Page - 1) * params.PageSize
	leaves, total, err := lc.LeaveRepo.GetFilteredLeaveRequests(params.PageSize, offset, params.Filters)
	if err != nil {
		config.Logger.Error("Failed to fetch filtered leave requests", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch leave requests",
		})
	}

	return c.Status(fiber.StatusOK).JSON(pagination.NewPaginatedResponse(c, leaves, total, params))
}

func (lc *LeaveController) RetrieveSingleLeaveRequestController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid leave request ID",
		})
	}

	leave, err := lc.LeaveRepo.GetLeaveRequestByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Leave request not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Leave request retrieved successfully",
		"data":    leave,
	})
}

// LeaveBalanceController reports an employee's leave usage against their
// annual allowance for a calendar year. Unpaid leave does not count against
// the allowance.
func (lc *LeaveController) LeaveBalanceController(c *fiber.Ctx) error {
	employeeID, err := uuid.Parse(c.Params("employee_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid employee ID",
		})
	}

	year := utils.Today().Year()
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "year must be a number",
			})
		}
		year = parsed
	}

	employee, err := lc.EmployeeRepo.GetEmployeeByID(employeeID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Employee not found",
		})
	}

	leaves, err := lc.LeaveRepo.GetApprovedLeavesByEmployee(employeeID, year)
	if err != nil {
		config.Logger.Error("Failed to fetch approved leaves", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to compute leave balance",
		})
	}

	used := 0
	unpaid := 0
	byType := make(map[models.LeaveType]int)
	for _, leave := range leaves {
		days := leave.Days()
		byType[leave.Type] += days
		if leave.Type == models.UnpaidLeave {
			unpaid += days
			continue
		}
		used += days
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Leave balance computed successfully",
		"data": fiber.Map{
			"employee_id": employee.ID,
			"year":        year,
			"allowance":   employee.AnnualLeaveDays,
			"used":        used,
			"remaining":   employee.AnnualLeaveDays - used,
			"unpaid":      unpaid,
			"by_type":     byType,
		},
	})
}
