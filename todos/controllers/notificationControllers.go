package controllers

import (
	"ca-office-backend/config"
	"ca-office-backend/todos/services"
	"ca-office-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (tc *TodoController) GetNotificationsController(c *fiber.Ctx) error {
	recipientID, err := uuid.Parse(c.Query("recipient_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "A valid recipient_id query parameter is required",
		})
	}
	unreadOnly := c.Query("unread") == "true"

	notifications, err := tc.NotificationRepo.GetNotificationsByRecipient(recipientID, unreadOnly)
	if err != nil {
		config.Logger.Error("Failed to fetch notifications", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch notifications",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Notifications retrieved successfully",
		"data":    notifications,
	})
}

func (tc *TodoController) MarkNotificationReadController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid notification ID",
		})
	}

	if err := tc.NotificationRepo.MarkNotificationRead(id, utils.Today()); err != nil {
		config.Logger.Error("Failed to mark notification read", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to mark notification read",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Notification marked read",
	})
}

func (tc *TodoController) MarkAllNotificationsReadController(c *fiber.Ctx) error {
	recipientID, err := uuid.Parse(c.Query("recipient_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "A valid recipient_id query parameter is required",
		})
	}

	if err := tc.NotificationRepo.MarkAllNotificationsRead(recipientID, utils.Today()); err != nil {
		config.Logger.Error("Failed to mark notifications read", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to mark notifications read",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "All notifications marked read",
	})
}

// RunRemindersController triggers the due-todo reminder sweep on demand,
// mirroring what the scheduler does every 15 minutes.
func (tc *TodoController) RunRemindersController(c *fiber.Ctx) error {
	sent, err := services.SendDueTodoReminders(tc.TodoRepo, tc.Notifier)
	if err != nil {
		config.Logger.Error("Manual reminder run failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Reminder run failed",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Reminder run completed",
		"sent":    sent,
	})
}
