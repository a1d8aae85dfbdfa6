package services

import (
	"fmt"

	"ca-office-backend/config"
	"ca-office-backend/db/models"
	"ca-office-backend/todos/repositories"
	"ca-office-backend/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SendDueTodoReminders notifies assignees of open todos whose due date has
// arrived. Each todo is reminded at most once; the reminded_at stamp is set
// even when the websocket push misses so a flapping run cannot spam.
func SendDueTodoReminders(todoRepo repositories.TodoRepository, notifier *Notifier) (int, error) {
	now := utils.Today()

	due, err := todoRepo.GetDueUnreminded(now)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, todo := range due {
		message := fmt.Sprintf("Todo %q is due", todo.Title)
		if _, err := notifier.Notify(todo.AssigneeID, models.NotificationTodoDue, message, todo); err != nil {
			config.Logger.Error("Failed to send todo reminder",
				zap.String("todo_id", todo.ID.String()),
				zap.Error(err))
			continue
		}
		if err := todoRepo.MarkReminded(todo.ID, now); err != nil {
			config.Logger.Error("Failed to stamp todo reminder",
				zap.String("todo_id", todo.ID.String()),
				zap.Error(err))
			continue
		}
		sent++
	}

	return sent, nil
}

// StartReminderScheduler checks for due todos every 15 minutes.
func StartReminderScheduler(todoRepo repositories.TodoRepository, notifier *Notifier) *cron.Cron {
	c := cron.New()

	c.AddFunc("*/15 * * * *", func() {
		sent, err := SendDueTodoReminders(todoRepo, notifier)
		if err != nil {
			config.Logger.Error("Todo reminder run failed", zap.Error(err))
			return
		}
		if sent > 0 {
			config.Logger.Info("Sent todo reminders", zap.Int("sent", sent))
		}
	})

	c.Start()
	return c
}
