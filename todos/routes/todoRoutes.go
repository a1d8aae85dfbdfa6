package routes

import (
	"context"

	employee_repositories "ca-office-backend/employees/repositories"
	"ca-office-backend/middleware"
	"ca-office-backend/todos/controllers"
	"ca-office-backend/todos/repositories"
	"ca-office-backend/todos/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func TodoInitRoutes(
	app *fiber.App,
	todoRepo repositories.TodoRepository,
	notificationRepo repositories.NotificationRepository,
	employeeRepo employee_repositories.EmployeeRepository,
	notifier *services.Notifier,
	ctx context.Context,
	appContext *middleware.AppContext,
	db *gorm.DB,
) {
	todoController := &controllers.TodoController{
		TodoRepo:         todoRepo,
		NotificationRepo: notificationRepo,
		EmployeeRepo:     employeeRepo,
		Notifier:         notifier,
		DB:               db,
		Ctx:              ctx,
	}

	api := app.Group("/api/v1/todos")
	api.Use(middleware.ProtectedRoute(appContext))

	api.Get("/filtered", todoController.GetFilteredTodosController)
	api.Post("/reminders/run", todoController.RunRemindersController)
	api.Post("/", todoController.CreateTodoController)
	api.Get("/:id", todoController.RetrieveSingleTodoController)
	api.Patch("/:id", todoController.UpdateTodoController)
	api.Delete("/:id", todoController.DeleteTodoController)

	notifications := app.Group("/api/v1/notifications")
	notifications.Use(middleware.ProtectedRoute(appContext))

	notifications.Get("/", todoController.GetNotificationsController)
	notifications.Patch("/read-all", todoController.MarkAllNotificationsReadController)
	notifications.Patch("/:id/read", todoController.MarkNotificationReadController)
}
