package routes

import (
	"context"

	employee_repositories "ca-office-backend/employees/repositories"
	"ca-office-backend/leaves/controllers"
	"ca-office-backend/leaves/repositories"
	"ca-office-backend/middleware"
	todo_services "ca-office-backend/todos/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func LeaveInitRoutes(
	app *fiber.App,
	leaveRepo repositories.LeaveRepository,
	employeeRepo employee_repositories.EmployeeRepository,
	notifier *todo_services.Notifier,
	ctx context.Context,
	appContext *middleware.AppContext,
	db *gorm.DB,
) {
	leaveController := &controllers.LeaveController{
		LeaveRepo:    leaveRepo,
		EmployeeRepo: employeeRepo,
		Notifier:     notifier,
		DB:           db,
		Ctx:          ctx,
	}

	api := app.Group("/api/v1/leaves")
	api.Use(middleware.ProtectedRoute(appContext))

	api.Get("/filtered", leaveController.GetFilteredLeaveRequestsController)
	api.Get("/balance/:employee_id", leaveController.LeaveBalanceController)
	api.Post("/", leaveController.RequestLeaveController)
	api.Get("/:id", leaveController.RetrieveSingleLeaveRequestController)
	api.Patch("/:id/review", leaveController.ReviewLeaveController)
}
