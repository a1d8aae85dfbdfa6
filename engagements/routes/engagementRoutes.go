package routes

import (
	"context"

	client_repositories "ca-office-backend/clients/repositories"
	employee_repositories "ca-office-backend/employees/repositories"
	"ca-office-backend/engagements/controllers"
	"ca-office-backend/engagements/repositories"
	"ca-office-backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func EngagementInitRoutes(
	app *fiber.App,
	engagementRepo repositories.EngagementRepository,
	clientRepo client_repositories.ClientRepository,
	employeeRepo employee_repositories.EmployeeRepository,
	ctx context.Context,
	appContext *middleware.AppContext,
	db *gorm.DB,
) {
	engagementController := &controllers.EngagementController{
		EngagementRepo: engagementRepo,
		ClientRepo:     clientRepo,
		EmployeeRepo:   employeeRepo,
		DB:             db,
		Ctx:            ctx,
	}

	api := app.Group("/api/v1/engagements")
	api.Use(middleware.ProtectedRoute(appContext))

	api.Post("/bulk-upload", engagementController.BulkUploadEngagements)
	api.Get("/template", engagementController.DownloadEngagementTemplateController)
	api.Get("/recurring/template", engagementController.DownloadRecurringTemplateController)

	api.Post("/recurring/bulk-upload", engagementController.BulkUploadRecurringEngagements)
	api.Get("/recurring", engagementController.GetAllRecurringEngagementsController)
	api.Post("/recurring", engagementController.CreateRecurringEngagementController)
	api.Patch("/recurring/:id", engagementController.UpdateRecurringEngagementController)
	api.Post("/recurring/materialise", engagementController.RunMaterialisationController)

	api.Get("/filtered", engagementController.GetFilteredEngagementsController)
	api.Post("/", engagementController.CreateEngagementController)
	api.Get("/:id", engagementController.RetrieveSingleEngagementController)
	api.Patch("/:id", engagementController.UpdateEngagementController)
	api.Delete("/:id", engagementController.DeleteEngagementController)
}
