package routes

import (
	"context"

	client_repositories "ca-office-backend/clients/repositories"
	employee_repositories "ca-office-backend/employees/repositories"
	engagement_repositories "ca-office-backend/engagements/repositories"
	firm_repositories "ca-office-backend/firms/repositories"
	invoice_repositories "ca-office-backend/invoices/repositories"
	"ca-office-backend/middleware"
	"ca-office-backend/timesheets/controllers"
	"ca-office-backend/timesheets/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func TimesheetInitRoutes(
	app *fiber.App,
	timesheetRepo repositories.TimesheetRepository,
	employeeRepo employee_repositories.EmployeeRepository,
	engagementRepo engagement_repositories.EngagementRepository,
	clientRepo client_repositories.ClientRepository,
	firmRepo firm_repositories.FirmRepository,
	invoiceRepo invoice_repositories.InvoiceRepository,
	ctx context.Context,
	appContext *middleware.AppContext,
	db *gorm.DB,
) {
	timesheetController := &controllers.TimesheetController{
		TimesheetRepo:  timesheetRepo,
		EmployeeRepo:   employeeRepo,
		EngagementRepo: engagementRepo,
		ClientRepo:     clientRepo,
		FirmRepo:       firmRepo,
		InvoiceRepo:    invoiceRepo,
		DB:             db,
		Ctx:            ctx,
	}

	api := app.Group("/api/v1/timesheets")
	api.Use(middleware.ProtectedRoute(appContext))

	api.Get("/filtered", timesheetController.GetFilteredTimesheetEntriesController)
	api.Post("/draft-invoice", timesheetController.DraftInvoiceFromTimesheetsController)
	api.Post("/", timesheetController.CreateTimesheetEntryController)
	api.Get("/:id", timesheetController.RetrieveSingleTimesheetEntryController)
	api.Patch("/:id", timesheetController.UpdateTimesheetEntryController)
	api.Delete("/:id", timesheetController.DeleteTimesheetEntryController)
}
