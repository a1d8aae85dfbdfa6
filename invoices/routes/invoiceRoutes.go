package routes

import (
	"context"

	client_repositories "ca-office-backend/clients/repositories"
	firm_repositories "ca-office-backend/firms/repositories"
	"ca-office-backend/invoices/controllers"
	"ca-office-backend/invoices/repositories"
	"ca-office-backend/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

func InvoiceInitRoutes(
	app *fiber.App,
	invoiceRepo repositories.InvoiceRepository,
	clientRepo client_repositories.ClientRepository,
	firmRepo firm_repositories.FirmRepository,
	ctx context.Context,
	appContext *middleware.AppContext,
	asynqClient *asynq.Client,
	db *gorm.DB,
) {
	invoiceController := &controllers.InvoiceController{
		InvoiceRepo: invoiceRepo,
		ClientRepo:  clientRepo,
		FirmRepo:    firmRepo,
		DB:          db,
		Ctx:         ctx,
		AsynqClient: asynqClient,
	}

	api := app.Group("/api/v1/invoices")
	api.Use(middleware.ProtectedRoute(appContext))

	api.Post("/calculate", invoiceController.CalculateTaxController)

	api.Get("/tax-rates", invoiceController.GetActiveTaxRatesController)
	api.Post("/tax-rates", invoiceController.CreateTaxRateController)
	api.Delete("/tax-rates/:id", invoiceController.DeactivateTaxRateController)

	api.Get("/filtered", invoiceController.GetFilteredInvoicesController)
	api.Get("/export", invoiceController.ExportInvoiceRegisterController)
	api.Post("/", invoiceController.CreateInvoiceController)
	api.Get("/:id", invoiceController.RetrieveSingleInvoiceController)
	api.Post("/:id/issue", invoiceController.IssueInvoiceController)
	api.Patch("/:id/status", invoiceController.UpdateInvoiceStatusController)
}
