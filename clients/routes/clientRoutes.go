package routes

import (
	"context"

	indexing_repository "ca-office-backend/bleve/repositories"
	"ca-office-backend/clients/controllers"
	"ca-office-backend/clients/repositories"
	employee_repositories "ca-office-backend/employees/repositories"
	firm_repositories "ca-office-backend/firms/repositories"
	"ca-office-backend/middleware"
	"ca-office-backend/token"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func ClientInitRoutes(
	app *fiber.App,
	clientRepo repositories.ClientRepository,
	employeeRepo employee_repositories.EmployeeRepository,
	firmRepo firm_repositories.FirmRepository,
	ctx context.Context,
	redisClient *redis.Client,
	asynqClient *asynq.Client,
	tokenMaker token.Maker,
	bleveRepo indexing_repository.BleveRepositoryInterface,
	db *gorm.DB,
) {
	clientController := &controllers.ClientController{
		ClientRepo:   clientRepo,
		EmployeeRepo: employeeRepo,
		FirmRepo:     firmRepo,
		DB:           db,
		Ctx:          ctx,
		RedisClient:  redisClient,
		AsynqClient:  asynqClient,
		BleveRepo:    bleveRepo,
	}

	appContext := &middleware.AppContext{
		PasetoMaker: tokenMaker,
		Ctx:         ctx,
		RedisClient: redisClient,
	}

	api := app.Group("/api/v1/clients")
	api.Use(middleware.ProtectedRoute(appContext))

	// Import pipeline
	api.Post("/bulk-upload", clientController.BulkUploadClients)
	api.Post("/bulk-upload/commit", clientController.CommitClientImport)
	api.Get("/template", clientController.DownloadClientTemplateController)
	api.Get("/export", clientController.ExportClientsController)

	// Listing
	api.Get("/filtered", clientController.GetFilteredClientsController)
	api.Get("/", clientController.GetAllClientsController)

	// CRUD
	api.Post("/", clientController.CreateClientController)
	api.Get("/:id", clientController.RetrieveSingleClientController)
	api.Patch("/:id", clientController.UpdateClientController)
	api.Delete("/:id", clientController.DeleteClientController)
}
