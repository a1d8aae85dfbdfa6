package routes

import (
	"context"

	indexing_repository "ca-office-backend/bleve/repositories"
	"ca-office-backend/employees/controllers"
	"ca-office-backend/employees/repositories"
	"ca-office-backend/middleware"
	"ca-office-backend/token"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func EmployeeInitRoutes(
	app *fiber.App,
	employeeRepo repositories.EmployeeRepository,
	ctx context.Context,
	redisClient *redis.Client,
	tokenMaker token.Maker,
	bleveRepo indexing_repository.BleveRepositoryInterface,
	db *gorm.DB,
) {
	employeeController := &controllers.EmployeeController{
		EmployeeRepo: employeeRepo,
		DB:           db,
		Ctx:          ctx,
		RedisClient:  redisClient,
		PasetoMaker:  tokenMaker,
		BleveRepo:    bleveRepo,
	}

	appContext := &middleware.AppContext{
		PasetoMaker: tokenMaker,
		Ctx:         ctx,
		RedisClient: redisClient,
	}

	// Authentication is open; everything else requires a session.
	publicRoutes := app.Group("/api/v1")
	{
		publicRoutes.Post("/auth/login", middleware.RateLimit(5, 10), employeeController.LoginEmployeeController)
		publicRoutes.Post("/auth/logout", employeeController.LogoutEmployeeController)
	}

	protectedRoutes := app.Group("/api/v1/employees")
	protectedRoutes.Use(middleware.ProtectedRoute(appContext))
	{
		protectedRoutes.Get("/filtered", employeeController.GetFilteredEmployeesController)
		protectedRoutes.Get("/partners", employeeController.GetPartnersController)
		protectedRoutes.Post("/bulk-upload", employeeController.BulkUploadEmployees)

		protectedRoutes.Get("/", employeeController.GetAllEmployeesController)
		protectedRoutes.Post("/", employeeController.CreateEmployeeController)

		protectedRoutes.Get("/:id", employeeController.RetrieveSingleEmployeeController)
		protectedRoutes.Patch("/:id", employeeController.UpdateEmployeeController)
		protectedRoutes.Delete("/:id", employeeController.DeleteEmployeeController)
	}
}
