package routes

import (
	"ca-office-backend/firms/controllers"
	"ca-office-backend/firms/repositories"
	"ca-office-backend/middleware"

	"github.com/gofiber/fiber/v2"
)

func FirmInitRoutes(app *fiber.App, firmRepo repositories.FirmRepository, appContext *middleware.AppContext) {
	firmController := &controllers.FirmController{
		FirmRepo: firmRepo,
	}

	api := app.Group("/api/v1/firms")
	api.Use(middleware.ProtectedRoute(appContext))

	api.Get("/", firmController.GetAllFirmsController)
	api.Post("/", firmController.CreateFirmController)
	api.Get("/:id", firmController.RetrieveSingleFirmController)
	api.Patch("/:id", firmController.UpdateFirmController)
	api.Delete("/:id", firmController.DeactivateFirmController)
}
