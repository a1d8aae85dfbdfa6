package routes

import (
	"ca-office-backend/bleve/controllers"

	"github.com/gofiber/fiber/v2"
)

func InitBleveRoutes(app *fiber.App, controller *controllers.SearchController) {
	api := app.Group("/api/v1/bleve_search")

	api.Get("/clients", controller.SearchClientsController)
	api.Get("/employees", controller.SearchEmployeesController)
}
