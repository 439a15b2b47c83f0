package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/NerdBoi008/care-connect/controllers"
)

// SetupPatientRoutes configures identity and registration routes.
func SetupPatientRoutes(app *fiber.App, patients *controllers.PatientController) {
	app.Post("/users", patients.CreateUser)
	app.Get("/users/:id", patients.GetUser)
	app.Get("/patients/:userId", patients.GetPatient)
	app.Post("/patients/:userId/register", patients.RegisterPatient)
}
