package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/NerdBoi008/care-connect/controllers"
)

// SetupAppointmentRoutes configures booking and confirmation routes.
func SetupAppointmentRoutes(app *fiber.App, appointments *controllers.AppointmentController) {
	app.Post("/patients/:userId/appointments", appointments.CreateAppointment)
	app.Get("/patients/:userId/appointments/success", appointments.GetConfirmation)
	app.Get("/appointments/:id", appointments.GetAppointment)
}
