package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/NerdBoi008/care-connect/controllers"
	"github.com/NerdBoi008/care-connect/middleware"
)

// SetupAdminRoutes configures the staff dashboard routes.
func SetupAdminRoutes(app *fiber.App, admin *controllers.AdminController, appointments *controllers.AppointmentController, jwtSecret string) {
	app.Post("/admin/login", admin.Login)

	adminGroup := app.Group("/admin", middleware.Protected(jwtSecret))
	adminGroup.Get("/appointments", appointments.ListAppointments)
	adminGroup.Patch("/appointments/:id", appointments.UpdateAppointment)
}
