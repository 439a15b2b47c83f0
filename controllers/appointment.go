package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/NerdBoi008/care-connect/models"
	"github.com/NerdBoi008/care-connect/services"
	"github.com/NerdBoi008/care-connect/utils"
)

// AppointmentController serves booking, the confirmation view, and the
// admin appointment surface.
type AppointmentController struct {
	appointments *services.AppointmentService
}

func NewAppointmentController(appointments *services.AppointmentService) *AppointmentController {
	return &AppointmentController{appointments: appointments}
}

// CreateAppointment godoc
// @Summary Request a new appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Success 201 {object} models.Appointment
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /patients/{userId}/appointments [post]
func (ac *AppointmentController) CreateAppointment(c *fiber.Ctx) error {
	type CreateAppointmentInput struct {
		PatientID        string    `json:"patientId"`
		PrimaryPhysician string    `json:"primaryPhysician"`
		Schedule         time.Time `json:"schedule"`
		Reason           string    `json:"reason"`
		Note             string    `json:"note"`
	}

	input := new(CreateAppointmentInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.PatientID == "" || input.PrimaryPhysician == "" || input.Schedule.IsZero() || input.Reason == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	appointment, err := ac.appointments.Create(c.Context(), services.CreateAppointmentParams{
		UserID:           c.Params("userId"),
		PatientID:        input.PatientID,
		PrimaryPhysician: input.PrimaryPhysician,
		Schedule:         input.Schedule,
		Reason:           input.Reason,
		Note:             input.Note,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create appointment",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// GetAppointment returns one appointment by id.
func (ac *AppointmentController) GetAppointment(c *fiber.Ctx) error {
	appointment, err := ac.appointments.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Appointment not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointment",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointment)
}

// GetConfirmation returns the success-page data for a booking. The
// appointmentId query parameter defaults to empty; an unknown or missing id
// yields a bare confirmation, never an error.
func (ac *AppointmentController) GetConfirmation(c *fiber.Ctx) error {
	appointmentID := c.Query("appointmentId", "")
	view := ac.appointments.Confirmation(c.Context(), c.Params("userId"), appointmentID)
	return c.JSON(view)
}

// ListAppointments godoc
// @Summary List recent appointments with status counts
// @Tags admin
// @Produce json
// @Failure 500 {object} utils.ErrorResponse
// @Router /admin/appointments [get]
func (ac *AppointmentController) ListAppointments(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)

	appointments, counts, err := ac.appointments.List(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"appointments":   appointments,
		"scheduledCount": counts.Scheduled,
		"pendingCount":   counts.Pending,
		"cancelledCount": counts.Cancelled,
	})
}

// UpdateAppointment applies an admin status change (schedule or cancel).
func (ac *AppointmentController) UpdateAppointment(c *fiber.Ctx) error {
	type UpdateAppointmentInput struct {
		Status             models.AppointmentStatus `json:"status"`
		Schedule           *time.Time               `json:"schedule"`
		CancellationReason string                   `json:"cancellationReason"`
	}

	input := new(UpdateAppointmentInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing status",
		})
	}

	appointment, err := ac.appointments.UpdateStatus(c.Context(), c.Params("id"), services.StatusUpdateParams{
		Status:             input.Status,
		Schedule:           input.Schedule,
		CancellationReason: input.CancellationReason,
	})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Appointment not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to update appointment",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointment)
}
