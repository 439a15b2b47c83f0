package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/NerdBoi008/care-connect/models"
	"github.com/NerdBoi008/care-connect/utils"
)

// CreateAppointmentParams is the booking input from the new-appointment form.
type CreateAppointmentParams struct {
	UserID           string
	PatientID        string
	PrimaryPhysician string
	Schedule         time.Time
	Reason           string
	Note             string
}

// StatusUpdateParams carries an admin status change. Schedule may be set
// when confirming a pending request; CancellationReason is recorded on
// cancellation.
type StatusUpdateParams struct {
	Status             models.AppointmentStatus
	Schedule           *time.Time
	CancellationReason string
}

// StatusCounts summarizes the appointment list for the admin dashboard.
type StatusCounts struct {
	Scheduled int64 `json:"scheduledCount"`
	Pending   int64 `json:"pendingCount"`
	Cancelled int64 `json:"cancelledCount"`
}

// ConfirmationView is everything the success page renders: the appointment,
// the matched physician, the formatted schedule, and the link to start a new
// booking for the same user.
type ConfirmationView struct {
	Appointment       *models.Appointment `json:"appointment,omitempty"`
	Doctor            *models.Doctor      `json:"doctor,omitempty"`
	Schedule          string              `json:"schedule,omitempty"`
	NewAppointmentURL string              `json:"newAppointmentUrl"`
}

// AppointmentService implements booking, the admin appointment surface, and
// the confirmation view.
type AppointmentService struct {
	appointments AppointmentRepository
	users        IdentityRepository
	mailer       Mailer
}

func NewAppointmentService(appointments AppointmentRepository, users IdentityRepository, mailer Mailer) *AppointmentService {
	return &AppointmentService{
		appointments: appointments,
		users:        users,
		mailer:       mailer,
	}
}

// Create books a new appointment request. Requests start out pending until
// staff schedules them.
func (s *AppointmentService) Create(ctx context.Context, params CreateAppointmentParams) (*models.Appointment, error) {
	appointment := &models.Appointment{
		UserID:           params.UserID,
		PatientID:        params.PatientID,
		PrimaryPhysician: params.PrimaryPhysician,
		Schedule:         params.Schedule,
		Reason:           params.Reason,
		Note:             params.Note,
		Status:           models.StatusPending,
	}
	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// Get fetches one appointment by id.
func (s *AppointmentService) Get(ctx context.Context, id string) (*models.Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

// List returns the most recent appointments together with per-status counts.
func (s *AppointmentService) List(ctx context.Context, limit int) ([]models.Appointment, StatusCounts, error) {
	appointments, err := s.appointments.ListRecent(ctx, limit)
	if err != nil {
		return nil, StatusCounts{}, err
	}

	var counts StatusCounts
	if counts.Scheduled, err = s.appointments.CountByStatus(ctx, models.StatusScheduled); err != nil {
		return nil, StatusCounts{}, err
	}
	if counts.Pending, err = s.appointments.CountByStatus(ctx, models.StatusPending); err != nil {
		return nil, StatusCounts{}, err
	}
	if counts.Cancelled, err = s.appointments.CountByStatus(ctx, models.StatusCancelled); err != nil {
		return nil, StatusCounts{}, err
	}
	return appointments, counts, nil
}

// UpdateStatus applies an admin status change, persisting it and notifying
// the patient by email. Notification failures are logged, not propagated:
// the status change already happened.
func (s *AppointmentService) UpdateStatus(ctx context.Context, id string, params StatusUpdateParams) (*models.Appointment, error) {
	appointment, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := appointment.Transition(params.Status); err != nil {
		return nil, err
	}
	if params.Schedule != nil {
		appointment.Schedule = *params.Schedule
	}
	if params.Status == models.StatusCancelled {
		appointment.CancellationReason = params.CancellationReason
	}

	if err := s.appointments.Save(ctx, appointment); err != nil {
		return nil, err
	}

	s.notify(ctx, appointment)
	return appointment, nil
}

// Confirmation assembles the success-page payload. The appointment id may be
// empty or unknown; the lookup is still attempted and the page falls back to
// a bare confirmation rather than failing.
func (s *AppointmentService) Confirmation(ctx context.Context, userID, appointmentID string) *ConfirmationView {
	view := &ConfirmationView{
		NewAppointmentURL: fmt.Sprintf("/patients/%s/new-appointment", userID),
	}

	appointment, err := s.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logrus.WithError(err).WithField("appointmentId", appointmentID).Warn("failed to fetch appointment for confirmation")
		}
		return view
	}

	view.Appointment = appointment
	view.Doctor = models.FindDoctor(appointment.PrimaryPhysician)
	view.Schedule = utils.FormatDateTime(appointment.Schedule)
	return view
}

func (s *AppointmentService) notify(ctx context.Context, appointment *models.Appointment) {
	user, err := s.users.GetByID(ctx, appointment.UserID)
	if err != nil {
		logrus.WithError(err).WithField("appointmentId", appointment.ID).Warn("could not resolve patient for notification")
		return
	}

	var subject, body string
	switch appointment.Status {
	case models.StatusScheduled:
		subject = "Your appointment has been scheduled"
		body = fmt.Sprintf(`
			<p>Dear %s,</p>
			<p>Your appointment request has been confirmed.</p>
			<ul>
				<li><strong>Physician:</strong> Dr. %s</li>
				<li><strong>When:</strong> %s</li>
			</ul>
			<p>Best regards,</p>
			<p>Care Connect</p>
		`, user.Name, appointment.PrimaryPhysician, utils.FormatDateTime(appointment.Schedule))
	case models.StatusCancelled:
		subject = "Your appointment has been cancelled"
		body = fmt.Sprintf(`
			<p>Dear %s,</p>
			<p>Your appointment with Dr. %s on %s has been cancelled.</p>
			<p>Reason: %s</p>
			<p>You can request a new appointment at any time.</p>
			<p>Best regards,</p>
			<p>Care Connect</p>
		`, user.Name, appointment.PrimaryPhysician, utils.FormatDateTime(appointment.Schedule), appointment.CancellationReason)
	default:
		return
	}

	if err := s.mailer.Send(user.Email, subject, body); err != nil {
		logrus.WithError(err).WithField("appointmentId", appointment.ID).Warn("failed to send appointment notification")
	}
}
