package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/NerdBoi008/care-connect/models"
	"github.com/NerdBoi008/care-connect/services"
	"github.com/NerdBoi008/care-connect/utils"
)

// Reminders sends an email one hour ahead of every scheduled appointment.
type Reminders struct {
	appointments services.AppointmentRepository
	users        services.IdentityRepository
	mailer       services.Mailer
}

func NewReminders(appointments services.AppointmentRepository, users services.IdentityRepository, mailer services.Mailer) *Reminders {
	return &Reminders{
		appointments: appointments,
		users:        users,
		mailer:       mailer,
	}
}

// Start runs the reminder check every minute.
func (r *Reminders) Start() error {
	c := cron.New()
	if _, err := c.AddFunc("* * * * *", r.sendReminders); err != nil {
		return fmt.Errorf("add reminder job: %w", err)
	}
	c.Start()
	logrus.Info("appointment reminder scheduler started")
	return nil
}

// sendReminders picks up scheduled appointments starting in roughly an hour.
// The window is wider than the tick so an appointment is not missed when a
// run is delayed.
func (r *Reminders) sendReminders() {
	ctx := context.Background()
	now := time.Now()

	appointments, err := r.appointments.ListScheduledBetween(ctx, now.Add(55*time.Minute), now.Add(65*time.Minute))
	if err != nil {
		logrus.WithError(err).Error("failed to fetch appointments for reminders")
		return
	}

	for i := range appointments {
		appointment := &appointments[i]
		if err := r.remind(ctx, appointment); err != nil {
			logrus.WithError(err).WithField("appointmentId", appointment.ID).Error("failed to send reminder")
			continue
		}
		logrus.WithField("appointmentId", appointment.ID).Info("sent appointment reminder")
	}
}

func (r *Reminders) remind(ctx context.Context, appointment *models.Appointment) error {
	user, err := r.users.GetByID(ctx, appointment.UserID)
	if err != nil {
		return fmt.Errorf("resolve patient: %w", err)
	}

	subject := "Reminder: Upcoming Appointment"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your appointment scheduled in one hour.</p>
		<ul>
			<li><strong>Physician:</strong> Dr. %s</li>
			<li><strong>When:</strong> %s</li>
		</ul>
		<p>Please arrive on time. If you need to reschedule or cancel, contact us as soon as possible.</p>
		<p>Best regards,</p>
		<p>Care Connect</p>
	`, user.Name, appointment.PrimaryPhysician, utils.FormatDateTime(appointment.Schedule))

	return r.mailer.Send(user.Email, subject, body)
}
