package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/NerdBoi008/care-connect/utils"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// Appointment is a visit request made by a registered patient. It starts out
// pending and is scheduled or cancelled from the admin surface.
type Appointment struct {
	ID        string `json:"id" gorm:"primaryKey"`
	UserID    string `json:"userId" gorm:"index"`
	PatientID string `json:"patientId" gorm:"index"`

	PrimaryPhysician   string            `json:"primaryPhysician"`
	Schedule           time.Time         `json:"schedule"`
	Reason             string            `json:"reason"`
	Note               string            `json:"note,omitempty"`
	Status             AppointmentStatus `json:"status"`
	CancellationReason string            `json:"cancellationReason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = utils.NewID()
	}
	if a.Status == "" {
		a.Status = StatusPending
	}
	return nil
}

// Transition moves the appointment to newStatus, rejecting moves the status
// machine does not allow. Completed and cancelled are terminal.
func (a *Appointment) Transition(newStatus AppointmentStatus) error {
	switch a.Status {
	case StatusPending:
		if newStatus != StatusScheduled && newStatus != StatusCancelled {
			return fmt.Errorf("invalid transition from pending to %s", newStatus)
		}
	case StatusScheduled:
		if newStatus != StatusCompleted && newStatus != StatusCancelled {
			return fmt.Errorf("invalid transition from scheduled to %s", newStatus)
		}
	case StatusCompleted, StatusCancelled:
		return fmt.Errorf("no transitions allowed from %s", a.Status)
	}

	a.Status = newStatus
	return nil
}
