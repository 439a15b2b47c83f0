package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/NerdBoi008/care-connect/models"
)

// MockAppointmentRepository is a mock implementation of AppointmentRepository
type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	args := m.Called(appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	args := m.Called(id)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentRepository) ListRecent(ctx context.Context, limit int) ([]models.Appointment, error) {
	args := m.Called(limit)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Error(1)
}

func (m *MockAppointmentRepository) CountByStatus(ctx context.Context, status models.AppointmentStatus) (int64, error) {
	args := m.Called(status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAppointmentRepository) ListScheduledBetween(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	args := m.Called(from, to)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Error(1)
}

func (m *MockAppointmentRepository) Save(ctx context.Context, appointment *models.Appointment) error {
	args := m.Called(appointment)
	return args.Error(0)
}

// MockMailer is a mock implementation of Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(to, subject, body string) error {
	args := m.Called(to, subject, body)
	return args.Error(0)
}

func TestCreateAppointmentStartsPending(t *testing.T) {
	appointments := new(MockAppointmentRepository)
	appointments.On("Create", mock.AnythingOfType("*models.Appointment")).Return(nil)

	svc := NewAppointmentService(appointments, nil, nil)

	appointment, err := svc.Create(context.Background(), CreateAppointmentParams{
		UserID:           "user-1",
		PatientID:        "patient-1",
		PrimaryPhysician: "John Green",
		Schedule:         time.Date(2026, 9, 14, 10, 30, 0, 0, time.UTC),
		Reason:           "Annual check-up",
	})

	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, appointment.Status)
	assert.Equal(t, "user-1", appointment.UserID)
}

func TestUpdateStatusSchedulesAndNotifies(t *testing.T) {
	appointments := new(MockAppointmentRepository)
	appointments.On("GetByID", "appt-1").Return(&models.Appointment{
		ID:               "appt-1",
		UserID:           "user-1",
		PrimaryPhysician: "John Green",
		Status:           models.StatusPending,
	}, nil)
	appointments.On("Save", mock.AnythingOfType("*models.Appointment")).Return(nil)

	users := new(MockIdentityRepository)
	users.On("GetByID", "user-1").Return(&models.User{ID: "user-1", Name: "John Doe", Email: "a@x.com"}, nil)

	mailer := new(MockMailer)
	mailer.On("Send", "a@x.com", mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return(nil)

	svc := NewAppointmentService(appointments, users, mailer)

	schedule := time.Date(2026, 9, 14, 10, 30, 0, 0, time.UTC)
	appointment, err := svc.UpdateStatus(context.Background(), "appt-1", StatusUpdateParams{
		Status:   models.StatusScheduled,
		Schedule: &schedule,
	})

	require.NoError(t, err)
	assert.Equal(t, models.StatusScheduled, appointment.Status)
	assert.Equal(t, schedule, appointment.Schedule)
	mailer.AssertExpectations(t)
}

func TestUpdateStatusRejectsInvalidTransition(t *testing.T) {
	appointments := new(MockAppointmentRepository)
	appointments.On("GetByID", "appt-1").Return(&models.Appointment{
		ID:     "appt-1",
		Status: models.StatusCompleted,
	}, nil)

	svc := NewAppointmentService(appointments, nil, nil)

	_, err := svc.UpdateStatus(context.Background(), "appt-1", StatusUpdateParams{
		Status: models.StatusScheduled,
	})

	require.Error(t, err)
	appointments.AssertNotCalled(t, "Save")
}

func TestUpdateStatusCancelRecordsReason(t *testing.T) {
	appointments := new(MockAppointmentRepository)
	appointments.On("GetByID", "appt-1").Return(&models.Appointment{
		ID:     "appt-1",
		UserID: "user-1",
		Status: models.StatusPending,
	}, nil)
	appointments.On("Save", mock.AnythingOfType("*models.Appointment")).Return(nil)

	users := new(MockIdentityRepository)
	users.On("GetByID", "user-1").Return(&models.User{ID: "user-1", Name: "John Doe", Email: "a@x.com"}, nil)

	mailer := new(MockMailer)
	mailer.On("Send", "a@x.com", mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return(nil)

	svc := NewAppointmentService(appointments, users, mailer)

	appointment, err := svc.UpdateStatus(context.Background(), "appt-1", StatusUpdateParams{
		Status:             models.StatusCancelled,
		CancellationReason: "Schedule conflict",
	})

	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, appointment.Status)
	assert.Equal(t, "Schedule conflict", appointment.CancellationReason)
}

func TestUpdateStatusNotificationFailureIsNotPropagated(t *testing.T) {
	appointments := new(MockAppointmentRepository)
	appointments.On("GetByID", "appt-1").Return(&models.Appointment{
		ID:     "appt-1",
		UserID: "user-1",
		Status: models.StatusPending,
	}, nil)
	appointments.On("Save", mock.AnythingOfType("*models.Appointment")).Return(nil)

	users := new(MockIdentityRepository)
	users.On("GetByID", "user-1").Return(&models.User{ID: "user-1", Email: "a@x.com"}, nil)

	mailer := new(MockMailer)
	mailer.On("Send", "a@x.com", mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return(errors.New("smtp down"))

	svc := NewAppointmentService(appointments, users, mailer)

	_, err := svc.UpdateStatus(context.Background(), "appt-1", StatusUpdateParams{
		Status: models.StatusScheduled,
	})

	require.NoError(t, err)
}

func TestConfirmationWithEmptyAppointmentID(t *testing.T) {
	appointments := new(MockAppointmentRepository)
	appointments.On("GetByID", "").Return(nil, ErrNotFound)

	svc := NewAppointmentService(appointments, nil, nil)

	view := svc.Confirmation(context.Background(), "user-1", "")

	require.NotNil(t, view)
	assert.Nil(t, view.Appointment)
	assert.Nil(t, view.Doctor)
	assert.Equal(t, "/patients/user-1/new-appointment", view.NewAppointmentURL)
	appointments.AssertCalled(t, "GetByID", "")
}

func TestConfirmationMatchesDoctorByName(t *testing.T) {
	appointments := new(MockAppointmentRepository)
	appointments.On("GetByID", "appt-1").Return(&models.Appointment{
		ID:               "appt-1",
		UserID:           "user-1",
		PrimaryPhysician: "John Green",
		Schedule:         time.Date(2026, 9, 14, 14, 30, 0, 0, time.UTC),
		Status:           models.StatusScheduled,
	}, nil)

	svc := NewAppointmentService(appointments, nil, nil)

	view := svc.Confirmation(context.Background(), "user-1", "appt-1")

	require.NotNil(t, view.Appointment)
	require.NotNil(t, view.Doctor)
	assert.Equal(t, "John Green", view.Doctor.Name)
	assert.NotEmpty(t, view.Doctor.Image)
	assert.Equal(t, "Sep 14, 2026, 2:30 PM", view.Schedule)
}

func TestConfirmationUnknownPhysician(t *testing.T) {
	appointments := new(MockAppointmentRepository)
	appointments.On("GetByID", "appt-1").Return(&models.Appointment{
		ID:               "appt-1",
		PrimaryPhysician: "Nobody Here",
		Schedule:         time.Now(),
	}, nil)

	svc := NewAppointmentService(appointments, nil, nil)

	view := svc.Confirmation(context.Background(), "user-1", "appt-1")

	require.NotNil(t, view.Appointment)
	assert.Nil(t, view.Doctor)
}

func TestListReturnsCounts(t *testing.T) {
	appointments := new(MockAppointmentRepository)
	appointments.On("ListRecent", 50).Return([]models.Appointment{{ID: "appt-1"}}, nil)
	appointments.On("CountByStatus", models.StatusScheduled).Return(int64(3), nil)
	appointments.On("CountByStatus", models.StatusPending).Return(int64(2), nil)
	appointments.On("CountByStatus", models.StatusCancelled).Return(int64(1), nil)

	svc := NewAppointmentService(appointments, nil, nil)

	list, counts, err := svc.List(context.Background(), 50)

	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, int64(3), counts.Scheduled)
	assert.Equal(t, int64(2), counts.Pending)
	assert.Equal(t, int64(1), counts.Cancelled)
}
