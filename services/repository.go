package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/NerdBoi008/care-connect/models"
)

// ErrNotFound is returned by repositories when no record matches.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateEmail is returned when an identity insert hits the unique
// email constraint.
var ErrDuplicateEmail = errors.New("a user with this email already exists")

// IdentityRepository is the store of identity records.
type IdentityRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// PatientRepository is the store of patient intake records.
type PatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) error
	FirstByUserID(ctx context.Context, userID string) (*models.Patient, error)
}

// AppointmentRepository is the store of appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	ListRecent(ctx context.Context, limit int) ([]models.Appointment, error)
	CountByStatus(ctx context.Context, status models.AppointmentStatus) (int64, error)
	ListScheduledBetween(ctx context.Context, from, to time.Time) ([]models.Appointment, error)
	Save(ctx context.Context, appointment *models.Appointment) error
}

// FileStore is the blob store holding identification documents.
type FileStore interface {
	Upload(ctx context.Context, fileID, fileName string, data []byte) (string, error)
	Destroy(ctx context.Context, fileID string) error
}

// Mailer sends notification emails.
type Mailer interface {
	Send(to, subject, body string) error
}

// Cache is a best-effort lookup cache. A miss is not an error.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type GormIdentityRepository struct {
	db *gorm.DB
}

func NewGormIdentityRepository(db *gorm.DB) *GormIdentityRepository {
	return &GormIdentityRepository{db: db}
}

func (r *GormIdentityRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *GormIdentityRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch user %s: %w", id, err)
	}
	return &user, nil
}

func (r *GormIdentityRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch user by email: %w", err)
	}
	return &user, nil
}

type GormPatientRepository struct {
	db *gorm.DB
}

func NewGormPatientRepository(db *gorm.DB) *GormPatientRepository {
	return &GormPatientRepository{db: db}
}

func (r *GormPatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	if err := r.db.WithContext(ctx).Create(patient).Error; err != nil {
		return fmt.Errorf("create patient: %w", err)
	}
	return nil
}

func (r *GormPatientRepository) FirstByUserID(ctx context.Context, userID string) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch patient for user %s: %w", userID, err)
	}
	return &patient, nil
}

type GormAppointmentRepository struct {
	db *gorm.DB
}

func NewGormAppointmentRepository(db *gorm.DB) *GormAppointmentRepository {
	return &GormAppointmentRepository{db: db}
}

func (r *GormAppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	if err := r.db.WithContext(ctx).Create(appointment).Error; err != nil {
		return fmt.Errorf("create appointment: %w", err)
	}
	return nil
}

func (r *GormAppointmentRepository) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := r.db.WithContext(ctx).First(&appointment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch appointment %s: %w", id, err)
	}
	return &appointment, nil
}

func (r *GormAppointmentRepository) ListRecent(ctx context.Context, limit int) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appointments, nil
}

func (r *GormAppointmentRepository) CountByStatus(ctx context.Context, status models.AppointmentStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Appointment{}).Where("status = ?", status).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count %s appointments: %w", status, err)
	}
	return count, nil
}

func (r *GormAppointmentRepository) ListScheduledBetween(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.WithContext(ctx).
		Where("status = ? AND schedule BETWEEN ? AND ?", models.StatusScheduled, from, to).
		Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("list scheduled appointments: %w", err)
	}
	return appointments, nil
}

func (r *GormAppointmentRepository) Save(ctx context.Context, appointment *models.Appointment) error {
	if err := r.db.WithContext(ctx).Save(appointment).Error; err != nil {
		return fmt.Errorf("save appointment %s: %w", appointment.ID, err)
	}
	return nil
}
