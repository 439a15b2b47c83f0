package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/NerdBoi008/care-connect/models"
	"github.com/NerdBoi008/care-connect/utils"
)

const patientCacheTTL = 10 * time.Minute

// StorageConfig carries the values the identification-document view URL is
// derived from.
type StorageConfig struct {
	Endpoint  string
	BucketID  string
	ProjectID string
}

// CreateUserParams is the input for identity creation.
type CreateUserParams struct {
	Name  string
	Email string
	Phone string
}

// IdentificationDocument carries the raw bytes and name of an uploaded file.
type IdentificationDocument struct {
	FileName string
	Data     []byte
}

// RegisterPatientParams is the full intake payload, plus an optional
// identification document.
type RegisterPatientParams struct {
	UserID     string
	Name       string
	Email      string
	Phone      string
	BirthDate  time.Time
	Gender     string
	Address    string
	Occupation string

	EmergencyContactName   string
	EmergencyContactNumber string

	PrimaryPhysician      string
	InsuranceProvider     string
	InsurancePolicyNumber string
	Allergies             string
	CurrentMedications    string
	FamilyMedicalHistory  string
	PastMedicalHistory    string

	IdentificationType   string
	IdentificationNumber string

	TreatmentConsent  bool
	DisclosureConsent bool
	PrivacyConsent    bool

	IdentificationDocument *IdentificationDocument
}

// PatientService implements the registration side of the portal: identity
// find-or-create, patient lookup, and intake registration with the optional
// document upload.
type PatientService struct {
	users    IdentityRepository
	patients PatientRepository
	files    FileStore
	cache    Cache
	storage  StorageConfig
}

func NewPatientService(users IdentityRepository, patients PatientRepository, files FileStore, cache Cache, storage StorageConfig) *PatientService {
	return &PatientService{
		users:    users,
		patients: patients,
		files:    files,
		cache:    cache,
		storage:  storage,
	}
}

// FindOrCreateUser creates an identity record for the email, or returns the
// existing one. The second return value reports whether a record was
// created. The insert is attempted first so two concurrent calls for the
// same email still converge on one record.
func (s *PatientService) FindOrCreateUser(ctx context.Context, params CreateUserParams) (*models.User, bool, error) {
	user := &models.User{
		Name:  params.Name,
		Email: params.Email,
		Phone: params.Phone,
	}

	err := s.users.Create(ctx, user)
	if err == nil {
		return user, true, nil
	}
	if !errors.Is(err, ErrDuplicateEmail) {
		return nil, false, fmt.Errorf("create user: %w", err)
	}

	existing, err := s.users.GetByEmail(ctx, params.Email)
	if err != nil {
		return nil, false, fmt.Errorf("look up existing user: %w", err)
	}
	return existing, false, nil
}

// GetUser fetches one identity record by id.
func (s *PatientService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

// GetPatient returns the first patient record for the user, or nil when the
// user has not registered yet. Absence is not an error. Lookups go through
// the cache; cache trouble degrades to the database.
func (s *PatientService) GetPatient(ctx context.Context, userID string) (*models.Patient, error) {
	key := patientCacheKey(userID)

	if s.cache != nil {
		raw, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			logrus.WithError(err).WithField("userId", userID).Warn("patient cache read failed")
		} else if ok {
			var patient models.Patient
			if err := json.Unmarshal([]byte(raw), &patient); err == nil {
				return &patient, nil
			}
		}
	}

	patient, err := s.patients.FirstByUserID(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(patient); err == nil {
			if err := s.cache.Set(ctx, key, string(raw), patientCacheTTL); err != nil {
				logrus.WithError(err).WithField("userId", userID).Warn("patient cache write failed")
			}
		}
	}
	return patient, nil
}

// RegisterPatient uploads the identification document when one is attached,
// then creates the patient record referencing it. The two steps are not
// atomic: if the insert fails after a successful upload, the uploaded file
// is destroyed so it does not linger orphaned.
func (s *PatientService) RegisterPatient(ctx context.Context, params RegisterPatientParams) (*models.Patient, error) {
	var fileID string
	if doc := params.IdentificationDocument; doc != nil {
		id, err := s.files.Upload(ctx, utils.NewID(), doc.FileName, doc.Data)
		if err != nil {
			return nil, fmt.Errorf("upload identification document: %w", err)
		}
		fileID = id
	}

	patient := &models.Patient{
		UserID:     params.UserID,
		Name:       params.Name,
		Email:      params.Email,
		Phone:      params.Phone,
		BirthDate:  params.BirthDate,
		Gender:     params.Gender,
		Address:    params.Address,
		Occupation: params.Occupation,

		EmergencyContactName:   params.EmergencyContactName,
		EmergencyContactNumber: params.EmergencyContactNumber,

		PrimaryPhysician:      params.PrimaryPhysician,
		InsuranceProvider:     params.InsuranceProvider,
		InsurancePolicyNumber: params.InsurancePolicyNumber,
		Allergies:             params.Allergies,
		CurrentMedications:    params.CurrentMedications,
		FamilyMedicalHistory:  params.FamilyMedicalHistory,
		PastMedicalHistory:    params.PastMedicalHistory,

		IdentificationType:        params.IdentificationType,
		IdentificationNumber:      params.IdentificationNumber,
		IdentificationDocumentURL: s.viewURL(fileID),

		TreatmentConsent:  params.TreatmentConsent,
		DisclosureConsent: params.DisclosureConsent,
		PrivacyConsent:    params.PrivacyConsent,
	}
	if fileID != "" {
		patient.IdentificationDocumentID = &fileID
	}

	if err := s.patients.Create(ctx, patient); err != nil {
		if fileID != "" {
			if derr := s.files.Destroy(ctx, fileID); derr != nil {
				logrus.WithError(derr).WithField("fileId", fileID).Warn("failed to remove orphaned identification document")
			}
		}
		return nil, fmt.Errorf("create patient: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, patientCacheKey(params.UserID)); err != nil {
			logrus.WithError(err).WithField("userId", params.UserID).Warn("patient cache invalidation failed")
		}
	}
	return patient, nil
}

// viewURL derives the public link for a stored file. The double "?" and the
// literal "undefined" id for the no-file case match the URLs already stored
// by the live portal, so both are kept as-is.
func (s *PatientService) viewURL(fileID string) string {
	if fileID == "" {
		fileID = "undefined"
	}
	return fmt.Sprintf("%s/storage/buckets/%s/files/%s/view??project=%s",
		s.storage.Endpoint, s.storage.BucketID, fileID, s.storage.ProjectID)
}

func patientCacheKey(userID string) string {
	return "patient:" + userID
}
