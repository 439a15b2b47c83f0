package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/NerdBoi008/care-connect/utils"
)

// Patient is the clinical-intake record collected at registration. It always
// references exactly one User and is append-only: there is no update or
// delete path in the portal.
type Patient struct {
	ID     string `json:"id" gorm:"primaryKey"`
	UserID string `json:"userId" gorm:"index"`

	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	BirthDate  time.Time `json:"birthDate"`
	Gender     string    `json:"gender"`
	Address    string    `json:"address"`
	Occupation string    `json:"occupation"`

	EmergencyContactName   string `json:"emergencyContactName"`
	EmergencyContactNumber string `json:"emergencyContactNumber"`

	PrimaryPhysician      string `json:"primaryPhysician"`
	InsuranceProvider     string `json:"insuranceProvider"`
	InsurancePolicyNumber string `json:"insurancePolicyNumber"`
	Allergies             string `json:"allergies,omitempty"`
	CurrentMedications    string `json:"currentMedications,omitempty"`
	FamilyMedicalHistory  string `json:"familyMedicalHistory,omitempty"`
	PastMedicalHistory    string `json:"pastMedicalHistory,omitempty"`

	IdentificationType        string  `json:"identificationType,omitempty"`
	IdentificationNumber      string  `json:"identificationNumber,omitempty"`
	IdentificationDocumentID  *string `json:"identificationDocumentId"`
	IdentificationDocumentURL string  `json:"identificationDocumentUrl"`

	TreatmentConsent  bool `json:"treatmentConsent"`
	DisclosureConsent bool `json:"disclosureConsent"`
	PrivacyConsent    bool `json:"privacyConsent"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Patient) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = utils.NewID()
	}
	return nil
}
