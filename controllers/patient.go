package controllers

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/NerdBoi008/care-connect/services"
	"github.com/NerdBoi008/care-connect/utils"
)

// PatientController serves the registration side of the portal: identity
// find-or-create, user/patient lookup, and the registration form endpoint.
type PatientController struct {
	patients *services.PatientService
}

func NewPatientController(patients *services.PatientService) *PatientController {
	return &PatientController{patients: patients}
}

// CreateUser godoc
// @Summary Find or create an identity record by email
// @Tags patients
// @Accept json
// @Produce json
// @Success 200 {object} models.User
// @Success 201 {object} models.User
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /users [post]
func (pc *PatientController) CreateUser(c *fiber.Ctx) error {
	type CreateUserInput struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone"`
	}

	input := new(CreateUserInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.Name == "" || input.Email == "" || input.Phone == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	user, created, err := pc.patients.FindOrCreateUser(c.Context(), services.CreateUserParams{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create user",
			Error:   err.Error(),
		})
	}

	if created {
		return c.Status(fiber.StatusCreated).JSON(user)
	}
	return c.JSON(user)
}

// GetUser returns one identity record by id.
func (pc *PatientController) GetUser(c *fiber.Ctx) error {
	user, err := pc.patients.GetUser(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch user",
			Error:   err.Error(),
		})
	}
	return c.JSON(user)
}

// GetPatient returns the patient record registered for a user.
func (pc *PatientController) GetPatient(c *fiber.Ctx) error {
	patient, err := pc.patients.GetPatient(c.Context(), c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch patient",
			Error:   err.Error(),
		})
	}
	if patient == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Patient not found",
		})
	}
	return c.JSON(patient)
}

// RegisterPatient godoc
// @Summary Submit the patient registration form
// @Tags patients
// @Accept mpfd
// @Produce json
// @Param userId path string true "User ID"
// @Success 201 {object} models.Patient
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /patients/{userId}/register [post]
func (pc *PatientController) RegisterPatient(c *fiber.Ctx) error {
	userID := c.Params("userId")

	params, err := parseRegistrationForm(c, userID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid registration form",
			Error:   err.Error(),
		})
	}

	patient, err := pc.patients.RegisterPatient(c.Context(), *params)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to register patient",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"patient": patient,
		"next":    fmt.Sprintf("/patients/%s/new-appointment", userID),
	})
}

func parseRegistrationForm(c *fiber.Ctx, userID string) (*services.RegisterPatientParams, error) {
	required := []string{
		"name", "email", "phone", "birthDate", "gender", "address", "occupation",
		"emergencyContactName", "emergencyContactNumber", "primaryPhysician",
		"insuranceProvider", "insurancePolicyNumber",
	}
	for _, field := range required {
		if c.FormValue(field) == "" {
			return nil, fmt.Errorf("missing required field: %s", field)
		}
	}

	birthDate, err := time.Parse("2006-01-02", c.FormValue("birthDate"))
	if err != nil {
		return nil, fmt.Errorf("invalid birthDate: %w", err)
	}

	gender := strings.ToLower(c.FormValue("gender"))
	switch gender {
	case "male", "female", "other":
	default:
		return nil, fmt.Errorf("invalid gender: %s", c.FormValue("gender"))
	}

	treatment, _ := strconv.ParseBool(c.FormValue("treatmentConsent"))
	disclosure, _ := strconv.ParseBool(c.FormValue("disclosureConsent"))
	privacy, _ := strconv.ParseBool(c.FormValue("privacyConsent"))
	if !treatment || !disclosure || !privacy {
		return nil, fmt.Errorf("consent to treatment, disclosure and privacy is required")
	}

	params := &services.RegisterPatientParams{
		UserID:     userID,
		Name:       c.FormValue("name"),
		Email:      c.FormValue("email"),
		Phone:      c.FormValue("phone"),
		BirthDate:  birthDate,
		Gender:     gender,
		Address:    c.FormValue("address"),
		Occupation: c.FormValue("occupation"),

		EmergencyContactName:   c.FormValue("emergencyContactName"),
		EmergencyContactNumber: c.FormValue("emergencyContactNumber"),

		PrimaryPhysician:      c.FormValue("primaryPhysician"),
		InsuranceProvider:     c.FormValue("insuranceProvider"),
		InsurancePolicyNumber: c.FormValue("insurancePolicyNumber"),
		Allergies:             c.FormValue("allergies"),
		CurrentMedications:    c.FormValue("currentMedications"),
		FamilyMedicalHistory:  c.FormValue("familyMedicalHistory"),
		PastMedicalHistory:    c.FormValue("pastMedicalHistory"),

		IdentificationType:   c.FormValue("identificationType"),
		IdentificationNumber: c.FormValue("identificationNumber"),

		TreatmentConsent:  treatment,
		DisclosureConsent: disclosure,
		PrivacyConsent:    privacy,
	}

	// The document part is optional; a missing part is not an error.
	if fileHeader, err := c.FormFile("identificationDocument"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return nil, fmt.Errorf("open identification document: %w", err)
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return nil, fmt.Errorf("read identification document: %w", err)
		}
		params.IdentificationDocument = &services.IdentificationDocument{
			FileName: fileHeader.Filename,
			Data:     data,
		}
	}

	return params, nil
}
