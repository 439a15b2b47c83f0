package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// AdminController issues access tokens for the staff dashboard. There is a
// single admin identity configured through the environment.
type AdminController struct {
	adminEmail  string
	passkeyHash string
	jwtSecret   string
}

func NewAdminController(adminEmail, passkeyHash, jwtSecret string) *AdminController {
	return &AdminController{
		adminEmail:  adminEmail,
		passkeyHash: passkeyHash,
		jwtSecret:   jwtSecret,
	}
}

// Login verifies the admin passkey and returns a 24 hour access token.
func (ac *AdminController) Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email   string `json:"email"`
		Passkey string `json:"passkey"`
	}

	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if ac.passkeyHash == "" || input.Email != ac.adminEmail {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(ac.passkeyHash), []byte(input.Passkey)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	claims := jwt.MapClaims{
		"email": input.Email,
		"role":  "admin",
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(ac.jwtSecret))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to issue token",
		})
	}

	return c.JSON(fiber.Map{
		"token": signed,
	})
}
