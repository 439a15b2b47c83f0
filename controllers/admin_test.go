package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAdminApp(t *testing.T) *fiber.App {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("open-sesame"), bcrypt.DefaultCost)
	require.NoError(t, err)

	app := fiber.New()
	app.Post("/admin/login", NewAdminController("admin@care.test", string(hash), "test-secret").Login)
	return app
}

func loginRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestAdminLoginIssuesToken(t *testing.T) {
	app := newAdminApp(t)

	resp, err := app.Test(loginRequest(`{"email":"admin@care.test","passkey":"open-sesame"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.NotEmpty(t, payload["token"])
}

func TestAdminLoginRejectsWrongPasskey(t *testing.T) {
	app := newAdminApp(t)

	resp, err := app.Test(loginRequest(`{"email":"admin@care.test","passkey":"wrong"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminLoginRejectsUnknownEmail(t *testing.T) {
	app := newAdminApp(t)

	resp, err := app.Test(loginRequest(`{"email":"intruder@care.test","passkey":"open-sesame"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
