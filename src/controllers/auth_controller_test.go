package controllers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func newRefreshApp() *fiber.App {
	app := fiber.New()
	app.Post("/auth/refresh", RefreshToken)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) int {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	return resp.StatusCode
}

func TestRefreshTokenIgnoresClientClaims(t *testing.T) {
	app := newRefreshApp()

	// role/username ใน body ต้องไม่มีผล — user ต้องถูกโหลดจาก DB ตาม userId
	// เท่านั้น ถ้าหา user ไม่เจอห้ามออก token
	body := `{"userId":"mallory","username":"mallory","role":"admin","refreshToken":"made-up"}`
	assert.Equal(t, fiber.StatusUnauthorized, postJSON(t, app, "/auth/refresh", body))
}

func TestRefreshTokenRequiresUserIDAndToken(t *testing.T) {
	app := newRefreshApp()

	assert.Equal(t, fiber.StatusBadRequest, postJSON(t, app, "/auth/refresh", `{}`))
	assert.Equal(t, fiber.StatusBadRequest, postJSON(t, app, "/auth/refresh", `{"userId":"abc"}`))
	assert.Equal(t, fiber.StatusBadRequest, postJSON(t, app, "/auth/refresh", `{"refreshToken":"abc"}`))
}
