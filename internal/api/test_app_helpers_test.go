package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/shiftcoach/shiftcoach/internal/bus"
	"github.com/shiftcoach/shiftcoach/internal/config"
	"github.com/shiftcoach/shiftcoach/internal/db"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	cfg := config.Default()
	cfg.Auth.SecretKey = "test-secret"
	cfg.Server.LoginRatePerSec = 1000
	cfg.Server.LoginRateBurst = 1000

	handler, err := NewHandler(database, cfg, bus.New())
	if err != nil {
		t.Fatalf("build handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, payload any, cookie string) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		request.Header.Set("Cookie", cookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return response
}

func decodeJSON(t *testing.T, response *http.Response, target any) {
	t.Helper()
	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func sessionCookie(t *testing.T, response *http.Response) string {
	t.Helper()
	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return authCookieName + "=" + cookie.Value
		}
	}
	t.Fatalf("response carries no session cookie")
	return ""
}

func registerTestUser(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	response := doJSON(t, app, fiber.MethodPost, "/api/auth/register", map[string]string{
		"email":    email,
		"password": "CorrectHorse1",
	}, "")
	if response.StatusCode != fiber.StatusCreated {
		t.Fatalf("register status = %d, want 201", response.StatusCode)
	}
	return sessionCookie(t, response)
}
