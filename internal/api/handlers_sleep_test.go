package api

import (
	"fmt"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func TestSleepCRUD(t *testing.T) {
	app := newTestApp(t)
	cookie := registerTestUser(t, app, "worker@example.com")

	start := time.Date(2024, time.June, 1, 23, 0, 0, 0, time.UTC)
	response := doJSON(t, app, fiber.MethodPost, "/api/sleep", map[string]any{
		"start_at": start.Format(time.RFC3339),
		"end_at":   start.Add(8 * time.Hour).Format(time.RFC3339),
		"type":     "sleep",
		"quality":  4,
	}, cookie)
	if response.StatusCode != fiber.StatusCreated {
		t.Fatalf("create status = %d, want 201", response.StatusCode)
	}
	var created struct {
		ID      uint   `json:"id"`
		Type    string `json:"type"`
		Quality int    `json:"quality"`
	}
	decodeJSON(t, response, &created)
	if created.ID == 0 || created.Type != "sleep" || created.Quality != 4 {
		t.Fatalf("created session = %+v", created)
	}

	response = doJSON(t, app, fiber.MethodGet, "/api/sleep?from=2024-06-01&to=2024-06-02", nil, cookie)
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("list status = %d", response.StatusCode)
	}
	var listed struct {
		Sessions []struct {
			ID uint `json:"id"`
		} `json:"sessions"`
	}
	decodeJSON(t, response, &listed)
	if len(listed.Sessions) != 1 || listed.Sessions[0].ID != created.ID {
		t.Fatalf("listed sessions = %+v", listed.Sessions)
	}

	response = doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/api/sleep/%d", created.ID), nil, cookie)
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("delete status = %d", response.StatusCode)
	}

	response = doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/api/sleep/%d", created.ID), nil, cookie)
	if response.StatusCode != fiber.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", response.StatusCode)
	}
}

func TestSleepRejectsInvalidWindow(t *testing.T) {
	app := newTestApp(t)
	cookie := registerTestUser(t, app, "worker@example.com")

	start := time.Date(2024, time.June, 1, 23, 0, 0, 0, time.UTC)
	response := doJSON(t, app, fiber.MethodPost, "/api/sleep", map[string]any{
		"start_at": start.Format(time.RFC3339),
		"end_at":   start.Add(-time.Hour).Format(time.RFC3339),
	}, cookie)
	if response.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", response.StatusCode)
	}
}

func TestSleepSessionsAreScopedPerUser(t *testing.T) {
	app := newTestApp(t)
	ownerCookie := registerTestUser(t, app, "owner@example.com")
	otherCookie := registerTestUser(t, app, "other@example.com")

	start := time.Date(2024, time.June, 1, 23, 0, 0, 0, time.UTC)
	response := doJSON(t, app, fiber.MethodPost, "/api/sleep", map[string]any{
		"start_at": start.Format(time.RFC3339),
		"end_at":   start.Add(8 * time.Hour).Format(time.RFC3339),
	}, ownerCookie)
	var created struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, response, &created)

	response = doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/api/sleep/%d", created.ID), nil, otherCookie)
	if response.StatusCode != fiber.StatusNotFound {
		t.Fatalf("cross-user delete status = %d, want 404", response.StatusCode)
	}

	response = doJSON(t, app, fiber.MethodGet, "/api/sleep", nil, otherCookie)
	var listed struct {
		Sessions []any `json:"sessions"`
	}
	decodeJSON(t, response, &listed)
	if len(listed.Sessions) != 0 {
		t.Fatalf("other user sees %d sessions, want 0", len(listed.Sessions))
	}
}
