// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/lucashmv/bolao-mega/auth"
	"github.com/lucashmv/bolao-mega/cliparse"
	"github.com/lucashmv/bolao-mega/db"
	"github.com/lucashmv/bolao-mega/models"
)

// SetupTestDB opens a fresh in-memory sqlite database with the full
// schema. Each call gets its own database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A single connection keeps the in-memory database alive and
	// serializes statements the way the production pool does.
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3333,
		DatabaseURL:   ":memory:",
		DatabaseType:  "sqlite",
		JWTSecret:     "test-jwt-secret",
		AdminPassword: "test-admin-password",
		BaseURL:       "http://localhost:3333",
	}
}

// CreateTestUser inserts a user and returns its ID
func CreateTestUser(t *testing.T, conn *sql.DB, name, phoneKey string) string {
	t.Helper()

	userID := auth.NewID()
	_, err := conn.Exec(`
		INSERT INTO app_user (id, name, phone_key, created_at)
		VALUES ($1, $2, $3, $4)
	`, userID, name, phoneKey, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return userID
}

// CreateTestPool inserts a pool and returns its ID and share slug
func CreateTestPool(t *testing.T, conn *sql.DB, title string) (poolID, shareSlug string) {
	t.Helper()

	poolID = auth.NewID()
	shareSlug, err := auth.GenerateShareSlug()
	if err != nil {
		t.Fatalf("Failed to generate share slug: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO pool (id, title, description, share_slug, group_key, created_at)
		VALUES ($1, $2, 'Bolão colaborativo', $3, 'test-group', $4)
	`, poolID, title, shareSlug, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test pool: %v", err)
	}

	return poolID, shareSlug
}

// CreateTestEntry inserts an open entry with the given numbers and
// returns its ID
func CreateTestEntry(t *testing.T, conn *sql.DB, poolID string, numbers []int) string {
	t.Helper()

	encoded, err := models.EncodeNumbers(numbers)
	if err != nil {
		t.Fatalf("Failed to encode numbers: %v", err)
	}

	entryID := auth.NewID()
	_, err = conn.Exec(`
		INSERT INTO entry (id, pool_id, numbers, claimed, edited, owner_user_id, created_at)
		VALUES ($1, $2, $3, FALSE, FALSE, NULL, $4)
	`, entryID, poolID, encoded, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test entry: %v", err)
	}

	return entryID
}

// ClaimTestEntry marks an entry as claimed by the given user
func ClaimTestEntry(t *testing.T, conn *sql.DB, entryID, userID string) {
	t.Helper()

	res, err := conn.Exec(`
		UPDATE entry SET claimed = TRUE, owner_user_id = $1 WHERE id = $2
	`, userID, entryID)
	if err != nil {
		t.Fatalf("Failed to claim test entry: %v", err)
	}
	if n, _ := res.RowsAffected(); n != 1 {
		t.Fatalf("Expected to claim 1 entry, affected %d", n)
	}
}

// IssueTestToken returns a valid bearer token for the given user
func IssueTestToken(t *testing.T, cfg cliparse.Config, userID string) string {
	t.Helper()

	token, err := auth.IssueToken(userID, "5512981968688", []byte(cfg.JWTSecret), auth.TokenTTL)
	if err != nil {
		t.Fatalf("Failed to issue test token: %v", err)
	}

	return token
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
