// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/lunch-decider/auth"
	"github.com/danielhkuo/lunch-decider/cliparse"
	"github.com/danielhkuo/lunch-decider/db"
	"github.com/danielhkuo/lunch-decider/models"
)

// TestJWTSecret signs tokens in tests
const TestJWTSecret = "test-jwt-secret"

// SetupTestDB creates a fresh file-backed SQLite database with the full schema.
// The database is removed with the test's temp dir.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, "file:"+filepath.Join(t.TempDir(), "lunch.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(context.Background(), conn); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  "file:test.db",
		DatabaseType: db.TypeSQLite,
		JWTSecret:    TestJWTSecret,
		Timezone:     "UTC",
		Location:     time.UTC,
	}
}

// Today returns the current date as seen by GetTestConfig
func Today() string {
	return GetTestConfig().Today()
}

// DaysFromToday returns today's date shifted by n days
func DaysFromToday(n int) string {
	return time.Now().UTC().AddDate(0, 0, n).Format(models.DateLayout)
}

// CreateTestRestaurant creates a restaurant with a fresh API key
func CreateTestRestaurant(t *testing.T, db *sql.DB, name string) models.Restaurant {
	t.Helper()

	r := models.Restaurant{
		ID:          auth.NewID(),
		Name:        name,
		Description: "A test restaurant",
		APIKey:      auth.GenerateAPIKey(),
	}
	_, err := db.Exec(`
		INSERT INTO restaurant (id, name, description, api_key)
		VALUES ($1, $2, $3, $4)
	`, r.ID, r.Name, r.Description, r.APIKey)
	if err != nil {
		t.Fatalf("Failed to create test restaurant: %v", err)
	}

	return r
}

// CreateTestDish adds a dish to a restaurant and returns its ID
func CreateTestDish(t *testing.T, db *sql.DB, restaurantID, name, price string) string {
	t.Helper()

	dishID := auth.NewID()
	_, err := db.Exec(`
		INSERT INTO dish (id, restaurant_id, name, description, price)
		VALUES ($1, $2, $3, 'A test dish', $4)
	`, dishID, restaurantID, name, price)
	if err != nil {
		t.Fatalf("Failed to create test dish: %v", err)
	}

	return dishID
}

// CreateTestMenu creates a menu dated date with the given dishes and returns its ID
func CreateTestMenu(t *testing.T, db *sql.DB, restaurantID, name, date string, dishIDs ...string) string {
	t.Helper()

	menuID := auth.NewID()
	_, err := db.Exec(`
		INSERT INTO menu (id, restaurant_id, menu_date, name)
		VALUES ($1, $2, $3, $4)
	`, menuID, restaurantID, date, name)
	if err != nil {
		t.Fatalf("Failed to create test menu: %v", err)
	}

	for _, dishID := range dishIDs {
		_, err := db.Exec(`
			INSERT INTO menu_dish (menu_id, dish_id) VALUES ($1, $2)
		`, menuID, dishID)
		if err != nil {
			t.Fatalf("Failed to link test dish: %v", err)
		}
	}

	return menuID
}

// CreateTestUser creates a user with the given role. The stored hash is not a
// usable password.
func CreateTestUser(t *testing.T, db *sql.DB, username, role string) models.User {
	t.Helper()

	u := models.User{
		ID:           auth.NewID(),
		Username:     username,
		PasswordHash: "test-hash",
		Role:         role,
	}
	_, err := db.Exec(`
		INSERT INTO app_user (id, username, password_hash, role)
		VALUES ($1, $2, $3, $4)
	`, u.ID, u.Username, u.PasswordHash, u.Role)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return u
}

// CreateTestVote records a vote directly in the database
func CreateTestVote(t *testing.T, db *sql.DB, userID, menuID string) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO vote (id, user_id, menu_id, voted_at)
		VALUES ($1, $2, $3, $4)
	`, auth.NewID(), userID, menuID, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}
}

// TokenFor signs a bearer token for the user with the test secret
func TokenFor(t *testing.T, user models.User) string {
	t.Helper()

	token, err := auth.IssueToken(user.ID, user.Role, []byte(TestJWTSecret), "", time.Hour)
	if err != nil {
		t.Fatalf("Failed to issue test token: %v", err)
	}
	return token
}

// BearerHeader returns request headers authenticating as the user
func BearerHeader(t *testing.T, user models.User) map[string]string {
	t.Helper()
	return map[string]string{"Authorization": "Bearer " + TokenFor(t, user)}
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
