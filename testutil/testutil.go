// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/roi-survey/cliparse"
	"github.com/danielhkuo/roi-survey/metrics"
	"github.com/danielhkuo/roi-survey/models"
	"github.com/danielhkuo/roi-survey/repository"
	"github.com/danielhkuo/roi-survey/schema"
	"github.com/danielhkuo/roi-survey/session"
	"github.com/danielhkuo/roi-survey/storage"
)

// BaseTime is the first instant handed out by TestClock
var BaseTime = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

// TestClock returns a clock that advances one second per call
func TestClock() func() time.Time {
	now := BaseTime
	return func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}

// SetupTestDB opens a fresh sqlite database in a temp dir with the kv schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "surveys.db")
	db, err := storage.Open(storage.TypeSQLite, path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := storage.CreateSchema(db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return db
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseType: storage.TypeMemory,
		StorageKey:   repository.DefaultKey,
	}
}

// App bundles the pieces a handler or router test needs
type App struct {
	Schema  *schema.Schema
	Store   storage.Store
	Repo    *repository.Repository
	Session *session.Controller
}

// NewTestApp wires a repository and session over store using the built-in
// questionnaire and a deterministic clock. A nil store means a fresh
// in-memory one.
func NewTestApp(t *testing.T, store storage.Store) *App {
	t.Helper()
	return NewInstrumentedTestApp(t, store, nil)
}

// NewInstrumentedTestApp is NewTestApp with m observing the repository and
// session.
func NewInstrumentedTestApp(t *testing.T, store storage.Store, m *metrics.Collector) *App {
	t.Helper()

	if store == nil {
		store = storage.NewMemoryStore()
	}
	clock := TestClock()
	s := schema.Default()
	repo := repository.New(store, repository.DefaultKey,
		repository.WithClock(clock),
		repository.WithObserver(m),
	)
	sess := session.New(s, repo,
		session.WithClock(clock),
		session.WithObserver(m),
	)

	return &App{Schema: s, Store: store, Repo: repo, Session: sess}
}

// CreateTestSurvey stores a survey with the given name and responses
func CreateTestSurvey(t *testing.T, repo *repository.Repository, name string, responses models.Responses) models.Survey {
	t.Helper()

	s, _, err := repo.PutByName(name, responses)
	if err != nil {
		t.Fatalf("Failed to create test survey: %v", err)
	}
	return s
}

// CompanyStep returns valid answers for the first questionnaire step
func CompanyStep(name string) models.Responses {
	return models.Responses{
		"company_name":   models.TextAnswer(name),
		"contact_email":  models.TextAnswer("ops@example.com"),
		"industry":       models.TextAnswer("Technology"),
		"employee_count": models.NumberAnswer(250),
	}
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
