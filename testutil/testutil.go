// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/danielhkuo/percent-back/auth"
	"github.com/danielhkuo/percent-back/cliparse"
	"github.com/danielhkuo/percent-back/db"
	"github.com/danielhkuo/percent-back/models"
)

// TestToken is what FakeAPI issues on a successful login
const TestToken = "test-token"

// SetupTestDB opens a fresh sqlite credential database in a temp dir
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, filepath.Join(t.TempDir(), "percentback.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration pointed at apiURL
func GetTestConfig(apiURL string) cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		APIBaseURL:   apiURL,
		DatabaseURL:  ":memory:",
		DatabaseType: db.TypeSQLite,
	}
}

// Call is one request received by FakeAPI. Token is the bearer token, or
// "" when the Authorization header carried none.
type Call struct {
	Pattern       string
	Method        string
	Path          string
	Authorization string
	Token         string
	RequestID     string
	Body          []byte
}

// FakeAPI stands in for the external race API
type FakeAPI struct {
	*httptest.Server

	mu       sync.Mutex
	races    []models.RaceRecord
	nullList bool
	nextID   int64
	fail     map[string]int
	calls    []Call
}

// NewFakeAPI starts a fake API that is closed when the test ends
func NewFakeAPI(t *testing.T) *FakeAPI {
	t.Helper()

	f := &FakeAPI{
		races:  []models.RaceRecord{},
		nextID: 1,
		fail:   make(map[string]int),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /races", f.listRaces)
	mux.HandleFunc("POST /races/create", f.createRace)
	mux.HandleFunc("DELETE /races/delete/{id}", f.deleteRace)
	mux.HandleFunc("POST /login", f.login)
	mux.HandleFunc("POST /register", f.ok)
	mux.HandleFunc("POST /forgot-password", f.ok)
	mux.HandleFunc("POST /reset-password/{token}", f.ok)

	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))

		_, pattern := mux.Handler(r)
		token, _ := auth.ParseBearer(r.Header.Get("Authorization"))

		f.mu.Lock()
		f.calls = append(f.calls, Call{
			Pattern:       pattern,
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			Token:         token,
			RequestID:     r.Header.Get("X-Request-ID"),
			Body:          body,
		})
		status, failing := f.fail[pattern]
		f.mu.Unlock()

		if failing {
			http.Error(w, http.StatusText(status), status)
			return
		}
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(f.Close)

	return f
}

// SetRaces replaces the stored races. IDs are kept as given.
func (f *FakeAPI) SetRaces(races ...models.RaceRecord) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.races = append([]models.RaceRecord{}, races...)
	for _, r := range races {
		if r.ID >= f.nextID {
			f.nextID = r.ID + 1
		}
	}
}

// Races returns a copy of the stored races
func (f *FakeAPI) Races() []models.RaceRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.RaceRecord{}, f.races...)
}

// ReturnNullList makes GET /races answer with a JSON null
func (f *FakeAPI) ReturnNullList() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nullList = true
}

// FailWith makes every request matching pattern (e.g. "GET /races") answer
// with status. A zero status clears it.
func (f *FakeAPI) FailWith(pattern string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if status == 0 {
		delete(f.fail, pattern)
		return
	}
	f.fail[pattern] = status
}

// Calls returns the requests received so far
func (f *FakeAPI) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call{}, f.calls...)
}

// CallsTo returns the requests that matched pattern
func (f *FakeAPI) CallsTo(pattern string) []Call {
	var matched []Call
	for _, c := range f.Calls() {
		if c.Pattern == pattern {
			matched = append(matched, c)
		}
	}
	return matched
}

func (f *FakeAPI) listRaces(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if f.nullList {
		w.Write([]byte("null"))
		return
	}
	json.NewEncoder(w).Encode(f.races)
}

func (f *FakeAPI) createRace(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad body", http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.races = append(f.races, models.RaceRecord{
		ID:           f.nextID,
		RaceName:     req.RaceName,
		RaceDate:     req.RaceDate,
		RaceDistance: req.RaceDistance,
		PercentBack:  req.PercentBack,
	})
	f.nextID++
	w.WriteHeader(http.StatusCreated)
}

func (f *FakeAPI) deleteRace(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for i, race := range f.races {
		if race.ID == id {
			f.races = append(f.races[:i], f.races[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	http.Error(w, "not found", http.StatusNotFound)
}

func (f *FakeAPI) login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.LoginResponse{Token: TestToken})
}

func (f *FakeAPI) ok(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
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
