// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/danielhkuo/percent-back/auth"
	"github.com/danielhkuo/percent-back/credentials"
	"github.com/danielhkuo/percent-back/middleware"
	"github.com/danielhkuo/percent-back/models"
	"github.com/danielhkuo/percent-back/testutil"
)

func newTestClient(t *testing.T) (*Client, *testutil.FakeAPI, *credentials.Provider) {
	t.Helper()
	api := testutil.NewFakeAPI(t)
	creds := credentials.NewProvider(credentials.NewMemoryStore())
	return New(api.URL, 0, creds), api, creds
}

func TestListRaces(t *testing.T) {
	client, api, creds := newTestClient(t)
	ctx := context.Background()

	api.SetRaces(
		models.RaceRecord{ID: 1, RaceName: "Spring 5K", RaceDate: "2023-05-01", RaceDistance: 5, PercentBack: 10},
		models.RaceRecord{ID: 2, RaceName: "Fall 10K", RaceDate: "2024-10-01", RaceDistance: 10, PercentBack: 20},
	)
	if err := creds.SetToken(ctx, "abc"); err != nil {
		t.Fatal(err)
	}

	races, err := client.ListRaces(ctx)
	if err != nil {
		t.Fatalf("ListRaces() error = %v", err)
	}
	if len(races) != 2 || races[0].ID != 1 || races[1].RaceName != "Fall 10K" {
		t.Errorf("Unexpected races: %+v", races)
	}

	calls := api.CallsTo("GET /races")
	if len(calls) != 1 {
		t.Fatalf("Expected 1 call, got %d", len(calls))
	}
	if calls[0].Authorization != "Bearer abc" {
		t.Errorf("Expected bearer header with stored token, got %q", calls[0].Authorization)
	}
	if calls[0].Token != "abc" {
		t.Errorf("Expected API to see token %q, got %q", "abc", calls[0].Token)
	}
	if calls[0].RequestID == "" {
		t.Error("Expected X-Request-ID on the API call")
	}
}

func TestListRaces_LoggedOutSendsEmptyBearer(t *testing.T) {
	client, api, _ := newTestClient(t)

	if _, err := client.ListRaces(context.Background()); err != nil {
		t.Fatalf("ListRaces() error = %v", err)
	}

	calls := api.CallsTo("GET /races")
	if len(calls) != 1 {
		t.Fatalf("Expected 1 call, got %d", len(calls))
	}
	// The server side trims the trailing space of "Bearer "
	if strings.TrimSpace(calls[0].Authorization) != "Bearer" {
		t.Errorf("Expected empty bearer header, got %q", calls[0].Authorization)
	}
	if calls[0].Token != "" {
		t.Errorf("Expected no token, got %q", calls[0].Token)
	}
}

func TestListRaces_NullIsEmpty(t *testing.T) {
	client, api, _ := newTestClient(t)
	api.ReturnNullList()

	races, err := client.ListRaces(context.Background())
	if err != nil {
		t.Fatalf("ListRaces() error = %v", err)
	}
	if races == nil || len(races) != 0 {
		t.Errorf("Expected empty non-nil slice, got %#v", races)
	}
}

func TestRequestIDPropagated(t *testing.T) {
	client, api, _ := newTestClient(t)
	ctx := middleware.WithRequestID(context.Background(), "req-42")

	if _, err := client.ListRaces(ctx); err != nil {
		t.Fatal(err)
	}

	calls := api.Calls()
	if len(calls) != 1 || calls[0].RequestID != "req-42" {
		t.Errorf("Expected request ID req-42, got %+v", calls)
	}
}

func TestCreateRace_Body(t *testing.T) {
	client, api, _ := newTestClient(t)

	err := client.CreateRace(context.Background(), models.CreateRaceRequest{
		RaceName:     "City 10K",
		RaceDate:     "2024-06-01",
		RaceDistance: 10,
		PercentBack:  12.5,
	})
	if err != nil {
		t.Fatalf("CreateRace() error = %v", err)
	}

	calls := api.CallsTo("POST /races/create")
	if len(calls) != 1 {
		t.Fatalf("Expected 1 create call, got %d", len(calls))
	}

	var body map[string]interface{}
	if err := json.Unmarshal(calls[0].Body, &body); err != nil {
		t.Fatalf("Failed to decode request body: %v", err)
	}
	for _, key := range []string{"raceName", "raceDate", "raceDistance", "percentBack"} {
		if _, ok := body[key]; !ok {
			t.Errorf("Expected key %q in create body %s", key, calls[0].Body)
		}
	}

	races := api.Races()
	if len(races) != 1 || races[0].PercentBack != 12.5 {
		t.Errorf("Expected stored race, got %+v", races)
	}
}

func TestDeleteRace(t *testing.T) {
	client, api, _ := newTestClient(t)
	api.SetRaces(models.RaceRecord{ID: 7, RaceName: "Trail", RaceDate: "2024-01-01"})

	if err := client.DeleteRace(context.Background(), 7); err != nil {
		t.Fatalf("DeleteRace() error = %v", err)
	}
	if len(api.Races()) != 0 {
		t.Error("Expected race to be deleted")
	}

	calls := api.CallsTo("DELETE /races/delete/{id}")
	if len(calls) != 1 || calls[0].Path != "/races/delete/7" {
		t.Errorf("Unexpected delete calls: %+v", calls)
	}
}

func TestAPIError(t *testing.T) {
	tests := []struct {
		name       string
		pattern    string
		status     int
		call       func(c *Client) error
		expectedOp string
	}{
		{
			name:       "list",
			pattern:    "GET /races",
			status:     http.StatusInternalServerError,
			call:       func(c *Client) error { _, err := c.ListRaces(context.Background()); return err },
			expectedOp: "list races",
		},
		{
			name:       "create",
			pattern:    "POST /races/create",
			status:     http.StatusUnauthorized,
			call:       func(c *Client) error { return c.CreateRace(context.Background(), models.CreateRaceRequest{}) },
			expectedOp: "create race",
		},
		{
			name:       "delete",
			pattern:    "DELETE /races/delete/{id}",
			status:     http.StatusForbidden,
			call:       func(c *Client) error { return c.DeleteRace(context.Background(), 1) },
			expectedOp: "delete race",
		},
		{
			name:       "register",
			pattern:    "POST /register",
			status:     http.StatusConflict,
			call:       func(c *Client) error { return c.Register(context.Background(), "a@b.co", "pw") },
			expectedOp: "register",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, api, _ := newTestClient(t)
			api.FailWith(tt.pattern, tt.status)

			err := tt.call(client)

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("Expected *APIError, got %v", err)
			}
			if apiErr.StatusCode != tt.status {
				t.Errorf("Expected status %d, got %d", tt.status, apiErr.StatusCode)
			}
			if apiErr.Op != tt.expectedOp {
				t.Errorf("Expected op %q, got %q", tt.expectedOp, apiErr.Op)
			}
		})
	}
}

func TestTransportError(t *testing.T) {
	client, api, _ := newTestClient(t)
	api.Close()

	_, err := client.ListRaces(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != 0 || apiErr.Err == nil {
		t.Errorf("Expected transport failure, got %+v", apiErr)
	}
}

func TestLoginLogout(t *testing.T) {
	client, api, creds := newTestClient(t)
	ctx := context.Background()

	if err := client.Login(ctx, "runner@example.com", "secret"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	token, _ := creds.Token(ctx)
	if token != testutil.TestToken {
		t.Errorf("Expected stored token %q, got %q", testutil.TestToken, token)
	}

	calls := api.CallsTo("POST /login")
	if len(calls) != 1 {
		t.Fatalf("Expected 1 login call, got %d", len(calls))
	}
	if calls[0].Authorization != "" {
		t.Errorf("Login should not send a bearer header, got %q", calls[0].Authorization)
	}
	var sent models.Credentials
	if err := json.Unmarshal(calls[0].Body, &sent); err != nil {
		t.Fatal(err)
	}
	if sent.Username != "runner@example.com" || sent.Password != "secret" {
		t.Errorf("Unexpected login body: %+v", sent)
	}

	// Data calls now carry the token
	if _, err := client.ListRaces(ctx); err != nil {
		t.Fatal(err)
	}
	if got := api.CallsTo("GET /races")[0].Authorization; got != auth.BearerHeader(testutil.TestToken) {
		t.Errorf("Expected bearer header after login, got %q", got)
	}

	before := len(api.Calls())
	if err := client.Logout(ctx); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if token, _ := creds.Token(ctx); token != "" {
		t.Errorf("Expected token cleared, got %q", token)
	}
	if len(api.Calls()) != before {
		t.Error("Logout should not call the API")
	}
}

func TestLogin_Failure(t *testing.T) {
	client, api, creds := newTestClient(t)
	ctx := context.Background()
	api.FailWith("POST /login", http.StatusUnauthorized)

	if err := client.Login(ctx, "runner", "wrong"); err == nil {
		t.Fatal("Expected login error")
	}
	if token, _ := creds.Token(ctx); token != "" {
		t.Errorf("Expected no token stored, got %q", token)
	}
}

func TestPasswordReset(t *testing.T) {
	client, api, _ := newTestClient(t)
	ctx := context.Background()

	if err := client.ForgotPassword(ctx, "runner@example.com"); err != nil {
		t.Fatalf("ForgotPassword() error = %v", err)
	}
	if err := client.ResetPassword(ctx, "reset-123", "new-pw"); err != nil {
		t.Fatalf("ResetPassword() error = %v", err)
	}

	forgot := api.CallsTo("POST /forgot-password")
	if len(forgot) != 1 {
		t.Fatalf("Expected 1 forgot-password call, got %d", len(forgot))
	}
	var req models.ForgotPasswordRequest
	json.Unmarshal(forgot[0].Body, &req)
	if req.Email != "runner@example.com" {
		t.Errorf("Unexpected forgot-password body: %s", forgot[0].Body)
	}

	reset := api.CallsTo("POST /reset-password/{token}")
	if len(reset) != 1 || reset[0].Path != "/reset-password/reset-123" {
		t.Errorf("Unexpected reset calls: %+v", reset)
	}
}
