// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/percent-back/auth"
	"github.com/danielhkuo/percent-back/credentials"
	"github.com/danielhkuo/percent-back/middleware"
	"github.com/danielhkuo/percent-back/models"
)

// APIError is returned for transport failures and non-2xx responses.
// StatusCode is 0 when no response arrived.
type APIError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: unexpected status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Client talks to the external race API
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      *credentials.Provider
}

// New creates a client for baseURL. A zero timeout means none.
func New(baseURL string, timeout time.Duration, creds *credentials.Provider) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		creds:      creds,
	}
}

// ListRaces handles GET /races
func (c *Client) ListRaces(ctx context.Context) ([]models.RaceRecord, error) {
	var races []models.RaceRecord
	if err := c.do(ctx, "list races", http.MethodGet, "/races", nil, true, &races); err != nil {
		return nil, err
	}
	if races == nil {
		races = []models.RaceRecord{}
	}
	return races, nil
}

// CreateRace handles POST /races/create
func (c *Client) CreateRace(ctx context.Context, req models.CreateRaceRequest) error {
	return c.do(ctx, "create race", http.MethodPost, "/races/create", req, true, nil)
}

// DeleteRace handles DELETE /races/delete/{id}
func (c *Client) DeleteRace(ctx context.Context, id int64) error {
	path := "/races/delete/" + strconv.FormatInt(id, 10)
	return c.do(ctx, "delete race", http.MethodDelete, path, nil, true, nil)
}

// Login posts the credentials and stores the returned token
func (c *Client) Login(ctx context.Context, username, password string) error {
	var resp models.LoginResponse
	err := c.do(ctx, "login", http.MethodPost, "/login", models.Credentials{
		Username: username,
		Password: password,
	}, false, &resp)
	if err != nil {
		return err
	}
	if resp.Token == "" {
		return &APIError{Op: "login", Err: auth.ErrInvalidToken}
	}
	return c.creds.SetToken(ctx, resp.Token)
}

// Logout forgets the stored token. The API is not told.
func (c *Client) Logout(ctx context.Context) error {
	return c.creds.ClearToken(ctx)
}

// Register handles POST /register
func (c *Client) Register(ctx context.Context, username, password string) error {
	return c.do(ctx, "register", http.MethodPost, "/register", models.Credentials{
		Username: username,
		Password: password,
	}, false, nil)
}

// ForgotPassword handles POST /forgot-password
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.do(ctx, "forgot password", http.MethodPost, "/forgot-password", models.ForgotPasswordRequest{
		Email: email,
	}, false, nil)
}

// ResetPassword handles POST /reset-password/{token}
func (c *Client) ResetPassword(ctx context.Context, resetToken, password string) error {
	path := "/reset-password/" + url.PathEscape(resetToken)
	return c.do(ctx, "reset password", http.MethodPost, path, models.ResetPasswordRequest{
		Password: password,
	}, false, nil)
}

// do sends one request. No retries; any failure comes back as *APIError.
func (c *Client) do(ctx context.Context, op, method, path string, body interface{}, authed bool, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &APIError{Op: op, Err: fmt.Errorf("failed to encode request: %w", err)}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &APIError{Op: op, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID(ctx))

	if authed {
		token, err := c.creds.Token(ctx)
		if err != nil {
			return &APIError{Op: op, Err: err}
		}
		req.Header.Set("Authorization", auth.BearerHeader(token))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Error("api request failed", "op", op, "error", err)
		return &APIError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused
		io.Copy(io.Discard, resp.Body)
		slog.Error("api request rejected", "op", op, "status", resp.StatusCode)
		return &APIError{Op: op, StatusCode: resp.StatusCode}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		slog.Error("api response undecodable", "op", op, "error", err)
		return &APIError{Op: op, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return nil
}

func requestID(ctx context.Context) string {
	if id := middleware.RequestID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
