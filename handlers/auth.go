// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/percent-back/auth"
	"github.com/danielhkuo/percent-back/credentials"
	"github.com/danielhkuo/percent-back/middleware"
	"github.com/danielhkuo/percent-back/models"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail applies the registration form's email check, case-insensitively
func ValidEmail(email string) bool {
	return emailPattern.MatchString(strings.ToLower(email))
}

type AuthHandler struct {
	api   AuthAPI
	creds *credentials.Provider
	now   func() time.Time
}

func NewAuthHandler(api AuthAPI, creds *credentials.Provider) *AuthHandler {
	return &AuthHandler{api: api, creds: creds, now: time.Now}
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Username == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Username and password are required.")
		return
	}

	if err := h.api.Login(r.Context(), req.Username, req.Password); err != nil {
		slog.Warn("login failed", "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Failed to log in. Please check your username and password.")
		return
	}

	slog.Info("logged in")
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Logged in."})
}

// Register handles POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !ValidEmail(req.Email) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Please enter a valid email address.")
		return
	}
	if req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Password is required.")
		return
	}

	// The API takes the email as the username
	if err := h.api.Register(r.Context(), req.Email, req.Password); err != nil {
		slog.Warn("registration failed", "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Failed to register. Please try a different email.")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{Message: "Registration successful. Please log in."})
}

// ForgotPassword handles POST /forgot-password
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ForgotPasswordRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Email == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Email is required.")
		return
	}

	if err := h.api.ForgotPassword(r.Context(), req.Email); err != nil {
		slog.Warn("forgot password failed", "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Error sending password reset email. Please try again.")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "A password reset link has been sent to your email address.",
	})
}

// ResetPassword handles POST /reset-password/{token}
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	resetToken := r.PathValue("token")
	if resetToken == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Reset token is required.")
		return
	}

	var req models.ResetPasswordRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Password is required.")
		return
	}

	if err := h.api.ResetPassword(r.Context(), resetToken, req.Password); err != nil {
		slog.Warn("password reset failed", "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Failed to reset password. Please try again.")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Your password has been reset."})
}

// Logout handles POST /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.api.Logout(r.Context()); err != nil {
		slog.Error("failed to clear token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log out")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Logged out."})
}

// Session handles GET /session
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	token, err := h.creds.Token(r.Context())
	if err != nil {
		slog.Error("failed to read token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to read session")
		return
	}

	resp := models.SessionResponse{LoggedIn: token != ""}

	if token != "" {
		// Opaque tokens have no expiry to report
		if exp, err := auth.TokenExpiry(token); err == nil {
			now := h.now()
			at := exp.UTC().Format(time.RFC3339)
			in := humanize.RelTime(exp, now, "ago", "from now")
			resp.ExpiresAt = &at
			resp.ExpiresIn = &in
			resp.Expired = auth.Expired(token, now)
		}
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}
