// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielhkuo/percent-back/middleware"
	"github.com/danielhkuo/percent-back/models"
	"github.com/danielhkuo/percent-back/racetime"
)

// RaceHandler backs the race input form
type RaceHandler struct {
	api       RaceAPI
	validator racetime.Validator
}

func NewRaceHandler(api RaceAPI, validator racetime.Validator) *RaceHandler {
	return &RaceHandler{api: api, validator: validator}
}

// SubmitRace handles POST /dashboard/races
func (h *RaceHandler) SubmitRace(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitRaceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if anyBlank(req.RaceName, req.RaceDate, req.RaceDistance, req.UserRaceTime, req.FirstPlaceTime) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "All fields are required.")
		return
	}

	distance, err := strconv.ParseFloat(strings.TrimSpace(req.RaceDistance), 64)
	if err != nil || distance <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Please enter a valid race distance.")
		return
	}

	// No API call on invalid times
	percentBack, err := h.validator.PercentBack(req.UserRaceTime, req.FirstPlaceTime)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, racetime.InvalidTimesMessage)
		return
	}

	// The unrounded value goes to the API; rounding is for display only
	err = h.api.CreateRace(r.Context(), models.CreateRaceRequest{
		RaceName:     req.RaceName,
		RaceDate:     req.RaceDate,
		RaceDistance: distance,
		PercentBack:  percentBack,
	})
	if err != nil {
		slog.Warn("failed to create race", "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Failed to create race")
		return
	}

	slog.Info("race created", "race", req.RaceName, "percent_back", percentBack, "mode", h.validator.Mode)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitRaceResponse{
		Message:     "Race created successfully!",
		PercentBack: percentBack,
		Display:     racetime.FormatPercent(percentBack),
	})
}

func anyBlank(fields ...string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return true
		}
	}
	return false
}
