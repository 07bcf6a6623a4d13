// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/danielhkuo/percent-back/middleware"
	"github.com/danielhkuo/percent-back/models"
	"github.com/danielhkuo/percent-back/racetime"
	"github.com/danielhkuo/percent-back/raceview"
	"github.com/danielhkuo/percent-back/render"
)

const chartTitle = "Percent Back Over Time"

// ChartHandler is the percent-back line chart with its year filter
type ChartHandler struct {
	api RaceAPI

	mu       sync.Mutex
	snapshot []models.RaceRecord
	year     int
}

func NewChartHandler(api RaceAPI) *ChartHandler {
	return &ChartHandler{api: api, snapshot: []models.RaceRecord{}}
}

// project must be called with mu held
func (h *ChartHandler) project() models.ChartResponse {
	p := raceview.Project(h.snapshot, raceview.Query{Year: h.year, Sort: raceview.ChartOrder})

	resp := models.ChartResponse{
		Races:        p.Records,
		Years:        p.Years,
		SelectedYear: h.year,
	}
	if p.HasAverage {
		avg := racetime.FormatPercent(p.Average)
		resp.Average = &avg
	}
	return resp
}

// GetChart handles GET /dashboard/chart
func (h *ChartHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	races, err := h.api.ListRaces(r.Context())
	if err != nil {
		slog.Warn("failed to fetch races", "view", "chart", "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Failed to fetch races")
		return
	}

	sorted := raceview.SortBy(races, raceview.ChartOrder.Key, raceview.ChartOrder.Direction)

	h.mu.Lock()
	h.snapshot = sorted
	h.year = raceview.AllYears
	resp := h.project()
	h.mu.Unlock()

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// SelectYear handles POST /dashboard/chart/year
func (h *ChartHandler) SelectYear(w http.ResponseWriter, r *http.Request) {
	var req models.YearRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Year < 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid year")
		return
	}

	h.mu.Lock()
	h.year = req.Year
	resp := h.project()
	h.mu.Unlock()

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// ResetFilter handles POST /dashboard/chart/reset
func (h *ChartHandler) ResetFilter(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	h.year = raceview.AllYears
	resp := h.project()
	h.mu.Unlock()

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// ChartImage handles GET /dashboard/chart.png
func (h *ChartHandler) ChartImage(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	resp := h.project()
	h.mu.Unlock()

	title := chartTitle
	if resp.SelectedYear != raceview.AllYears {
		title += " (" + strconv.Itoa(resp.SelectedYear) + ")"
	}

	var buf bytes.Buffer
	if err := render.Chart(&buf, resp.Races, title); err != nil {
		slog.Error("failed to draw chart", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to draw chart")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
