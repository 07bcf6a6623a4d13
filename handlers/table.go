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
	"github.com/danielhkuo/percent-back/raceview"
	"github.com/danielhkuo/percent-back/render"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// TableHandler is the sortable race table. It keeps the last fetched
// snapshot and the active sort; mu is never held across an API call.
type TableHandler struct {
	api RaceAPI

	mu       sync.Mutex
	snapshot []models.RaceRecord
	sort     raceview.SortState
}

func NewTableHandler(api RaceAPI) *TableHandler {
	return &TableHandler{
		api:      api,
		snapshot: []models.RaceRecord{},
		sort:     raceview.DefaultTableSort,
	}
}

// project must be called with mu held
func (h *TableHandler) project() models.TableResponse {
	p := raceview.Project(h.snapshot, raceview.Query{Year: raceview.AllYears, Sort: h.sort})
	return models.TableResponse{Races: p.Records, Sort: h.sort.Model()}
}

// GetTable handles GET /dashboard/table
func (h *TableHandler) GetTable(w http.ResponseWriter, r *http.Request) {
	races, err := h.api.ListRaces(r.Context())
	if err != nil {
		slog.Warn("failed to fetch races", "view", "table", "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Failed to fetch races")
		return
	}

	// Ties on later sorts keep this date-descending order
	sorted := raceview.SortBy(races, raceview.DefaultTableSort.Key, raceview.DefaultTableSort.Direction)

	h.mu.Lock()
	h.snapshot = sorted
	h.sort = raceview.DefaultTableSort
	resp := h.project()
	h.mu.Unlock()

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// SortTable handles POST /dashboard/table/sort
func (h *TableHandler) SortTable(w http.ResponseWriter, r *http.Request) {
	var req models.SortRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !raceview.ValidKey(req.Key) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Unknown sort key")
		return
	}

	h.mu.Lock()
	h.sort = h.sort.Toggle(req.Key)
	resp := h.project()
	h.mu.Unlock()

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// DeleteRace handles DELETE /dashboard/table/races/{id}
func (h *TableHandler) DeleteRace(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid race ID")
		return
	}

	// The snapshot only changes once the API confirms
	if err := h.api.DeleteRace(r.Context(), id); err != nil {
		slog.Warn("failed to delete race", "race_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Failed to delete race")
		return
	}

	h.mu.Lock()
	h.snapshot = raceview.Without(h.snapshot, id)
	resp := h.project()
	h.mu.Unlock()

	slog.Info("race deleted", "race_id", id)
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Export handles GET /dashboard/table/export?format=text|xlsx
func (h *TableHandler) Export(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	races := h.project().Races
	h.mu.Unlock()

	switch format := r.URL.Query().Get("format"); format {
	case "", "text":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(render.Table(races) + "\n"))

	case "xlsx":
		var buf bytes.Buffer
		if err := render.Workbook(&buf, races); err != nil {
			slog.Error("failed to build workbook", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to export races")
			return
		}
		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", "attachment; filename=races.xlsx")
		w.WriteHeader(http.StatusOK)
		w.Write(buf.Bytes())

	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "Unknown export format "+strconv.Quote(format))
	}
}
