// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/danielhkuo/percent-back/models"
	"github.com/danielhkuo/percent-back/testutil"
)

func serve(t *testing.T, mux *http.ServeMux, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest(method, path, body, nil))
	return w
}

func ids(races []models.RaceRecord) []int64 {
	out := make([]int64, len(races))
	for i, r := range races {
		out[i] = r.ID
	}
	return out
}

// TestDashboardWorkflow drives login, table, chart and logout through the
// router against the fake API
func TestDashboardWorkflow(t *testing.T) {
	mux, api, creds := setupRouter(t)
	api.SetRaces(
		models.RaceRecord{ID: 1, RaceName: "Spring 5K", RaceDate: "2023-05-01", RaceDistance: 5, PercentBack: 10},
		models.RaceRecord{ID: 2, RaceName: "Summer 10K", RaceDate: "2024-05-01", RaceDistance: 10, PercentBack: 20},
	)

	// Step 1: log in
	w := serve(t, mux, "POST", "/login", models.LoginRequest{Username: "runner@example.com", Password: "pw"})
	testutil.AssertStatus(t, w, http.StatusOK)

	token, err := creds.Token(context.Background())
	if err != nil || token != testutil.TestToken {
		t.Fatalf("Expected token persisted, got %q (%v)", token, err)
	}

	// Step 2: table defaults to date descending
	w = serve(t, mux, "GET", "/dashboard/table", nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	var table models.TableResponse
	testutil.AssertJSON(t, w, &table)
	if got := ids(table.Races); len(got) != 2 || got[0] != 2 || got[1] != 1 {
		t.Errorf("Expected table [2 1], got %v", got)
	}

	// Data calls carry the stored token
	for _, c := range api.CallsTo("GET /races") {
		if c.Token != testutil.TestToken {
			t.Errorf("Expected bearer token on %s, got %q", c.Path, c.Authorization)
		}
	}

	// Step 3: chart filtered to 2023
	w = serve(t, mux, "GET", "/dashboard/chart", nil)
	testutil.AssertStatus(t, w, http.StatusOK)

	w = serve(t, mux, "POST", "/dashboard/chart/year", models.YearRequest{Year: 2023})
	testutil.AssertStatus(t, w, http.StatusOK)
	var chart models.ChartResponse
	testutil.AssertJSON(t, w, &chart)
	if got := ids(chart.Races); len(got) != 1 || got[0] != 1 {
		t.Errorf("Expected chart [1], got %v", got)
	}
	if chart.Average == nil || *chart.Average != "10.00" {
		t.Errorf("Expected average 10.00, got %v", chart.Average)
	}

	// Step 4: add a race, then reload the table
	w = serve(t, mux, "POST", "/dashboard/races", models.SubmitRaceRequest{
		RaceName:       "Autumn Half",
		RaceDate:       "2024-10-15",
		RaceDistance:   "21.1",
		UserRaceTime:   "1:39:00",
		FirstPlaceTime: "1:30:00",
	})
	testutil.AssertStatus(t, w, http.StatusCreated)
	var created models.SubmitRaceResponse
	testutil.AssertJSON(t, w, &created)
	if created.Display != "10.00" {
		t.Errorf("Expected 10.00 percent back, got %s", created.Display)
	}

	w = serve(t, mux, "GET", "/dashboard/table", nil)
	testutil.AssertJSON(t, w, &table)
	if got := ids(table.Races); len(got) != 3 || got[0] != 3 {
		t.Errorf("Expected new race first, got %v", got)
	}

	// Step 5: delete it again
	w = serve(t, mux, "DELETE", "/dashboard/table/races/3", nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertJSON(t, w, &table)
	if len(table.Races) != 2 {
		t.Errorf("Expected 2 races after delete, got %d", len(table.Races))
	}

	// Step 6: log out
	w = serve(t, mux, "POST", "/logout", nil)
	testutil.AssertStatus(t, w, http.StatusOK)

	w = serve(t, mux, "GET", "/session", nil)
	var session models.SessionResponse
	testutil.AssertJSON(t, w, &session)
	if session.LoggedIn {
		t.Error("Expected logged out session")
	}
}

// TestConcurrentViewActions runs sorts and filters while the views reload.
// Run with -race to check the view state locking.
func TestConcurrentViewActions(t *testing.T) {
	mux, api, _ := setupRouter(t)
	api.SetRaces(
		models.RaceRecord{ID: 1, RaceName: "A", RaceDate: "2023-05-01", PercentBack: 10},
		models.RaceRecord{ID: 2, RaceName: "B", RaceDate: "2024-05-01", PercentBack: 20},
		models.RaceRecord{ID: 3, RaceName: "C", RaceDate: "2024-07-01", PercentBack: 30},
	)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(4)
		go func() {
			defer wg.Done()
			serve(t, mux, "GET", "/dashboard/table", nil)
		}()
		go func() {
			defer wg.Done()
			serve(t, mux, "POST", "/dashboard/table/sort", models.SortRequest{Key: models.FieldPercentBack})
		}()
		go func() {
			defer wg.Done()
			serve(t, mux, "GET", "/dashboard/chart", nil)
		}()
		go func(year int) {
			defer wg.Done()
			serve(t, mux, "POST", "/dashboard/chart/year", models.YearRequest{Year: year})
		}(2023 + i%2)
	}
	wg.Wait()

	// Whatever order the requests landed in, the table holds every race
	w := serve(t, mux, "POST", "/dashboard/table/sort", models.SortRequest{Key: models.FieldID})
	testutil.AssertStatus(t, w, http.StatusOK)
	var table models.TableResponse
	testutil.AssertJSON(t, w, &table)
	if len(table.Races) != 3 {
		t.Errorf("Expected 3 races, got %d", len(table.Races))
	}
}
