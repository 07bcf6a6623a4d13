// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"testing"

	"github.com/danielhkuo/percent-back/apiclient"
	"github.com/danielhkuo/percent-back/credentials"
	"github.com/danielhkuo/percent-back/models"
	"github.com/danielhkuo/percent-back/testutil"
)

// setupAPI returns a client wired to a fresh fake API and an in-memory
// credential store
func setupAPI(t *testing.T) (*apiclient.Client, *testutil.FakeAPI, *credentials.Provider) {
	t.Helper()

	api := testutil.NewFakeAPI(t)
	creds := credentials.NewProvider(credentials.NewMemoryStore())
	return apiclient.New(api.URL, 0, creds), api, creds
}

func testRaces() []models.RaceRecord {
	return []models.RaceRecord{
		{ID: 1, RaceName: "Spring 5K", RaceDate: "2023-05-01", RaceDistance: 5, PercentBack: 10},
		{ID: 2, RaceName: "Summer 10K", RaceDate: "2024-05-01", RaceDistance: 10, PercentBack: 20},
		{ID: 3, RaceName: "Autumn Half", RaceDate: "2023-10-15", RaceDistance: 21.1, PercentBack: 12.5},
	}
}

func raceIDs(races []models.RaceRecord) []int64 {
	ids := make([]int64, len(races))
	for i, r := range races {
		ids[i] = r.ID
	}
	return ids
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
