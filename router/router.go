// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/percent-back/cliparse"
	"github.com/danielhkuo/percent-back/credentials"
	"github.com/danielhkuo/percent-back/handlers"
	"github.com/danielhkuo/percent-back/middleware"
	"github.com/danielhkuo/percent-back/racetime"
)

func NewRouter(api handlers.API, creds *credentials.Provider, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(api, creds)
	raceHandler := handlers.NewRaceHandler(api, racetime.NewValidator(cfg.StrictTimes))
	tableHandler := handlers.NewTableHandler(api)
	chartHandler := handlers.NewChartHandler(api)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Account pass-through
	mux.HandleFunc("POST /login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("POST /register", middleware.WithLogging(authHandler.Register))
	mux.HandleFunc("POST /forgot-password", middleware.WithLogging(authHandler.ForgotPassword))
	mux.HandleFunc("POST /reset-password/{token}", middleware.WithLogging(authHandler.ResetPassword))
	mux.HandleFunc("POST /logout", middleware.WithLogging(authHandler.Logout))
	mux.HandleFunc("GET /session", middleware.WithLogging(authHandler.Session))

	// Race input
	mux.HandleFunc("POST /dashboard/races", middleware.WithLogging(raceHandler.SubmitRace))

	// Race table
	mux.HandleFunc("GET /dashboard/table", middleware.WithLogging(tableHandler.GetTable))
	mux.HandleFunc("POST /dashboard/table/sort", middleware.WithLogging(tableHandler.SortTable))
	mux.HandleFunc("DELETE /dashboard/table/races/{id}", middleware.WithLogging(tableHandler.DeleteRace))
	mux.HandleFunc("GET /dashboard/table/export", middleware.WithLogging(tableHandler.Export))

	// Race chart
	mux.HandleFunc("GET /dashboard/chart", middleware.WithLogging(chartHandler.GetChart))
	mux.HandleFunc("POST /dashboard/chart/year", middleware.WithLogging(chartHandler.SelectYear))
	mux.HandleFunc("POST /dashboard/chart/reset", middleware.WithLogging(chartHandler.ResetFilter))
	mux.HandleFunc("GET /dashboard/chart.png", middleware.WithLogging(chartHandler.ChartImage))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("percent-back dashboard v1"))
	})

	return mux
}
