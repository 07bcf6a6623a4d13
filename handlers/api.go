// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"

	"github.com/danielhkuo/percent-back/models"
)

// RaceAPI is the race half of the external API, as used by the dashboard views
type RaceAPI interface {
	ListRaces(ctx context.Context) ([]models.RaceRecord, error)
	CreateRace(ctx context.Context, req models.CreateRaceRequest) error
	DeleteRace(ctx context.Context, id int64) error
}

// AuthAPI is the account half of the external API
type AuthAPI interface {
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	Register(ctx context.Context, username, password string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, password string) error
}

// API is everything the router wires. *apiclient.Client satisfies it.
type API interface {
	RaceAPI
	AuthAPI
}
