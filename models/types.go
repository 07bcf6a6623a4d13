package models

// Sort directions
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Race fields, spelled the way the external API returns them
const (
	FieldID           = "ID"
	FieldRaceName     = "RaceName"
	FieldRaceDate     = "RaceDate"
	FieldRaceDistance = "RaceDistance"
	FieldPercentBack  = "PercentBack"
)

// External API types

// RaceRecord is one race as read from GET /races
type RaceRecord struct {
	ID           int64   `json:"ID"`
	RaceName     string  `json:"RaceName"`
	RaceDate     string  `json:"RaceDate"`
	RaceDistance float64 `json:"RaceDistance"`
	PercentBack  float64 `json:"PercentBack"`
}

// CreateRaceRequest is the body of POST /races/create.
// The write path uses lower-camel keys; the API reconciles the two.
type CreateRaceRequest struct {
	RaceName     string  `json:"raceName"`
	RaceDate     string  `json:"raceDate"`
	RaceDistance float64 `json:"raceDistance"`
	PercentBack  float64 `json:"percentBack"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Password string `json:"password"`
}

// Dashboard request types

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SubmitRaceRequest mirrors the race input form. Distance arrives as text
// because the form field does.
type SubmitRaceRequest struct {
	RaceName       string `json:"raceName"`
	RaceDate       string `json:"raceDate"`
	RaceDistance   string `json:"raceDistance"`
	UserRaceTime   string `json:"userRaceTime"`
	FirstPlaceTime string `json:"firstPlaceTime"`
}

type SortRequest struct {
	Key string `json:"key"`
}

// 0 or absent selects every year
type YearRequest struct {
	Year int `json:"year"`
}

// Dashboard response types

type MessageResponse struct {
	Message string `json:"message"`
}

type SubmitRaceResponse struct {
	Message     string  `json:"message"`
	PercentBack float64 `json:"percent_back"`
	Display     string  `json:"percent_back_display"`
}

type SortState struct {
	Key       string `json:"key"`
	Direction string `json:"direction"`
}

type TableResponse struct {
	Races []RaceRecord `json:"races"`
	Sort  SortState    `json:"sort"`
}

type ChartResponse struct {
	Races        []RaceRecord `json:"races"`
	Years        []int        `json:"years"`
	SelectedYear int          `json:"selected_year,omitempty"`
	Average      *string      `json:"average_percent_back,omitempty"`
}

type SessionResponse struct {
	LoggedIn  bool    `json:"logged_in"`
	ExpiresAt *string `json:"expires_at,omitempty"`
	ExpiresIn *string `json:"expires_in,omitempty"`
	Expired   bool    `json:"expired,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
