package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port         int
	APIBaseURL   string
	DatabaseURL  string
	DatabaseType string
	APITimeout   time.Duration
	StrictTimes  bool
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("percent-back", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.APIBaseURL, "api", "", "External race API base URL")
	fs.DurationVar(&cfg.APITimeout, "timeout", 0, "External API timeout (0 for none)")

	// Local credential store
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	fs.BoolVar(&cfg.StrictTimes, "strict-times", false, "Reject unparseable or zero race times individually")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = os.Getenv("API_BASE_URL")
	}
	if cfg.APIBaseURL == "" {
		return Config{}, errors.New("API base URL required (use -api or API_BASE_URL env)")
	}

	if cfg.APITimeout == 0 {
		if s := os.Getenv("API_TIMEOUT"); s != "" {
			d, err := time.ParseDuration(s)
			if err != nil {
				return Config{}, errors.New("invalid API_TIMEOUT env variable")
			}
			cfg.APITimeout = d
		}
	}
	if cfg.APITimeout < 0 {
		return Config{}, errors.New("API timeout must not be negative")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = "percentback.db"
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}

	if !cfg.StrictTimes {
		if s := os.Getenv("STRICT_TIMES"); s != "" {
			strict, err := strconv.ParseBool(s)
			if err != nil {
				return Config{}, errors.New("invalid STRICT_TIMES env variable")
			}
			cfg.StrictTimes = strict
		}
	}

	return cfg, nil
}
