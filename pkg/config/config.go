// Package config loads application configuration from the environment using
// envconfig struct tags, with optional .env file support via godotenv.
package config

import "time"

// Server holds HTTP server settings.
type Server struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port int    `envconfig:"PORT" default:"3000"`
}

// DB holds database connection settings.
type DB struct {
	Url string `envconfig:"URL"`
}

// Log holds logger settings.
type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	Prefix     string `envconfig:"PREFIX" default:"account"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"15:04:05"`
}

// RateLimit holds request rate limiting settings for the HTTP boundary.
type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

// Transaction holds policy values for the transaction service.
type Transaction struct {
	// CancelWindow is how long after the original transaction a cancellation
	// is still accepted. Defaults to one year.
	CancelWindow time.Duration `envconfig:"CANCEL_WINDOW" default:"8760h"`
}

// App is the root configuration.
type App struct {
	Env         string      `envconfig:"APP_ENV" default:"development"`
	Server      Server      `envconfig:"SERVER"`
	DB          DB          `envconfig:"DATABASE"`
	Log         Log         `envconfig:"LOG"`
	RateLimit   RateLimit   `envconfig:"RATE_LIMIT"`
	Transaction Transaction `envconfig:"TXN"`
}
