package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads configuration from the environment, optionally loading one of
// the given .env files first. Missing .env files are not an error; the
// process environment always wins.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()

	loaded := false
	for _, path := range envFilePath {
		if err := godotenv.Load(path); err != nil {
			logger.Debug("environment file not found", "path", path, "error", err)
			continue
		}
		logger.Info("environment loaded from file", "path", path)
		loaded = true
		break
	}
	if !loaded {
		if err := godotenv.Load(); err != nil {
			logger.Warn("no .env file found, using system environment variables")
		}
	}

	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	logger.Info("app config loaded",
		"env", cfg.Env,
		"server_port", cfg.Server.Port,
		"db", maskValue(cfg.DB.Url),
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
		"txn_cancel_window", cfg.Transaction.CancelWindow,
	)
	return &cfg, nil
}

func maskValue(v string) string {
	if len(v) <= 6 {
		return "****"
	}
	return v[:2] + "****" + v[len(v)-4:]
}
