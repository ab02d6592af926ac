package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config carries the environment settings a consumer needs to wire the
// console together.
type Config struct {
	BackendURL      string        `env:"BACKEND_URL,required,notEmpty"`
	Origin          string        `env:"ORIGIN"`
	ToastTTL        time.Duration `env:"TOAST_TTL"         envDefault:"3500ms"`
	RefreshCronSpec string        `env:"REFRESH_CRON_SPEC"`
}

func LoadConfig() Config {
	var cfg Config
	env.Must(cfg, env.Parse(&cfg))

	// Links are built against the backend itself unless a public origin
	// is configured in front of it.
	if cfg.Origin == "" {
		cfg.Origin = cfg.BackendURL
	}

	return cfg
}
