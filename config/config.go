package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config covers both binaries; each reads the fields it needs.
type Config struct {
	Addr            string        `env:"ADDR" envDefault:":8090"`
	FeedAddr        string        `env:"FEED_ADDR" envDefault:":8091"`
	FeedURL         string        `env:"FEED_URL" envDefault:"http://localhost:8091/api/signals"`
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL" envDefault:"5m"`
	FetchTimeout    time.Duration `env:"FETCH_TIMEOUT" envDefault:"30s"`
	SectorTopN      int           `env:"SECTOR_TOP_N" envDefault:"5"`
	DBPath          string        `env:"DB_PATH" envDefault:"market_intel.db"`
	FeedLimit       int           `env:"FEED_LIMIT" envDefault:"200"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
