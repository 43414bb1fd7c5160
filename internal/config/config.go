package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Akhirah Financial Compass"`
	}

	Report struct {
		OutputDir string `envconfig:"REPORT_OUTPUT_DIR" default:"./exports"`
	}

	Analytics struct {
		WebhookURL string        `envconfig:"ANALYTICS_WEBHOOK_URL" default:""`
		Timeout    time.Duration `envconfig:"ANALYTICS_TIMEOUT" default:"2s"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
