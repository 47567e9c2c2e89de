package config

import "time"

type Config struct {
	App   AppConfig   `env-prefix:"APP_"`
	API   APIConfig   `env-prefix:"API_"`
	Board BoardConfig `env-prefix:"BOARD_"`
}

type AppConfig struct {
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
	Pretty   bool   `env:"PRETTY" env-default:"false"`
}

type APIConfig struct {
	BaseURL      string `env:"BASE_URL" env-default:"http://localhost:8000"`
	ListAttempts uint   `env:"LIST_ATTEMPTS" env-default:"1"`
}

type BoardConfig struct {
	SaveDelay      time.Duration `env:"SAVE_DELAY" env-default:"500ms"`
	ViewportWidth  float64       `env:"VIEWPORT_WIDTH" env-default:"1280"`
	ViewportHeight float64       `env:"VIEWPORT_HEIGHT" env-default:"720"`
	QueueSize      int           `env:"QUEUE_SIZE" env-default:"256"`

	// ShutdownTimeout bounds the final flush of unsaved edits.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"5s"`
}
