package config

import "time"

type Store struct {
	BaseURL    string        `env:"BASE_URL,expand" envDefault:"https://www.notion.so"`
	Timeout    time.Duration `env:"TIMEOUT,expand" envDefault:"1m"`
	MaxRetries int           `env:"MAX_RETRIES,expand" envDefault:"0"`
	RateLimit  RateLimit     `envPrefix:"RATE_LIMIT_"`
}

type RateLimit struct {
	Interval time.Duration `env:"INTERVAL,expand" envDefault:"0"`
	Burst    int           `env:"BURST,expand" envDefault:"1"`
}
