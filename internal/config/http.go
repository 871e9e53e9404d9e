package config

import "time"

type HTTP struct {
	BaseURL        string        `env:"BASE_URL,expand" envDefault:"/"`
	Address        string        `env:"ADDRESS,expand" envDefault:":3003"`
	AllowedOrigins []string      `env:"ALLOWED_ORIGINS,expand" envDefault:"*" envSeparator:","`
	RateLimit      HTTPRateLimit `envPrefix:"RATE_LIMIT_"`
}

type HTTPRateLimit struct {
	Enabled      bool          `env:"ENABLED,expand" envDefault:"false"`
	TrustHeaders bool          `env:"TRUST_HEADERS,expand" envDefault:"false"`
	Interval     time.Duration `env:"INTERVAL,expand" envDefault:"1s"`
	MaxBurst     int           `env:"MAX_BURST,expand" envDefault:"10"`
}
