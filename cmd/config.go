package main

import (
	"strings"
	"time"
)

type Config struct {
	Host                string        `env:"HOST,default=localhost"`
	Port                int           `env:"PORT,default=5000"`
	BadgerFilepath      string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel            string        `env:"LOG_LEVEL,default=INFO"`
	SweepInterval       time.Duration `env:"SWEEP_INTERVAL,default=15s"`
	InactivityThreshold time.Duration `env:"INACTIVITY_THRESHOLD,default=10s"`
	AllowedOrigins      string        `env:"ALLOWED_ORIGINS,default=*"`
	ForbiddenWords      string        `env:"FORBIDDEN_WORDS"`
	CharReplacement     string        `env:"CHARACTER_REPLACEMENT,default=*"`
}

// splitList parses a comma-separated env value, dropping empty entries.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
