package config

import (
	"os"
	"time"
)

// Server captures process-level configuration.
type Server struct {
	Addr            string
	DatabaseURL     string
	ShutdownTimeout time.Duration
	AuditBuffer     int
}

// FromEnv builds a Server config from environment variables so main stays lean.
// An empty DATABASE_URL selects the in-memory stores, which is the intended
// mode for local development and tests.
func FromEnv() Server {
	addr := os.Getenv("MUSTER_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	shutdown := 10 * time.Second
	if raw := os.Getenv("MUSTER_SHUTDOWN_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			shutdown = d
		}
	}

	return Server{
		Addr:            addr,
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		ShutdownTimeout: shutdown,
		AuditBuffer:     256,
	}
}
