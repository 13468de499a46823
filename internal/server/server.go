package server

import (
	"net"
	"net/http"
	"time"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port the server listens on.
	Port string `mapstructure:"port" default:"3000"`
	// ReadTimeout bounds reading a whole request.
	ReadTimeout time.Duration `mapstructure:"read_timeout" default:"10s"`
	// WriteTimeout bounds writing a response.
	WriteTimeout time.Duration `mapstructure:"write_timeout" default:"10s"`
	// ShutdownTimeout bounds graceful shutdown on SIGINT/SIGTERM.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" default:"5s"`
}

// Addr is the listen address for Port on all interfaces.
func (c Config) Addr() string {
	return net.JoinHostPort("", c.Port)
}

func New(cfg Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}
}
