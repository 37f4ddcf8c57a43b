package config

import (
	"fmt"
	"net"

	"github.com/lgbarn/boardstate-go/internal/errors"
)

// DefaultAddr is the address the service listens on when none is given.
const DefaultAddr = ":8080"

// ServerConfig holds settings for the HTTP service.
type ServerConfig struct {
	// Addr is the listen address, host:port
	Addr string

	// StorePath is the Badger directory sessions persist in
	StorePath string

	// InMemory keeps sessions in process memory; StorePath is ignored
	InMemory bool

	// AllowedOrigins lists CORS origins; empty disables CORS headers
	AllowedOrigins []string
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:     DefaultAddr,
		InMemory: true,
	}
}

// Validate checks that the server configuration is valid.
func (s *ServerConfig) Validate() error {
	if _, _, err := net.SplitHostPort(s.Addr); err != nil {
		return fmt.Errorf("listen address %q: %v: %w", s.Addr, err, errors.ErrInvalidConfig)
	}
	if !s.InMemory && s.StorePath == "" {
		return fmt.Errorf("a store path is required unless sessions are kept in memory: %w", errors.ErrInvalidConfig)
	}
	return nil
}
