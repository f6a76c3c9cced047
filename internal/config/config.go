// Package config provides configuration types, loading and validation for
// the blockproxy admin gateway.
//
// Configuration is read from an optional YAML file layered over Defaults,
// then overridden by BLOCKPROXY_* environment variables. Validate normalizes
// the result before use.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/jroosing/blockproxy/internal/blocking"
)

// Defaults returns the configuration used when no file is given.
func Defaults() *Config {
	return &Config{
		Gateway: GatewayConfig{
			Host:              "127.0.0.1",
			Port:              8200,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		Ops: OpsConfig{
			Enabled: false,
			Host:    "127.0.0.1",
			Port:    9200,
			Swagger: true,
		},
		Blocking: BlockingConfig{
			InitialState: blocking.Enabled.String(),
		},
		Logging: LoggingConfig{
			Level:            "INFO",
			StructuredFormat: "json",
		},
	}
}

// Validate validates and normalizes the configuration.
func (cfg *Config) Validate() error {
	// Gateway
	if cfg.Gateway.Host == "" {
		cfg.Gateway.Host = "127.0.0.1"
	}
	if cfg.Gateway.Port <= 0 || cfg.Gateway.Port > 65535 {
		return errors.New("gateway.port must be 1..65535")
	}
	if cfg.Gateway.ReadHeaderTimeout < 0 || cfg.Gateway.ReadTimeout < 0 ||
		cfg.Gateway.WriteTimeout < 0 || cfg.Gateway.IdleTimeout < 0 {
		return errors.New("gateway timeouts must not be negative")
	}

	// Operational listener
	if cfg.Ops.Host == "" {
		cfg.Ops.Host = "127.0.0.1"
	}
	if cfg.Ops.Enabled {
		if cfg.Ops.Port <= 0 || cfg.Ops.Port > 65535 {
			return errors.New("ops.port must be 1..65535")
		}
		if cfg.Ops.Port == cfg.Gateway.Port && cfg.Ops.Host == cfg.Gateway.Host {
			return errors.New("ops listener must not share the gateway address")
		}
	}

	// Blocking
	if strings.TrimSpace(cfg.Blocking.InitialState) == "" {
		cfg.Blocking.InitialState = blocking.Enabled.String()
	}
	if _, err := blocking.ParseState(cfg.Blocking.InitialState); err != nil {
		return errors.New(`blocking.initial_state must be "Enabled" or "Disabled"`)
	}

	// Statistics
	if cfg.Statistics.TopN < 0 || cfg.Statistics.MaxTracked < 0 {
		return errors.New("statistics limits must not be negative")
	}

	// Normalize logging
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)
	if cfg.Logging.StructuredFormat == "" {
		cfg.Logging.StructuredFormat = "json"
	}
	if cfg.Logging.ExtraFields == nil {
		cfg.Logging.ExtraFields = map[string]string{}
	}

	return nil
}

// InitialBlocking returns the validated initial blocking state.
func (cfg *Config) InitialBlocking() blocking.State {
	s, err := blocking.ParseState(cfg.Blocking.InitialState)
	if err != nil {
		return blocking.Enabled
	}
	return s
}
