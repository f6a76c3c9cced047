package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. BLOCKPROXY_GATEWAY_PORT.
const EnvPrefix = "BLOCKPROXY_"

// ConfigPathEnv names the environment variable consulted by ResolveConfigPath.
const ConfigPathEnv = "BLOCKPROXY_CONFIG"

// ResolveConfigPath returns the flag value if set, else $BLOCKPROXY_CONFIG.
func ResolveConfigPath(flagValue string) string {
	if p := strings.TrimSpace(flagValue); p != "" {
		return p
	}
	return strings.TrimSpace(os.Getenv(ConfigPathEnv))
}

// Load builds the configuration from defaults, an optional YAML file at path
// and environment overrides, then validates it.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
