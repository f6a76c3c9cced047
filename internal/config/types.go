package config

import "time"

// GatewayConfig contains admin gateway listener settings.
type GatewayConfig struct {
	Host string `yaml:"host" env:"HOST"`
	Port int    `yaml:"port" env:"PORT"`

	// AssetDir is the dashboard bundle root. Empty means "dist" next to the executable.
	AssetDir string `yaml:"asset_dir" env:"ASSET_DIR"`

	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" env:"READ_HEADER_TIMEOUT"`
	ReadTimeout       time.Duration `yaml:"read_timeout"        env:"READ_TIMEOUT"`
	WriteTimeout      time.Duration `yaml:"write_timeout"       env:"WRITE_TIMEOUT"`
	IdleTimeout       time.Duration `yaml:"idle_timeout"        env:"IDLE_TIMEOUT"`
}

// OpsConfig contains the operational listener settings (metrics, health, swagger).
type OpsConfig struct {
	Enabled bool   `yaml:"enabled" env:"ENABLED"`
	Host    string `yaml:"host"    env:"HOST"`
	Port    int    `yaml:"port"    env:"PORT"`
	Swagger bool   `yaml:"swagger" env:"SWAGGER"`
}

// DatabaseConfig controls persistence of the blocking flag.
type DatabaseConfig struct {
	// Path is the SQLite file. Empty keeps the flag in memory only.
	Path string `yaml:"path" env:"PATH"`
}

// BlockingConfig holds the blocking flag used when nothing is persisted yet.
type BlockingConfig struct {
	InitialState string `yaml:"initial_state" env:"INITIAL_STATE"`
}

// StatisticsConfig controls the in-memory statistics collector.
type StatisticsConfig struct {
	TopN       int `yaml:"top_n"       env:"TOP_N"`
	MaxTracked int `yaml:"max_tracked" env:"MAX_TRACKED"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level            string            `yaml:"level"             env:"LEVEL"`
	Structured       bool              `yaml:"structured"        env:"STRUCTURED"`
	StructuredFormat string            `yaml:"structured_format" env:"STRUCTURED_FORMAT"`
	IncludePID       bool              `yaml:"include_pid"       env:"INCLUDE_PID"`
	ExtraFields      map[string]string `yaml:"extra_fields"      env:"EXTRA_FIELDS"`
}

// Config is the root configuration structure.
type Config struct {
	Gateway    GatewayConfig    `yaml:"gateway"    envPrefix:"GATEWAY_"`
	Ops        OpsConfig        `yaml:"ops"        envPrefix:"OPS_"`
	Database   DatabaseConfig   `yaml:"database"   envPrefix:"DATABASE_"`
	Blocking   BlockingConfig   `yaml:"blocking"   envPrefix:"BLOCKING_"`
	Statistics StatisticsConfig `yaml:"statistics" envPrefix:"STATISTICS_"`
	Logging    LoggingConfig    `yaml:"logging"    envPrefix:"LOGGING_"`
}
