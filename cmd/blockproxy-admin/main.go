package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/blockproxy/internal/config"
	"github.com/jroosing/blockproxy/internal/logging"
	"github.com/jroosing/blockproxy/internal/server"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to YAML configuration file (or set BLOCKPROXY_CONFIG)")
		host       = flag.String("host", "", "Override gateway bind host")
		port       = flag.Int("port", 0, "Override gateway bind port")
		assets     = flag.String("assets", "", "Override dashboard asset directory")
		database   = flag.String("db", "", "Persist the blocking state in this SQLite file")
		ops        = flag.Bool("ops", false, "Enable the operational listener (metrics, status, swagger)")
		jsonLogs   = flag.Bool("json-logs", false, "Enable JSON structured logging")
		debug      = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	cfg, err := config.Load(config.ResolveConfigPath(*configPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *host != "" {
		cfg.Gateway.Host = *host
	}
	if *port != 0 {
		cfg.Gateway.Port = *port
	}
	if *assets != "" {
		cfg.Gateway.AssetDir = *assets
	}
	if *database != "" {
		cfg.Database.Path = *database
	}
	if *ops {
		cfg.Ops.Enabled = true
	}
	if *jsonLogs {
		cfg.Logging.Structured = true
		cfg.Logging.StructuredFormat = "json"
	}
	if *debug {
		cfg.Logging.Level = "DEBUG"
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.Configure(logging.Config{
		Level:            cfg.Logging.Level,
		Structured:       cfg.Logging.Structured,
		StructuredFormat: cfg.Logging.StructuredFormat,
		IncludePID:       cfg.Logging.IncludePID,
		ExtraFields:      cfg.Logging.ExtraFields,
	})
	logger.Info("blockproxy admin gateway starting",
		"host", cfg.Gateway.Host,
		"port", cfg.Gateway.Port,
		"ops", cfg.Ops.Enabled,
	)

	if !*debug {
		gin.SetMode(gin.ReleaseMode)
	}

	runner := server.NewRunner(logger)
	if err := runner.Run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "server exited with error: %v\n", err)
		os.Exit(1)
	}
}
