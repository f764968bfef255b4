package main

import (
	"os"
	"strconv"
	"time"

	"github.com/appnet-org/hellotime/internal/greeter"
	"github.com/appnet-org/hellotime/pkg/logging"
	"github.com/appnet-org/hellotime/pkg/rpc"
	"go.uber.org/zap"
)

// Config holds the server configuration
type Config struct {
	BindAddr     string
	MaxHandlers  int
	GracePeriod  time.Duration
	Location     string
	Serializer   string
	MetricsAddr  string
	VerboseTrace bool
}

// DefaultConfig returns the default server configuration
func DefaultConfig() *Config {
	return &Config{
		BindAddr:    "[::]:50051",
		MaxHandlers: rpc.DefaultMaxConcurrentHandlers,
		GracePeriod: 5 * time.Second,
		Location:    greeter.DefaultLocation,
		Serializer:  "proto",
	}
}

// applyEnv overrides config fields from environment variables. Unparseable
// values are logged and ignored.
func (c *Config) applyEnv(getenv func(string) string) {
	if addr := getenv("BIND_ADDR"); addr != "" {
		c.BindAddr = addr
	}
	if v := getenv("MAX_HANDLERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.MaxHandlers = n
		} else {
			logging.Warn("Ignoring invalid MAX_HANDLERS", zap.String("value", v))
		}
	}
	if v := getenv("GRACE_PERIOD"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			c.GracePeriod = d
		} else {
			logging.Warn("Ignoring invalid GRACE_PERIOD", zap.String("value", v))
		}
	}
	if loc := getenv("SERVER_LOCATION"); loc != "" {
		c.Location = loc
	}
	if s := getenv("SERIALIZER"); s != "" {
		c.Serializer = s
	}
	c.MetricsAddr = getenv("METRICS_ADDR")
	c.VerboseTrace = getenv("VERBOSE_TRACE") == "true"
}

// getLoggingConfig reads logging configuration from environment variables with defaults
func getLoggingConfig(getenv func(string) string) *logging.Config {
	cfg := logging.DefaultConfig()
	if level := getenv("LOG_LEVEL"); level != "" {
		cfg.Level = level
	}
	if format := getenv("LOG_FORMAT"); format != "" {
		cfg.Format = format
	}
	return cfg
}

func loadConfig() *Config {
	cfg := DefaultConfig()
	cfg.applyEnv(os.Getenv)
	return cfg
}
