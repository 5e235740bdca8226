package engineconfig

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables that override the config file.
const (
	EnvLogLevel      = "DEMO_LOG_LEVEL"
	EnvRemoteAddr    = "DEMO_REMOTE_ADDR"
	EnvRemoteEnabled = "DEMO_REMOTE_ENABLED"
	EnvSeed          = "DEMO_SEED"
)

// ApplyEnv overrides cfg from the DEMO_* environment variables. Unset variables are skipped.
func ApplyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.Log.Level = v
	}
	if v, ok := os.LookupEnv(EnvRemoteAddr); ok {
		cfg.Remote.Addr = v
	}
	if v, ok := os.LookupEnv(EnvRemoteEnabled); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRemoteEnabled, err)
		}
		cfg.Remote.Enabled = b
	}
	if v, ok := os.LookupEnv(EnvSeed); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Scene.Seed = n
	}
	return nil
}
