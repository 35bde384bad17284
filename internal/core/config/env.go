package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// ApplyEnvOverrides applies environment variable overrides to the configuration.
// Pattern: HOTKEYC_[SECTION]_[KEY] (e.g., HOTKEYC_OUTPUT_FORMAT).
func ApplyEnvOverrides(cfg *Config) {
	setEnvString(&cfg.Root, "HOTKEYC_ROOT")

	// Output
	setEnvString(&cfg.Output.Format, "HOTKEYC_OUTPUT_FORMAT")
	setEnvBoolPtr(&cfg.Output.Color, "HOTKEYC_OUTPUT_COLOR")

	// Observability
	setEnvString(&cfg.Observability.OTLPEndpoint, "HOTKEYC_OBSERVABILITY_OTLP_ENDPOINT")
	setEnvBool(&cfg.Observability.EnableTracing, "HOTKEYC_OBSERVABILITY_ENABLE_TRACING")
}

func setEnvString(target *string, key string) {
	if val, ok := os.LookupEnv(key); ok {
		slog.Debug("applying env override", "key", key, "value", val)
		*target = val
	}
}

func setEnvBool(target *bool, key string) {
	if val, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(strings.ToLower(val))
		if err == nil {
			slog.Debug("applying env override", "key", key, "value", val)
			*target = b
		}
	}
}

func setEnvBoolPtr(target **bool, key string) {
	if val, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(strings.ToLower(val))
		if err == nil {
			slog.Debug("applying env override", "key", key, "value", val)
			*target = &b
		}
	}
}
