package config

import (
	"hotkeyc/internal/core/errors"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultPath is read when no -config flag is given. It may be absent.
const DefaultPath = "hotkeyc.toml"

type Config struct {
	Version       int               `toml:"version"`
	Root          string            `toml:"root"`
	Imports       Imports           `toml:"imports"`
	Keysyms       map[string]string `toml:"keysyms"`
	Output        Output            `toml:"output"`
	Diagnostics   Diagnostics       `toml:"diagnostics"`
	Observability Observability     `toml:"observability"`
}

// Imports holds glob patterns checked against every include path.
type Imports struct {
	Allow []string `toml:"allow"`
	Deny  []string `toml:"deny"`
}

type Output struct {
	Format string `toml:"format"`
	Color  *bool  `toml:"color"`
}

type Diagnostics struct {
	WarnIncludeCycles        *bool `toml:"warn_include_cycles"`
	WarnDroppedContinuations *bool `toml:"warn_dropped_continuations"`
	Dedupe                   bool  `toml:"dedupe"`
}

type Observability struct {
	EnableTracing bool   `toml:"enable_tracing"`
	OTLPEndpoint  string `toml:"otlp_endpoint"`
}

const (
	FormatText = "text"
	FormatTSV  = "tsv"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

var Formats = []string{FormatText, FormatTSV, FormatYAML, FormatJSON}

func DefaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.FromRead(path, err)
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, errors.AddContext(
			errors.Wrap(err, errors.CodeInvalidConfig, "failed to decode settings file"),
			errors.CtxPath, path)
	}

	applyDefaults(&cfg)

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.AddContext(
			errors.Wrap(errs[0], errors.CodeValidationError, "invalid settings"),
			errors.CtxPath, path)
	}
	return &cfg, nil
}

// LoadOptional behaves like Load but returns the defaults when path does
// not exist.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.IsCode(err, errors.CodeConfigNotFound) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

func applyDefaults(cfg *Config) {
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	if cfg.Output.Format == "" {
		cfg.Output.Format = FormatText
	}
	if cfg.Output.Color == nil {
		cfg.Output.Color = boolPtr(true)
	}
	if cfg.Diagnostics.WarnIncludeCycles == nil {
		cfg.Diagnostics.WarnIncludeCycles = boolPtr(true)
	}
	if cfg.Diagnostics.WarnDroppedContinuations == nil {
		cfg.Diagnostics.WarnDroppedContinuations = boolPtr(true)
	}
	if cfg.Keysyms == nil {
		cfg.Keysyms = map[string]string{}
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func (o Output) ColorEnabled() bool {
	return o.Color == nil || *o.Color
}

func (d Diagnostics) IncludeCycleWarnings() bool {
	return d.WarnIncludeCycles == nil || *d.WarnIncludeCycles
}

func (d Diagnostics) DroppedContinuationWarnings() bool {
	return d.WarnDroppedContinuations == nil || *d.WarnDroppedContinuations
}
