package config

import (
	"fmt"
	"hotkeyc/internal/engine/keysym"
	"hotkeyc/internal/shared/util"
	"slices"
	"strings"

	"github.com/gobwas/glob"
)

// Validate runs every check and collects the failures.
func Validate(cfg *Config) []error {
	var errs []error
	for _, check := range []func(*Config) error{
		validateVersion,
		validateOutput,
		validateImports,
		validateKeysyms,
	} {
		if err := check(cfg); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func validateVersion(cfg *Config) error {
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported config version %d; the only supported version is 1", cfg.Version)
	}
	return nil
}

func validateOutput(cfg *Config) error {
	format := strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	if !slices.Contains(Formats, format) {
		return fmt.Errorf("output.format must be one of: %s, got %q", strings.Join(Formats, ", "), cfg.Output.Format)
	}
	return nil
}

func validateImports(cfg *Config) error {
	fields := []struct {
		name     string
		patterns []string
	}{
		{"imports.allow", cfg.Imports.Allow},
		{"imports.deny", cfg.Imports.Deny},
	}
	for _, f := range fields {
		for i, pattern := range f.patterns {
			if strings.TrimSpace(pattern) == "" {
				return fmt.Errorf("%s[%d] must not be empty", f.name, i)
			}
			if _, err := glob.Compile(util.NormalizePatternPath(util.ExpandHome(pattern)), '/'); err != nil {
				return fmt.Errorf("%s[%d] is not a valid glob %q: %w", f.name, i, pattern, err)
			}
		}
	}
	return nil
}

func validateKeysyms(cfg *Config) error {
	for _, alias := range util.SortedStringKeys(cfg.Keysyms) {
		if strings.TrimSpace(alias) == "" {
			return fmt.Errorf("keysyms: alias name must not be empty")
		}
		if _, ok := keysym.LookupModifier(alias); ok {
			return fmt.Errorf("keysyms.%s shadows a modifier name", alias)
		}
		if keysym.Known(alias) {
			return fmt.Errorf("keysyms.%s shadows a builtin key", alias)
		}
	}
	if _, err := keysym.WithAliases(cfg.Keysyms); err != nil {
		return fmt.Errorf("keysyms: %w", err)
	}
	return nil
}
