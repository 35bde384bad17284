package config

import (
	"strings"
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.Format = "xml"

	errs := Validate(cfg)
	if len(errs) != 1 || !strings.Contains(errs[0].Error(), "output.format") {
		t.Fatalf("Expected output.format error, got %v", errs)
	}
}

func TestValidateImports(t *testing.T) {
	cases := []struct {
		name    string
		allow   []string
		deny    []string
		wantErr string
	}{
		{name: "Valid", allow: []string{"~/.config/swhkd/**"}, deny: []string{"**/*.bak"}},
		{name: "Empty", allow: []string{" "}, wantErr: "imports.allow[0] must not be empty"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Imports = Imports{Allow: tc.allow, Deny: tc.deny}
			err := validateImports(cfg)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestValidateKeysyms(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Keysyms = map[string]string{"hyper_space": "space"}
	if err := validateKeysyms(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg.Keysyms = map[string]string{"launch": "no_such_key"}
	if err := validateKeysyms(cfg); err == nil {
		t.Fatal("expected error for unknown alias target")
	}

	cfg.Keysyms = map[string]string{"A": "b"}
	if err := validateKeysyms(cfg); err == nil || !strings.Contains(err.Error(), "shadows a builtin key") {
		t.Fatalf("expected builtin shadowing error, got %v", err)
	}

	cfg.Keysyms = map[string]string{"ctrl": "space"}
	if err := validateKeysyms(cfg); err == nil || !strings.Contains(err.Error(), "shadows a modifier") {
		t.Fatalf("expected modifier shadowing error, got %v", err)
	}
}

func TestValidateImportsReportsAllowBeforeDeny(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Imports = Imports{Allow: []string{""}, Deny: []string{""}}

	for i := 0; i < 20; i++ {
		err := validateImports(cfg)
		if err == nil || !strings.HasPrefix(err.Error(), "imports.allow[0]") {
			t.Fatalf("expected imports.allow error first, got %v", err)
		}
	}
}

func TestValidateVersion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Version = 3
	if err := validateVersion(cfg); err == nil {
		t.Fatal("expected unsupported version error")
	}
}
