package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestNewConfigAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
db_username: portal
db_password: secret
db_host: localhost
db_name: portal
jwt_key: test-key
`)

	cfg, err := NewConfig(path)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}

	if cfg.Port != ":8080" {
		t.Fatalf("expected default port, got %q", cfg.Port)
	}
	if cfg.HalfDayCutoff != "10:30" {
		t.Fatalf("expected default half-day cutoff, got %q", cfg.HalfDayCutoff)
	}
	if cfg.CycleBoundary != "fourth" {
		t.Fatalf("expected default cycle boundary, got %q", cfg.CycleBoundary)
	}
	if cfg.WeeklyOffRule != "cycle" {
		t.Fatalf("expected default weekly-off rule, got %q", cfg.WeeklyOffRule)
	}
}

func TestNewConfigRejectsMissingDatabase(t *testing.T) {
	path := writeConfig(t, `
db_username: portal
jwt_key: test-key
`)

	if _, err := NewConfig(path); err == nil {
		t.Fatalf("expected error for missing database configuration")
	}
}

func TestNewConfigRejectsMissingJWTKey(t *testing.T) {
	path := writeConfig(t, `
db_username: portal
db_password: secret
db_host: localhost
db_name: portal
`)

	if _, err := NewConfig(path); err == nil {
		t.Fatalf("expected error for missing jwt key")
	}
}

func TestNewConfigKeepsExplicitValues(t *testing.T) {
	path := writeConfig(t, `
port: ":9000"
db_username: portal
db_password: secret
db_host: localhost
db_name: portal
jwt_key: test-key
cycle_boundary: fifth
half_day_cutoff: "09:45"
`)

	cfg, err := NewConfig(path)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}

	if cfg.Port != ":9000" {
		t.Fatalf("expected explicit port kept, got %q", cfg.Port)
	}
	if cfg.CycleBoundary != "fifth" {
		t.Fatalf("expected explicit cycle boundary kept, got %q", cfg.CycleBoundary)
	}
	if cfg.HalfDayCutoff != "09:45" {
		t.Fatalf("expected explicit cutoff kept, got %q", cfg.HalfDayCutoff)
	}
}
