package internal

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	pkgconfig "github.com/starford/lifetrack/pkg/config"
)

func TestAuthConfig_DisabledMode(t *testing.T) {
	cfg := AuthConfig{Mode: "disabled", Token: ""}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("disabled mode should pass: %v", err)
	}
	if cfg.AuthEnabled() {
		t.Error("disabled mode should not be enabled")
	}
}

func TestAuthConfig_EmptyModeDefaultsDisabled(t *testing.T) {
	cfg := AuthConfig{Mode: "", Token: ""}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty mode should default to disabled: %v", err)
	}
	if cfg.Mode != AuthModeDisabled {
		t.Errorf("mode = %q, want %q", cfg.Mode, AuthModeDisabled)
	}
}

func TestAuthConfig_TokenModeValid(t *testing.T) {
	cfg := AuthConfig{Mode: "token", Token: "mysecret"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("token mode with token should pass: %v", err)
	}
	if !cfg.AuthEnabled() {
		t.Error("token mode should be enabled")
	}
}

func TestAuthConfig_TokenModeEmptyToken(t *testing.T) {
	cfg := AuthConfig{Mode: "token", Token: ""}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("token mode with empty token should fail")
	}
	if !strings.Contains(err.Error(), "token is empty") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAuthConfig_InvalidMode(t *testing.T) {
	cfg := AuthConfig{Mode: "magic", Token: "x"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("invalid mode should fail validation")
	}
}

func TestFullConfig_AuthValidationCalled(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Auth.Mode = "token"
	cfg.Auth.Token = ""
	err := cfg.Validate()
	if err == nil {
		t.Fatal("full config validate should catch auth error")
	}
}

func TestStorageConfig_Backends(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StorageConfig
		wantErr bool
	}{
		{"empty defaults to memory", StorageConfig{}, false},
		{"memory ignores path", StorageConfig{Backend: BackendMemory}, false},
		{"sqlite with path", StorageConfig{Backend: BackendSQLite, SQLite: SQLiteConfig{Path: "x.db"}}, false},
		{"sqlite without path", StorageConfig{Backend: BackendSQLite}, true},
		{"unknown backend", StorageConfig{Backend: "postgres"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	cfg := StorageConfig{}
	_ = cfg.Validate()
	if cfg.Backend != BackendMemory {
		t.Errorf("backend = %q, want %q", cfg.Backend, BackendMemory)
	}
}

func TestApplicationConfig_Timezone(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.App.Timezone = "Europe/Berlin"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid zone rejected: %v", err)
	}
	if got := cfg.App.Location().String(); got != "Europe/Berlin" {
		t.Errorf("Location() = %q", got)
	}

	cfg.App.Timezone = "Mars/Olympus"
	if err := cfg.Validate(); err == nil {
		t.Fatal("unknown zone should fail validation")
	}
	if cfg.App.Location() != time.UTC {
		t.Error("unknown zone should fall back to UTC")
	}
}

func TestEventsConfig_NegativeThrottle(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Events.DashboardThrottle = -time.Second
	if err := cfg.Validate(); err == nil {
		t.Fatal("negative throttle should fail validation")
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv("LIFETRACK_TEST_TOKEN", "s3cret")
	data := []byte(`app:
  log_level: debug
  timezone: America/New_York
  http:
    port: 9090
storage:
  backend: sqlite
  sqlite:
    path: /tmp/lt.db
auth:
  mode: token
  token: ${LIFETRACK_TEST_TOKEN}
events:
  dashboard_throttle: 500ms
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := NewDefaultConfig()
	if err := pkgconfig.Load(path, cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.LogLevel != slog.LevelDebug {
		t.Errorf("log level = %v", cfg.App.LogLevel)
	}
	if cfg.App.HTTP.Port != 9090 || cfg.Storage.Backend != BackendSQLite || cfg.Storage.SQLite.Path != "/tmp/lt.db" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Auth.Token != "s3cret" {
		t.Errorf("token = %q, env not expanded", cfg.Auth.Token)
	}
	if cfg.Events.DashboardThrottle != 500*time.Millisecond {
		t.Errorf("throttle = %v", cfg.Events.DashboardThrottle)
	}
}
