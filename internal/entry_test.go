package internal

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/starford/lifetrack/internal/tracker"
)

func testHandler(t *testing.T, cfg *Config) http.Handler {
	t.Helper()
	store, err := openStore(cfg.Storage, clockIn(time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return NewHTTPHandler(cfg, tracker.New(store), nil)
}

func get(h http.Handler, path string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHTTPHandler_Health(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Auth = AuthConfig{Mode: AuthModeToken, Token: "secret"}
	h := testHandler(t, cfg)

	for _, path := range []string{"/health/live", "/health/ready"} {
		w := get(h, path)
		if w.Code != http.StatusOK {
			t.Errorf("%s: status = %d", path, w.Code)
		}
		if !strings.Contains(w.Body.String(), `"ok"`) {
			t.Errorf("%s: body = %s", path, w.Body.String())
		}
	}
}

func TestHTTPHandler_APIMountedWithAuth(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Auth = AuthConfig{Mode: AuthModeToken, Token: "secret"}
	h := testHandler(t, cfg)

	if w := get(h, "/api/notes"); w.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", w.Code)
	}
	w := get(h, "/api/notes", "Authorization", "Bearer secret")
	if w.Code != http.StatusOK {
		t.Errorf("with token: status = %d, want 200", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("body = %s, want []", w.Body.String())
	}
}

func TestHTTPHandler_StaticClient(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>lifetrack</html>"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := NewDefaultConfig()
	cfg.App.HTTP.StaticDir = dir
	h := testHandler(t, cfg)

	w := get(h, "/goals")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "lifetrack") {
		t.Errorf("spa fallback: %d %q", w.Code, w.Body.String())
	}
	if w := get(h, "/api/dashboard/stats"); w.Code != http.StatusOK {
		t.Errorf("api behind static: status = %d", w.Code)
	}
}

func TestHTTPHandler_NoStaticDir(t *testing.T) {
	h := testHandler(t, NewDefaultConfig())
	if w := get(h, "/goals"); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestOpenStore_SQLite(t *testing.T) {
	cfg := StorageConfig{Backend: BackendSQLite, SQLite: SQLiteConfig{Path: filepath.Join(t.TempDir(), "lt.db")}}
	store, err := openStore(cfg, clockIn(time.UTC))
	if err != nil {
		t.Fatalf("openStore: %v", err)
	}
	defer store.Close()
	if _, err := store.Notes(context.Background()); err != nil {
		t.Errorf("Notes: %v", err)
	}
}

func TestOpenStore_Unknown(t *testing.T) {
	if _, err := openStore(StorageConfig{Backend: "redis"}, clockIn(time.UTC)); err == nil {
		t.Fatal("unknown backend accepted")
	}
}

func TestReadLogLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("app:\n  log_level: warn\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	level, err := readLogLevel(path)
	if err != nil {
		t.Fatalf("readLogLevel: %v", err)
	}
	if level != slog.LevelWarn {
		t.Errorf("level = %v, want WARN", level)
	}
}

func TestRunRequiresConfig(t *testing.T) {
	if err := Run(context.Background()); err == nil {
		t.Fatal("Run without config should fail")
	}
}
