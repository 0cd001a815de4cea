package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"levonctl/internal/config"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	p := filepath.Join(t.TempDir(), "config.ini")
	ini := "[api]\nkey = hush\n\n[logging]\nlevel = debug\n"
	if err := os.WriteFile(p, []byte(ini), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.Load(p)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	return &Server{Addr: "127.0.0.1:0", Cfg: cfg}
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	s.router().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := get(t, testServer(t), "/api/health")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("status field = %q, want ok", body["status"])
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected X-Request-ID header")
	}
}

func TestSysinfo(t *testing.T) {
	w := get(t, testServer(t), "/api/sysinfo")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["platform"] == "" || body["go_version"] == "" {
		t.Fatalf("missing fields in sysinfo: %v", body)
	}
}

func TestConfig_RedactsSecrets(t *testing.T) {
	w := get(t, testServer(t), "/api/config")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["api.key"] != "<redacted>" {
		t.Fatalf("api.key = %q, want <redacted>", body["api.key"])
	}
	if body["logging.level"] != "debug" {
		t.Fatalf("logging.level = %q, want debug", body["logging.level"])
	}
}

func TestRequestID_EchoesCaller(t *testing.T) {
	s := testServer(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	s.router().ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("X-Request-ID = %q, want abc-123", got)
	}
}
