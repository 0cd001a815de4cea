package system

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

func TestCollect_Basics(t *testing.T) {
	info := Collect()
	if info.Platform == "" {
		t.Fatal("expected non-empty platform")
	}
	if info.Architecture != runtime.GOARCH {
		t.Fatalf("architecture = %q, want %q", info.Architecture, runtime.GOARCH)
	}
	if info.GoVersion != runtime.Version() {
		t.Fatalf("go_version = %q, want %q", info.GoVersion, runtime.Version())
	}
	if info.NumCPU < 1 {
		t.Fatalf("num_cpu = %d, want >= 1", info.NumCPU)
	}
}

func TestPlatformName_Capitalized(t *testing.T) {
	name := PlatformName()
	if name == "" {
		t.Fatal("expected non-empty platform name")
	}
	if name[0] >= 'a' && name[0] <= 'z' {
		t.Fatalf("platform name %q should be capitalized", name)
	}
}

func TestSaveInfo_WritesJSONWithTimestamp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "system_info.json")
	now := time.Date(2026, 8, 23, 10, 30, 0, 0, time.UTC)

	if _, err := SaveInfo(path, now); err != nil {
		t.Fatalf("SaveInfo error: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved info: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("saved info is not valid JSON: %v", err)
	}
	if got["timestamp"] != "2026-08-23 10:30:00" {
		t.Fatalf("timestamp = %v, want 2026-08-23 10:30:00", got["timestamp"])
	}
	if got["platform"] == "" {
		t.Fatal("expected platform in saved info")
	}
}
