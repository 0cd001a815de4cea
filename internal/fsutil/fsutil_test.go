package fsutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHashFile_KnownDigests(t *testing.T) {
	p := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(p, []byte("hello world"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cases := []struct {
		algo string
		want string
	}{
		{"md5", "5eb63bbbe01eeed093cb22bb8f5acdc3"},
		{"sha1", "2aae6c35c94fcfb415dbe95f408b9ce91ee846ed"},
		{"sha256", "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"},
		{"", "5eb63bbbe01eeed093cb22bb8f5acdc3"}, // default md5
	}
	for _, c := range cases {
		got, err := HashFile(p, c.algo)
		if err != nil {
			t.Fatalf("HashFile(%q) error: %v", c.algo, err)
		}
		if got != c.want {
			t.Fatalf("HashFile(%q) = %s, want %s", c.algo, got, c.want)
		}
	}
}

func TestHashFile_Errors(t *testing.T) {
	if _, err := HashFile(filepath.Join(t.TempDir(), "missing"), "md5"); err == nil {
		t.Fatal("expected error for missing file")
	}
	p := filepath.Join(t.TempDir(), "f")
	_ = os.WriteFile(p, []byte("x"), 0o644)
	if _, err := HashFile(p, "crc32"); err == nil {
		t.Fatal("expected error for unsupported algorithm")
	}
}

func TestDirSize_SumsNestedFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "a", "b"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	files := map[string]int{
		"top.txt":                       100,
		filepath.Join("a", "mid"):       50,
		filepath.Join("a", "b", "leaf"): 7,
	}
	for name, size := range files {
		if err := os.WriteFile(filepath.Join(dir, name), make([]byte, size), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	got, err := DirSize(dir)
	if err != nil {
		t.Fatalf("DirSize error: %v", err)
	}
	if got != 157 {
		t.Fatalf("DirSize = %d, want 157", got)
	}
}

func TestDirSize_NotADirectory(t *testing.T) {
	p := filepath.Join(t.TempDir(), "f")
	_ = os.WriteFile(p, []byte("x"), 0o644)
	if _, err := DirSize(p); err == nil {
		t.Fatal("expected error for non-directory")
	}
}

func TestFormatBytes(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0.00 B"},
		{1023, "1023.00 B"},
		{1024, "1.00 KB"},
		{2621440, "2.50 MB"},
		{1099511627776, "1.00 TB"},
	}
	for _, c := range cases {
		if got := FormatBytes(c.in); got != c.want {
			t.Fatalf("FormatBytes(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}
