// Package fsutil holds small filesystem helpers: file digests, directory
// sizing, and human-readable byte formatting.
package fsutil

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// HashFile computes the hex digest of the file at path using algo
// (md5, sha1, or sha256), streaming in 4 KiB chunks.
func HashFile(path, algo string) (string, error) {
	var h hash.Hash
	switch strings.ToLower(strings.TrimSpace(algo)) {
	case "", "md5":
		h = md5.New()
	case "sha1":
		h = sha1.New()
	case "sha256":
		h = sha256.New()
	default:
		return "", fmt.Errorf("unsupported hash algorithm %q", algo)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, 4096)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// DirSize returns the total size in bytes of regular files under dir.
// Unreadable entries are skipped rather than failing the walk.
func DirSize(dir string) (int64, error) {
	if st, err := os.Stat(dir); err != nil {
		return 0, err
	} else if !st.IsDir() {
		return 0, fmt.Errorf("%s is not a directory", dir)
	}

	var total int64
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if info, err := d.Info(); err == nil {
			total += info.Size()
		}
		return nil
	})
	return total, err
}

var byteUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatBytes renders a byte count with two decimals and a 1024-based unit.
func FormatBytes(n int64) string {
	size := float64(n)
	for _, unit := range byteUnits {
		if size < 1024.0 {
			return fmt.Sprintf("%.2f %s", size, unit)
		}
		size /= 1024.0
	}
	return fmt.Sprintf("%.2f PB", size)
}
