package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// dailyWriter appends to DIR/app_YYYYMMDD.log and switches to a new file
// when the calendar day changes. Safe for concurrent use.
type dailyWriter struct {
	mu  sync.Mutex
	dir string
	now func() time.Time

	day string
	f   *os.File
}

func newDailyWriter(dir string, now func() time.Time) (*dailyWriter, error) {
	if now == nil {
		now = time.Now
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory %s: %w", dir, err)
	}
	w := &dailyWriter{dir: dir, now: now}
	if err := w.rotate(w.stamp()); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *dailyWriter) stamp() string {
	return w.now().Format("20060102")
}

// Filename returns the path of the file currently being written.
func (w *dailyWriter) Filename() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return filepath.Join(w.dir, "app_"+w.day+".log")
}

func (w *dailyWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if s := w.stamp(); s != w.day {
		if err := w.rotate(s); err != nil {
			return 0, err
		}
	}
	return w.f.Write(p)
}

func (w *dailyWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.f == nil {
		return nil
	}
	err := w.f.Close()
	w.f = nil
	return err
}

// rotate opens the dated file for stamp and closes the previous one.
// Caller holds w.mu (or is the constructor).
func (w *dailyWriter) rotate(stamp string) error {
	path := filepath.Join(w.dir, "app_"+stamp+".log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file %s: %w", path, err)
	}
	if w.f != nil {
		_ = w.f.Close()
	}
	w.f = f
	w.day = stamp
	return nil
}
