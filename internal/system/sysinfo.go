package system

import (
	"encoding/json"
	"os"
	"runtime"
	"strings"
	"time"
)

// Info is a snapshot of the host and runtime environment.
type Info struct {
	Platform        string `json:"platform"`
	PlatformRelease string `json:"platform_release,omitempty"`
	PlatformVersion string `json:"platform_version,omitempty"`
	Architecture    string `json:"architecture"`
	Hostname        string `json:"hostname"`
	NumCPU          int    `json:"num_cpu"`
	GoVersion       string `json:"go_version"`
	GoCompiler      string `json:"go_compiler"`
}

// Collect gathers system information. Kernel release/version are
// best-effort: empty on platforms where they cannot be read.
func Collect() Info {
	host, _ := os.Hostname()
	return Info{
		Platform:        PlatformName(),
		PlatformRelease: KernelRelease(),
		PlatformVersion: KernelVersion(),
		Architecture:    runtime.GOARCH,
		Hostname:        host,
		NumCPU:          runtime.NumCPU(),
		GoVersion:       runtime.Version(),
		GoCompiler:      runtime.Compiler,
	}
}

// PlatformName returns the OS name in display form ("Linux", "Darwin", ...).
func PlatformName() string {
	s := runtime.GOOS
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// KernelRelease returns the kernel release string (e.g. "6.8.0-45-generic")
// on Linux, or "" where unavailable.
func KernelRelease() string {
	return readProcLine("/proc/sys/kernel/osrelease")
}

// KernelVersion returns the kernel build/version string on Linux, or "".
func KernelVersion() string {
	return readProcLine("/proc/sys/kernel/version")
}

func readProcLine(path string) string {
	b, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

// savedInfo is Info plus capture metadata for JSON export.
type savedInfo struct {
	Info
	Timestamp string `json:"timestamp"`
}

// SaveInfo writes the current system info to path as indented JSON,
// stamped with the capture time.
func SaveInfo(path string, now time.Time) (Info, error) {
	info := Collect()
	out := savedInfo{Info: info, Timestamp: now.Format("2006-01-02 15:04:05")}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return info, err
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return info, err
	}
	return info, nil
}
