package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"levonctl/internal/config"
	"levonctl/internal/system"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "levonctl",
	Short: "levonctl – system info and logging demo toolkit",
	Long:  "levonctl prints a greeting with system info and demonstrates config-driven logging with daily file rotation.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default action: the greeting
		Greet(cmd.OutOrStdout(), time.Now())
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config.ini (default: search CWD and user config dir)")
}

// Greet writes the greeting banner: timestamp, platform, Go runtime, and
// the demonstration calculation.
func Greet(w io.Writer, now time.Time) {
	fmt.Fprintf(w, "Hello from Levon! Current time: %s\n", now.Format("2006-01-02 15:04:05"))
	platform := system.PlatformName()
	if rel := system.KernelRelease(); rel != "" {
		platform += " " + rel
	}
	fmt.Fprintf(w, "Running on: %s\n", platform)
	fmt.Fprintf(w, "Go version: %s\n", runtime.Version())
	fmt.Fprintf(w, "Calculation result: %.1f\n", 10.0/2)
}

// loadConfig resolves the configuration honoring the --config flag.
func loadConfig() (*config.Config, error) {
	return config.Load(cfgPath)
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
