package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"levonctl/internal/system"
)

var (
	infoJSON bool
	infoSave string
)

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "print system info as JSON")
	infoCmd.Flags().StringVar(&infoSave, "save", "", "also save system info to FILE as JSON")
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show system information",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := system.Collect()

		if infoSave != "" {
			if _, err := system.SaveInfo(infoSave, time.Now()); err != nil {
				return fmt.Errorf("save system info: %w", err)
			}
			system.Logger.Info("system info saved", "path", infoSave)
		}

		out := cmd.OutOrStdout()
		if infoJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(info)
		}

		fmt.Fprintln(out, "=== System Information ===")
		platform := info.Platform
		if info.PlatformRelease != "" {
			platform += " " + info.PlatformRelease
		}
		fmt.Fprintf(out, "Platform:     %s\n", platform)
		fmt.Fprintf(out, "Architecture: %s\n", info.Architecture)
		fmt.Fprintf(out, "Hostname:     %s\n", info.Hostname)
		fmt.Fprintf(out, "CPUs:         %d\n", info.NumCPU)
		fmt.Fprintf(out, "Go:           %s (%s)\n", info.GoVersion, info.GoCompiler)
		return nil
	},
}
