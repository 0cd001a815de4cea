package cli

import (
	"github.com/spf13/cobra"

	"levonctl/internal/dash"
)

func init() {
	rootCmd.AddCommand(dashCmd)
}

var dashCmd = &cobra.Command{
	Use:   "dash",
	Short: "Live dashboard with clock, system info, and config",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return dash.Run(cfg)
	},
}
