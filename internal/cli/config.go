package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"levonctl/internal/settings"
)

var getDefault string

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configLsCmd, configGetCmd, configPathCmd, configEditCmd)
	configGetCmd.Flags().StringVar(&getDefault, "default", "", "fallback value for keys with no configured value")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit configuration",
}

var configLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all configuration keys and values",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		flat := cfg.Flatten()
		for _, k := range cfg.Keys() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", k, flat[k])
		}
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Read one configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		key := args[0]
		if !cfg.Known(key) {
			if !cmd.Flags().Changed("default") {
				return fmt.Errorf("unknown key %q", key)
			}
			fmt.Fprintln(cmd.OutOrStdout(), getDefault)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), cfg.GetString(key))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the resolved config file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if p := cfg.FileUsed(); p != "" {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "(no config file found; defaults in effect)")
		}
		return nil
	},
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit logging and cache settings interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return settings.Run(cfg)
	},
}
