package cli

import (
	"github.com/spf13/cobra"

	"levonctl/internal/logging"
	"levonctl/internal/system"
)

var (
	logLevel string
	logDir   string
)

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.AddCommand(logDemoCmd)
	logDemoCmd.Flags().StringVar(&logLevel, "level", "", "log level (debug|info|warn|error); overrides config")
	logDemoCmd.Flags().StringVar(&logDir, "dir", "", "logs directory; overrides config")
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Logging utilities",
}

var logDemoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Initialize the two-sink logger and emit sample lines",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		opts := logging.Options{
			Level:    cfg.GetString("logging.level"),
			Dir:      cfg.GetString("logging.dir"),
			Rotation: cfg.GetString("logging.rotation"),
		}
		if logLevel != "" {
			opts.Level = logLevel
		}
		if logDir != "" {
			opts.Dir = logDir
		}

		lg, err := logging.Setup(opts)
		if err != nil {
			return err
		}
		defer lg.Close()

		lg.Info("logger initialized successfully")
		lg.Debug("debug details", "level", opts.Level, "dir", opts.Dir)
		lg.Info("sample application event", "component", "demo")
		lg.Warn("sample warning", "threshold", 0.9)
		lg.Error("sample error", "err", "demonstration only")

		system.Logger.Info("log demo complete", "file", lg.Filename())
		return nil
	},
}
