package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"levonctl/internal/fsutil"
)

func init() {
	rootCmd.AddCommand(duCmd)
}

var duCmd = &cobra.Command{
	Use:   "du [DIR]",
	Short: "Print the total size of a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		size, err := fsutil.DirSize(dir)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", fsutil.FormatBytes(size), dir)
		return nil
	},
}
