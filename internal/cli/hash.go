package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"levonctl/internal/fsutil"
)

var hashAlgo string

func init() {
	rootCmd.AddCommand(hashCmd)
	hashCmd.Flags().StringVar(&hashAlgo, "algo", "md5", "hash algorithm (md5|sha1|sha256)")
}

var hashCmd = &cobra.Command{
	Use:   "hash FILE",
	Short: "Print the digest of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sum, err := fsutil.HashFile(args[0], hashAlgo)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", sum, args[0])
		return nil
	},
}
