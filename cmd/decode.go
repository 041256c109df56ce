package cmd

import (
	"fmt"
	"os"

	"golang-ethmgr/internal/types"

	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode FILE",
	Short: "Decode a persisted interface record and print it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		state, err := types.ReadInterfaceState(f)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), state.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
