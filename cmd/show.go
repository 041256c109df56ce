package cmd

import (
	"fmt"
	"os"

	"golang-ethmgr/internal/ethernet"
	"golang-ethmgr/internal/pkg/logging"

	"github.com/spf13/cobra"
)

var (
	showConfigFlag string
	pluggedInFlag  bool
	summaryFlag    bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a snapshot of one ethernet port as a persisted record",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(showConfigFlag)
		if err != nil {
			return err
		}
		logging.InitLoggerTo(cfg.Logging, os.Stderr)

		manager, source, err := createManager(cfg)
		if err != nil {
			return err
		}
		defer source.Close()
		defer manager.Close()

		iface := ethernet.Primary
		if pluggedInFlag {
			iface = ethernet.PluggedIn
		}
		state, err := manager.Info(iface)
		if err != nil {
			return err
		}
		if summaryFlag {
			fmt.Fprintln(cmd.OutOrStdout(), state.String())
			return nil
		}
		_, err = state.WriteTo(cmd.OutOrStdout())
		return err
	},
}

func init() {
	showCmd.Flags().StringVarP(&showConfigFlag, "config", "f", "", "Path to config file (YAML)")
	showCmd.Flags().BoolVar(&pluggedInFlag, "plugged-in", false, "Show the plugged-in port instead of the primary port")
	showCmd.Flags().BoolVar(&summaryFlag, "summary", false, "Print a human readable summary instead of the record")
	if err := showCmd.MarkFlagRequired("config"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(showCmd)
}
