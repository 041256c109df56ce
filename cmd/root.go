package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "golang-ethmgr",
	Short: "golang-ethmgr tracks and persists the configuration of two ethernet ports",
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
