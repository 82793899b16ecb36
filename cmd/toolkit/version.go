package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/textileio/go-autostaker/buildinfo"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints build information",
	Args:  cobra.ExactArgs(0),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(buildinfo.GetSummary())
	},
}
