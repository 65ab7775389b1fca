package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "peoplesearch",
		Short:        "Collect people search results through a signed-in browser session",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")

	root.AddCommand(
		newSearchCmd(&configPath),
		newHistoryCmd(&configPath),
	)
	return root
}
