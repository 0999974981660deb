package main

import (
	"github.com/spf13/cobra"
)

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all solved days",
		Long:  "Display every registered day with its puzzle title.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return renderCatalogue(cmd.OutOrStdout(), a.cfg.Output, a.registry.All())
		},
	}
}
