package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/rjs/internal/engine/dist"
)

func (c *CLI) newMethodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List the recognised acquisition methods",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "source map methods: %s\n", choices(dist.SourceMapMethods()))
			_, _ = fmt.Fprintf(out, "bundle map methods: %s\n", choices(dist.BundleMapMethods()))
		},
	}
}
