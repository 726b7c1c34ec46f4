package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/macropower/termbrot/pkg/viewport"
)

func NewRegionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List the named regions accepted by --region",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

			for _, name := range viewport.RegionNames() {
				vp := viewport.Regions[name]
				mustN(fmt.Fprintf(tw, "%s\t%s\t%s\n", name, vp.Center(), vp))
			}

			err := tw.Flush()
			if err != nil {
				return fmt.Errorf("write regions: %w", err)
			}

			return nil
		},
	}
}
