package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/oomph-ac/lutrig/tables"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list the embedded tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tWIDTH\tSIZE")
			for _, e := range tables.All() {
				fmt.Fprintf(w, "%s\tfloat%d\t%d\n", e.Name, e.Bits(), e.Size())
			}
			return w.Flush()
		},
	}
}
