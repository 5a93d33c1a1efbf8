package main

import (
	"fmt"
	"log/slog"

	"github.com/oomph-ac/lutrig/tablegen"
	"github.com/oomph-ac/lutrig/tables"
	"github.com/spf13/cobra"
)

func newVerifyCmd(log *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "check the embedded tables against a fresh generation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var stale []string
			for _, e := range tables.All() {
				embedded, generated, err := checksums(e)
				if err != nil {
					return err
				}
				status := "ok"
				if embedded != generated {
					status = "stale"
					stale = append(stale, e.Name)
				}
				log.Debug("checked table", "name", e.Name, "embedded", embedded, "generated", generated)
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %016x %s\n", e.Name, embedded, status)
			}
			if len(stale) > 0 {
				return fmt.Errorf("%d table(s) differ from the generator, run go generate: %v", len(stale), stale)
			}
			return nil
		},
	}
}

// checksums returns the checksum of the embedded samples of e and of a freshly
// generated table of the same size and width.
func checksums(e tables.Entry) (embedded, generated uint64, err error) {
	if e.Bits() == 32 {
		table, err := tablegen.Generate32(e.Size())
		if err != nil {
			return 0, 0, err
		}
		return tablegen.Checksum32(e.F32), tablegen.Checksum32(table), nil
	}
	table, err := tablegen.Generate64(e.Size())
	if err != nil {
		return 0, 0, err
	}
	return tablegen.Checksum64(e.F64), tablegen.Checksum64(table), nil
}
