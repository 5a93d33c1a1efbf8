package main

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/oomph-ac/lutrig/trig"
	"github.com/spf13/cobra"
)

type plotOptions struct {
	table  string
	fn     string
	from   float64
	to     float64
	points int
	height int
}

func newPlotCmd() *cobra.Command {
	var opts plotOptions

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "draw a function of an embedded table in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.points < 2 {
				return fmt.Errorf("--points must be at least 2, got %d", opts.points)
			}
			if opts.to <= opts.from {
				return fmt.Errorf("--to (%v) must be greater than --from (%v)", opts.to, opts.from)
			}
			f, err := lookupEvaluator(opts.table, opts.fn)
			if err != nil {
				return err
			}

			data := make([]float64, opts.points)
			step := (opts.to - opts.from) / float64(opts.points-1)
			for i := range data {
				data[i] = f(opts.from + float64(i)*step)
			}

			graph := asciigraph.Plot(data,
				asciigraph.Height(opts.height),
				asciigraph.Width(opts.points),
				asciigraph.Caption(fmt.Sprintf("%s over [%g, %g] using %s", opts.fn, opts.from, opts.to, opts.table)),
			)
			fmt.Fprintln(cmd.OutOrStdout(), graph)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.table, "table", "t", "Sin1000F32", "embedded table to plot")
	flags.StringVar(&opts.fn, "func", "sin", "function to plot: sin, cos or tan")
	flags.Float64Var(&opts.from, "from", 0, "first angle in radians")
	flags.Float64Var(&opts.to, "to", trig.Full64, "last angle in radians")
	flags.IntVar(&opts.points, "points", 80, "number of samples across the plot")
	flags.IntVar(&opts.height, "height", 12, "plot height in rows")
	return cmd
}
