package main

import (
	"fmt"
	"strconv"

	"github.com/oomph-ac/lutrig/tables"
	"github.com/oomph-ac/lutrig/trig"
	"github.com/spf13/cobra"
)

// evaluator evaluates one function of an embedded table, widening float32
// results for printing.
type evaluator func(radians float64) float64

// lookupEvaluator returns fn ("sin", "cos" or "tan") over the embedded table name.
func lookupEvaluator(name, fn string) (evaluator, error) {
	e, ok := tables.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("no embedded table named %q, see lutrig list", name)
	}

	if e.Bits() == 32 {
		table := trig.New32(e.F32)
		var f func(float32) float32
		switch fn {
		case "sin":
			f = table.Sin
		case "cos":
			f = table.Cos
		case "tan":
			f = table.Tan
		default:
			return nil, fmt.Errorf("unknown function %q, want sin, cos or tan", fn)
		}
		return func(radians float64) float64 { return float64(f(float32(radians))) }, nil
	}

	table := trig.New64(e.F64)
	switch fn {
	case "sin":
		return table.Sin, nil
	case "cos":
		return table.Cos, nil
	case "tan":
		return table.Tan, nil
	}
	return nil, fmt.Errorf("unknown function %q, want sin, cos or tan", fn)
}

func newEvalCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "eval sin|cos|tan RADIANS...",
		Short: "evaluate angles with an embedded table",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := lookupEvaluator(name, args[0])
			if err != nil {
				return err
			}
			for _, arg := range args[1:] {
				radians, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("parse angle %q: %w", arg, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s(%s) = %s\n", args[0], arg, strconv.FormatFloat(f(radians), 'g', -1, 64))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "table", "t", "Sin1000F32", "embedded table to evaluate with")
	return cmd
}
