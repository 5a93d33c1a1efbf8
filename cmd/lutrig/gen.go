package main

import (
	"errors"
	"log/slog"

	"github.com/oomph-ac/lutrig/tablegen"
	"github.com/spf13/cobra"
)

type genOptions struct {
	config  string
	size    string
	width   string
	name    string
	pkg     string
	out     string
	perLine int
}

func newGenCmd(log *slog.Logger) *cobra.Command {
	var opts genOptions

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "render sine tables as Go source",
		Long: `Render sine tables as Go source, either every table listed in a YAML config
or a single table described by flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve()
			if err != nil {
				return err
			}
			log.Debug("generating tables", "package", cfg.Package, "count", len(cfg.Tables))
			return tablegen.RenderConfig(cfg, log)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.config, "config", "c", "", "YAML file listing the tables to generate")
	flags.StringVar(&opts.size, "size", "", "number of samples over a quarter turn")
	flags.StringVar(&opts.width, "width", "32", "sample width, 32 or 64")
	flags.StringVar(&opts.name, "name", "", "exported name of the generated array")
	flags.StringVar(&opts.pkg, "package", "tables", "package clause of the generated file")
	flags.StringVarP(&opts.out, "out", "o", "", "output file (default: lower-cased name + .go)")
	flags.IntVar(&opts.perLine, "per-line", tablegen.DefaultPerLine, "samples per source line")
	cmd.MarkFlagsMutuallyExclusive("config", "size")
	cmd.MarkFlagsMutuallyExclusive("config", "name")
	return cmd
}

// resolve turns the flags into a validated config.
func (o genOptions) resolve() (tablegen.Config, error) {
	if o.config != "" {
		return tablegen.LoadConfig(o.config)
	}
	if o.size == "" || o.name == "" {
		return tablegen.Config{}, errors.New("either --config or both --size and --name are required")
	}

	size, err := tablegen.ParseSize(o.size)
	if err != nil {
		return tablegen.Config{}, err
	}
	width, err := tablegen.ParseWidth(o.width)
	if err != nil {
		return tablegen.Config{}, err
	}
	cfg := tablegen.Config{
		Package: o.pkg,
		PerLine: o.perLine,
		Tables:  []tablegen.Spec{{Name: o.name, Size: size, Width: width, Output: o.out}},
	}
	return cfg, cfg.Validate()
}
