package main

import (
	"log"

	"github.com/spf13/cobra"

	julia "github.com/mvancura/juliaplot"
	"github.com/mvancura/juliaplot/ppm"
)

func batchCmd(cfg *appConfig) *cobra.Command {
	var (
		radius float64
		count  int
		prefix string
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Render a sequence of Julia sets for parameters on a circle",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, spec, policy, err := cfg.setup()
			if err != nil {
				return err
			}
			params, err := ctx.CircleParameters(radius, count)
			if err != nil {
				return err
			}

			log.Printf("rendering %d parameters on circle of radius %v", len(params), radius)
			grids, err := ctx.RasterizeBatch(spec, params)
			if err != nil {
				return err
			}
			for i, grid := range grids {
				img, err := julia.Colorize(grid, policy, spec.Iterations)
				if err != nil {
					return err
				}
				name := julia.SequenceFilename(prefix, ".ppm", i)
				if err := writeImage(name, ppm.Encoder{}, img); err != nil {
					return err
				}
				log.Printf("saved %q (c = %s)", name, params[i])
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&radius, "radius", 0.8, "radius of the parameter circle")
	cmd.Flags().IntVar(&count, "count", 8, "number of parameters on the circle")
	cmd.Flags().StringVar(&prefix, "prefix", "julia-", "output filename prefix")
	return cmd
}
