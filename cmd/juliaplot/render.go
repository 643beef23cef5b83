package main

import (
	"fmt"
	"image"
	"log"
	"os"

	"github.com/spf13/cobra"

	julia "github.com/mvancura/juliaplot"
	"github.com/mvancura/juliaplot/ppm"
)

func renderCmd(cfg *appConfig) *cobra.Command {
	var reStr, imStr, out string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a single Julia set to a PPM file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, spec, policy, err := cfg.setup()
			if err != nil {
				return err
			}
			c, err := ctx.ParseComplex(reStr, imStr)
			if err != nil {
				return fmt.Errorf("parameter c: %w", err)
			}

			log.Printf("rendering %dx%d, c = %s, %d iterations", spec.Width, spec.Height, c, spec.Iterations)
			spec.Progress = func(done, total int) {
				log.Printf("rows %d/%d", done, total)
			}
			grid, err := ctx.Rasterize(spec, c)
			if err != nil {
				return err
			}
			img, err := julia.Colorize(grid, policy, spec.Iterations)
			if err != nil {
				return err
			}
			if err := writeImage(out, ppm.Encoder{}, img); err != nil {
				return err
			}
			log.Printf("saved %q", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&reStr, "re", defaultRe, "real part of the parameter c")
	cmd.Flags().StringVar(&imStr, "im", defaultIm, "imaginary part of the parameter c")
	cmd.Flags().StringVar(&out, "out", "julia.ppm", "output file")
	return cmd
}

// writeImage saves one finished image. A failed write aborts this artifact
// only; files written earlier in a batch are left intact.
func writeImage(path string, enc julia.Encoder, img *image.RGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := enc.Encode(f, img); err != nil {
		return fmt.Errorf("encode %q: %w", path, err)
	}
	return nil
}
