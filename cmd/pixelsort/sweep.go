package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/BeatGlow/pixelsort/format"
	"github.com/BeatGlow/pixelsort/sheet"
)

func newSweepCommand(global *globalFlags) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "sweep -i IMAGE -o SHEET",
		Short: "Render a contact sheet of the image sorted with a range of thresholds",
		Example: `  pixelsort sweep -i photo.jpg -o sheet.png
  pixelsort sweep -i photo.jpg -o sheet.png --start 20 --stop 200 --step 20 --span 40 -m hue`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bindings := sortBindings()
			for _, name := range []string{"start", "stop", "step", "span", "columns", "tile"} {
				bindings["sweep."+name] = name
			}
			for _, key := range []string{"sort.threshold", "sort.passes", "output.preview", "output.rotate"} {
				delete(bindings, key)
			}

			cfg, log, err := global.setup(cmd, bindings)
			if err != nil {
				return err
			}
			if err = cfg.Validate(); err != nil {
				return err
			}

			var (
				o, _ = cfg.SortOptions()
				s, _ = cfg.SweepOptions()
				f, _ = cfg.OutputFormat()
				e    = cfg.EncodeOptions()
			)

			src, err := load(input, log)
			if err != nil {
				return err
			}

			start := time.Now()
			out, err := sheet.Render(src, &s, &o, log)
			if err != nil {
				return err
			}
			log.Info("Rendered contact sheet", "tiles", len(s.Gates()), "elapsed", time.Since(start))

			if err = format.Save(cfg.Output.Path, out.NRGBA(), f, &e); err != nil {
				return fmt.Errorf("save %s: %w", cfg.Output.Path, err)
			}
			log.Info("Saved contact sheet", "path", cfg.Output.Path, "format", f.String())
			return nil
		},
	}

	d := sheet.DefaultSweep
	flags := cmd.Flags()
	flags.StringVarP(&input, "input", "i", "", "Input image")
	addSortFlags(flags)
	flags.StringP("output", "o", "output.png", "Output contact sheet")
	flags.StringP("format", "f", "", "Output format: png, jpeg, gif, bmp or tiff (default: from the output file extension)")
	flags.Int("quality", 90, "JPEG quality, 1 to 100")
	flags.Float64("start", d.Start, "Lower bound of the first gate")
	flags.Float64("stop", d.Stop, "Gate lower bounds stay below this value")
	flags.Float64("step", d.Step, "Distance between the lower bounds of successive gates")
	flags.Float64("span", d.Span, "Width of each gate")
	flags.Int("columns", d.Columns, "Tiles per row")
	flags.Int("tile", d.TileSize, "Tile size in pixels")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
