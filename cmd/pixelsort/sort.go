package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/BeatGlow/pixelsort/format"
	"github.com/BeatGlow/pixelsort/framebuffer"
	"github.com/BeatGlow/pixelsort/pixel"
	"github.com/BeatGlow/pixelsort/sorter"
)

func newSortCommand(global *globalFlags) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "sort -i IMAGE",
		Short: "Sort the pixels of an image",
		Example: `  pixelsort sort -i photo.jpg
  pixelsort sort -i photo.jpg -l 20,200 -d vertical -m hue -o sorted.png
  pixelsort sort -i photo.jpg --passes 3 --preview /dev/fb0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := global.setup(cmd, sortBindings())
			if err != nil {
				return err
			}
			if err = cfg.Validate(); err != nil {
				return err
			}

			o, _ := cfg.SortOptions()
			f, _ := cfg.OutputFormat()
			e := cfg.EncodeOptions()
			r, _ := cfg.PreviewRotation()

			src, err := load(input, log)
			if err != nil {
				return err
			}

			var (
				grid  = src
				start = time.Now()
			)
			for pass := 1; pass <= cfg.Sort.Passes; pass++ {
				grid = sorter.Apply(grid, &o)
				log.Debug("Sort pass done", "pass", pass, "elapsed", time.Since(start))
			}
			log.Info("Sorted image",
				"gate", o.Gate.String(),
				"order", o.Order.String(),
				"axis", o.Axis.String(),
				"method", o.Method.String(),
				"grouping", o.Grouping.String(),
				"passes", cfg.Sort.Passes,
				"workers", o.Workers,
				"elapsed", time.Since(start))

			if err = format.Save(cfg.Output.Path, grid.NRGBA(), f, &e); err != nil {
				return fmt.Errorf("save %s: %w", cfg.Output.Path, err)
			}
			log.Info("Saved image", "path", cfg.Output.Path, "format", f.String())

			if cfg.Output.Preview != "" {
				return preview(cfg.Output.Preview, grid, r, log)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&input, "input", "i", "", "Input image")
	flags.StringP("threshold", "l", "40,90", "Luminance gate as min,max, bounds included")
	addSortFlags(flags)
	flags.StringP("output", "o", "output.png", "Output image")
	flags.StringP("format", "f", "", "Output format: png, jpeg, gif, bmp or tiff (default: from the output file extension)")
	flags.Int("quality", 90, "JPEG quality, 1 to 100")
	flags.Int("passes", 1, "Number of times the image is sorted")
	flags.String("preview", "", "Show the result on a framebuffer device, such as /dev/fb0")
	flags.String("rotate", "", "Preview rotation (0, 90, 180, 270)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

// addSortFlags adds the flags shared by the commands that sort.
func addSortFlags(flags *pflag.FlagSet) {
	flags.StringP("kind", "k", "left-to-right", "Sort order (left-to-right, right-to-left)")
	flags.StringP("direction", "d", "horizontal", "Scan line direction (horizontal, vertical)")
	flags.StringP("method", "m", "default", "Sort key (see pixelsort methods)")
	flags.String("grouping", "runs", "Pixels sorted together (runs, line)")
	flags.Int("workers", 0, "Concurrent workers (default: one per CPU)")
}

func sortBindings() map[string]string {
	return map[string]string{
		"sort.threshold": "threshold",
		"sort.kind":      "kind",
		"sort.direction": "direction",
		"sort.method":    "method",
		"sort.grouping":  "grouping",
		"sort.workers":   "workers",
		"sort.passes":    "passes",
		"output.path":    "output",
		"output.format":  "format",
		"output.quality": "quality",
		"output.preview": "preview",
		"output.rotate":  "rotate",
	}
}

func load(path string, log *slog.Logger) (*pixel.Grid, error) {
	img, f, err := format.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	grid := pixel.FromImage(img)
	log.Info("Loaded image", "path", path, "format", f.String(), "width", grid.Width(), "height", grid.Height())
	return grid, nil
}

func preview(name string, grid *pixel.Grid, r framebuffer.Rotation, log *slog.Logger) error {
	fb, err := framebuffer.Open(name)
	if err != nil {
		return fmt.Errorf("preview %s: %w", name, err)
	}
	defer func() { _ = fb.Close() }()

	framebuffer.Show(fb, grid, r)
	log.Info("Previewed image", "device", name, "rotation", r.String(), "width", fb.Bounds().Dx(), "height", fb.Bounds().Dy())
	return nil
}
