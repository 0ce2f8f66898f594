package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gogpu/polyline"
	"github.com/gogpu/polyline/render"
	"github.com/gogpu/polyline/wave"
)

const (
	epsilonFlag    = "epsilon"
	sampleRateFlag = "sample-rate"
	frequencyFlag  = "frequency"
	amplitudeFlag  = "amplitude"
	cyclesFlag     = "cycles"
	shapeFlag      = "shape"
	widthFlag      = "width"
	heightFlag     = "height"
	outputFlag     = "output"
	svgFlag        = "svg"
	verboseFlag    = "verbose"
)

// config is the parsed command line.
type config struct {
	epsilon       float64
	wave          wave.Config
	width, height int
	output        string
	svg           string
	verbose       bool
}

func newRootCmd() *cobra.Command {
	cfg := config{
		epsilon: 0.01,
		wave:    wave.DefaultConfig(),
		width:   800,
		height:  600,
	}
	shape := cfg.wave.Shape.String()

	cmd := &cobra.Command{
		Use:           "rdpdemo",
		Short:         "Simplify a sampled waveform with Ramer-Douglas-Peucker",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := wave.ParseShape(shape)
			if err != nil {
				return fmt.Errorf("--%s: %w", shapeFlag, err)
			}
			cfg.wave.Shape = s
			if err := polyline.ValidateEpsilon(cfg.epsilon); err != nil {
				return fmt.Errorf("--%s: %w", epsilonFlag, err)
			}
			return run(cmd, cfg)
		},
	}
	bindFlags(cmd.Flags(), &cfg, &shape)
	return cmd
}

// bindFlags registers the command line flags, using the current values of
// cfg and shape as defaults.
func bindFlags(f *pflag.FlagSet, cfg *config, shape *string) {
	f.Float64VarP(&cfg.epsilon, epsilonFlag, "e", cfg.epsilon, "maximum perpendicular deviation of a dropped point")
	f.Float64Var(&cfg.wave.SampleRate, sampleRateFlag, cfg.wave.SampleRate, "samples per second")
	f.Float64Var(&cfg.wave.Frequency, frequencyFlag, cfg.wave.Frequency, "waveform frequency in Hz")
	f.Float64Var(&cfg.wave.Amplitude, amplitudeFlag, cfg.wave.Amplitude, "waveform amplitude")
	f.Float64Var(&cfg.wave.Cycles, cyclesFlag, cfg.wave.Cycles, "number of cycles to sample")
	f.StringVar(shape, shapeFlag, *shape, "waveform shape: sine, square, triangle or sawtooth")
	f.IntVar(&cfg.width, widthFlag, cfg.width, "plot width in pixels")
	f.IntVar(&cfg.height, heightFlag, cfg.height, "plot height in pixels")
	f.StringVarP(&cfg.output, outputFlag, "o", "", "write a PNG plot to this path")
	f.StringVar(&cfg.svg, svgFlag, "", "write an SVG plot to this path")
	f.BoolVarP(&cfg.verbose, verboseFlag, "v", false, "log diagnostics to stderr")
}

func run(cmd *cobra.Command, cfg config) error {
	if cfg.verbose {
		polyline.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer polyline.SetLogger(nil)
	}

	original, err := cfg.wave.Polyline()
	if err != nil {
		return err
	}
	simplified := original.Simplify(cfg.epsilon)

	if err := render.WriteSummary(cmd.OutOrStdout(), original.Len(), simplified.Len()); err != nil {
		return err
	}

	if cfg.output == "" && cfg.svg == "" {
		return nil
	}

	plot, err := render.NewPlot(cfg.width, cfg.height)
	if err != nil {
		return err
	}
	series := []render.Series{
		{Label: "Original Data", Points: original},
		{Label: "Simplified Data", Points: simplified},
	}
	if cfg.output != "" {
		if err := plot.SavePNG(cfg.output, series...); err != nil {
			return err
		}
	}
	if cfg.svg != "" {
		if err := plot.SaveSVG(cfg.svg, series...); err != nil {
			return err
		}
	}
	return nil
}
