package main

import (
	"io"
	"os"

	"codeberg.org/mutker/fpvsetup/internal/calculator"
	"codeberg.org/mutker/fpvsetup/internal/config"
	"codeberg.org/mutker/fpvsetup/internal/edid"
	"codeberg.org/mutker/fpvsetup/internal/errors"
	"codeberg.org/mutker/fpvsetup/internal/logger"
	"codeberg.org/mutker/fpvsetup/internal/monitor"
	"codeberg.org/mutker/fpvsetup/internal/report"
	"codeberg.org/mutker/fpvsetup/internal/units"
	"github.com/spf13/pflag"
)

// prober is satisfied by *edid.Prober
type prober interface {
	Probe() (monitor.Dimensions, error)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger.InitWithWriter(stderr, logger.WarnLevel)

	cfg, err := config.Load(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		logError(err).Msg("Failed to load config")
		return 1
	}

	level, err := logger.ParseLevel(cfg.LogLevel.String())
	if err != nil {
		logError(err).Msg("Failed to initialize logger")
		return 1
	}
	logger.SetLogLevel(level)
	logger.Debug().Msg("Config loaded")

	var p prober
	if cfg.Probe {
		p = edid.NewProber(logger.Default())
	}

	if err := calculate(cfg, p, stdout); err != nil {
		logError(err).Msg("Calculation failed")
		return 1
	}

	return 0
}

// logError starts an error event carrying the code of err, or
// internal_error for errors from outside the error factory.
func logError(err error) *logger.LogEvent {
	var appErr errors.Error
	if !errors.As(err, &appErr) {
		appErr = errors.New().Wrap(errors.ErrInternal, err)
	}

	return logger.ErrorWithCode(appErr)
}

func calculate(cfg *config.Config, p prober, w io.Writer) error {
	in, err := cfg.Inputs()
	if err != nil {
		return err
	}

	if p != nil && !cfg.HasMonitorSize() {
		seedFromProbe(&in, p)
	}

	calc := calculator.New(
		calculator.WithRounding(cfg.Rounding),
		calculator.WithLogger(logger.Default()),
	)

	out, err := calc.Recompute(in)
	if err != nil {
		return err
	}

	return report.Write(w, report.Format(cfg.Output), in, out)
}

// seedFromProbe fills width and height from the connected monitor. A failed
// probe only leaves them unknown.
func seedFromProbe(in *calculator.Inputs, p prober) {
	dims, err := p.Probe()
	if err != nil {
		logger.Warn().Err(err).Msg("Could not detect monitor size")
		return
	}

	width, height := dims.WidthAndHeight()
	in.Width = calculator.Known(units.ConvertUnits(width, in.WidthUnit))
	in.Height = calculator.Known(units.ConvertUnits(height, in.HeightUnit))
	in.DimensionSource = calculator.SourceWidthAndHeight
}
