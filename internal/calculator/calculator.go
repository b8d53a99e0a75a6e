// Package calculator recomputes every output field from a snapshot of the
// input fields. It keeps no state between calls.
package calculator

import (
	"codeberg.org/mutker/fpvsetup/internal/aspect"
	"codeberg.org/mutker/fpvsetup/internal/errors"
	"codeberg.org/mutker/fpvsetup/internal/format"
	"codeberg.org/mutker/fpvsetup/internal/logger"
	"codeberg.org/mutker/fpvsetup/internal/monitor"
	"codeberg.org/mutker/fpvsetup/internal/units"
)

// DefaultRounding is the tolerance used to snap an aspect ratio to a
// common one.
const DefaultRounding = 0.1

// MonitorOutputs holds both representations of the monitor size, in the
// units selected for each field.
type MonitorOutputs struct {
	Width    Value
	Height   Value
	Diagonal Value
	AspectN  Value
	AspectD  Value
	// Aspect is the unsnapped width/height ratio.
	Aspect Value
}

// ScaleOutputs holds the two reciprocal real/application scale fields.
type ScaleOutputs struct {
	AppPerReal Value
	RealPerApp Value
}

// PortalLikeOutputs configures the camera so the monitor acts as a window
// into the scene.
type PortalLikeOutputs struct {
	FOV         Value // degrees
	VerticalFOV Value // degrees
	// MoveBack is how far behind the virtual screen to put the camera, in MoveUnit.
	MoveBack Value
	// MoveBackApp is MoveBack in application units.
	MoveBackApp Value
}

// FocusedOutputs configures the camera for accurate scale at one distance.
type FocusedOutputs struct {
	FOV Value // degrees
}

// Outputs is every computed field. Fields whose inputs are missing are
// left Unknown.
type Outputs struct {
	Monitor    MonitorOutputs
	Scale      ScaleOutputs
	PortalLike PortalLikeOutputs
	Focused    FocusedOutputs
	// Dimensions is set when the monitor size could be resolved.
	Dimensions *monitor.Dimensions
}

// Calculator recomputes outputs from inputs.
type Calculator struct {
	rounding float64
	log      logger.Logger
}

// Option configures a Calculator
type Option func(*Calculator)

// WithRounding sets the aspect ratio snapping tolerance
func WithRounding(rounding float64) Option {
	return func(c *Calculator) {
		c.rounding = rounding
	}
}

// WithLogger sets the logger used for debug tracing
func WithLogger(log logger.Logger) Option {
	return func(c *Calculator) {
		c.log = log
	}
}

// New creates a Calculator
func New(opts ...Option) *Calculator {
	c := &Calculator{
		rounding: DefaultRounding,
		log:      logger.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Recompute derives all outputs from in. Missing inputs are not errors;
// only out-of-range unit or source selectors are.
func (c *Calculator) Recompute(in Inputs) (Outputs, error) {
	if err := validate(in); err != nil {
		return Outputs{}, err
	}

	var out Outputs

	dims, ok := c.resolveDimensions(in, &out.Monitor)
	if ok {
		out.Dimensions = &dims
	}
	out.Scale = resolveScale(in)

	if !ok || !in.Distance.Known {
		c.log.Debug().
			Bool("dimensions", ok).
			Bool("distance", in.Distance.Known).
			Msg("Not enough input for field of view")
		return out, nil
	}

	distance := units.LengthFromUnit(in.Distance.Number, in.DistanceUnit)
	conf := monitor.Configuration{Dimensions: dims, Distance: distance}

	fov := conf.FOV()
	out.PortalLike.FOV = Known(fov.Degrees())
	out.PortalLike.VerticalFOV = Known(conf.VerticalFOV().Degrees())
	move := units.ConvertUnits(distance, in.MoveUnit)
	out.PortalLike.MoveBack = Known(move)
	if out.Scale.AppPerReal.Known {
		appPerMoveUnit := out.Scale.AppPerReal.Number *
			units.ConversionRate(in.MoveUnit, in.AppPerRealUnit)
		out.PortalLike.MoveBackApp = Known(move * appPerMoveUnit)
	}

	if in.AccurateDistance.Known {
		accurate := units.LengthFromUnit(in.AccurateDistance.Number, in.AccurateDistanceUnit)
		out.Focused.FOV = Known(conf.FOVForDistance(accurate, true).Degrees())
	}

	c.log.Debug().
		Str("dimensions", dims.String()).
		Float64("distance_m", distance.Meters()).
		Str("fov", format.Degrees(fov)).
		Msg("Recomputed outputs")

	return out, nil
}

func validate(in Inputs) error {
	errFactory := errors.New()

	for _, f := range in.unitFields() {
		if !f.unit.Valid() {
			return errFactory.WithData(ErrInvalidUnit, struct {
				Field string
				Unit  int
			}{
				Field: f.name,
				Unit:  int(f.unit),
			})
		}
	}

	if in.DimensionSource < SourceAuto || in.DimensionSource > SourceDiagonalAndAspect {
		return errFactory.WithData(ErrInvalidSource, int(in.DimensionSource))
	}
	if in.ScaleSource < ScaleAuto || in.ScaleSource > ScaleRealPerApp {
		return errFactory.WithData(ErrInvalidSource, int(in.ScaleSource))
	}

	return nil
}

func (c *Calculator) resolveDimensions(in Inputs, out *MonitorOutputs) (monitor.Dimensions, bool) {
	haveWH := in.Width.Known && in.Height.Known
	haveDA := in.Diagonal.Known && in.AspectN.Known && in.AspectD.Known

	source := in.DimensionSource
	if source == SourceAuto {
		switch {
		case haveWH:
			source = SourceWidthAndHeight
		case haveDA:
			source = SourceDiagonalAndAspect
		default:
			return monitor.Dimensions{}, false
		}
	}

	switch source {
	case SourceWidthAndHeight:
		if !haveWH {
			return monitor.Dimensions{}, false
		}
		dims := monitor.NewWidthAndHeight(
			units.LengthFromUnit(in.Width.Number, in.WidthUnit),
			units.LengthFromUnit(in.Height.Number, in.HeightUnit),
		)
		ratio := dims.Aspect()
		nd := aspect.Snap(ratio, c.rounding)

		out.Width = in.Width
		out.Height = in.Height
		out.Diagonal = Known(units.ConvertUnits(dims.Diagonal(), in.DiagonalUnit))
		out.Aspect = Known(ratio)
		out.AspectN = Known(nd[0])
		out.AspectD = Known(nd[1])

		return dims, true
	case SourceDiagonalAndAspect:
		if !haveDA {
			return monitor.Dimensions{}, false
		}
		ratio := in.AspectN.Number / in.AspectD.Number
		dims := monitor.NewDiagonalAndAspect(
			units.LengthFromUnit(in.Diagonal.Number, in.DiagonalUnit),
			ratio,
		)
		width, height := dims.WidthAndHeight()

		out.Width = Known(units.ConvertUnits(width, in.WidthUnit))
		out.Height = Known(units.ConvertUnits(height, in.HeightUnit))
		out.Diagonal = in.Diagonal
		out.Aspect = Known(ratio)
		out.AspectN = in.AspectN
		out.AspectD = in.AspectD

		return dims, true
	default:
		return monitor.Dimensions{}, false
	}
}

func resolveScale(in Inputs) ScaleOutputs {
	source := in.ScaleSource
	if source == ScaleAuto {
		switch {
		case in.AppPerReal.Known:
			source = ScaleAppPerReal
		case in.RealPerApp.Known:
			source = ScaleRealPerApp
		default:
			return ScaleOutputs{}
		}
	}

	switch source {
	case ScaleAppPerReal:
		if !in.AppPerReal.Known {
			return ScaleOutputs{}
		}
		return ScaleOutputs{
			AppPerReal: in.AppPerReal,
			RealPerApp: Known(realPerApp(in.AppPerReal.Number, in.AppPerRealUnit, in.RealPerAppUnit)),
		}
	case ScaleRealPerApp:
		if !in.RealPerApp.Known {
			return ScaleOutputs{}
		}
		return ScaleOutputs{
			AppPerReal: Known(appPerReal(in.RealPerApp.Number, in.RealPerAppUnit, in.AppPerRealUnit)),
			RealPerApp: in.RealPerApp,
		}
	default:
		return ScaleOutputs{}
	}
}

// realPerApp turns "n application units per one aprUnit" into the length of
// one application unit in rpaUnit.
func realPerApp(n float64, aprUnit, rpaUnit units.Unit) float64 {
	return units.ConvertUnits(units.LengthFromUnit(1/n, aprUnit), rpaUnit)
}

// appPerReal turns "one application unit is r rpaUnit long" into the number
// of application units in one aprUnit.
func appPerReal(r float64, rpaUnit, aprUnit units.Unit) float64 {
	return 1 / units.ConvertUnits(units.LengthFromUnit(r, rpaUnit), aprUnit)
}

// ConvertField rescales a displayed value when its unit selector changes
// from one unit to another. Fields holding a quantity "per unit" are
// inverted: they scale with the reverse rate. It serves interactive front
// ends that keep a field's value on screen across unit changes; the CLI
// takes each value with its unit and has no such event.
func ConvertField(value float64, from, to units.Unit, invert bool) float64 {
	if invert {
		return value * units.ConversionRate(to, from)
	}

	return value * units.ConversionRate(from, to)
}
