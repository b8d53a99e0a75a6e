package calculator

import "codeberg.org/mutker/fpvsetup/internal/units"

// Value is a numeric field that may not be known yet.
type Value struct {
	Number float64
	Known  bool
}

// Known wraps a number as a known Value.
func Known(v float64) Value {
	return Value{Number: v, Known: true}
}

// Unknown is the zero Value.
var Unknown = Value{}

// DimensionSource selects which monitor fields drive the others.
type DimensionSource int

const (
	// SourceAuto uses width and height when both are known, otherwise
	// diagonal and aspect.
	SourceAuto DimensionSource = iota
	SourceWidthAndHeight
	SourceDiagonalAndAspect
)

// ScaleSource selects which of the two reciprocal scale fields drives the other.
type ScaleSource int

const (
	// ScaleAuto uses app-per-real when known, otherwise real-per-app.
	ScaleAuto ScaleSource = iota
	ScaleAppPerReal
	ScaleRealPerApp
)

// Inputs is a snapshot of every input field.
type Inputs struct {
	Width      Value
	WidthUnit  units.Unit
	Height     Value
	HeightUnit units.Unit

	Diagonal     Value
	DiagonalUnit units.Unit
	AspectN      Value
	AspectD      Value

	Distance     Value
	DistanceUnit units.Unit

	DimensionSource DimensionSource

	// AppPerReal is the number of application units in one AppPerRealUnit.
	AppPerReal     Value
	AppPerRealUnit units.Unit
	// RealPerApp is the length of one application unit in RealPerAppUnits.
	RealPerApp     Value
	RealPerAppUnit units.Unit
	ScaleSource    ScaleSource

	MoveUnit units.Unit

	// AccurateDistance is measured from the monitor surface.
	AccurateDistance     Value
	AccurateDistanceUnit units.Unit
}

// DefaultInputs returns an empty snapshot with the selectors' initial units.
func DefaultInputs() Inputs {
	return Inputs{
		WidthUnit:            units.Centimeters,
		HeightUnit:           units.Centimeters,
		DiagonalUnit:         units.Inches,
		DistanceUnit:         units.Centimeters,
		AppPerRealUnit:       units.Meters,
		RealPerAppUnit:       units.Meters,
		MoveUnit:             units.Meters,
		AccurateDistanceUnit: units.Meters,
	}
}

type unitField struct {
	name string
	unit units.Unit
}

// unitFields lists the unit selectors in display order.
func (in Inputs) unitFields() []unitField {
	return []unitField{
		{"width_unit", in.WidthUnit},
		{"height_unit", in.HeightUnit},
		{"diagonal_unit", in.DiagonalUnit},
		{"distance_unit", in.DistanceUnit},
		{"app_per_real_unit", in.AppPerRealUnit},
		{"real_per_app_unit", in.RealPerAppUnit},
		{"move_unit", in.MoveUnit},
		{"accurate_distance_unit", in.AccurateDistanceUnit},
	}
}
