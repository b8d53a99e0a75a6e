// Package units provides dimensioned length and angle values and the fixed
// set of length units a user can pick from.
package units

import (
	"math"
	"strconv"
	"strings"

	"codeberg.org/mutker/fpvsetup/internal/errors"
)

// Length is a physical length stored in meters.
type Length float64

// Angle is a plane angle stored in radians.
type Angle float64

// Meters returns the length in meters.
func (l Length) Meters() float64 { return float64(l) }

// Centimeters returns the length in centimeters.
func (l Length) Centimeters() float64 { return ConvertUnits(l, Centimeters) }

// Feet returns the length in feet.
func (l Length) Feet() float64 { return ConvertUnits(l, Feet) }

// Inches returns the length in inches.
func (l Length) Inches() float64 { return ConvertUnits(l, Inches) }

// Radians returns the angle in radians.
func (a Angle) Radians() float64 { return float64(a) }

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 { return float64(a) * 180 / math.Pi }

// AngleFromDegrees builds an Angle from degrees.
func AngleFromDegrees(deg float64) Angle { return Angle(deg * math.Pi / 180) }

// Unit is one of the length units offered by the unit selectors. The values
// match the selector indices.
type Unit int

const (
	Meters Unit = iota
	Centimeters
	Feet
	Inches
)

// perMeter holds how many of each unit make up one meter.
var perMeter = [...]float64{
	Meters:      1,
	Centimeters: 100,
	Feet:        1 / 0.3048,
	Inches:      1 / 0.0254,
}

var unitNames = [...][2]string{
	Meters:      {"meter", "meters"},
	Centimeters: {"centimeter", "centimeters"},
	Feet:        {"foot", "feet"},
	Inches:      {"inch", "inches"},
}

// All lists the units in selector order.
func All() []Unit {
	return []Unit{Meters, Centimeters, Feet, Inches}
}

// Valid reports whether u is one of the four supported units.
func (u Unit) Valid() bool {
	return u >= Meters && u <= Inches
}

// mustBeValid panics on an out-of-range unit. Such a value can only come
// from a caller bug; user input goes through ParseUnit.
func (u Unit) mustBeValid() {
	if !u.Valid() {
		panic(errors.New().WithData(errors.ErrInvalidUnit, int(u)))
	}
}

func (u Unit) coefficient() float64 {
	u.mustBeValid()
	return perMeter[u]
}

// Singular returns the singular unit name, e.g. "foot".
func (u Unit) Singular() string {
	u.mustBeValid()
	return unitNames[u][0]
}

// Plural returns the plural unit name, e.g. "feet".
func (u Unit) Plural() string {
	u.mustBeValid()
	return unitNames[u][1]
}

// String implements the Stringer interface
func (u Unit) String() string {
	if !u.Valid() {
		return "Unit(" + strconv.Itoa(int(u)) + ")"
	}

	return unitNames[u][1]
}

// ParseUnit maps a selector index to a Unit.
func ParseUnit(index int) (Unit, error) {
	u := Unit(index)
	if !u.Valid() {
		return 0, errors.New().WithData(errors.ErrInvalidUnit, index)
	}

	return u, nil
}

// ParseUnitName accepts a unit name (singular, plural, or a short symbol
// like "cm") or a selector index given as text.
func ParseUnitName(name string) (Unit, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "m", "meter", "meters", "metre", "metres":
		return Meters, nil
	case "cm", "centimeter", "centimeters", "centimetre", "centimetres":
		return Centimeters, nil
	case "ft", "foot", "feet":
		return Feet, nil
	case "in", "inch", "inches":
		return Inches, nil
	}

	index, err := strconv.Atoi(name)
	if err != nil {
		return 0, errors.New().WithData(errors.ErrInvalidUnit, name)
	}

	return ParseUnit(index)
}

// LengthFromUnit converts a raw value expressed in unit into a Length.
func LengthFromUnit(value float64, unit Unit) Length {
	return Length(value / unit.coefficient())
}

// ConvertUnits returns the magnitude of length expressed in unit.
func ConvertUnits(length Length, unit Unit) float64 {
	return float64(length) * unit.coefficient()
}

// ConversionRate returns the factor a value in unit a must be multiplied by
// to be expressed in unit b.
func ConversionRate(a, b Unit) float64 {
	return b.coefficient() / a.coefficient()
}
