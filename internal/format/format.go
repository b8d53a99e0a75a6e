// Package format turns calculation results into display strings and parses
// the numeric text fields that feed the calculator.
package format

import (
	"math"
	"strconv"
	"strings"

	"codeberg.org/mutker/fpvsetup/internal/errors"
	"codeberg.org/mutker/fpvsetup/internal/units"
	"github.com/dustin/go-humanize"
)

const (
	DegreeSign = "°"
	NaN        = "<error>"
	Infinity   = "∞"

	fractionDigits = 3

	// Below this magnitude a value parsed from three fraction digits prints
	// back unchanged with the six digits humanize.Ftoa uses.
	maxReparsed = 1 << 32
)

// Friendly formats v with up to three fraction digits, dropping trailing
// zeros and a bare decimal point. NaN and infinities render as sentinels.
func Friendly(v float64) string {
	switch {
	case math.IsNaN(v):
		return NaN
	case math.IsInf(v, 1):
		return Infinity
	case math.IsInf(v, -1):
		return "-" + Infinity
	}

	s := strconv.FormatFloat(v, 'f', fractionDigits, 64)
	rounded, err := strconv.ParseFloat(s, 64)
	if err != nil || math.Abs(rounded) >= maxReparsed {
		return strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
	}

	return humanize.Ftoa(rounded)
}

// Degrees formats an angle in degrees followed by the degree sign.
func Degrees(a units.Angle) string {
	return Friendly(a.Degrees()) + DegreeSign
}

// ParseRestricted parses a numeric input field. Blank input is not an error:
// it means the value is not known yet, reported as ok == false.
func ParseRestricted(s string) (v float64, ok bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, nil
	}

	v, err = strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, errors.New().Wrap(errors.ErrInvalidInput, err)
	}

	return v, true, nil
}
