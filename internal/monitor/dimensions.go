// Package monitor holds monitor geometry and the field of view calculations
// built on it.
package monitor

import (
	"fmt"
	"math"

	"codeberg.org/mutker/fpvsetup/internal/units"
)

// Kind tells which pair of values a Dimensions stores.
type Kind int

const (
	// WidthAndHeight stores the width and the height directly.
	WidthAndHeight Kind = iota
	// DiagonalAndAspect stores the diagonal and the aspect ratio (width/height).
	DiagonalAndAspect
)

func (k Kind) String() string {
	switch k {
	case WidthAndHeight:
		return "WidthAndHeight"
	case DiagonalAndAspect:
		return "DiagonalAndAspect"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Dimensions describes the physical size of a monitor, stored either as
// width and height or as diagonal and aspect ratio. The other representation
// is derived on demand. Values are immutable; the zero value is a 0x0
// WidthAndHeight.
type Dimensions struct {
	kind     Kind
	width    units.Length
	height   units.Length
	diagonal units.Length
	aspect   float64
}

// NewWidthAndHeight stores dimensions as width and height.
func NewWidthAndHeight(width, height units.Length) Dimensions {
	return Dimensions{kind: WidthAndHeight, width: width, height: height}
}

// NewDiagonalAndAspect stores dimensions as diagonal and aspect ratio.
func NewDiagonalAndAspect(diagonal units.Length, aspect float64) Dimensions {
	return Dimensions{kind: DiagonalAndAspect, diagonal: diagonal, aspect: aspect}
}

// Kind returns the stored representation.
func (d Dimensions) Kind() Kind {
	return d.kind
}

// WidthAndHeight returns the width and height, deriving them from the
// diagonal and aspect ratio if necessary.
func (d Dimensions) WidthAndHeight() (width, height units.Length) {
	switch d.kind {
	case WidthAndHeight:
		return d.width, d.height
	case DiagonalAndAspect:
		// https://math.stackexchange.com/a/63690 with m/n replaced by aspect/1
		height = units.Length(float64(d.diagonal) / math.Sqrt(d.aspect*d.aspect+1))
		width = units.Length(float64(height) * d.aspect)
		return width, height
	default:
		panic(fmt.Sprintf("monitor: unknown dimensions kind %v", d.kind))
	}
}

// Aspect returns the aspect ratio (width/height).
func (d Dimensions) Aspect() float64 {
	switch d.kind {
	case WidthAndHeight:
		return d.width.Meters() / d.height.Meters()
	case DiagonalAndAspect:
		return d.aspect
	default:
		panic(fmt.Sprintf("monitor: unknown dimensions kind %v", d.kind))
	}
}

// Diagonal returns the diagonal length.
func (d Dimensions) Diagonal() units.Length {
	switch d.kind {
	case WidthAndHeight:
		return units.Length(math.Hypot(float64(d.width), float64(d.height)))
	case DiagonalAndAspect:
		return d.diagonal
	default:
		panic(fmt.Sprintf("monitor: unknown dimensions kind %v", d.kind))
	}
}

// AsWidthAndHeight re-represents d as the WidthAndHeight kind.
func (d Dimensions) AsWidthAndHeight() Dimensions {
	return NewWidthAndHeight(d.WidthAndHeight())
}

// AsDiagonalAndAspect re-represents d as the DiagonalAndAspect kind.
func (d Dimensions) AsDiagonalAndAspect() Dimensions {
	return NewDiagonalAndAspect(d.Diagonal(), d.Aspect())
}

// String prints both representations in meters.
func (d Dimensions) String() string {
	width, height := d.WidthAndHeight()
	return fmt.Sprintf("Dimensions{width: %gm, height: %gm, aspect: %g, diagonal: %gm, stored_as: %v}",
		width.Meters(), height.Meters(), d.Aspect(), d.Diagonal().Meters(), d.kind)
}
