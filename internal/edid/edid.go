// Package edid reads the physical screen size from monitor EDID blocks so
// the monitor width and height can be prefilled.
package edid

import (
	"bytes"

	"codeberg.org/mutker/fpvsetup/internal/errors"
	"codeberg.org/mutker/fpvsetup/internal/monitor"
	"codeberg.org/mutker/fpvsetup/internal/units"
)

const (
	blockSize = 128

	offsetMaxWidthCm  = 0x15
	offsetMaxHeightCm = 0x16
)

var header = []byte{0x00, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x00}

// Size is the maximum image size reported by a monitor, in centimeters.
type Size struct {
	WidthCm  int
	HeightCm int
}

// Dimensions converts the size into monitor dimensions.
func (s Size) Dimensions() monitor.Dimensions {
	return monitor.NewWidthAndHeight(
		units.LengthFromUnit(float64(s.WidthCm), units.Centimeters),
		units.LengthFromUnit(float64(s.HeightCm), units.Centimeters),
	)
}

// Parse extracts the screen size from an EDID base block. Extension blocks
// after the first 128 bytes are ignored.
func Parse(data []byte) (Size, error) {
	errFactory := errors.New()

	if len(data) < blockSize {
		return Size{}, errFactory.WithData(ErrParse, struct {
			Phase  string
			Length int
		}{
			Phase:  "length",
			Length: len(data),
		})
	}
	block := data[:blockSize]

	if !bytes.Equal(block[:len(header)], header) {
		return Size{}, errFactory.WithMessage(ErrParse, "EDID header mismatch")
	}

	var sum byte
	for _, b := range block {
		sum += b
	}
	if sum != 0 {
		return Size{}, errFactory.WithData(ErrParse, struct {
			Phase    string
			Checksum byte
		}{
			Phase:    "checksum",
			Checksum: sum,
		})
	}

	// Both zero means undefined; one zero means the other byte encodes an
	// aspect ratio (projectors), which carries no physical size either.
	size := Size{
		WidthCm:  int(block[offsetMaxWidthCm]),
		HeightCm: int(block[offsetMaxHeightCm]),
	}
	if size.WidthCm == 0 || size.HeightCm == 0 {
		return Size{}, errFactory.WithMessage(ErrParse, "EDID does not define a screen size")
	}

	return size, nil
}
