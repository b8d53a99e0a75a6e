//go:build !linux

package edid

import "codeberg.org/mutker/fpvsetup/internal/errors"

type unsupportedSource struct{}

// DefaultSource returns a source that always reports the platform as unsupported
func DefaultSource() Source {
	return unsupportedSource{}
}

func (unsupportedSource) EDIDs() ([]Blob, error) {
	return nil, errors.New().New(ErrUnsupported)
}
