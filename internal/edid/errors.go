package edid

import "codeberg.org/mutker/fpvsetup/internal/errors"

const (
	ErrParse       = errors.ErrEDIDParse
	ErrNotFound    = errors.ErrProbeNotFound
	ErrUnsupported = errors.ErrProbeUnsupported

	ErrReadSource = errors.ErrorCode("edid_read_source_failed")
)
