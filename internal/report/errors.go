package report

import "codeberg.org/mutker/fpvsetup/internal/errors"

const (
	ErrRender        = errors.ErrRender
	ErrUnknownFormat = errors.ErrorCode("report_unknown_format")
)
