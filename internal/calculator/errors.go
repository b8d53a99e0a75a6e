package calculator

import "codeberg.org/mutker/fpvsetup/internal/errors"

const (
	ErrInvalidUnit   = errors.ErrInvalidUnit
	ErrInvalidSource = errors.ErrorCode("calculator_invalid_source")
)
