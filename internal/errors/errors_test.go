package errors_test

import (
	"fmt"
	"testing"

	"codeberg.org/mutker/fpvsetup/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	errFactory := errors.New()

	err := errFactory.New(errors.ErrInvalidUnit)
	assert.Equal(t, "Invalid unit", err.Error())
	assert.Equal(t, errors.ErrInvalidUnit, err.Code())

	err = errFactory.WithMessage(errors.ErrInvalidUnit, "unit index out of range")
	assert.Equal(t, "unit index out of range", err.Error())
}

func TestErrorMessageUnknownCode(t *testing.T) {
	err := errors.New().New(errors.ErrorCode("something_else"))
	assert.Equal(t, "something_else", err.Error())
}

func TestErrorWithData(t *testing.T) {
	err := errors.New().WithData(errors.ErrInvalidUnit, 7)
	assert.Equal(t, "Invalid unit: 7", err.Error())
	assert.Equal(t, 7, err.GetData())
}

func TestWrapUnwrap(t *testing.T) {
	cause := fmt.Errorf("strconv: bad digit")
	err := errors.New().Wrap(errors.ErrInvalidInput, cause)

	assert.Equal(t, "Invalid numeric input: strconv: bad digit", err.Error())
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestWithMessageKeepsCause(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := errors.New().Wrap(errors.ErrReadConfig, cause).WithMessage("Failed to read config file")

	assert.Equal(t, "Failed to read config file: boom", err.Error())
	assert.Equal(t, errors.ErrReadConfig, err.Code())
}

func TestHasCode(t *testing.T) {
	errFactory := errors.New()
	inner := errFactory.New(errors.ErrProbeNotFound)
	outer := errFactory.Wrap(errors.ErrInternal, inner)
	wrapped := fmt.Errorf("probe: %w", outer)

	assert.True(t, errors.HasCode(wrapped, errors.ErrInternal))
	assert.True(t, errors.HasCode(wrapped, errors.ErrProbeNotFound))
	assert.False(t, errors.HasCode(wrapped, errors.ErrEDIDParse))
	assert.False(t, errors.HasCode(nil, errors.ErrInternal))
	assert.False(t, errors.HasCode(fmt.Errorf("plain"), errors.ErrInternal))
}

func TestAs(t *testing.T) {
	err := fmt.Errorf("context: %w", errors.New().New(errors.ErrInvalidLogLevel))

	var appErr errors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, errors.ErrInvalidLogLevel, appErr.Code())
}

func TestFindReadsDataThroughWrapping(t *testing.T) {
	errFactory := errors.New()
	inner := errFactory.WithData(errors.ErrInvalidUnit, 9)
	err := fmt.Errorf("move_unit: %w", errFactory.Wrap(errors.ErrInvalidConfig, inner))

	require.True(t, errors.HasCode(err, errors.ErrInvalidUnit))

	found, ok := errors.Find(err, errors.ErrInvalidUnit)
	require.True(t, ok)
	assert.Equal(t, errors.ErrInvalidUnit, found.Code())
	assert.Equal(t, 9, found.GetData())

	outer, ok := errors.Find(err, errors.ErrInvalidConfig)
	require.True(t, ok)
	assert.Nil(t, outer.GetData())
	assert.Equal(t, inner, outer.Unwrap())

	_, ok = errors.Find(err, errors.ErrRender)
	assert.False(t, ok)
}
