package main

import (
	"bytes"
	"fmt"
	"testing"

	"codeberg.org/mutker/fpvsetup/internal/config"
	"codeberg.org/mutker/fpvsetup/internal/errors"
	"codeberg.org/mutker/fpvsetup/internal/logger"
	"codeberg.org/mutker/fpvsetup/internal/monitor"
	"codeberg.org/mutker/fpvsetup/internal/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProber struct {
	dims  monitor.Dimensions
	err   error
	calls int
}

func (f *fakeProber) Probe() (monitor.Dimensions, error) {
	f.calls++
	return f.dims, f.err
}

func isolate(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("FPVSETUP_CONFIG", "")
}

func load(t *testing.T, args ...string) *config.Config {
	t.Helper()

	cfg, err := config.Load(args)
	require.NoError(t, err)

	return cfg
}

func TestRunYAML(t *testing.T) {
	isolate(t)

	var buf bytes.Buffer
	code := run([]string{
		"--probe=false", "--output", "yaml",
		"--diagonal", "27", "--aspect-n", "16", "--aspect-d", "9",
		"--distance", "24", "--distance-unit", "in",
	}, &buf, &bytes.Buffer{})

	require.Equal(t, 0, code)
	assert.Contains(t, buf.String(), "portal_like:")
	assert.Contains(t, buf.String(), "52.234°")
}

func TestRunExitCodes(t *testing.T) {
	isolate(t)

	assert.Equal(t, 0, run([]string{"--help"}, &bytes.Buffer{}, &bytes.Buffer{}))
	assert.Equal(t, 1, run([]string{"--log-level", "loud"}, &bytes.Buffer{}, &bytes.Buffer{}))
	assert.Equal(t, 1, run([]string{"--width", "abc"}, &bytes.Buffer{}, &bytes.Buffer{}))
}

func TestRunLogsConfigFailure(t *testing.T) {
	isolate(t)

	var stdout, stderr bytes.Buffer
	require.Equal(t, 1, run([]string{"--width", "abc", "--height", "xyz"}, &stdout, &stderr))

	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "Failed to load config")
	assert.Contains(t, stderr.String(), "error_code=invalid_configuration")
	assert.Contains(t, stderr.String(), "width=abc: not a number; height=xyz: not a number")
}

func TestLogErrorCodes(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWithWriter(&buf, logger.WarnLevel)

	logError(fmt.Errorf("disk full")).Msg("Calculation failed")
	assert.Contains(t, buf.String(), "error_code=internal_error")

	buf.Reset()
	logError(errors.New().New(errors.ErrRender)).Msg("Calculation failed")
	assert.Contains(t, buf.String(), "error_code=render_failed")
}

func TestCalculateSeedsFromProbe(t *testing.T) {
	isolate(t)
	cfg := load(t, "--distance", "60")
	p := &fakeProber{dims: monitor.NewWidthAndHeight(units.LengthFromUnit(60, units.Centimeters), units.LengthFromUnit(34, units.Centimeters))}

	var buf bytes.Buffer
	require.NoError(t, calculate(cfg, p, &buf))

	assert.Equal(t, 1, p.calls)
	assert.Contains(t, buf.String(), "60 centimeters")
	assert.Contains(t, buf.String(), "34 centimeters")
}

func TestCalculateSkipsProbeWithSize(t *testing.T) {
	isolate(t)
	cfg := load(t, "--width", "50", "--height", "30")
	p := &fakeProber{}

	require.NoError(t, calculate(cfg, p, &bytes.Buffer{}))
	assert.Zero(t, p.calls)
}

func TestCalculateProbeFailureIsNotFatal(t *testing.T) {
	isolate(t)
	cfg := load(t, "--distance", "60")
	p := &fakeProber{err: fmt.Errorf("no monitors")}

	var buf bytes.Buffer
	require.NoError(t, calculate(cfg, p, &buf))
	assert.Equal(t, 1, p.calls)
	assert.Regexp(t, `Width:\s+-\n`, buf.String())
}
