package edid_test

import (
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/mutker/fpvsetup/internal/edid"
	"codeberg.org/mutker/fpvsetup/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConnector(t *testing.T, root, name string, data []byte) {
	t.Helper()

	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "edid"), data, 0o600))
}

func TestSysfsSource(t *testing.T) {
	root := t.TempDir()
	writeConnector(t, root, "card0-DP-1", nil)
	writeConnector(t, root, "card0-DP-2", block(53, 30))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "version"), 0o755))

	blobs, err := edid.NewSysfsSource(root).EDIDs()
	require.NoError(t, err)
	require.Len(t, blobs, 1)
	assert.Equal(t, filepath.Join(root, "card0-DP-2", "edid"), blobs[0].Origin)

	d, err := edid.NewProberWithSource(edid.NewSysfsSource(root), logger.Default()).Probe()
	require.NoError(t, err)
	w, _ := d.WidthAndHeight()
	assert.InDelta(t, 53, w.Centimeters(), 1e-9)
}

func TestSysfsSourceMissingRoot(t *testing.T) {
	blobs, err := edid.NewSysfsSource(filepath.Join(t.TempDir(), "absent")).EDIDs()
	require.NoError(t, err)
	assert.Empty(t, blobs)
}
