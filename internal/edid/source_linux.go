package edid

import (
	"os"
	"path/filepath"
	"sort"

	"codeberg.org/mutker/fpvsetup/internal/errors"
)

const drmRoot = "/sys/class/drm"

// sysfsSource reads the EDID of every connector exposed by the DRM
// subsystem. Disconnected connectors expose an empty file.
type sysfsSource struct {
	root string
}

// DefaultSource returns the sysfs DRM source
func DefaultSource() Source {
	return NewSysfsSource(drmRoot)
}

// NewSysfsSource returns a source reading <root>/*/edid
func NewSysfsSource(root string) Source {
	return &sysfsSource{root: root}
}

func (s *sysfsSource) EDIDs() ([]Blob, error) {
	errFactory := errors.New()

	paths, err := filepath.Glob(filepath.Join(s.root, "*", "edid"))
	if err != nil {
		return nil, errFactory.Wrap(ErrReadSource, err)
	}
	sort.Strings(paths)

	blobs := make([]Blob, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil || len(data) == 0 {
			continue
		}
		blobs = append(blobs, Blob{Origin: path, Data: data})
	}

	return blobs, nil
}
