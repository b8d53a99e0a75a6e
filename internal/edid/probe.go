package edid

import (
	"codeberg.org/mutker/fpvsetup/internal/errors"
	"codeberg.org/mutker/fpvsetup/internal/logger"
	"codeberg.org/mutker/fpvsetup/internal/monitor"
)

// Source abstracts where raw EDID blobs come from so probing can be tested
// without real monitors.
type Source interface {
	EDIDs() ([]Blob, error)
}

// Blob is one raw EDID along with where it was read from.
type Blob struct {
	Origin string
	Data   []byte
}

// Prober finds the size of the first monitor with a usable EDID.
type Prober struct {
	source Source
	log    logger.Logger
}

// NewProber creates a Prober over the platform's default source
func NewProber(log logger.Logger) *Prober {
	return NewProberWithSource(DefaultSource(), log)
}

// NewProberWithSource creates a Prober over the given source
func NewProberWithSource(source Source, log logger.Logger) *Prober {
	return &Prober{source: source, log: log}
}

// Probe returns the dimensions of the first monitor whose EDID parses and
// defines a screen size. Unusable blobs are skipped.
func (p *Prober) Probe() (monitor.Dimensions, error) {
	errFactory := errors.New()

	blobs, err := p.source.EDIDs()
	if err != nil {
		if errors.HasCode(err, ErrUnsupported) {
			return monitor.Dimensions{}, err
		}
		return monitor.Dimensions{}, errFactory.Wrap(ErrReadSource, err)
	}

	for _, blob := range blobs {
		size, err := Parse(blob.Data)
		if err != nil {
			p.log.Debug().
				Str("origin", blob.Origin).
				Err(err).
				Msg("Skipping EDID")
			continue
		}

		p.log.Info().
			Str("origin", blob.Origin).
			Int("width_cm", size.WidthCm).
			Int("height_cm", size.HeightCm).
			Msg("Detected monitor size")

		return size.Dimensions(), nil
	}

	return monitor.Dimensions{}, errFactory.WithData(ErrNotFound, len(blobs))
}
