// Package report renders a calculation as text for people or YAML for
// scripts. Every number goes through format.Friendly.
package report

import (
	"io"

	"codeberg.org/mutker/fpvsetup/internal/calculator"
	"codeberg.org/mutker/fpvsetup/internal/errors"
	"codeberg.org/mutker/fpvsetup/internal/format"
	"gopkg.in/yaml.v3"
)

// Format selects the report encoding
type Format string

const (
	Text Format = "text"
	YAML Format = "yaml"
)

// Quantity is a formatted number with its unit
type Quantity struct {
	Value string `yaml:"value"`
	Unit  string `yaml:"unit,omitempty"`
}

type Monitor struct {
	Width       *Quantity `yaml:"width,omitempty"`
	Height      *Quantity `yaml:"height,omitempty"`
	Diagonal    *Quantity `yaml:"diagonal,omitempty"`
	Aspect      string    `yaml:"aspect,omitempty"`
	AspectRatio string    `yaml:"aspect_ratio,omitempty"`
	Distance    *Quantity `yaml:"distance,omitempty"`
}

type UnitSetup struct {
	AppPerReal *Quantity `yaml:"app_per_real,omitempty"`
	RealPerApp *Quantity `yaml:"real_per_app,omitempty"`
}

type PortalLike struct {
	FOV         string    `yaml:"fov,omitempty"`
	VerticalFOV string    `yaml:"vertical_fov,omitempty"`
	MoveBack    *Quantity `yaml:"move_back,omitempty"`
	MoveBackApp *Quantity `yaml:"move_back_app,omitempty"`
}

type Focused struct {
	AccurateDistance *Quantity `yaml:"accurate_distance,omitempty"`
	FOV              string    `yaml:"fov,omitempty"`
}

// Document is the formatted form of one calculation. Unknown fields are
// left empty.
type Document struct {
	Monitor    Monitor    `yaml:"monitor"`
	UnitSetup  UnitSetup  `yaml:"unit_setup"`
	PortalLike PortalLike `yaml:"portal_like"`
	Focused    Focused    `yaml:"focused"`
}

const appUnits = "app units"

// Build formats the inputs and outputs of a calculation
func Build(in calculator.Inputs, out calculator.Outputs) Document {
	var doc Document

	m := out.Monitor
	doc.Monitor.Width = quantity(m.Width, in.WidthUnit.Plural())
	doc.Monitor.Height = quantity(m.Height, in.HeightUnit.Plural())
	doc.Monitor.Diagonal = quantity(m.Diagonal, in.DiagonalUnit.Plural())
	if m.AspectN.Known && m.AspectD.Known {
		doc.Monitor.Aspect = format.Friendly(m.AspectN.Number) + ":" + format.Friendly(m.AspectD.Number)
	}
	if m.Aspect.Known {
		doc.Monitor.AspectRatio = format.Friendly(m.Aspect.Number)
	}
	doc.Monitor.Distance = quantity(in.Distance, in.DistanceUnit.Plural())

	doc.UnitSetup.AppPerReal = quantity(out.Scale.AppPerReal, appUnits+" per "+in.AppPerRealUnit.Singular())
	doc.UnitSetup.RealPerApp = quantity(out.Scale.RealPerApp, in.RealPerAppUnit.Plural()+" per app unit")

	doc.PortalLike.FOV = degrees(out.PortalLike.FOV)
	doc.PortalLike.VerticalFOV = degrees(out.PortalLike.VerticalFOV)
	doc.PortalLike.MoveBack = quantity(out.PortalLike.MoveBack, in.MoveUnit.Plural())
	doc.PortalLike.MoveBackApp = quantity(out.PortalLike.MoveBackApp, appUnits)

	doc.Focused.AccurateDistance = quantity(in.AccurateDistance, in.AccurateDistanceUnit.Plural())
	doc.Focused.FOV = degrees(out.Focused.FOV)

	return doc
}

func quantity(v calculator.Value, unit string) *Quantity {
	if !v.Known {
		return nil
	}

	return &Quantity{Value: format.Friendly(v.Number), Unit: unit}
}

func degrees(v calculator.Value) string {
	if !v.Known {
		return ""
	}

	return format.Friendly(v.Number) + format.DegreeSign
}

// Write renders a calculation to w in the given format
func Write(w io.Writer, f Format, in calculator.Inputs, out calculator.Outputs) error {
	doc := Build(in, out)

	switch f {
	case Text:
		return writeText(w, doc)
	case YAML:
		return writeYAML(w, doc)
	default:
		return errors.New().WithData(ErrUnknownFormat, string(f))
	}
}

func writeYAML(w io.Writer, doc Document) error {
	errFactory := errors.New()

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errFactory.Wrap(ErrRender, err)
	}
	if err := enc.Close(); err != nil {
		return errFactory.Wrap(ErrRender, err)
	}

	return nil
}
