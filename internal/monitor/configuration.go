package monitor

import (
	"math"

	"codeberg.org/mutker/fpvsetup/internal/units"
)

// Configuration is a monitor together with the viewer's distance from its
// surface. The viewer is assumed centered and facing the screen squarely.
type Configuration struct {
	Dimensions Dimensions
	Distance   units.Length
}

// FOV calculates the horizontal angle the screen covers as seen from the
// viewpoint ("portal-like" camera FOV).
// Formula: FOV = 2 × arctan((width / 2) / distance)
func (c Configuration) FOV() units.Angle {
	width, _ := c.Dimensions.WidthAndHeight()
	return angleFor(width, c.Distance)
}

// VerticalFOV is FOV for the screen height.
// Formula: FOV = 2 × arctan((height / 2) / distance)
func (c Configuration) VerticalFOV() units.Angle {
	_, height := c.Dimensions.WidthAndHeight()
	return angleFor(height, c.Distance)
}

// FOVForDistance calculates a camera FOV under which a plane at the given
// distance appears at real-world scale ("focused" mode). The distance is
// measured from the eye, or from the monitor surface if relativeToMonitor.
func (c Configuration) FOVForDistance(distance units.Length, relativeToMonitor bool) units.Angle {
	fromEye := distance
	if relativeToMonitor {
		fromEye = distance + c.Distance
	}

	// Project the eye-to-screen half angle out to the reference plane...
	baseHalfAngle := c.FOV().Radians() / 2
	halfWidth := math.Tan(baseHalfAngle) * fromEye.Meters()

	// ...and view that half width from the reference distance itself.
	halfFinalAngle := math.Atan(halfWidth / distance.Meters())

	return units.Angle(halfFinalAngle * 2)
}

func angleFor(extent, distance units.Length) units.Angle {
	opposite := extent.Meters() / 2
	adjacent := distance.Meters()
	return units.Angle(2 * math.Atan(opposite/adjacent))
}
