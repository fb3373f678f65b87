package viz

import (
	"math"

	"github.com/Ege-Guler/solaire/internal/orbit"
)

// Camera projects scene coordinates onto the braille canvas. The view
// looks at the sun from in front of the system; Tilt rotates the
// orbital plane about the X axis, from edge-on (0) to top-down (pi/2).
type Camera struct {
	Tilt        float64 // radians
	Zoom        float64
	WorldRadius float64 // scene units mapped to the smaller canvas extent
}

func NewCamera(worldRadius float64) *Camera {
	return &Camera{
		Tilt:        math.Pi / 3,
		Zoom:        1.0,
		WorldRadius: worldRadius,
	}
}

func (c *Camera) ZoomIn()  { c.Zoom = math.Min(64, c.Zoom*2) }
func (c *Camera) ZoomOut() { c.Zoom = math.Max(1.0/16, c.Zoom/2) }

// Project maps a scene point to sub-pixel canvas coordinates. sw and sh
// are the canvas sub-pixel dimensions; degenerate ones clamp to 1.
func (c *Camera) Project(p orbit.Vec3, sw, sh int) (int, int) {
	if sw <= 0 {
		sw = 1
	}
	if sh <= 0 {
		sh = 1
	}

	sinT, cosT := math.Sin(c.Tilt), math.Cos(c.Tilt)
	// Rotate the plane about X; bodies live at Y=0 so only Z
	// contributes to screen height.
	screenY := p.Z*sinT - p.Y*cosT

	minDim := float64(sh)
	if float64(sw) < minDim {
		minDim = float64(sw)
	}
	scale := c.Zoom * minDim / (2 * c.WorldRadius)

	x := sw/2 + int(p.X*scale)
	y := sh/2 + int(screenY*scale)
	return x, y
}
