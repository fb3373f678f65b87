package orbit

import (
	"math"

	"github.com/Ege-Guler/solaire/internal/body"
)

// Vec3 is a point in scene coordinates. The orbital plane is XZ; +Y is
// the axis every body orbits and spins around.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Length() float64      { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// OrbitalAngle returns the angle in degrees a body has swept around its
// parent after dayOfYear simulated days. The result is linear in
// dayOfYear and deliberately not normalized; callers that serialize or
// display it should pass it through Normalize.
func OrbitalAngle(dayOfYear, orbitalPeriodDays float64) float64 {
	return 360.0 * dayOfYear / orbitalPeriodDays
}

// SpinAngle returns the rotation in degrees of a body around its own
// axis after hourOfDay simulated hours. Rotation periods are in days.
func SpinAngle(hourOfDay, rotationPeriodDays float64) float64 {
	return 360.0 * hourOfDay / rotationPeriodDays
}

// Normalize maps an angle in degrees onto [0, 360).
func Normalize(deg float64) float64 {
	deg = math.Mod(deg, 360.0)
	if deg < 0 {
		deg += 360.0
	}
	return deg
}

// Position places a point at the given radius along +X, rotated about +Y
// by angleDeg. This matches the modelview order rotate-then-translate.
func Position(radius, angleDeg float64) Vec3 {
	rad := angleDeg * math.Pi / 180.0
	return Vec3{
		X: radius * math.Cos(rad),
		Z: -radius * math.Sin(rad),
	}
}

// Transform is a body's derived pose for one frame. It is recomputed
// from the clock every frame and never cached.
type Transform struct {
	OrbitalAngle float64 // degrees around the parent, unnormalized
	SpinAngle    float64 // degrees around the body's own axis, unnormalized
	Position     Vec3    // heliocentric scene position
}

// For computes a body's transform at the given simulated time. For a
// nested body the parent's transform must be supplied; rotations about
// the shared axis compose additively, so the child's offset is rotated
// by the sum of both orbital angles before translating from the parent.
func For(b body.Body, parent *Transform, dayOfYear, hourOfDay float64) Transform {
	var t Transform
	if b.Orbits() {
		t.OrbitalAngle = OrbitalAngle(dayOfYear, b.OrbitalPeriodDays)
	}
	if b.Spins() {
		t.SpinAngle = SpinAngle(hourOfDay, b.RotationPeriodDays)
	}

	if parent != nil {
		offset := Position(b.OrbitRadius, parent.OrbitalAngle+t.OrbitalAngle)
		t.Position = parent.Position.Add(offset)
	} else {
		t.Position = Position(b.OrbitRadius, t.OrbitalAngle)
	}
	return t
}

// System computes transforms for every body in the catalog slice, keyed
// by body name. The slice must be ordered parents-first, as returned by
// body.Catalog.
func System(bodies []body.Body, dayOfYear, hourOfDay float64) map[string]Transform {
	out := make(map[string]Transform, len(bodies))
	for _, b := range bodies {
		var parent *Transform
		if p, ok := out[b.Parent]; ok {
			parent = &p
		}
		out[b.Name] = For(b, parent, dayOfYear, hourOfDay)
	}
	return out
}
