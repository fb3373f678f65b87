// Package orbit derives body transforms from the animation clock.
//
// Each body's pose is a pure function of the clock counters and its
// static configuration:
//
//	orbitalAngle = 360 * dayOfYear / orbitalPeriodDays
//	spinAngle    = 360 * hourOfDay / rotationPeriodDays
//
// Angles grow without bound; the rendering side handles large rotation
// values, and [Normalize] exists for anything that serializes or
// displays them. Nested bodies (the moon around Earth) compose by
// applying the parent's orbital rotation before their own, which for
// rotations about the shared +Y axis reduces to summing the angles.
package orbit
