// Package body defines the fixed catalog of celestial bodies: the sun,
// the eight planets, and Earth's moon. The catalog is static configuration;
// bodies are never created or destroyed at runtime.
package body

// Color is a flat RGB draw color, used when no texture is available.
type Color struct {
	R, G, B uint8
}

// Body describes one celestial body. OrbitRadius and Radius are in scene
// units; the periods are in simulated days. A body with an empty Parent
// is the system's root and does not orbit.
type Body struct {
	Name               string
	Parent             string
	OrbitRadius        float64
	OrbitalPeriodDays  float64
	RotationPeriodDays float64
	Radius             float64
	Color              Color
	Texture            string
}

// Orbits reports whether the body revolves around a parent.
func (b Body) Orbits() bool { return b.Parent != "" && b.OrbitalPeriodDays > 0 }

// Spins reports whether the body rotates on its own axis.
func (b Body) Spins() bool { return b.RotationPeriodDays > 0 }

// Orbital periods in days.
const (
	MercuryYear = 88.0
	VenusYear   = 225.0
	EarthYear   = 365.0
	MarsYear    = 687.0
	JupiterYear = 4332.0
	SaturnYear  = 29.5 * 365.0
	UranusYear  = 84.0 * 365.0
	NeptuneYear = 165.0 * 365.0

	// The moon completes twelve orbits per Earth year.
	MoonMonth = EarthYear / 12.0
)

// Rotational periods in days.
const (
	MercuryDay = 58.7
	VenusDay   = 243.0
	EarthDay   = 1.0
	MarsDay    = 24.6 / 24.0
	JupiterDay = 9.83 / 24.0
	SaturnDay  = 10.23 / 24.0
	UranusDay  = 17.23 / 24.0
	NeptuneDay = 16.1 / 24.0
)

var catalog = []Body{
	{
		Name:    "Sun",
		Radius:  0.5,
		Color:   Color{255, 220, 60},
		Texture: "sun.bmp",
	},
	{
		Name: "Mercury", Parent: "Sun",
		OrbitRadius:       0.579,
		OrbitalPeriodDays: MercuryYear, RotationPeriodDays: MercuryDay,
		Radius: 0.1, Color: Color{128, 128, 128}, Texture: "mercury.bmp",
	},
	{
		Name: "Venus", Parent: "Sun",
		OrbitRadius:       1.082,
		OrbitalPeriodDays: VenusYear, RotationPeriodDays: VenusDay,
		Radius: 0.12, Color: Color{230, 153, 26}, Texture: "venus.bmp",
	},
	{
		Name: "Earth", Parent: "Sun",
		OrbitRadius:       1.496,
		OrbitalPeriodDays: EarthYear, RotationPeriodDays: EarthDay,
		Radius: 0.13, Color: Color{51, 51, 255}, Texture: "earth.bmp",
	},
	{
		Name: "Mars", Parent: "Sun",
		OrbitRadius:       2.28,
		OrbitalPeriodDays: MarsYear, RotationPeriodDays: MarsDay,
		Radius: 0.07, Color: Color{255, 0, 0}, Texture: "mars.bmp",
	},
	{
		Name: "Jupiter", Parent: "Sun",
		OrbitRadius:       7.79,
		OrbitalPeriodDays: JupiterYear, RotationPeriodDays: JupiterDay,
		Radius: 0.3, Color: Color{255, 128, 0}, Texture: "jupiter.bmp",
	},
	{
		Name: "Saturn", Parent: "Sun",
		OrbitRadius:       14.27,
		OrbitalPeriodDays: SaturnYear, RotationPeriodDays: SaturnDay,
		Radius: 0.25, Color: Color{255, 255, 128}, Texture: "saturn.bmp",
	},
	{
		Name: "Uranus", Parent: "Sun",
		OrbitRadius:       28.71,
		OrbitalPeriodDays: UranusYear, RotationPeriodDays: UranusDay,
		Radius: 0.2, Color: Color{128, 128, 255}, Texture: "uranus.bmp",
	},
	{
		Name: "Neptune", Parent: "Sun",
		OrbitRadius:       44.97,
		OrbitalPeriodDays: NeptuneYear, RotationPeriodDays: NeptuneDay,
		Radius: 0.18, Color: Color{77, 77, 204}, Texture: "neptune.bmp",
	},
	{
		Name: "Moon", Parent: "Earth",
		OrbitRadius:       0.2,
		OrbitalPeriodDays: MoonMonth,
		Radius:            0.05, Color: Color{77, 179, 77}, Texture: "moon.bmp",
	},
}

// Catalog returns a copy of the solar system bodies, ordered so that a
// parent always precedes its children.
func Catalog() []Body {
	out := make([]Body, len(catalog))
	copy(out, catalog)
	return out
}

// Find returns the named body and whether it exists.
func Find(name string) (Body, bool) {
	for _, b := range catalog {
		if b.Name == name {
			return b, true
		}
	}
	return Body{}, false
}
