package config

var Presets = map[string]*Config{
	// The classic wireframe demo: 600x360, one day per frame.
	"classic": {
		Width: 600, Height: 360, FPS: 60,
		StepHours:      24.0,
		CameraDistance: 8.0, TiltDeg: 15.0,
		ShowOrbits: true, ShowStars: true,
	},
	"textured": {
		Width: 1280, Height: 720, FPS: 60,
		StepHours: 24.0,
		Textured:  true, TextureDir: "images",
		CameraDistance: 8.0, TiltDeg: 15.0,
		ShowOrbits: true, ShowStars: true,
	},
	// One simulated hour per frame: watch planets spin.
	"slow": {
		Width: 800, Height: 600, FPS: 60,
		StepHours:      1.0,
		CameraDistance: 4.0, TiltDeg: 15.0,
		ShowOrbits: true, ShowStars: true,
	},
	// A week per frame: outer planets visibly move.
	"fast": {
		Width: 1280, Height: 720, FPS: 60,
		StepHours:      24.0 * 7,
		CameraDistance: 60.0, TiltDeg: 30.0,
		ShowOrbits: true, ShowStars: true,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	out := *cfg
	return &out
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
