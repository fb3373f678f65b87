package gui

import (
	"log"
	"math"
	"math/rand"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Ege-Guler/solaire/internal/body"
	"github.com/Ege-Guler/solaire/internal/clock"
	"github.com/Ege-Guler/solaire/internal/config"
	"github.com/Ege-Guler/solaire/internal/texture"
)

var (
	colBg      = rl.NewColor(5, 5, 12, 255)
	colOrbit   = rl.NewColor(60, 60, 70, 255)
	colText    = rl.NewColor(200, 200, 200, 255)
	colTextDim = rl.NewColor(110, 110, 110, 255)
	colPaused  = rl.NewColor(230, 120, 90, 255)
)

// App owns the window, the animation clock and the per-body render
// resources. All mutation happens on the render thread; raylib drives
// a single-threaded frame loop.
type App struct {
	Bodies []body.Body
	Clock  *clock.Clock
	Cfg    *config.Config
	Camera rl.Camera3D

	// Lighting component flags for the textured variant.
	Ambient  bool
	Diffuse  bool
	Specular bool

	models   map[string]rl.Model
	textured map[string]bool
	stars    []rl.Vector3
	distance float32
	closing  bool
}

func initWindow(cfg *config.Config) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), "solaire")
	rl.SetTargetFPS(int32(cfg.FPS))
	rl.SetExitKey(0) // Escape is handled in Update
}

func NewApp(cfg *config.Config) *App {
	clk := clock.New()
	clk.SetStepHours(cfg.StepHours)

	a := &App{
		Bodies:   body.Catalog(),
		Clock:    clk,
		Cfg:      cfg,
		Ambient:  true,
		Diffuse:  true,
		Specular: true,
		models:   make(map[string]rl.Model),
		textured: make(map[string]bool),
		distance: float32(cfg.CameraDistance),
	}

	a.Camera = rl.NewCamera3D(
		a.cameraPosition(),
		rl.NewVector3(0, 0, 0),
		rl.NewVector3(0, 1, 0),
		60.0,
		rl.CameraPerspective,
	)

	if cfg.ShowStars {
		numStars := 1500
		a.stars = make([]rl.Vector3, numStars)
		for i := range a.stars {
			// Random directions on a far shell behind the system.
			u, v := rand.Float64()*2-1, rand.Float64()*2*math.Pi
			r := 400.0
			s := math.Sqrt(1 - u*u)
			a.stars[i] = rl.NewVector3(
				float32(r*s*math.Cos(v)),
				float32(r*u),
				float32(r*s*math.Sin(v)),
			)
		}
	}

	a.loadModels()
	return a
}

// cameraPosition backs the eye off along +Z, raised by the ecliptic
// tilt so the orbital plane reads as tipped toward the viewer.
func (a *App) cameraPosition() rl.Vector3 {
	tilt := a.Cfg.TiltDeg * math.Pi / 180.0
	return rl.NewVector3(
		0,
		a.distance*float32(math.Sin(tilt)),
		a.distance*float32(math.Cos(tilt)),
	)
}

// loadModels builds one sphere model per body and uploads its texture.
// A missing or corrupt bitmap is logged and the body keeps its flat
// catalog color; the animation is unaffected.
func (a *App) loadModels() {
	for _, b := range a.Bodies {
		mesh := rl.GenMeshSphere(1.0, 16, 16)
		model := rl.LoadModelFromMesh(mesh)

		if a.Cfg.Textured && b.Texture != "" {
			path := filepath.Join(a.Cfg.TextureDir, b.Texture)
			img, err := texture.Load(path)
			if err != nil {
				log.Printf("gui: %v, falling back to flat color for %s", err, b.Name)
			} else {
				rlImg := rl.NewImageFromImage(img.Pixels)
				tex := rl.LoadTextureFromImage(rlImg)
				rl.UnloadImage(rlImg)
				rl.SetTextureFilter(tex, rl.FilterBilinear)
				rl.SetMaterialTexture(model.Materials, rl.MapDiffuse, tex)
				a.textured[b.Name] = true
			}
		}

		a.models[b.Name] = model
	}
}

// Run opens the window and blocks in the frame loop until the user
// quits.
func Run(cfg *config.Config) {
	initWindow(cfg)
	defer rl.CloseWindow()

	a := NewApp(cfg)
	defer a.unload()
	a.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !a.closing {
		a.Update()
		a.Draw()
	}
}

// Update dispatches keyboard commands and applies one clock tick.
func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		a.closing = true
		return
	}

	if rl.IsKeyPressed(rl.KeyR) {
		a.Clock.ToggleRun()
	}
	if rl.IsKeyPressed(rl.KeyS) {
		a.Clock.StepOnce()
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		a.Clock.IncreaseRate()
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		a.Clock.DecreaseRate()
	}

	// Lighting component toggles (textured variant).
	if rl.IsKeyPressed(rl.KeyA) {
		a.Ambient = !a.Ambient
	}
	if rl.IsKeyPressed(rl.KeyD) {
		a.Diffuse = !a.Diffuse
	}
	if rl.IsKeyPressed(rl.KeyOne) {
		a.Specular = !a.Specular
	}

	if rl.IsKeyPressed(rl.KeyO) {
		a.Cfg.ShowOrbits = !a.Cfg.ShowOrbits
	}

	// Wheel zoom; arrows are taken by the time-step controls.
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.distance -= wheel * a.distance * 0.1
		if a.distance < 1 {
			a.distance = 1
		}
		if a.distance > 200 {
			a.distance = 200
		}
	}
	a.Camera.Position = a.cameraPosition()

	a.Clock.Tick()
	a.Clock.FinishStep()
}

func (a *App) unload() {
	for _, m := range a.models {
		rl.UnloadModel(m)
	}
}
