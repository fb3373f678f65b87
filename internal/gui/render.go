package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Ege-Guler/solaire/internal/clock"
	"github.com/Ege-Guler/solaire/internal/orbit"
)

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(colBg)

	rl.BeginMode3D(a.Camera)

	for _, s := range a.stars {
		rl.DrawPoint3D(s, rl.White)
	}

	transforms := orbit.System(a.Bodies, a.Clock.DayOfYear(), a.Clock.HourOfDay())

	if a.Cfg.ShowOrbits {
		a.drawOrbits(transforms)
	}
	a.drawBodies(transforms)

	rl.EndMode3D()

	a.drawHUD()
	rl.EndDrawing()
}

// drawOrbits traces each orbit as a circle in the ecliptic plane,
// centered on the parent so the moon's ring follows Earth around.
func (a *App) drawOrbits(transforms map[string]orbit.Transform) {
	for _, b := range a.Bodies {
		if !b.Orbits() {
			continue
		}
		center := rl.NewVector3(0, 0, 0)
		if pt, ok := transforms[b.Parent]; ok {
			center = rl.NewVector3(float32(pt.Position.X), float32(pt.Position.Y), float32(pt.Position.Z))
		}
		rl.DrawCircle3D(center, float32(b.OrbitRadius), rl.NewVector3(1, 0, 0), 90, colOrbit)
	}
}

func (a *App) drawBodies(transforms map[string]orbit.Transform) {
	up := rl.NewVector3(0, 1, 0)
	for _, b := range a.Bodies {
		t := transforms[b.Name]
		pos := rl.NewVector3(float32(t.Position.X), float32(t.Position.Y), float32(t.Position.Z))
		scale := rl.NewVector3(float32(b.Radius), float32(b.Radius), float32(b.Radius))
		spin := float32(orbit.Normalize(t.SpinAngle))

		model := a.models[b.Name]
		if a.textured[b.Name] {
			rl.DrawModelEx(model, pos, up, spin, scale, a.tint(rl.White))
		} else {
			col := rl.NewColor(b.Color.R, b.Color.G, b.Color.B, 255)
			rl.DrawModelWiresEx(model, pos, up, spin, scale, a.tint(col))
		}
	}
}

// tint approximates the fixed-function lighting toggles by scaling the
// draw color: each enabled component contributes a share of full
// brightness, and everything off leaves a faint silhouette.
func (a *App) tint(c rl.Color) rl.Color {
	f := 0.0
	if a.Ambient {
		f += 0.35
	}
	if a.Diffuse {
		f += 0.55
	}
	if a.Specular {
		f += 0.10
	}
	if f < 0.05 {
		f = 0.05
	}
	return rl.NewColor(
		uint8(float64(c.R)*f),
		uint8(float64(c.G)*f),
		uint8(float64(c.B)*f),
		c.A,
	)
}

func (a *App) drawHUD() {
	sw := int32(rl.GetScreenWidth())

	year, day, hour := a.Clock.Date()
	rl.DrawText(fmt.Sprintf("year %d  day %d  hour %04.1f", year, day, hour), 10, 10, 18, colText)
	rl.DrawText(fmt.Sprintf("step %.4g h/frame", a.Clock.StepHours()), 10, 32, 16, colText)

	state := a.Clock.State().String()
	stateCol := colText
	if a.Clock.State() != clock.Running {
		stateCol = colPaused
	}
	rl.DrawText(state, 10, 52, 16, stateCol)

	rl.DrawText(fmt.Sprintf("%d fps", rl.GetFPS()), sw-70, 10, 16, colTextDim)

	help := "r run/pause  s step  up/down rate  a/d/1 light  o orbits  wheel zoom  esc quit"
	rl.DrawText(help, 10, int32(rl.GetScreenHeight())-24, 14, colTextDim)
}
