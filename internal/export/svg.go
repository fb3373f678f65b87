// Package export renders orbit trajectories and canvas snapshots as SVG.
package export

import (
	"fmt"
	"strings"

	"github.com/Ege-Guler/solaire/internal/body"
	"github.com/Ege-Guler/solaire/internal/orbit"
	"github.com/Ege-Guler/solaire/internal/viz"
)

// OrbitsToSVG draws every orbiting body's path over the given simulated
// span as one polyline per body, viewed top-down.
func OrbitsToSVG(bodies []body.Body, days float64, width, height int) string {
	maxOrbit := 0.0
	for _, b := range bodies {
		if b.OrbitRadius > maxOrbit {
			maxOrbit = b.OrbitRadius
		}
	}
	if maxOrbit == 0 {
		maxOrbit = 1
	}

	minDim := float64(height)
	if float64(width) < minDim {
		minDim = float64(width)
	}
	scale := minDim / (2.2 * maxOrbit)
	cx, cy := float64(width)/2, float64(height)/2

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	const samplesPerBody = 256
	for _, b := range bodies {
		if !b.Orbits() || b.Parent != "Sun" {
			continue
		}

		color := fmt.Sprintf("#%02x%02x%02x", b.Color.R, b.Color.G, b.Color.B)
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1" d="M`, color))

		for i := 0; i <= samplesPerBody; i++ {
			day := days * float64(i) / samplesPerBody
			p := orbit.Position(b.OrbitRadius, orbit.OrbitalAngle(day, b.OrbitalPeriodDays))
			x := cx + p.X*scale
			y := cy + p.Z*scale
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	// Sun marker.
	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="3" fill="#ffdc3c"/>`, cx, cy))
	sb.WriteString("\n</svg>")
	return sb.String()
}

// CanvasToSVG converts a braille canvas snapshot to SVG dots, matching
// the terminal view's sub-pixel grid.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	sw, sh := canvas.Width*2, canvas.Height*4
	width := float64(sw) * scale
	height := float64(sh) * scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#e8e8e8">
`, width, height, width, height))

	r := scale * 0.4
	for y := 0; y < sh; y++ {
		for x := 0; x < sw; x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, (float64(x)+0.5)*scale, (float64(y)+0.5)*scale, r))
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
