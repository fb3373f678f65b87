package export

import (
	"strings"
	"testing"

	"github.com/Ege-Guler/solaire/internal/body"
	"github.com/Ege-Guler/solaire/internal/viz"
)

func TestOrbitsToSVG(t *testing.T) {
	svg := OrbitsToSVG(body.Catalog(), 365, 800, 800)

	if !strings.HasPrefix(svg, "<?xml") {
		t.Error("missing XML prolog")
	}
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "</svg>") {
		t.Error("not a complete SVG document")
	}

	// One path per planet.
	if got := strings.Count(svg, "<path"); got != 8 {
		t.Errorf("expected 8 orbit paths, got %d", got)
	}

	// Earth's catalog color appears as a stroke.
	if !strings.Contains(svg, "#3333ff") {
		t.Error("earth stroke color missing")
	}
}

func TestCanvasToSVG(t *testing.T) {
	c := viz.NewCanvas(4, 4)
	c.Set(2, 3)
	c.Set(5, 7)

	svg := CanvasToSVG(c, 4.0)

	if got := strings.Count(svg, "<circle"); got != 2 {
		t.Errorf("expected 2 dots, got %d", got)
	}
}

func TestCanvasToSVGNil(t *testing.T) {
	if got := CanvasToSVG(nil, 4.0); got != "" {
		t.Errorf("nil canvas should yield empty string, got %q", got)
	}
}
