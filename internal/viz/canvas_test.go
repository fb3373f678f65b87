package viz

import (
	"strings"
	"testing"

	"github.com/Ege-Guler/solaire/internal/orbit"
)

func TestCanvasSetAndString(t *testing.T) {
	c := NewCanvas(4, 2)

	c.Set(0, 0)
	out := c.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if []rune(lines[0])[0] == brailleBase {
		t.Error("top-left cell should have a dot set")
	}
	if []rune(lines[1])[0] != brailleBase {
		t.Error("untouched cell should be empty braille")
	}
}

func TestCanvasIgnoresOutOfRange(t *testing.T) {
	c := NewCanvas(4, 2)

	c.Set(-1, 0)
	c.Set(0, -5)
	c.Set(1000, 3)
	c.Set(3, 1000)

	for _, r := range c.String() {
		if r != rune(brailleBase) && r != '\n' {
			t.Fatalf("out-of-range set leaked onto canvas: %q", r)
		}
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(3, 3)
	c.DrawLine(0, 0, 5, 11)
	c.Clear()

	for _, r := range c.String() {
		if r != rune(brailleBase) && r != '\n' {
			t.Fatal("clear left dots behind")
		}
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawLine(0, 0, 19, 39)

	if !c.IsSet(0, 0) || !c.IsSet(19, 39) {
		t.Error("line endpoints not lit")
	}
}

func TestFillCircle(t *testing.T) {
	c := NewCanvas(10, 10)
	c.FillCircle(10, 20, 2)

	if !c.IsSet(10, 20) {
		t.Error("circle center not lit")
	}
	if c.IsSet(10+4, 20) {
		t.Error("point outside radius lit")
	}
}

func TestCameraProjectCenter(t *testing.T) {
	cam := NewCamera(50)

	x, y := cam.Project(orbit.Vec3{}, 160, 104)
	if x != 80 || y != 52 {
		t.Errorf("origin projected to (%d,%d), want canvas center", x, y)
	}
}

func TestCameraProjectDegenerateDims(t *testing.T) {
	cam := NewCamera(50)

	// Must not panic or divide by zero.
	x, y := cam.Project(orbit.Vec3{X: 10}, 0, 0)
	_ = x
	_ = y
}

func TestCameraZoomBounds(t *testing.T) {
	cam := NewCamera(50)
	for i := 0; i < 20; i++ {
		cam.ZoomIn()
	}
	if cam.Zoom > 64 {
		t.Errorf("zoom exceeded bound: %v", cam.Zoom)
	}
	for i := 0; i < 40; i++ {
		cam.ZoomOut()
	}
	if cam.Zoom < 1.0/16 {
		t.Errorf("zoom below bound: %v", cam.Zoom)
	}
}

func TestCameraTiltFlattensZ(t *testing.T) {
	cam := NewCamera(50)
	cam.Tilt = 0 // edge-on: orbital plane collapses to a line

	_, y1 := cam.Project(orbit.Vec3{Z: 10}, 160, 104)
	_, y2 := cam.Project(orbit.Vec3{Z: -10}, 160, 104)
	if y1 != 52 || y2 != 52 {
		t.Errorf("edge-on view should flatten Z: got %d, %d", y1, y2)
	}
}
