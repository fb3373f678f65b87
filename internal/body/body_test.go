package body

import "testing"

func TestCatalogShape(t *testing.T) {
	bodies := Catalog()

	if len(bodies) != 10 {
		t.Fatalf("expected sun + 8 planets + moon, got %d bodies", len(bodies))
	}
	if bodies[0].Name != "Sun" {
		t.Errorf("expected Sun first, got %s", bodies[0].Name)
	}

	planets := 0
	for _, b := range bodies {
		if b.Parent == "Sun" {
			planets++
		}
	}
	if planets != 8 {
		t.Errorf("expected 8 planets, got %d", planets)
	}
}

func TestParentsPrecedeChildren(t *testing.T) {
	bodies := Catalog()
	seen := map[string]bool{}
	for _, b := range bodies {
		if b.Parent != "" && !seen[b.Parent] {
			t.Errorf("%s appears before its parent %s", b.Name, b.Parent)
		}
		seen[b.Name] = true
	}
}

func TestOrbitingBodiesHavePositivePeriods(t *testing.T) {
	for _, b := range Catalog() {
		if !b.Orbits() {
			continue
		}
		if b.OrbitalPeriodDays <= 0 {
			t.Errorf("%s: non-positive orbital period", b.Name)
		}
		if b.OrbitRadius <= 0 {
			t.Errorf("%s: non-positive orbit radius", b.Name)
		}
	}
}

func TestMoonOrbitsEarthTwelveTimesAYear(t *testing.T) {
	moon, ok := Find("Moon")
	if !ok {
		t.Fatal("moon missing from catalog")
	}
	if moon.Parent != "Earth" {
		t.Errorf("moon parent is %s", moon.Parent)
	}
	if got := EarthYear / moon.OrbitalPeriodDays; got != 12.0 {
		t.Errorf("expected 12 lunar orbits per year, got %v", got)
	}
}

func TestFind(t *testing.T) {
	if _, ok := Find("Pluto"); ok {
		t.Error("Pluto should not be in the catalog")
	}
	earth, ok := Find("Earth")
	if !ok || earth.OrbitalPeriodDays != EarthYear {
		t.Errorf("Find(Earth) = %+v, %v", earth, ok)
	}
}
