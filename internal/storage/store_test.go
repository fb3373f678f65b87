package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Ege-Guler/solaire/internal/body"
	"github.com/Ege-Guler/solaire/internal/sim"
)

func runShort(t *testing.T) (sim.Config, *sim.Result) {
	t.Helper()
	cfg := sim.Config{StepHours: 24, Days: 5}
	result, err := sim.New(body.Catalog()).Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	return cfg, result
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	cfg, result := runShort(t)
	runID, err := st.Save(cfg, result)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if meta.ID != runID {
		t.Errorf("meta id %s, want %s", meta.ID, runID)
	}
	if meta.StepHours != 24 || meta.Days != 5 {
		t.Errorf("meta lost config: %+v", meta)
	}
	if len(meta.Bodies) != 10 {
		t.Errorf("expected 10 bodies, got %d", len(meta.Bodies))
	}
}

func TestLoadColumns(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	cfg, result := runShort(t)
	runID, err := st.Save(cfg, result)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	cols, err := st.LoadColumns(runID)
	if err != nil {
		t.Fatalf("load columns: %v", err)
	}

	days := cols["day"]
	if len(days) != 6 {
		t.Fatalf("expected 6 rows, got %d", len(days))
	}

	earth := cols["Earth_orbit_deg"]
	if len(earth) != 6 {
		t.Fatalf("missing Earth orbit column")
	}
	// One degree short of a full day's sweep: 360/365 per tick.
	wantStep := 360.0 / 365.0
	got := earth[1] - earth[0]
	if got < wantStep-1e-3 || got > wantStep+1e-3 {
		t.Errorf("earth angle step %v, want ~%v", got, wantStep)
	}
}

func TestStoredAnglesNormalized(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	// Long enough that raw mercury angles exceed 360.
	cfg := sim.Config{StepHours: 24, Days: 200}
	result, err := sim.New(body.Catalog()).Run(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}

	runID, err := st.Save(cfg, result)
	if err != nil {
		t.Fatal(err)
	}

	cols, err := st.LoadColumns(runID)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range cols["Mercury_orbit_deg"] {
		if v < 0 || v >= 360 {
			t.Fatalf("stored angle out of range: %v", v)
		}
	}
}

func TestLoadUnknownRun(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Load("ephemeris_0"); !errors.Is(err, ErrRunNotFound) {
		t.Fatalf("expected ErrRunNotFound, got %v", err)
	}
}

func TestListEmptyDir(t *testing.T) {
	st := New(t.TempDir() + "/never-created")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestExportJSON(t *testing.T) {
	cfg, result := runShort(t)

	var buf bytes.Buffer
	if err := ExportJSON(&buf, "test_run", cfg, result); err != nil {
		t.Fatalf("export: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if data.ID != "test_run" {
		t.Errorf("id %s", data.ID)
	}
	if len(data.Times) != 6 || len(data.Angles["Earth"]) != 6 {
		t.Errorf("export shape wrong: %d times, %d earth angles",
			len(data.Times), len(data.Angles["Earth"]))
	}
}

func TestHeader(t *testing.T) {
	h := Header([]string{"Sun", "Earth"})
	want := 1 + 2*4
	if len(h) != want {
		t.Fatalf("header length %d, want %d", len(h), want)
	}
	if h[0] != "day" || h[1] != "Sun_orbit_deg" {
		t.Errorf("unexpected header: %v", h)
	}
}
