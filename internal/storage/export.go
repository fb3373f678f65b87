package storage

import (
	"encoding/json"
	"io"

	"github.com/Ege-Guler/solaire/internal/orbit"
	"github.com/Ege-Guler/solaire/internal/sim"
)

// ExportData is the JSON export schema for a run.
type ExportData struct {
	ID        string               `json:"id"`
	StepHours float64              `json:"step_hours"`
	Days      float64              `json:"days"`
	Ticks     int                  `json:"ticks"`
	Bodies    []string             `json:"bodies"`
	Times     []float64            `json:"times"`
	Angles    map[string][]float64 `json:"orbit_deg"`
	Spins     map[string][]float64 `json:"spin_deg"`
}

// ExportJSON writes a run result to w. Angles are normalized, as in the
// CSV path.
func ExportJSON(w io.Writer, id string, cfg sim.Config, result *sim.Result) error {
	data := ExportData{
		ID:        id,
		StepHours: cfg.StepHours,
		Days:      cfg.Days,
		Ticks:     result.Ticks,
		Bodies:    result.Bodies,
		Times:     make([]float64, len(result.Samples)),
		Angles:    make(map[string][]float64, len(result.Bodies)),
		Spins:     make(map[string][]float64, len(result.Bodies)),
	}

	for _, name := range result.Bodies {
		data.Angles[name] = make([]float64, len(result.Samples))
		data.Spins[name] = make([]float64, len(result.Samples))
	}

	for i, sample := range result.Samples {
		data.Times[i] = sample.Day
		for _, name := range result.Bodies {
			tf := sample.Bodies[name]
			data.Angles[name][i] = orbit.Normalize(tf.OrbitalAngle)
			data.Spins[name][i] = orbit.Normalize(tf.SpinAngle)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
