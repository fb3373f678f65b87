// Package storage persists headless ephemeris runs: one directory per
// run holding metadata.json and ephemeris.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Ege-Guler/solaire/internal/orbit"
	"github.com/Ege-Guler/solaire/internal/sim"
)

// ErrRunNotFound is returned when a run ID has no directory in the store.
var ErrRunNotFound = errors.New("run not found")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	StepHours float64   `json:"step_hours"`
	Days      float64   `json:"days"`
	Ticks     int       `json:"ticks"`
	Bodies    []string  `json:"bodies"`
}

// Save writes a run to disk and returns its ID. Angles are normalized
// to [0, 360) on the way out; the raw counters grow without bound and
// are not meaningful in a file.
func (s *Store) Save(cfg sim.Config, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("ephemeris_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		StepHours: cfg.StepHours,
		Days:      cfg.Days,
		Ticks:     result.Ticks,
		Bodies:    result.Bodies,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "ephemeris.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(Header(result.Bodies)); err != nil {
		return "", err
	}

	for _, sample := range result.Samples {
		row := make([]string, 0, 1+len(result.Bodies)*4)
		row = append(row, strconv.FormatFloat(sample.Day, 'f', 6, 64))
		for _, name := range result.Bodies {
			tf := sample.Bodies[name]
			row = append(row,
				strconv.FormatFloat(orbit.Normalize(tf.OrbitalAngle), 'f', 4, 64),
				strconv.FormatFloat(orbit.Normalize(tf.SpinAngle), 'f', 4, 64),
				strconv.FormatFloat(tf.Position.X, 'f', 6, 64),
				strconv.FormatFloat(tf.Position.Z, 'f', 6, 64),
			)
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// Header returns the CSV column names for a body list: the day column,
// then orbit/spin/x/z per body.
func Header(bodies []string) []string {
	header := []string{"day"}
	for _, name := range bodies {
		header = append(header,
			name+"_orbit_deg", name+"_spin_deg", name+"_x", name+"_z")
	}
	return header
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadColumns reads a run's CSV back as named columns.
func (s *Store) LoadColumns(runID string) (map[string][]float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "ephemeris.csv"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return map[string][]float64{}, nil
	}

	header := records[0]
	cols := make(map[string][]float64, len(header))
	for _, name := range header {
		cols[name] = make([]float64, 0, len(records)-1)
	}

	for _, record := range records[1:] {
		for i, cell := range record {
			if i >= len(header) {
				break
			}
			val, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				continue
			}
			cols[header[i]] = append(cols[header[i]], val)
		}
	}

	return cols, nil
}
