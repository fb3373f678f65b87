package sim

import (
	"context"
	"math"
	"testing"

	"github.com/Ege-Guler/solaire/internal/body"
	"github.com/Ege-Guler/solaire/internal/orbit"
)

func TestRunSampleCount(t *testing.T) {
	s := New(body.Catalog())

	result, err := s.Run(context.Background(), Config{StepHours: 24, Days: 10})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	// Initial state plus 10 ticks.
	if len(result.Samples) != 11 {
		t.Errorf("expected 11 samples, got %d", len(result.Samples))
	}
	if result.Ticks != 10 {
		t.Errorf("expected 10 ticks, got %d", result.Ticks)
	}
	if len(result.Bodies) != 10 {
		t.Errorf("expected 10 bodies, got %d", len(result.Bodies))
	}
}

func TestRunEarthFullYear(t *testing.T) {
	s := New(body.Catalog())

	result, err := s.Run(context.Background(), Config{StepHours: 24, Days: 365})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	last := result.Samples[len(result.Samples)-1]
	earth := last.Bodies["Earth"]
	if math.Abs(earth.OrbitalAngle-360.0) > 1e-9 {
		t.Errorf("after 365 days Earth at %v degrees, want 360", earth.OrbitalAngle)
	}
}

func TestRunInvalidConfig(t *testing.T) {
	s := New(body.Catalog())

	for _, cfg := range []Config{
		{StepHours: 0, Days: 10},
		{StepHours: -1, Days: 10},
		{StepHours: 24, Days: 0},
		{StepHours: 24, Days: -5},
	} {
		if _, err := s.Run(context.Background(), cfg); err == nil {
			t.Errorf("expected error for %+v", cfg)
		}
	}
}

func TestRunCanceled(t *testing.T) {
	s := New(body.Catalog())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Run(ctx, Config{StepHours: 24, Days: 1000})
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRunWithCallbackEarlyStop(t *testing.T) {
	s := New(body.Catalog())

	calls := 0
	err := s.RunWithCallback(context.Background(), Config{StepHours: 24, Days: 1000},
		func(day, hour float64, tfs map[string]orbit.Transform) bool {
			calls++
			return calls < 5
		})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if calls != 5 {
		t.Errorf("expected 5 callbacks, got %d", calls)
	}
}

func TestSamplesMonotonic(t *testing.T) {
	s := New(body.Catalog())

	result, err := s.Run(context.Background(), Config{StepHours: 6, Days: 5})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	for i := 1; i < len(result.Samples); i++ {
		if result.Samples[i].Day <= result.Samples[i-1].Day {
			t.Fatalf("day not increasing at sample %d", i)
		}
	}
}
