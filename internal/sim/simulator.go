// Package sim runs the solar system headlessly: it drives the animation
// clock over a configured span and samples every body's transform at
// each tick, for storage, plotting and export.
package sim

import (
	"context"
	"fmt"

	"github.com/Ege-Guler/solaire/internal/body"
	"github.com/Ege-Guler/solaire/internal/clock"
	"github.com/Ege-Guler/solaire/internal/orbit"
)

type Config struct {
	// StepHours is the simulated-hours advance per tick.
	StepHours float64
	// Days is the total simulated span to cover.
	Days float64
}

// Sample is one tick's worth of derived state.
type Sample struct {
	Day    float64
	Hour   float64
	Bodies map[string]orbit.Transform
}

type Result struct {
	Bodies  []string // catalog order
	Samples []Sample
	Ticks   int
}

type Simulator struct {
	bodies []body.Body
}

func New(bodies []body.Body) *Simulator {
	return &Simulator{bodies: bodies}
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.StepHours <= 0 {
		return fmt.Errorf("step hours must be positive, got %f", cfg.StepHours)
	}
	if cfg.Days <= 0 {
		return fmt.Errorf("days must be positive, got %f", cfg.Days)
	}
	return nil
}

// Run ticks the clock until the simulated span is covered, recording a
// sample per tick. The initial state at day zero is included.
func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}

	ticks := int(cfg.Days * 24.0 / cfg.StepHours)
	result := &Result{
		Bodies:  names(s.bodies),
		Samples: make([]Sample, 0, ticks+1),
	}

	err := s.RunWithCallback(ctx, cfg, func(day, hour float64, tfs map[string]orbit.Transform) bool {
		result.Samples = append(result.Samples, Sample{Day: day, Hour: hour, Bodies: tfs})
		return true
	})
	if err != nil {
		return result, err
	}
	result.Ticks = len(result.Samples) - 1
	return result, nil
}

// RunWithCallback invokes fn for the initial state and after every tick.
// Returning false from fn stops the run early without error.
func (s *Simulator) RunWithCallback(ctx context.Context, cfg Config, fn func(day, hour float64, tfs map[string]orbit.Transform) bool) error {
	if err := s.validateConfig(cfg); err != nil {
		return err
	}

	c := clock.New()
	c.SetStepHours(cfg.StepHours)

	if !fn(c.DayOfYear(), c.HourOfDay(), orbit.System(s.bodies, c.DayOfYear(), c.HourOfDay())) {
		return nil
	}

	for c.DayOfYear() < cfg.Days {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		c.Tick()
		if !fn(c.DayOfYear(), c.HourOfDay(), orbit.System(s.bodies, c.DayOfYear(), c.HourOfDay())) {
			return nil
		}
	}
	return nil
}

func names(bodies []body.Body) []string {
	out := make([]string, len(bodies))
	for i, b := range bodies {
		out[i] = b.Name
	}
	return out
}
