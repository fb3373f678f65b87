// Package clock implements the animation clock driving the solar system:
// simulated hours and days that advance once per rendered frame, with
// run/pause/single-step control and a power-of-two time step.
package clock

// Step-rate bounds for IncreaseRate/DecreaseRate. Power-of-two limits so
// a matched increase/decrease pair restores the step exactly.
const (
	DefaultStepHours = 24.0
	MinStepHours     = 1.0 / 1024
	MaxStepHours     = 24.0 * 4096
)

// State describes the clock's control state.
type State int

const (
	Running State = iota
	Paused
	SingleStepPending
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case SingleStepPending:
		return "single-step"
	default:
		return "unknown"
	}
}

// Clock holds the simulated time counters. HourOfDay and DayOfYear are
// monotonically non-decreasing while running and frozen while paused.
// Neither wraps; angles derived from them stay continuous across years.
type Clock struct {
	hourOfDay  float64
	dayOfYear  float64
	stepHours  float64
	running    bool
	singleStep bool
}

func New() *Clock {
	return &Clock{
		stepHours: DefaultStepHours,
		running:   true,
	}
}

func (c *Clock) HourOfDay() float64 { return c.hourOfDay }
func (c *Clock) DayOfYear() float64 { return c.dayOfYear }
func (c *Clock) StepHours() float64 { return c.stepHours }
func (c *Clock) Running() bool      { return c.running }

func (c *Clock) State() State {
	switch {
	case c.singleStep:
		return SingleStepPending
	case c.running:
		return Running
	default:
		return Paused
	}
}

// Tick advances the simulated time by one step. It is a no-op while the
// clock is not running.
func (c *Clock) Tick() {
	if !c.running {
		return
	}
	c.hourOfDay += c.stepHours
	c.dayOfYear += c.stepHours / 24.0
}

// ToggleRun flips between running and paused. A pending single step is
// cancelled in favour of continuous play.
func (c *Clock) ToggleRun() {
	if c.singleStep {
		c.singleStep = false
		c.running = true
		return
	}
	c.running = !c.running
}

// StepOnce arms a single animation step: the clock runs for exactly one
// Tick, after which the driver must call FinishStep to pause it again.
func (c *Clock) StepOnce() {
	c.singleStep = true
	c.running = true
}

// FinishStep is called by the frame driver after a tick has been applied.
// If a single step was pending, the clock returns to paused.
func (c *Clock) FinishStep() {
	if c.singleStep {
		c.singleStep = false
		c.running = false
	}
}

// IncreaseRate doubles the time step, up to MaxStepHours.
func (c *Clock) IncreaseRate() {
	if c.stepHours*2 <= MaxStepHours {
		c.stepHours *= 2
	}
}

// DecreaseRate halves the time step, down to MinStepHours.
func (c *Clock) DecreaseRate() {
	if c.stepHours/2 >= MinStepHours {
		c.stepHours /= 2
	}
}

// SetStepHours overrides the time step, clamping to the valid range.
// Used when starting from a config file.
func (c *Clock) SetStepHours(h float64) {
	if h < MinStepHours {
		h = MinStepHours
	}
	if h > MaxStepHours {
		h = MaxStepHours
	}
	c.stepHours = h
}

// Date splits the raw counters into whole years, days and hours for
// display. Year length follows the Earth year used by the body catalog.
func (c *Clock) Date() (year int, day int, hour float64) {
	const yearDays = 365.0
	totalDays := c.dayOfYear
	year = int(totalDays / yearDays)
	day = int(totalDays) % int(yearDays)
	hour = c.hourOfDay - float64(int(c.hourOfDay/24.0))*24.0
	return year, day, hour
}
