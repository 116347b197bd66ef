package trifill

import (
	"math"
	"time"
)

const (
	// RotationSteps is the number of discrete states of the rotation cycle.
	RotationSteps = 3
	// StepAngle is the rotation added by each step (120°).
	StepAngle = 2 * math.Pi / RotationSteps
	// MinRotationRate replaces non-positive rates.
	MinRotationRate = 0.0001
)

// Animator cycles the global rotation through 0°, 120° and 240°, advancing
// one step every 1/rate seconds. There is no interpolation between steps:
// the angle snaps.
type Animator struct {
	period time.Duration
	step   int
	last   time.Time
}

// NewAnimator returns an animator in step 0 whose period starts at start.
// Rates that are not strictly positive are clamped to MinRotationRate.
func NewAnimator(rate float64, start time.Time) *Animator {
	if !(rate > 0) {
		logger().Warn("rotation rate must be positive, clamping", "rate", rate, "min", MinRotationRate)
		rate = MinRotationRate
	}
	return &Animator{
		period: time.Duration(float64(time.Second) / rate),
		last:   start,
	}
}

// Update advances the state when a full period has elapsed since the last
// step and returns the current angle. Late frames do not accumulate: the next
// period starts at now.
func (a *Animator) Update(now time.Time) float64 {
	if now.Sub(a.last) >= a.period {
		a.step = (a.step + 1) % RotationSteps
		a.last = now
	}
	return a.Angle()
}

// Step returns the current step index in [0, RotationSteps).
func (a *Animator) Step() int { return a.step }

// Angle returns the current rotation in radians.
func (a *Animator) Angle() float64 { return float64(a.step) * StepAngle }

// Period returns the time between two steps.
func (a *Animator) Period() time.Duration { return a.period }

// StepAngleOf returns the rotation angle of step i, wrapping i into the cycle.
func StepAngleOf(i int) float64 {
	i %= RotationSteps
	if i < 0 {
		i += RotationSteps
	}
	return float64(i) * StepAngle
}
