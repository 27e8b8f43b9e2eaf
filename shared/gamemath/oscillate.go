package gamemath

import "math"

// Oscillate evaluates midpoint + amplitude*sin(phase). It holds no state; callers
// own the accumulated phase.
func Oscillate(midpoint, amplitude, phase float64) float64 {
	return midpoint + amplitude*math.Sin(phase)
}

// AdvancePhase returns phase advanced by rate*dt/remaining, so oscillation speeds
// up as remaining shrinks. remaining is floored at minRemaining and the result is
// wrapped into [0, 2π).
func AdvancePhase(phase, rate, dt, remaining, minRemaining float64) float64 {
	if remaining < minRemaining {
		remaining = minRemaining
	}
	if remaining <= 0 || dt <= 0 {
		return phase
	}
	return math.Mod(phase+rate*dt/remaining, 2*math.Pi)
}
