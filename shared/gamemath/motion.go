// Package gamemath holds the pure math shared by the encounter systems.
// Nothing in here touches the ECS world, resolv or ebiten.
package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// LinearMotion is a constant-velocity float accumulator. Speeds are derived once
// at creation; X and Y are never rounded in place.
type LinearMotion struct {
	X, Y           float64
	SpeedX, SpeedY float64
	Elapsed        float64 // ms integrated so far
	Duration       float64 // ms to cover the configured distance
}

// NewLinearMotion returns a motion starting at origin that covers distance along
// angleDeg in timeToCover milliseconds. A non-positive timeToCover yields a
// motion that never moves.
func NewLinearMotion(origin dmath.Vec2, angleDeg, distance, timeToCover float64) LinearMotion {
	m := LinearMotion{X: origin.X, Y: origin.Y, Duration: timeToCover}
	if timeToCover <= 0 {
		return m
	}
	rad := Radians(angleDeg)
	m.SpeedX = distance * math.Cos(rad) / timeToCover
	m.SpeedY = distance * math.Sin(rad) / timeToCover
	return m
}

// Integrate advances the accumulator by dt milliseconds.
func (m *LinearMotion) Integrate(dt float64) {
	if dt <= 0 {
		return
	}
	m.X += m.SpeedX * dt
	m.Y += m.SpeedY * dt
	m.Elapsed += dt
}

// Position returns the accumulator as a vector.
func (m LinearMotion) Position() dmath.Vec2 {
	return dmath.Vec2{X: m.X, Y: m.Y}
}

// Rounded returns the published position.
func (m LinearMotion) Rounded() (int, int) {
	return Round(m.X), Round(m.Y)
}

// timeEpsilon absorbs float drift when summing many frame deltas.
const timeEpsilon = 1e-6

// Travelled reports whether the configured distance has been covered.
func (m LinearMotion) Travelled() bool {
	return m.Duration > 0 && m.Elapsed >= m.Duration-timeEpsilon
}

// Round converts an accumulator to the integer value exposed to rendering and collision.
func Round(v float64) int {
	return int(math.Round(v))
}

// TickTimer decrements a millisecond timer, clamping at zero.
func TickTimer(remaining, dt float64) float64 {
	if dt < 0 {
		dt = 0
	}
	remaining -= dt
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Distance returns the euclidean distance between two points.
func Distance(a, b dmath.Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
