package gamemath

import (
	"math"
	"testing"

	dmath "github.com/yohamta/donburi/features/math"
)

func TestLinearMotionDisplacementIndependentOfTickSplit(t *testing.T) {
	const (
		distance = 300.0
		travel   = 1200.0
	)

	splits := map[string][]float64{
		"single tick":  {1200},
		"fixed 60fps":  repeat(1000.0/60.0, 72),
		"uneven ticks": {3, 250, 0.5, 16.7, 400, 33.3, 96.5, 400},
		"tiny ticks":   repeat(0.25, 4800),
	}

	for name, ticks := range splits {
		t.Run(name, func(t *testing.T) {
			sum := 0.0
			for _, dt := range ticks {
				sum += dt
			}
			if math.Abs(sum-travel) > 1e-6 {
				t.Fatalf("bad fixture: ticks sum to %f", sum)
			}

			m := NewLinearMotion(dmath.Vec2{X: 10, Y: 20}, 30, distance, travel)
			for _, dt := range ticks {
				m.Integrate(dt)
			}

			got := math.Hypot(m.X-10, m.Y-20)
			if math.Abs(got-distance) > 1e-6 {
				t.Errorf("displacement = %f, want %f", got, distance)
			}
			if !m.Travelled() {
				t.Error("expected motion to report travelled")
			}
		})
	}
}

func TestLinearMotionRoundedDoesNotMutateAccumulator(t *testing.T) {
	m := NewLinearMotion(dmath.Vec2{}, 0, 1, 3)
	for i := 0; i < 3; i++ {
		m.Integrate(1)
		m.Rounded()
	}
	// Three ticks of 1/3 px must land on 1, not 0 from per-tick rounding.
	if x, _ := m.Rounded(); x != 1 {
		t.Errorf("rounded x = %d, want 1", x)
	}
}

func TestLinearMotionZeroDurationIsStationary(t *testing.T) {
	m := NewLinearMotion(dmath.Vec2{X: 5, Y: 5}, 90, 100, 0)
	m.Integrate(500)
	if m.X != 5 || m.Y != 5 {
		t.Errorf("expected stationary motion, got (%f, %f)", m.X, m.Y)
	}
}

func TestTickTimerClampsAtZero(t *testing.T) {
	tests := []struct {
		remaining, dt, want float64
	}{
		{100, 40, 60},
		{10, 40, 0},
		{0, 16, 0},
		{50, -5, 50},
	}
	for _, tt := range tests {
		if got := TickTimer(tt.remaining, tt.dt); got != tt.want {
			t.Errorf("TickTimer(%v, %v) = %v, want %v", tt.remaining, tt.dt, got, tt.want)
		}
	}
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
