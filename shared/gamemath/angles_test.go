package gamemath

import (
	"math"
	"testing"
)

func TestSpreadAnglesThreeFromZero(t *testing.T) {
	got := SpreadAngles(0, 3)
	want := []float64{0, 120, 240}
	if len(got) != len(want) {
		t.Fatalf("got %d angles, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("angle[%d] = %f, want %f", i, got[i], want[i])
		}
	}
}

func TestSpreadAnglesWrapsPast360(t *testing.T) {
	got := SpreadAngles(300, 4)
	want := []float64{300, 30, 120, 210}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("angle[%d] = %f, want %f", i, got[i], want[i])
		}
	}
}

func TestRingRadiusSixNodes(t *testing.T) {
	got := RingRadius(6, 20)
	if math.Abs(got-38.197) > 0.01 {
		t.Errorf("RingRadius(6, 20) = %f, want ~38.2", got)
	}
	if RingRadius(0, 20) != 0 {
		t.Error("empty ring should have zero radius")
	}
}

func TestNormalizeDegrees(t *testing.T) {
	tests := map[float64]float64{
		0:    0,
		360:  0,
		-90:  270,
		725:  5,
		59.5: 59.5,
	}
	for in, want := range tests {
		if got := NormalizeDegrees(in); math.Abs(got-want) > 1e-9 {
			t.Errorf("NormalizeDegrees(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestFollowAxisZones(t *testing.T) {
	const viewport, extent = 640.0, 2000.0
	tests := []struct {
		name  string
		focal float64
		want  float64
	}{
		{"near edge", 100, 0},
		{"boundary at half viewport", 320, 0},
		{"middle band", 1000, 680},
		{"far edge", 1900, 1360},
		{"far boundary", 1680, 1360},
	}
	for _, tt := range tests {
		if got := FollowAxis(tt.focal, viewport, extent); got != tt.want {
			t.Errorf("%s: FollowAxis(%v) = %v, want %v", tt.name, tt.focal, got, tt.want)
		}
	}
	if got := FollowAxis(500, viewport, 300); got != 0 {
		t.Errorf("world smaller than viewport should pin to 0, got %v", got)
	}
}

func TestAdvancePhaseAcceleratesNearImpact(t *testing.T) {
	far := AdvancePhase(0, 1, 16, 1000, 50)
	near := AdvancePhase(0, 1, 16, 100, 50)
	if near <= far {
		t.Errorf("phase step near impact (%f) should exceed far step (%f)", near, far)
	}
	floored := AdvancePhase(0, 1, 16, 0, 50)
	if math.Abs(floored-16.0/50.0) > 1e-9 {
		t.Errorf("remaining should floor at minRemaining, got %f", floored)
	}
}

func TestOscillate(t *testing.T) {
	if got := Oscillate(10, 4, math.Pi/2); math.Abs(got-14) > 1e-9 {
		t.Errorf("Oscillate peak = %f, want 14", got)
	}
	if got := Oscillate(10, 4, 0); got != 10 {
		t.Errorf("Oscillate at zero phase = %f, want 10", got)
	}
}
