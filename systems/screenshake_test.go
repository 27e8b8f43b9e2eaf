package systems

import (
	stdmath "math"
	"slices"
	"testing"

	"github.com/automoto/doomerang-boss/components"
	"github.com/automoto/doomerang-boss/config"
	"github.com/automoto/doomerang-boss/shared/gamemath"
)

func TestScreenShakeRunsInFIFOOrder(t *testing.T) {
	e := newTestEncounter(t)
	cameraEntry, _ := components.Camera.First(e.World)
	shake := components.ScreenShake.Get(cameraEntry)

	a := TriggerScreenShake(e, config.ShakeConstant, 4, 50, 0)
	b := TriggerScreenShake(e, config.ShakeDecay, 4, 30, 0)
	if a == 0 || b == 0 || a == b {
		t.Fatalf("unexpected event ids %d, %d", a, b)
	}

	var applied []int
	for range 6 {
		Step(e, 20)
		applied = append(applied, shake.LastApplied)
	}

	// a runs 50ms over three ticks, b starts on the tick after a is popped
	want := []int{a, a, a, b, b, b}
	if !slices.Equal(applied, want) {
		t.Errorf("applied order = %v, want %v", applied, want)
	}
	if len(shake.Queue) != 0 {
		t.Errorf("queue not drained: %v", shake.Queue)
	}

	camera := testCamera(e)
	if camera.Shake.X != 0 || camera.Shake.Y != 0 {
		t.Errorf("shake offset left behind after the queue drained: %v", camera.Shake)
	}
}

func TestScreenShakeRejectsZeroDuration(t *testing.T) {
	e := newTestEncounter(t)
	if id := TriggerScreenShake(e, config.ShakeConstant, 4, 0, 0); id != 0 {
		t.Errorf("zero duration shake accepted with id %d", id)
	}
	cameraEntry, _ := components.Camera.First(e.World)
	if n := len(components.ScreenShake.Get(cameraEntry).Queue); n != 0 {
		t.Errorf("queue has %d events, want 0", n)
	}
}

func TestScreenShakeOffsetStaysWithinMagnitude(t *testing.T) {
	e := newTestEncounter(t)
	TriggerScreenShake(e, config.ShakeConstant, 3, 10000, 0)

	camera := testCamera(e)
	for range 100 {
		Step(e, 16)
		if stdmath.Abs(camera.Shake.X) > 3 || stdmath.Abs(camera.Shake.Y) > 3 {
			t.Fatalf("shake offset %v exceeds magnitude 3", camera.Shake)
		}
		if camera.OffsetX != gamemath.Round(camera.Position.X+camera.Shake.X) ||
			camera.OffsetY != gamemath.Round(camera.Position.Y+camera.Shake.Y) {
			t.Fatalf("published offset (%d,%d) does not match position %v + shake %v",
				camera.OffsetX, camera.OffsetY, camera.Position, camera.Shake)
		}
	}
}

func TestShakeMagnitudeProfiles(t *testing.T) {
	tests := []struct {
		name string
		ev   components.ShakeEvent
		want float64
	}{
		{"constant", components.ShakeEvent{Kind: config.ShakeConstant, Magnitude: 4, Duration: 100, Remaining: 25}, 4},
		{"decay", components.ShakeEvent{Kind: config.ShakeDecay, Magnitude: 4, Duration: 100, Remaining: 25}, 1},
		{"velocity", components.ShakeEvent{Kind: config.ShakeVelocity, Magnitude: 4, Velocity: 0.5, Duration: 100, Remaining: 50}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shakeMagnitude(&tt.ev); stdmath.Abs(got-tt.want) > 1e-9 {
				t.Errorf("magnitude = %v, want %v", got, tt.want)
			}
		})
	}
}
