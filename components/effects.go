package components

import (
	"github.com/automoto/doomerang-boss/config"
	"github.com/yohamta/donburi"
)

// ShakeEvent is a queued screen shake effect
type ShakeEvent struct {
	ID        int
	Kind      config.ShakeKind
	Magnitude float64 // max offset in pixels
	Velocity  float64 // external velocity magnitude, ShakeVelocity only
	Duration  float64 // ms
	Remaining float64 // ms
}

// ScreenShakeData is a strict FIFO of shake events. Only the head is active.
type ScreenShakeData struct {
	Queue       []ShakeEvent
	NextID      int
	LastApplied int // ID of the event whose offset was applied last, 0 if none
}

// Head returns the active event.
func (s *ScreenShakeData) Head() (*ShakeEvent, bool) {
	if len(s.Queue) == 0 {
		return nil, false
	}
	return &s.Queue[0], true
}

// Pop drops the active event.
func (s *ScreenShakeData) Pop() {
	if len(s.Queue) == 0 {
		return
	}
	s.Queue[0] = ShakeEvent{}
	s.Queue = s.Queue[1:]
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
