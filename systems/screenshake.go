package systems

import (
	"log"

	"github.com/automoto/doomerang-boss/components"
	"github.com/automoto/doomerang-boss/config"
	"github.com/automoto/doomerang-boss/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// TriggerScreenShake queues a shake event behind any already queued. It returns
// the event ID, or 0 when the event was rejected.
func TriggerScreenShake(e *ecs.ECS, kind config.ShakeKind, magnitude, durationMS, velocity float64) int {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok || !cameraEntry.HasComponent(components.ScreenShake) {
		return 0
	}
	if durationMS <= 0 {
		log.Printf("Warning: ignoring %s screen shake with duration %v", kind, durationMS)
		return 0
	}

	shake := components.ScreenShake.Get(cameraEntry)
	if shake.NextID == 0 {
		shake.NextID = 1
	}
	id := shake.NextID
	shake.NextID++
	shake.Queue = append(shake.Queue, components.ShakeEvent{
		ID:        id,
		Kind:      kind,
		Magnitude: magnitude,
		Velocity:  velocity,
		Duration:  durationMS,
		Remaining: durationMS,
	})
	return id
}

// UpdateScreenShake applies the head of the shake queue to the camera. A popped
// event's successor starts on the following tick.
func UpdateScreenShake(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camera.Shake = math.Vec2{}

	if !cameraEntry.HasComponent(components.ScreenShake) {
		publishCameraOffset(camera)
		return
	}
	shake := components.ScreenShake.Get(cameraEntry)

	enc := encounterData(e)
	head, ok := shake.Head()
	if !ok || enc == nil {
		publishCameraOffset(camera)
		return
	}

	m := shakeMagnitude(head)
	camera.Shake = math.Vec2{
		X: (enc.Rand.Float64()*2 - 1) * m,
		Y: (enc.Rand.Float64()*2 - 1) * m,
	}
	shake.LastApplied = head.ID

	head.Remaining = gamemath.TickTimer(head.Remaining, enc.DeltaTime)
	if head.Remaining <= 0 {
		shake.Pop()
	}

	publishCameraOffset(camera)
}

func shakeMagnitude(ev *components.ShakeEvent) float64 {
	fraction := 0.0
	if ev.Duration > 0 {
		fraction = ev.Remaining / ev.Duration
	}
	switch ev.Kind {
	case config.ShakeVelocity:
		return ev.Magnitude * ev.Velocity * fraction
	case config.ShakeDecay:
		return ev.Magnitude * fraction
	default:
		return ev.Magnitude
	}
}
