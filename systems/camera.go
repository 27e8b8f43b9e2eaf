package systems

import (
	"log"

	"github.com/automoto/doomerang-boss/components"
	"github.com/automoto/doomerang-boss/config"
	"github.com/automoto/doomerang-boss/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	if boss, ok := SpawnCompletedThisTick(e); ok {
		StartPan(e, boss)
	}

	switch camera.Mode {
	case config.CameraStatic:
		updateStaticCamera(e, camera)
	case config.CameraFollow:
		updateFollowCamera(e, camera)
	case config.CameraPan:
		var dt float64
		if enc := encounterData(e); enc != nil {
			dt = enc.DeltaTime
		}
		updatePan(e, camera, dt)
	}

	publishCameraOffset(camera)
}

// StartPan begins the boss introduction pan toward target. If a pan is
// already running the target waits for it to finish.
func StartPan(e *ecs.ECS, target *donburi.Entry) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok || target == nil || !target.Valid() {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	if camera.Mode == config.CameraPan {
		camera.PendingPans = append(camera.PendingPans, target)
		return
	}
	beginPan(e, camera, target)
}

func beginPan(e *ecs.ECS, camera *components.CameraData, target *donburi.Entry) {
	destination := camera.Position
	if target.HasComponent(components.Object) {
		destination = cameraPositionFor(e, components.Object.Get(target).Center())
	}

	duration := config.Camera.PanDuration
	pan := &components.PanData{
		Phase:       config.PanToTarget,
		Target:      target,
		Origin:      camera.Position,
		Destination: destination,
		Timer:       duration,
	}
	if duration > 0 {
		pan.GradientX = (destination.X - camera.Position.X) / duration
		pan.GradientY = (destination.Y - camera.Position.Y) / duration
	}

	camera.Mode = config.CameraPan
	camera.Pan = pan
	setPlayerMayAct(e, false)
}

// updatePan advances the four pan phases. Time left over when a phase ends
// flows into the next one so the sequence length does not depend on tick size.
func updatePan(e *ecs.ECS, camera *components.CameraData, dt float64) {
	remaining := max(dt, 0)
	for camera.Mode == config.CameraPan && camera.Pan != nil {
		pan := camera.Pan
		if pan.Phase == config.PanHeld {
			return
		}
		if pan.Phase == config.LockOnTarget && playerDead(e) {
			holdPan(e, pan)
			return
		}

		step := min(remaining, pan.Timer)
		switch pan.Phase {
		case config.PanToTarget, config.PanToOrigin:
			camera.Position.X += pan.GradientX * step
			camera.Position.Y += pan.GradientY * step
		}
		pan.Timer = gamemath.TickTimer(pan.Timer, step)
		pan.Elapsed += step
		remaining -= step

		if pan.Timer > 0 {
			return
		}
		advancePanPhase(e, camera, pan)
	}
}

func advancePanPhase(e *ecs.ECS, camera *components.CameraData, pan *components.PanData) {
	switch pan.Phase {
	case config.PanToTarget:
		camera.Position = pan.Destination
		pan.Phase = config.LockOnTarget
		pan.Timer = config.Camera.LockOnTargetDwell
	case config.LockOnTarget:
		pan.Phase = config.PanToOrigin
		pan.Timer = config.Camera.PanDuration
		pan.GradientX = -pan.GradientX
		pan.GradientY = -pan.GradientY
	case config.PanToOrigin:
		camera.Position = pan.Origin
		pan.Phase = config.LockOnOrigin
		pan.Timer = config.Camera.LockOnOriginDwell
	case config.LockOnOrigin:
		finishPan(e, camera, pan)
	}
}

func finishPan(e *ecs.ECS, camera *components.CameraData, pan *components.PanData) {
	enc := encounterData(e)
	if pan.Target != nil && pan.Target.Valid() && pan.Target.HasComponent(components.Boss) {
		components.Boss.Get(pan.Target).MayOperate = true
		if enc != nil {
			enc.Emit(components.SignalBossMayOperate, pan.Target)
		}
	}

	camera.Pan = nil
	camera.Mode = config.CameraFollow

	for len(camera.PendingPans) > 0 {
		next := camera.PendingPans[0]
		camera.PendingPans = camera.PendingPans[1:]
		if next.Valid() {
			beginPan(e, camera, next)
			return
		}
	}

	player := setPlayerMayAct(e, true)
	if enc != nil && player != nil {
		enc.Emit(components.SignalPlayerMayAct, player)
	}
}

// holdPan skips the return leg once the player has died on the boss.
func holdPan(e *ecs.ECS, pan *components.PanData) {
	pan.Phase = config.PanHeld
	pan.Timer = 0
	terminateEncounter(e, "player died during boss introduction")
}

func updateFollowCamera(e *ecs.ECS, camera *components.CameraData) {
	focal, ok := playerCenter(e)
	if !ok {
		return
	}
	camera.Position = cameraPositionFor(e, focal)
}

func updateStaticCamera(e *ecs.ECS, camera *components.CameraData) {
	follow := camera.Position
	if focal, ok := playerCenter(e); ok {
		follow = cameraPositionFor(e, focal)
	}

	switch config.Camera.StaticAxis {
	case config.AxisX:
		camera.Position = math.Vec2{X: 0, Y: follow.Y}
	case config.AxisY:
		camera.Position = math.Vec2{X: follow.X, Y: 0}
	default:
		camera.Position = math.Vec2{}
	}
}

// cameraPositionFor returns the clamped top-left camera position that keeps
// focal in view.
func cameraPositionFor(e *ecs.ECS, focal math.Vec2) math.Vec2 {
	grid := levelGrid(e)
	if grid == nil {
		return math.Vec2{}
	}
	return math.Vec2{
		X: gamemath.FollowAxis(focal.X, float64(config.C.Width), grid.Width()),
		Y: gamemath.FollowAxis(focal.Y, float64(config.C.Height), grid.Height()),
	}
}

func publishCameraOffset(camera *components.CameraData) {
	camera.OffsetX = gamemath.Round(camera.Position.X + camera.Shake.X)
	camera.OffsetY = gamemath.Round(camera.Position.Y + camera.Shake.Y)
}

func setPlayerMayAct(e *ecs.ECS, mayAct bool) *donburi.Entry {
	player, ok := playerEntry(e)
	if !ok {
		return nil
	}
	components.Player.Get(player).MayAct = mayAct
	return player
}

func terminateEncounter(e *ecs.ECS, reason string) {
	enc := encounterData(e)
	if enc == nil || enc.Terminated {
		return
	}
	enc.Terminated = true
	enc.Emit(components.SignalEncounterTerminated, nil)
	log.Printf("Encounter terminated: %s", reason)
}
