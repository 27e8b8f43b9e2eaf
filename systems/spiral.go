package systems

import (
	"github.com/automoto/doomerang-boss/components"
	"github.com/automoto/doomerang-boss/shared/gamemath"
	"github.com/automoto/doomerang-boss/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FireSpiralBurst emits one burst of equally spaced projectiles around the
// generator's current base angle.
func FireSpiralBurst(e *ecs.ECS, entry *donburi.Entry) []*donburi.Entry {
	spiral := components.SpiralBurst.Get(entry)
	origin := generatorOrigin(spiral.Owner, spiral.Center)

	angles := gamemath.SpreadAngles(spiral.BaseAngle, spiral.Count)
	fired := make([]*donburi.Entry, 0, len(angles))
	for _, angle := range angles {
		fired = append(fired, factory.CreateProjectile(e, spiral.Pool, origin, angle, spiral.Projectile))
	}
	return fired
}

// SyncSpiralToAnimation sets the angular rate so the base angle completes one
// revolution per animation cycle.
func SyncSpiralToAnimation(spiral *components.SpiralBurstData, cycleMS float64) {
	if cycleMS <= 0 {
		spiral.AngularRate = 0
		return
	}
	spiral.AngularRate = 360 / cycleMS
}

// StartSpiralWindow fires bursts every FireInterval for the next windowMS.
func StartSpiralWindow(entry *donburi.Entry, windowMS float64) {
	spiral := components.SpiralBurst.Get(entry)
	spiral.Active = windowMS
	spiral.FireTimer = 0
}

func UpdateSpiralBursts(e *ecs.ECS) {
	enc := encounterData(e)
	if enc == nil {
		return
	}
	dt := enc.DeltaTime

	// Collect first, firing adds entities to the world
	var entries []*donburi.Entry
	components.SpiralBurst.Each(e.World, func(entry *donburi.Entry) {
		entries = append(entries, entry)
	})

	for _, entry := range entries {
		spiral := components.SpiralBurst.Get(entry)
		advancePool(e, spiral.Pool, dt)

		spiral.BaseAngle = gamemath.NormalizeDegrees(spiral.BaseAngle + spiral.AngularRate*dt)

		if spiral.Active > 0 && spiral.FireInterval > 0 && ownerMayOperate(spiral.Owner) {
			spiral.FireTimer = gamemath.TickTimer(spiral.FireTimer, dt)
			if spiral.FireTimer <= 0 {
				FireSpiralBurst(e, entry)
				spiral.FireTimer = spiral.FireInterval
			}
			spiral.Active = gamemath.TickTimer(spiral.Active, dt)
		}
	}
}
