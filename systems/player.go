package systems

import (
	"github.com/automoto/doomerang-boss/components"
	"github.com/automoto/doomerang-boss/shared/gamemath"
	"github.com/automoto/doomerang-boss/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MovePlayer moves the player along (dirX, dirY) for this tick. Input is
// ignored while the player may not act. The player is kept inside the walls.
func MovePlayer(e *ecs.ECS, dirX, dirY float64) {
	player, ok := playerEntry(e)
	enc := encounterData(e)
	if !ok || enc == nil {
		return
	}
	data := components.Player.Get(player)
	if !data.MayAct || components.Health.Get(player).Depleted() {
		return
	}
	if dirX == 0 && dirY == 0 {
		return
	}

	obj := components.Object.Get(player)
	center := obj.Center()
	center.X += dirX * data.Speed * enc.DeltaTime
	center.Y += dirY * data.Speed * enc.DeltaTime

	if grid := levelGrid(e); grid != nil {
		center.X = min(max(center.X, grid.TileW+obj.W/2), grid.Width()-grid.TileW-obj.W/2)
		center.Y = min(max(center.Y, grid.TileH+obj.H/2), grid.Height()-grid.TileH-obj.H/2)
	}
	obj.MoveCenterTo(center.X, center.Y)
}

// UpdatePlayerHits applies hazard and shockwave damage to the player and
// signals each hazard it touched.
func UpdatePlayerHits(e *ecs.ECS) {
	player, ok := playerEntry(e)
	if !ok {
		return
	}
	health := components.Health.Get(player)
	if health.Depleted() {
		return
	}
	obj := components.Object.Get(player)
	center := obj.Center()

	// The space only narrows candidates down to shared cells
	if check := obj.Check(0, 0, tags.ResolvHazard); check != nil {
		for _, o := range check.Objects {
			hazard, ok := o.Data.(*donburi.Entry)
			if !ok || !hazard.Valid() || !hazard.HasComponent(components.Projectile) {
				continue
			}
			p := components.Projectile.Get(hazard)
			if p.Spent() || gamemath.Distance(center, p.Motion.Position()) > p.Radius+obj.W/2 {
				continue
			}
			health.Current -= p.Damage
			SignalEntityHit(hazard)
		}
	}

	components.Telegraph.Each(e.World, func(entry *donburi.Entry) {
		s := &components.Telegraph.Get(entry).Shockwave
		if !s.Active || s.Struck {
			return
		}
		if gamemath.Distance(center, s.Center) <= s.Radius+obj.W/2 {
			s.Struck = true
			health.Current -= s.Damage
		}
	})

	if health.Depleted() {
		health.Current = 0
		terminateEncounter(e, "player defeated")
	}
}
