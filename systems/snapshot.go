package systems

import (
	"github.com/automoto/doomerang-boss/components"
	"github.com/automoto/doomerang-boss/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EntitySnapshot is the published view of a damaging entity for the collision
// collaborator. Positions are rounded.
type EntitySnapshot struct {
	Entry  *donburi.Entry // generator entry for shockwaves
	Kind   components.EntityKind
	X, Y   int
	Radius float64
	Damage int
}

// CollectEntitySnapshots lists every live projectile, ring node and active
// shockwave.
func CollectEntitySnapshots(e *ecs.ECS) []EntitySnapshot {
	var out []EntitySnapshot
	components.Projectile.Each(e.World, func(entry *donburi.Entry) {
		p := components.Projectile.Get(entry)
		if p.Spent() {
			return
		}
		x, y := p.Motion.Rounded()
		out = append(out, EntitySnapshot{
			Entry:  entry,
			Kind:   p.Kind,
			X:      x,
			Y:      y,
			Radius: p.Radius,
			Damage: p.Damage,
		})
	})
	components.Telegraph.Each(e.World, func(entry *donburi.Entry) {
		s := &components.Telegraph.Get(entry).Shockwave
		if !s.Active {
			return
		}
		out = append(out, EntitySnapshot{
			Entry:  entry,
			Kind:   components.KindShockwave,
			X:      gamemath.Round(s.Center.X),
			Y:      gamemath.Round(s.Center.Y),
			Radius: s.Radius,
			Damage: s.Damage,
		})
	})
	return out
}

// SignalEntityHit records a collision against a generator-owned entity. The
// owning generator destroys it on its next update once its lives run out.
func SignalEntityHit(entry *donburi.Entry) bool {
	if entry == nil || !entry.Valid() || !entry.HasComponent(components.Projectile) {
		return false
	}
	p := components.Projectile.Get(entry)
	if p.Lives > 0 {
		p.Lives--
	}
	return true
}
