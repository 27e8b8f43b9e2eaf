package systems

import (
	"github.com/automoto/doomerang-boss/components"
	"github.com/automoto/doomerang-boss/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// advancePool moves every entity of a generator pool by dt and destroys the
// ones that expired.
func advancePool(e *ecs.ECS, pool *components.EntityPool, dt float64) {
	if pool == nil {
		return
	}
	pool.Each(func(entry *donburi.Entry) {
		p := components.Projectile.Get(entry)
		p.Motion.Integrate(dt)
		if p.Growth != nil && dt > 0 {
			r, _ := p.Growth.Update(float32(dt))
			p.Radius = float64(r)
		}
		syncHazardObject(entry, p)
	})

	for _, entry := range pool.Sweep(func(entry *donburi.Entry) bool {
		return components.Projectile.Get(entry).Expired()
	}) {
		factory.DestroyWithObject(e, entry)
	}
}

// syncHazardObject moves the collision object to the rounded motion position.
func syncHazardObject(entry *donburi.Entry, p *components.ProjectileData) {
	if !entry.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(entry)
	if obj.Object == nil {
		return
	}
	x, y := p.Motion.Rounded()
	obj.W = p.Radius * 2
	obj.H = p.Radius * 2
	obj.MoveCenterTo(float64(x), float64(y))
}

// generatorOrigin returns the owner's center when it still exists, otherwise
// the generator's own center.
func generatorOrigin(owner *donburi.Entry, center math.Vec2) math.Vec2 {
	if owner != nil && owner.Valid() && owner.HasComponent(components.Object) {
		return components.Object.Get(owner).Center()
	}
	return center
}

// ownerMayOperate reports whether a generator's owner lets it act. Generators
// without a boss owner always may.
func ownerMayOperate(owner *donburi.Entry) bool {
	if owner == nil {
		return true
	}
	if !owner.Valid() || !owner.HasComponent(components.Boss) {
		return false
	}
	if owner.HasComponent(components.Health) && components.Health.Get(owner).Depleted() {
		return false
	}
	return components.Boss.Get(owner).MayOperate
}
