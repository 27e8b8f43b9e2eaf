package factory

import (
	"github.com/automoto/doomerang-boss/archetypes"
	"github.com/automoto/doomerang-boss/components"
	cfg "github.com/automoto/doomerang-boss/config"
	"github.com/automoto/doomerang-boss/shared/gamemath"
	"github.com/automoto/doomerang-boss/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateProjectile spawns a spiral projectile at origin heading along angle and
// hands it to pool.
func CreateProjectile(ecs *ecs.ECS, pool *components.EntityPool, origin math.Vec2, angle float64, p cfg.ProjectileConfig) *donburi.Entry {
	e := archetypes.Projectile.Spawn(ecs)

	obj := newHazardObject(e, origin, p.Radius, tags.ResolvProjectile)
	components.Object.Set(e, &components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Projectile.Set(e, &components.ProjectileData{
		Kind:     components.KindProjectile,
		Motion:   gamemath.NewLinearMotion(origin, angle, p.Distance, p.TravelTime),
		Angle:    angle,
		Radius:   p.Radius,
		Damage:   p.Damage,
		Lifetime: p.Lifetime,
		Lives:    p.Lives,
	})

	pool.Add(e)
	return e
}

// CreateRingNode spawns a ring node at origin that translates along angle while
// its radius ramps from the ring's minimum to maximum.
func CreateRingNode(ecs *ecs.ECS, ring *components.RadialRingData, origin math.Vec2, angle float64) *donburi.Entry {
	e := archetypes.RingNode.Spawn(ecs)

	obj := newHazardObject(e, origin, ring.NodeRadiusMin, tags.ResolvRingNode)
	components.Object.Set(e, &components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Projectile.Set(e, &components.ProjectileData{
		Kind:   components.KindRingNode,
		Motion: gamemath.NewLinearMotion(origin, angle, ring.Distance, ring.RampDuration),
		Angle:  angle,
		Radius: ring.NodeRadiusMin,
		Damage: ring.Damage,
		Lives:  1,
		Growth: gween.New(float32(ring.NodeRadiusMin), float32(ring.NodeRadiusMax), float32(ring.RampDuration), ease.Linear),
	})

	ring.Pool.Add(e)
	return e
}

func newHazardObject(e *donburi.Entry, center math.Vec2, radius float64, tag string) *resolv.Object {
	obj := resolv.NewObject(center.X-radius, center.Y-radius, radius*2, radius*2, tag, tags.ResolvHazard)
	obj.Data = e
	return obj
}
