package systems

import (
	"log"
	"math/rand/v2"

	"github.com/automoto/doomerang-boss/components"
	"github.com/automoto/doomerang-boss/config"
	"github.com/automoto/doomerang-boss/shared/gamemath"
	"github.com/automoto/doomerang-boss/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// ActivateRadialRing places Count nodes evenly on a ring around the generator
// origin. The ring's variation decides the angle of the first node.
func ActivateRadialRing(e *ecs.ECS, entry *donburi.Entry) []*donburi.Entry {
	ring := components.RadialRing.Get(entry)
	if ring.Count <= 0 {
		return nil
	}

	var rng *rand.Rand
	if enc := encounterData(e); enc != nil {
		rng = enc.Rand
	}
	base, ok := nextRingBase(ring, rng)
	if !ok {
		log.Printf("Warning: radial ring has unknown variation %d, skipping activation", ring.Variation)
		return nil
	}

	origin := generatorOrigin(ring.Owner, ring.Center)
	radius := gamemath.RingRadius(ring.Count, ring.NodeRadiusMin)

	nodes := make([]*donburi.Entry, 0, ring.Count)
	for _, angle := range gamemath.SpreadAngles(base, ring.Count) {
		x, y := gamemath.PointOnCircle(origin.X, origin.Y, radius, angle)
		nodes = append(nodes, factory.CreateRingNode(e, ring, math.Vec2{X: x, Y: y}, angle))
	}
	ring.Activations++
	return nodes
}

// nextRingBase returns the base angle for this activation and advances the
// ring's variation state.
func nextRingBase(ring *components.RadialRingData, rng *rand.Rand) (float64, bool) {
	switch ring.Variation {
	case config.RingFixed:
		return 0, true
	case config.RingHalfStep:
		base := ring.BaseAngle
		ring.BaseAngle += 360 / float64(ring.Count) / 2
		if ring.BaseAngle >= 360 {
			ring.BaseAngle = 0
		}
		return base, true
	case config.RingRandom:
		if rng == nil {
			return 0, true
		}
		ring.BaseAngle = rng.Float64() * 360
		return ring.BaseAngle, true
	}
	return 0, false
}

func UpdateRadialRings(e *ecs.ECS) {
	enc := encounterData(e)
	if enc == nil {
		return
	}
	var pools []*components.EntityPool
	components.RadialRing.Each(e.World, func(entry *donburi.Entry) {
		pools = append(pools, components.RadialRing.Get(entry).Pool)
	})
	for _, pool := range pools {
		advancePool(e, pool, enc.DeltaTime)
	}
}
