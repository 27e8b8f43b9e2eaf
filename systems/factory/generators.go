package factory

import (
	"fmt"

	"github.com/automoto/doomerang-boss/archetypes"
	"github.com/automoto/doomerang-boss/components"
	cfg "github.com/automoto/doomerang-boss/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpiralBurst spawns a spiral generator that owns pool. The base angle
// completes one revolution per config.Spiral.AnimationCycle.
func CreateSpiralBurst(ecs *ecs.ECS, owner *donburi.Entry, pool *components.EntityPool) *donburi.Entry {
	e := archetypes.SpiralBurst.Spawn(ecs)
	data := &components.SpiralBurstData{
		Owner:        owner,
		Count:        cfg.Spiral.Count,
		FireInterval: cfg.Spiral.FireInterval,
		Projectile:   cfg.Spiral.Projectile,
		Pool:         pool,
	}
	if cfg.Spiral.AnimationCycle > 0 {
		data.AngularRate = 360 / cfg.Spiral.AnimationCycle
	}
	components.SpiralBurst.Set(e, data)
	return e
}

// ConfigureRadialRing sets the angle variation policy of a ring. Unknown
// variations are rejected before the ring can emit anything.
func ConfigureRadialRing(ring *components.RadialRingData, variation cfg.RingVariation) error {
	if !variation.Valid() {
		return fmt.Errorf("radial ring variation %d: %w", variation, cfg.ErrInvalidAttackVariation)
	}
	ring.Variation = variation
	ring.BaseAngle = 0
	ring.Activations = 0
	return nil
}

// CreateRadialRing spawns a ring generator that owns pool. No entity is created
// when variation is invalid.
func CreateRadialRing(ecs *ecs.ECS, owner *donburi.Entry, pool *components.EntityPool, variation cfg.RingVariation) (*donburi.Entry, error) {
	data := &components.RadialRingData{
		Owner:         owner,
		Count:         cfg.Ring.Count,
		NodeRadiusMin: cfg.Ring.NodeRadiusMin,
		NodeRadiusMax: cfg.Ring.NodeRadiusMax,
		RampDuration:  cfg.Ring.RampDuration,
		Distance:      cfg.Ring.Distance,
		Damage:        cfg.Ring.Damage,
		Pool:          pool,
	}
	if err := ConfigureRadialRing(data, variation); err != nil {
		return nil, err
	}

	e := archetypes.RadialRing.Spawn(ecs)
	components.RadialRing.Set(e, data)
	return e, nil
}

// CreateTelegraph spawns an unarmed telegraph with its reusable shockwave.
func CreateTelegraph(ecs *ecs.ECS) *donburi.Entry {
	e := archetypes.Telegraph.Spawn(ecs)
	t := cfg.Telegraph
	components.Telegraph.Set(e, &components.TelegraphData{
		TimeToImpact: t.TimeToImpact,
		Radius:       t.RadiusMid,
		Alpha:        t.AlphaMid,
		Shockwave: components.ShockwaveData{
			Radius:        t.ShockwaveRadius,
			Alpha:         t.ShockwaveAlpha,
			Damage:        t.ShockwaveDamage,
			InitialRadius: t.ShockwaveRadius,
			InitialAlpha:  t.ShockwaveAlpha,
			RadiusTween:   gween.New(float32(t.ShockwaveRadius), float32(t.ShockwaveMaxRadius), float32(t.ShockwaveLifetime), ease.Linear),
			AlphaTween:    gween.New(float32(t.ShockwaveAlpha), 0, float32(t.ShockwaveLifetime), ease.Linear),
		},
	})
	return e
}
