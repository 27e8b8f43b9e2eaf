package archetypes

import (
	"github.com/automoto/doomerang-boss/components"
	cfg "github.com/automoto/doomerang-boss/config"
	"github.com/automoto/doomerang-boss/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Health,
	)
	Boss = newArchetype(
		tags.Boss,
		components.Boss,
		components.Object,
		components.Health,
		components.Sprite,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
	)
	RingNode = newArchetype(
		tags.RingNode,
		components.Projectile,
		components.Object,
	)
	SpiralBurst = newArchetype(
		tags.Generator,
		components.SpiralBurst,
	)
	RadialRing = newArchetype(
		tags.Generator,
		components.RadialRing,
	)
	Telegraph = newArchetype(
		tags.Generator,
		components.Telegraph,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
		components.ScreenShake,
	)
	Encounter = newArchetype(
		components.Encounter,
	)
	Choreography = newArchetype(
		components.Spawn,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
