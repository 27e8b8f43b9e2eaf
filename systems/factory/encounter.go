package factory

import (
	"math/rand/v2"

	"github.com/automoto/doomerang-boss/archetypes"
	"github.com/automoto/doomerang-boss/components"
	cfg "github.com/automoto/doomerang-boss/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// seedStream is mixed into the second PCG word so seed 0 is still usable.
const seedStream = 0x9e3779b97f4a7c15

// CreateEncounter spawns the encounter singleton with a random source seeded
// from seed. The same seed replays the same spawn positions and ring offsets.
func CreateEncounter(ecs *ecs.ECS, seed uint64) *donburi.Entry {
	encounter := archetypes.Encounter.Spawn(ecs)
	components.Encounter.Set(encounter, &components.EncounterData{
		Rand: rand.New(rand.NewPCG(seed, seed^seedStream)),
		Seed: seed,
	})
	return encounter
}

// CreateChoreography spawns the idle boss spawn choreography.
func CreateChoreography(ecs *ecs.ECS) *donburi.Entry {
	spawn := archetypes.Choreography.Spawn(ecs)
	components.Spawn.Set(spawn, &components.SpawnData{State: cfg.SpawnIdle})
	return spawn
}
