package systems

import (
	"fmt"

	"github.com/automoto/doomerang-boss/components"
	"github.com/automoto/doomerang-boss/config"
	"github.com/automoto/doomerang-boss/shared/leveldata"
	"github.com/automoto/doomerang-boss/systems/factory"
	"github.com/automoto/doomerang-boss/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// NewEncounter builds a ready to step encounter world on grid. It fails when
// the config is unusable or the level cannot host a boss.
func NewEncounter(name string, grid *leveldata.TileGrid, seed uint64) (*ecs.ECS, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("encounter %s: %w", name, err)
	}
	if err := ValidateLevelCapacity(grid, config.Spawn.Clearance); err != nil {
		return nil, fmt.Errorf("encounter %s: %w", name, err)
	}

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, int(grid.Width()), int(grid.Height()), int(grid.TileW), int(grid.TileH))
	factory.CreateLevel(e, name, grid)
	factory.CreateCamera(e, config.CameraFollow)
	factory.CreateEncounter(e, seed)
	factory.CreateChoreography(e)
	factory.CreatePlayer(e, grid.PlayerSpawn.X, grid.PlayerSpawn.Y)

	RegisterEncounterSystems(e)
	return e, nil
}

// RegisterEncounterSystems adds the encounter systems in tick order.
func RegisterEncounterSystems(e *ecs.ECS) {
	e.AddSystem(UpdateSpawn)
	e.AddSystem(UpdateCamera)
	e.AddSystem(UpdateScreenShake)
	e.AddSystem(UpdateBosses)
	e.AddSystem(UpdateSpiralBursts)
	e.AddSystem(UpdateRadialRings)
	e.AddSystem(UpdateTelegraphs)
}

// Step runs one tick of dt milliseconds.
func Step(e *ecs.ECS, dt float64) {
	enc := encounterData(e)
	if enc == nil {
		e.Update()
		return
	}
	enc.DeltaTime = max(dt, 0)
	enc.Signals = nil

	e.Update()

	enc.Elapsed += enc.DeltaTime
	enc.Ticks++
}

// Signals returns the signals emitted during the last tick.
func Signals(e *ecs.ECS) []components.Signal {
	if enc := encounterData(e); enc != nil {
		return enc.Signals
	}
	return nil
}

// IsTerminated reports whether the encounter ended early.
func IsTerminated(e *ecs.ECS) bool {
	enc := encounterData(e)
	return enc != nil && enc.Terminated
}

func encounterData(e *ecs.ECS) *components.EncounterData {
	entry, ok := components.Encounter.First(e.World)
	if !ok {
		return nil
	}
	return components.Encounter.Get(entry)
}

func levelGrid(e *ecs.ECS) *leveldata.TileGrid {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry).Grid
}

func playerEntry(e *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Player.First(e.World)
}

func playerCenter(e *ecs.ECS) (math.Vec2, bool) {
	player, ok := playerEntry(e)
	if !ok {
		return math.Vec2{}, false
	}
	return components.Object.Get(player).Center(), true
}

func playerDead(e *ecs.ECS) bool {
	player, ok := playerEntry(e)
	if !ok {
		return true
	}
	return components.Health.Get(player).Depleted()
}
