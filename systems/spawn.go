package systems

import (
	"log"

	"github.com/automoto/doomerang-boss/components"
	"github.com/automoto/doomerang-boss/config"
	"github.com/automoto/doomerang-boss/shared/gamemath"
	"github.com/automoto/doomerang-boss/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RequestBossSpawns queues boss types for the spawn choreography. Bosses are
// introduced one at a time in request order.
func RequestBossSpawns(e *ecs.ECS, bossTypes ...string) {
	entry, ok := components.Spawn.First(e.World)
	if !ok {
		entry = factory.CreateChoreography(e)
	}
	spawn := components.Spawn.Get(entry)
	spawn.Queue = append(spawn.Queue, bossTypes...)

	if spawn.State == config.SpawnIdle || spawn.State == config.SpawnDone {
		beginNextSpawn(spawn)
	}
}

// SpawnCompletedThisTick returns the boss materialized during the current tick.
func SpawnCompletedThisTick(e *ecs.ECS) (*donburi.Entry, bool) {
	entry, ok := components.Spawn.First(e.World)
	if !ok {
		return nil, false
	}
	boss := components.Spawn.Get(entry).Materialized
	return boss, boss != nil
}

func UpdateSpawn(e *ecs.ECS) {
	entry, ok := components.Spawn.First(e.World)
	if !ok {
		return
	}
	spawn := components.Spawn.Get(entry)
	spawn.Materialized = nil

	enc := encounterData(e)
	if enc == nil {
		return
	}

	switch spawn.State {
	case config.SpawnSearching:
		searchSpawn(e, enc, spawn)
	case config.SpawnCountdown:
		tickCountdown(spawn, enc.DeltaTime)
		if spawn.Countdown <= 0 {
			spawn.State = config.SpawnMaterialize
			materializeBoss(e, enc, spawn)
		}
	case config.SpawnMaterialize:
		materializeBoss(e, enc, spawn)
	}
}

func beginNextSpawn(spawn *components.SpawnData) {
	spawn.ResetChoreography()
	if len(spawn.Queue) == 0 {
		spawn.State = config.SpawnDone
		return
	}
	spawn.Current = spawn.Queue[0]
	spawn.Queue = spawn.Queue[1:]
	spawn.State = config.SpawnSearching
}

func searchSpawn(e *ecs.ECS, enc *components.EncounterData, spawn *components.SpawnData) {
	grid := levelGrid(e)
	player, ok := playerCenter(e)
	if grid == nil || !ok {
		return
	}

	result := FindSpawnPosition(enc.Rand, grid, player, SearchParamsFromConfig())
	spawn.SearchTicks++
	spawn.Tile = result.Tile
	spawn.Position = result.Position
	spawn.Region = append(spawn.Region[:0], result.Region...)

	switch {
	case result.Validated:
		spawn.Validated = true
	case spawn.SearchTicks >= config.Spawn.MaxSearchTicks:
		spawn.Degraded = true
		log.Printf("Warning: no validated spawn for %s after %d ticks, using tile (%d,%d)",
			spawn.Current, spawn.SearchTicks, spawn.Tile.Col, spawn.Tile.Row)
	default:
		return
	}

	spawn.CountdownTotal = config.Camera.PanDuration * config.Spawn.CountdownPanFactor
	spawn.Countdown = spawn.CountdownTotal
	spawn.PulseRing = 1
	spawn.PulseTimer = config.Spawn.PulseBaseInterval
	spawn.State = config.SpawnCountdown
}

// tickCountdown advances the countdown and the pulse ring around the spawn
// tile. Pulses speed up as the countdown runs out.
func tickCountdown(spawn *components.SpawnData, dt float64) {
	spawn.Countdown = gamemath.TickTimer(spawn.Countdown, dt)
	spawn.PulseTimer = gamemath.TickTimer(spawn.PulseTimer, dt)
	if spawn.PulseTimer > 0 {
		return
	}

	rings := max(config.Spawn.Clearance, 1)
	spawn.PulseRing = spawn.PulseRing%rings + 1
	if spawn.CountdownTotal > 0 {
		spawn.PulseTimer = config.Spawn.PulseBaseInterval * spawn.Countdown / spawn.CountdownTotal
	}
}

func materializeBoss(e *ecs.ECS, enc *components.EncounterData, spawn *components.SpawnData) {
	boss, err := factory.CreateBoss(e, spawn.Current, spawn.Position)
	if err != nil {
		log.Printf("Warning: failed to materialize boss %s: %v", spawn.Current, err)
	} else {
		spawn.Materialized = boss
		enc.Emit(components.SignalBossMaterialized, boss)
		TriggerScreenShake(e, config.ShakeDecay, config.ScreenShake.MaterializeMagnitude, config.ScreenShake.MaterializeDuration, 0)
		log.Printf("Boss %s materialized at (%d,%d)", spawn.Current, spawn.Tile.Col, spawn.Tile.Row)
	}

	beginNextSpawn(spawn)
	if spawn.State == config.SpawnDone {
		enc.Emit(components.SignalSpawnQueueDone, nil)
	}
}
