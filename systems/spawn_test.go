package systems

import (
	"testing"

	"github.com/automoto/doomerang-boss/components"
	"github.com/automoto/doomerang-boss/config"
	"github.com/automoto/doomerang-boss/shared/gamemath"
	"github.com/automoto/doomerang-boss/shared/leveldata"
	"github.com/automoto/doomerang-boss/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func testSpawn(e *ecs.ECS) *components.SpawnData {
	entry, _ := components.Spawn.First(e.World)
	return components.Spawn.Get(entry)
}

func TestSpawnChoreographyMaterializesBoss(t *testing.T) {
	e := newTestEncounter(t)
	RequestBossSpawns(e, "Sentinel")

	spawn := testSpawn(e)
	if spawn.State != config.SpawnSearching || spawn.Current != "Sentinel" {
		t.Fatalf("state = %s current = %q, want searching Sentinel", spawn.State, spawn.Current)
	}

	Step(e, 16)
	if spawn.State != config.SpawnCountdown || !spawn.Validated {
		t.Fatalf("state = %s validated = %v, want a validated countdown", spawn.State, spawn.Validated)
	}
	if want := config.Camera.PanDuration * config.Spawn.CountdownPanFactor; spawn.CountdownTotal != want {
		t.Errorf("countdown = %v, want %v", spawn.CountdownTotal, want)
	}
	position := spawn.Position

	var boss *donburi.Entry
	for i := 0; i < 500 && boss == nil; i++ {
		Step(e, 16)
		if b, ok := SpawnCompletedThisTick(e); ok {
			boss = b
			signals := Signals(e)
			if countSignals(signals, components.SignalBossMaterialized) != 1 {
				t.Errorf("missing materialized signal in %v", signals)
			}
			if countSignals(signals, components.SignalSpawnQueueDone) != 1 {
				t.Errorf("missing queue done signal in %v", signals)
			}
			if testCamera(e).Mode != config.CameraPan {
				t.Errorf("camera did not start the introduction pan")
			}
		}
	}
	if boss == nil {
		t.Fatalf("boss never materialized")
	}

	if got := components.Object.Get(boss).Center(); got != position {
		t.Errorf("boss at %v, want spawn position %v", got, position)
	}
	if components.Boss.Get(boss).MayOperate {
		t.Errorf("boss may operate before the pan finished")
	}
	player, _ := playerCenter(e)
	if d := gamemath.Distance(player, position); d < config.Spawn.MinRadius || d > config.Spawn.MaxRadius {
		t.Errorf("boss spawned %v px from the player", d)
	}
	if spawn.State != config.SpawnDone {
		t.Errorf("state = %s, want done", spawn.State)
	}
	if spawn.Current != "" || spawn.Validated || spawn.Countdown != 0 {
		t.Errorf("choreography not reset: %+v", spawn)
	}

	Step(e, 16)
	if _, ok := SpawnCompletedThisTick(e); ok {
		t.Errorf("completion reported on a later tick")
	}
}

func TestSpawnQueueIntroducesBossesInOrder(t *testing.T) {
	e := newTestEncounter(t)
	RequestBossSpawns(e, "Sentinel", "Warden")

	var order []string
	for i := 0; i < 1500; i++ {
		Step(e, 16)
		if b, ok := SpawnCompletedThisTick(e); ok {
			order = append(order, components.Boss.Get(b).TypeName)
		}
	}

	if len(order) != 2 || order[0] != "Sentinel" || order[1] != "Warden" {
		t.Fatalf("materialized %v, want [Sentinel Warden]", order)
	}
	if testCamera(e).Mode != config.CameraFollow {
		t.Errorf("camera still in %s after both introductions", testCamera(e).Mode)
	}
	if !components.Player.Get(testPlayer(e)).MayAct {
		t.Errorf("player never regained control")
	}
	if BossCount(e) != 2 {
		t.Errorf("BossCount = %d, want 2", BossCount(e))
	}
}

func TestSpawnDegradesAfterFailedSearchTicks(t *testing.T) {
	config.Reset()
	defer config.Reset()
	config.Spawn.MaxSearchTicks = 3
	config.Spawn.MaxDistanceAttempts = 5
	config.Spawn.MaxClearanceAttempts = 5

	grid := leveldata.NewOpenArena(5, 5, 16)
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateLevel(e, "tiny", grid)
	factory.CreateCamera(e, config.CameraFollow)
	factory.CreateEncounter(e, 3)
	factory.CreatePlayer(e, grid.PlayerSpawn.X, grid.PlayerSpawn.Y)
	RegisterEncounterSystems(e)

	RequestBossSpawns(e, "Sentinel")
	spawn := testSpawn(e)

	Step(e, 16)
	Step(e, 16)
	if spawn.State != config.SpawnSearching {
		t.Fatalf("state = %s after two failed ticks, want searching", spawn.State)
	}
	Step(e, 16)
	if spawn.State != config.SpawnCountdown || !spawn.Degraded || spawn.Validated {
		t.Fatalf("state = %s degraded = %v, want a degraded countdown", spawn.State, spawn.Degraded)
	}
	if _, ok := grid.At(spawn.Tile.Col, spawn.Tile.Row); !ok {
		t.Errorf("degraded tile %+v is not from the pool", spawn.Tile)
	}
}

func TestCountdownPulsesAccelerate(t *testing.T) {
	config.Reset()
	defer config.Reset()

	spawn := &components.SpawnData{
		CountdownTotal: 1800,
		Countdown:      1800,
		PulseRing:      1,
		PulseTimer:     config.Spawn.PulseBaseInterval,
	}

	tickCountdown(spawn, 400)
	if spawn.PulseRing != 2 {
		t.Fatalf("ring = %d, want 2", spawn.PulseRing)
	}
	first := spawn.PulseTimer
	if first >= config.Spawn.PulseBaseInterval {
		t.Errorf("pulse interval %v did not shrink", first)
	}

	tickCountdown(spawn, first)
	if spawn.PulseRing != 1 {
		t.Errorf("ring = %d, want wrap to 1 with clearance %d", spawn.PulseRing, config.Spawn.Clearance)
	}
	if spawn.PulseTimer >= first {
		t.Errorf("pulse interval %v did not shrink below %v", spawn.PulseTimer, first)
	}

	tickCountdown(spawn, 5000)
	if spawn.Countdown != 0 {
		t.Errorf("countdown = %v, want clamp at 0", spawn.Countdown)
	}
}
