package components

import (
	"github.com/automoto/doomerang-boss/config"
	"github.com/automoto/doomerang-boss/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// SpawnData is the single live boss spawn choreography of an encounter.
type SpawnData struct {
	State   config.SpawnStateID
	Queue   []string // boss types still to spawn
	Current string   // boss type being choreographed

	// Search
	Tile        leveldata.Tile
	Position    math.Vec2
	Region      []leveldata.Tile
	Validated   bool
	Degraded    bool
	SearchTicks int

	// Countdown
	Countdown      float64 // ms remaining
	CountdownTotal float64
	PulseRing      int     // 1..clearance
	PulseTimer     float64 // ms until the ring advances

	// Materialized is set only during the tick a boss appears
	Materialized *donburi.Entry
}

// ResetChoreography clears everything tied to the current boss.
func (s *SpawnData) ResetChoreography() {
	s.Current = ""
	s.Tile = leveldata.Tile{}
	s.Position = math.Vec2{}
	s.Region = s.Region[:0]
	s.Validated = false
	s.Degraded = false
	s.SearchTicks = 0
	s.Countdown = 0
	s.CountdownTotal = 0
	s.PulseRing = 0
	s.PulseTimer = 0
}

var Spawn = donburi.NewComponentType[SpawnData]()
