package components

import (
	"math/rand/v2"

	"github.com/yohamta/donburi"
)

// SignalKind is a state transition announced to collaborators outside the core.
type SignalKind int

const (
	SignalBossMaterialized SignalKind = iota
	SignalPlayerMayAct
	SignalBossMayOperate
	SignalEncounterTerminated
	SignalSpawnQueueDone
)

func (k SignalKind) String() string {
	switch k {
	case SignalBossMaterialized:
		return "boss-materialized"
	case SignalPlayerMayAct:
		return "player-may-act"
	case SignalBossMayOperate:
		return "boss-may-operate"
	case SignalEncounterTerminated:
		return "encounter-terminated"
	case SignalSpawnQueueDone:
		return "spawn-queue-done"
	}
	return "unknown"
}

type Signal struct {
	Kind  SignalKind
	Entry *donburi.Entry
}

// EncounterData is the singleton tying the encounter systems together.
type EncounterData struct {
	Rand *rand.Rand
	Seed uint64

	DeltaTime float64 // ms, this tick
	Elapsed   float64 // ms since the encounter started
	Ticks     int

	Signals    []Signal // emitted during the current tick
	Terminated bool
}

// Emit records a signal for the current tick.
func (e *EncounterData) Emit(kind SignalKind, entry *donburi.Entry) {
	e.Signals = append(e.Signals, Signal{Kind: kind, Entry: entry})
}

var Encounter = donburi.NewComponentType[EncounterData]()
