package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const recordKey = "encounter-record"

// EncounterRecord is the best encounter stored on disk
type EncounterRecord struct {
	Seed       uint64  `json:"seed"`
	SurvivedMS float64 `json:"survivedMs"`
	Bosses     int     `json:"bosses"`
}

// Beats reports whether r should replace best.
func (r EncounterRecord) Beats(best *EncounterRecord) bool {
	if best == nil {
		return true
	}
	if r.Bosses != best.Bosses {
		return r.Bosses > best.Bosses
	}
	return r.SurvivedMS > best.SurvivedMS
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for record storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "doomerang-boss",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadRecord loads the best record from disk. A nil record means none saved.
func LoadRecord() (*EncounterRecord, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(recordKey)
	if err != nil {
		log.Printf("Warning: Could not load encounter record: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var record EncounterRecord
	if err := json.Unmarshal(data, &record); err != nil {
		log.Printf("Warning: Could not parse encounter record: %v", err)
		return nil, err
	}
	return &record, nil
}

// SaveRecord saves r to disk
func SaveRecord(r *EncounterRecord) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(r)
	if err != nil {
		log.Printf("Warning: Could not serialize encounter record: %v", err)
		return err
	}
	if err := gdataManager.SaveItem(recordKey, data); err != nil {
		log.Printf("Warning: Could not save encounter record: %v", err)
		return err
	}
	return nil
}

// CurrentRecord summarizes the running encounter.
func CurrentRecord(e *ecs.ECS) EncounterRecord {
	var r EncounterRecord
	if enc := encounterData(e); enc != nil {
		r.Seed = enc.Seed
		r.SurvivedMS = enc.Elapsed
	}
	r.Bosses = BossCount(e)
	return r
}

// SaveRecordIfBest stores the running encounter when it beats best and returns
// the record that is now best.
func SaveRecordIfBest(e *ecs.ECS, best *EncounterRecord) *EncounterRecord {
	current := CurrentRecord(e)
	if !current.Beats(best) {
		return best
	}
	if err := SaveRecord(&current); err != nil {
		return best
	}
	log.Printf("New encounter record: %d bosses, %.0fms (seed %d)", current.Bosses, current.SurvivedMS, current.Seed)
	return &current
}
