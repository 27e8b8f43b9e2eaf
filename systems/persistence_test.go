package systems

import "testing"

func TestEncounterRecordBeats(t *testing.T) {
	tests := []struct {
		name    string
		current EncounterRecord
		best    *EncounterRecord
		want    bool
	}{
		{"no record yet", EncounterRecord{SurvivedMS: 1}, nil, true},
		{"more bosses", EncounterRecord{Bosses: 2, SurvivedMS: 10}, &EncounterRecord{Bosses: 1, SurvivedMS: 9000}, true},
		{"fewer bosses", EncounterRecord{Bosses: 1, SurvivedMS: 9000}, &EncounterRecord{Bosses: 2, SurvivedMS: 10}, false},
		{"longer survival", EncounterRecord{Bosses: 1, SurvivedMS: 5000}, &EncounterRecord{Bosses: 1, SurvivedMS: 4000}, true},
		{"tie", EncounterRecord{Bosses: 1, SurvivedMS: 4000}, &EncounterRecord{Bosses: 1, SurvivedMS: 4000}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.current.Beats(tt.best); got != tt.want {
				t.Errorf("Beats = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCurrentRecordTracksEncounter(t *testing.T) {
	e := newTestEncounter(t)
	for range 10 {
		Step(e, 100)
	}

	r := CurrentRecord(e)
	if r.Seed != 7 || r.SurvivedMS != 1000 || r.Bosses != 0 {
		t.Errorf("record = %+v", r)
	}
	if best := SaveRecordIfBest(e, &EncounterRecord{SurvivedMS: 5000}); best.SurvivedMS != 5000 {
		t.Errorf("worse run replaced the record: %+v", best)
	}
}
