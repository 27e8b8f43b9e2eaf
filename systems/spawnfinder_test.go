package systems

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/automoto/doomerang-boss/shared/gamemath"
	"github.com/automoto/doomerang-boss/shared/leveldata"
	"github.com/yohamta/donburi/features/math"
)

func testSearchParams() SpawnSearchParams {
	return SpawnSearchParams{
		MinRadius:            96,
		MaxRadius:            320,
		Clearance:            2,
		MaxDistanceAttempts:  200,
		MaxClearanceAttempts: 200,
	}
}

func TestFindSpawnPositionIsDeterministic(t *testing.T) {
	grid := leveldata.NewOpenArena(60, 40, 16)
	player := grid.PlayerSpawn

	a := FindSpawnPosition(rand.New(rand.NewPCG(11, 12)), grid, player, testSearchParams())
	b := FindSpawnPosition(rand.New(rand.NewPCG(11, 12)), grid, player, testSearchParams())

	if !slices.Equal(a.Samples, b.Samples) {
		t.Fatalf("samples differ for the same seed:\n%v\n%v", a.Samples, b.Samples)
	}
	if a.Tile != b.Tile || a.Validated != b.Validated {
		t.Errorf("results differ for the same seed: %+v vs %+v", a.Tile, b.Tile)
	}
}

func TestFindSpawnPositionHonorsRadiusAndClearance(t *testing.T) {
	grid := leveldata.NewOpenArena(60, 40, 16)
	player := grid.PlayerSpawn
	p := testSearchParams()

	for seed := uint64(0); seed < 20; seed++ {
		r := FindSpawnPosition(rand.New(rand.NewPCG(seed, 1)), grid, player, p)
		if !r.Validated {
			t.Fatalf("seed %d: search not validated", seed)
		}
		if r.DistanceExhausted {
			t.Errorf("seed %d: unexpected distance exhaustion", seed)
		}
		d := gamemath.Distance(r.Position, player)
		if d < p.MinRadius || d > p.MaxRadius {
			t.Errorf("seed %d: distance %v outside [%v, %v]", seed, d, p.MinRadius, p.MaxRadius)
		}
		if len(r.Region) != 24 {
			t.Errorf("seed %d: region has %d tiles, want 24", seed, len(r.Region))
		}
		for _, tile := range r.Region {
			if tile == r.Tile {
				t.Errorf("seed %d: region contains the center tile", seed)
			}
		}
	}
}

func TestFindSpawnPositionKeepsCandidateWhenDistanceExhausted(t *testing.T) {
	grid := leveldata.NewOpenArena(60, 40, 16)
	p := testSearchParams()
	p.MinRadius = 5000
	p.MaxRadius = 6000

	r := FindSpawnPosition(rand.New(rand.NewPCG(3, 4)), grid, grid.PlayerSpawn, p)
	if !r.DistanceExhausted {
		t.Fatalf("expected distance exhaustion")
	}
	if len(r.Samples) < p.MaxDistanceAttempts+1 {
		t.Errorf("expected at least %d samples, got %d", p.MaxDistanceAttempts+1, len(r.Samples))
	}
	if r.Position == (math.Vec2{}) {
		t.Errorf("exhausted search returned no candidate")
	}
}

func TestFindSpawnPositionGivesUpOnClearance(t *testing.T) {
	grid := leveldata.NewOpenArena(5, 5, 16)
	p := SpawnSearchParams{
		MinRadius:            0,
		MaxRadius:            1000,
		Clearance:            2,
		MaxDistanceAttempts:  10,
		MaxClearanceAttempts: 7,
	}

	r := FindSpawnPosition(rand.New(rand.NewPCG(5, 6)), grid, grid.PlayerSpawn, p)
	if r.Validated {
		t.Fatalf("search validated on a grid with no clearance")
	}
	if len(r.Samples) != 7 {
		t.Errorf("expected one sample per clearance attempt, got %d", len(r.Samples))
	}
	if len(r.Region) != 0 {
		t.Errorf("failed search kept a partial region of %d tiles", len(r.Region))
	}
	if _, ok := grid.At(r.Tile.Col, r.Tile.Row); !ok {
		t.Errorf("last candidate %+v is not from the pool", r.Tile)
	}
}

func TestValidateLevelCapacity(t *testing.T) {
	tests := []struct {
		name      string
		grid      *leveldata.TileGrid
		clearance int
		wantErr   bool
	}{
		{"open arena", leveldata.NewOpenArena(60, 40, 16), 2, false},
		{"just fits", leveldata.NewOpenArena(7, 7, 16), 2, false},
		{"too small", leveldata.NewOpenArena(6, 6, 16), 2, true},
		{"empty pool", leveldata.NewTileGrid(4, 4, 16, 16, nil), 0, true},
		{"no clearance needed", leveldata.NewOpenArena(3, 3, 16), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLevelCapacity(tt.grid, tt.clearance)
			if tt.wantErr && !errors.Is(err, ErrInsufficientClearance) {
				t.Errorf("expected ErrInsufficientClearance, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
