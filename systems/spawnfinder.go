package systems

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/automoto/doomerang-boss/config"
	"github.com/automoto/doomerang-boss/shared/gamemath"
	"github.com/automoto/doomerang-boss/shared/leveldata"
	"github.com/yohamta/donburi/features/math"
)

// ErrInsufficientClearance is returned when no tile of a level can host a
// boss with the configured clearance.
var ErrInsufficientClearance = errors.New("level has no tile with full spawn clearance")

// SpawnSearchParams bounds a single spawn position search.
type SpawnSearchParams struct {
	MinRadius            float64
	MaxRadius            float64
	Clearance            int
	MaxDistanceAttempts  int
	MaxClearanceAttempts int
}

// SearchParamsFromConfig reads the search bounds from config.Spawn.
func SearchParamsFromConfig() SpawnSearchParams {
	return SpawnSearchParams{
		MinRadius:            config.Spawn.MinRadius,
		MaxRadius:            config.Spawn.MaxRadius,
		Clearance:            config.Spawn.Clearance,
		MaxDistanceAttempts:  config.Spawn.MaxDistanceAttempts,
		MaxClearanceAttempts: config.Spawn.MaxClearanceAttempts,
	}
}

// SpawnSearchResult is the outcome of one search. Tile and Position always hold
// the last candidate drawn, even when Validated is false.
type SpawnSearchResult struct {
	Tile     leveldata.Tile
	Position math.Vec2
	Region   []leveldata.Tile

	// Validated is true when the candidate has a full clearance region
	Validated bool
	// DistanceExhausted is true when a candidate was kept out of range
	DistanceExhausted bool

	// Samples lists every pool index drawn, in order
	Samples []int
}

// FindSpawnPosition samples the empty tile pool for a boss spawn tile that sits
// between MinRadius and MaxRadius of playerPos and is surrounded by Clearance
// tiles of empty space.
func FindSpawnPosition(rng *rand.Rand, level *leveldata.TileGrid, playerPos math.Vec2, p SpawnSearchParams) SpawnSearchResult {
	var result SpawnSearchResult
	if level == nil || level.Len() == 0 {
		log.Printf("Warning: spawn search on an empty tile pool")
		return result
	}

	draw := func() leveldata.Tile {
		i := rng.IntN(level.Len())
		result.Samples = append(result.Samples, i)
		return level.Empty[i]
	}
	inRange := func(t leveldata.Tile) bool {
		d := gamemath.Distance(t.Center(), playerPos)
		return d >= p.MinRadius && d <= p.MaxRadius
	}

	attempts := p.MaxClearanceAttempts
	if attempts < 1 {
		attempts = 1
	}
	for range attempts {
		candidate := draw()
		for i := 0; !inRange(candidate) && i < p.MaxDistanceAttempts; i++ {
			candidate = draw()
		}
		if !inRange(candidate) && !result.DistanceExhausted {
			result.DistanceExhausted = true
			log.Printf("Warning: spawn search exhausted %d distance attempts, keeping tile (%d,%d)",
				p.MaxDistanceAttempts, candidate.Col, candidate.Row)
		}

		result.Tile = candidate
		result.Position = candidate.Center()
		result.Region = clearanceRegion(level, candidate, p.Clearance, result.Region[:0])
		if len(result.Region) == regionSize(p.Clearance) {
			result.Validated = true
			return result
		}
	}

	result.Region = result.Region[:0]
	log.Printf("Warning: spawn search exhausted %d clearance attempts, last tile (%d,%d)",
		attempts, result.Tile.Col, result.Tile.Row)
	return result
}

// ValidateLevelCapacity checks that at least one tile of level has a full
// clearance region.
func ValidateLevelCapacity(level *leveldata.TileGrid, clearance int) error {
	if level == nil || level.Len() == 0 {
		return fmt.Errorf("empty tile pool: %w", ErrInsufficientClearance)
	}
	want := regionSize(clearance)
	var region []leveldata.Tile
	for _, t := range level.Empty {
		region = clearanceRegion(level, t, clearance, region[:0])
		if len(region) == want {
			return nil
		}
	}
	return fmt.Errorf("clearance %d on %dx%d grid: %w", clearance, level.Cols, level.Rows, ErrInsufficientClearance)
}

// clearanceRegion appends the pool tiles inside the square of side
// 2*clearance+1 centered on center, excluding center itself.
func clearanceRegion(level *leveldata.TileGrid, center leveldata.Tile, clearance int, region []leveldata.Tile) []leveldata.Tile {
	for row := center.Row - clearance; row <= center.Row+clearance; row++ {
		for col := center.Col - clearance; col <= center.Col+clearance; col++ {
			if col == center.Col && row == center.Row {
				continue
			}
			if t, ok := level.At(col, row); ok {
				region = append(region, t)
			}
		}
	}
	return region
}

func regionSize(clearance int) int {
	side := 2*clearance + 1
	return side*side - 1
}
