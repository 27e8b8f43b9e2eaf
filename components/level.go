package components

import (
	"github.com/automoto/doomerang-boss/shared/leveldata"
	"github.com/yohamta/donburi"
)

// LevelData holds the read-only empty tile pool owned by the level collaborator.
type LevelData struct {
	Grid *leveldata.TileGrid
	Name string
}

var Level = donburi.NewComponentType[LevelData]()
