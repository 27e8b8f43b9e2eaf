package factory

import (
	"github.com/automoto/doomerang-boss/archetypes"
	"github.com/automoto/doomerang-boss/components"
	"github.com/automoto/doomerang-boss/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS, name string, grid *leveldata.TileGrid) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		Grid: grid,
		Name: name,
	})
	return level
}
