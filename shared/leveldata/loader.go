package leveldata

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
	dmath "github.com/yohamta/donburi/features/math"
)

// CollisionLayer is the tile layer whose empty cells form the spawn pool.
const CollisionLayer = "wg-tiles"

var ErrNoCollisionLayer = errors.New("level has no " + CollisionLayer + " layer")

// LoadTileGrid parses a TMX file and returns the pool of empty tiles from the
// collision layer. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadTileGrid(fsys fs.FS, tmxPath string) (*TileGrid, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	return tileGridFromMap(levelMap)
}

func tileGridFromMap(levelMap *tiled.Map) (*TileGrid, error) {
	var layer *tiled.Layer
	for _, l := range levelMap.Layers {
		if l.Name == CollisionLayer {
			layer = l
			break
		}
	}
	if layer == nil {
		return nil, ErrNoCollisionLayer
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	var empty []Tile
	for y := 0; y < levelMap.Height; y++ {
		for x := 0; x < levelMap.Width; x++ {
			if !layer.Tiles[y*levelMap.Width+x].IsNil() {
				continue
			}
			empty = append(empty, Tile{
				Col: x,
				Row: y,
				X:   float64(x) * tileW,
				Y:   float64(y) * tileH,
				W:   tileW,
				H:   tileH,
			})
		}
	}

	grid := NewTileGrid(levelMap.Width, levelMap.Height, tileW, tileH, empty)
	grid.PlayerSpawn = dmath.Vec2{X: grid.Width() / 2, Y: grid.Height() / 2}

	// Parse the player spawn from the PlayerSpawn object group
	for _, og := range levelMap.ObjectGroups {
		if og.Name != "PlayerSpawn" || len(og.Objects) == 0 {
			continue
		}
		grid.PlayerSpawn = dmath.Vec2{X: og.Objects[0].X, Y: og.Objects[0].Y}
	}

	return grid, nil
}
