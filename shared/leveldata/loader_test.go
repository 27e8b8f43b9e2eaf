package leveldata

import (
	"errors"
	"testing"
	"testing/fstest"
)

const arenaTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="2">
 <tileset firstgid="1" name="walls" tilewidth="16" tileheight="16" tilecount="1" columns="1">
  <image source="walls.png" width="16" height="16"/>
 </tileset>
 <layer id="1" name="wg-tiles" width="4" height="3">
  <data encoding="csv">
1,1,1,1,
1,0,0,1,
1,1,1,1
</data>
 </layer>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="1" x="24" y="20"/>
 </objectgroup>
</map>
`

func TestLoadTileGridCollectsEmptyTiles(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/arena.tmx": &fstest.MapFile{Data: []byte(arenaTMX)},
	}

	grid, err := LoadTileGrid(fsys, "levels/arena.tmx")
	if err != nil {
		t.Fatalf("LoadTileGrid: %v", err)
	}

	if grid.Len() != 2 {
		t.Fatalf("expected 2 empty tiles, got %d", grid.Len())
	}
	if _, ok := grid.At(1, 1); !ok {
		t.Error("expected tile (1,1) to be empty")
	}
	if _, ok := grid.At(0, 0); ok {
		t.Error("wall tile (0,0) must not be in the pool")
	}
	if grid.Width() != 64 || grid.Height() != 48 {
		t.Errorf("bounds = %vx%v, want 64x48", grid.Width(), grid.Height())
	}
	if grid.PlayerSpawn.X != 24 || grid.PlayerSpawn.Y != 20 {
		t.Errorf("player spawn = %+v, want (24,20)", grid.PlayerSpawn)
	}

	tile, _ := grid.At(2, 1)
	if c := tile.Center(); c.X != 40 || c.Y != 24 {
		t.Errorf("center = %+v, want (40,24)", c)
	}
}

func TestLoadTileGridMissingLayer(t *testing.T) {
	const noLayer = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="1" height="1" tilewidth="16" tileheight="16" infinite="0">
 <layer id="1" name="decor" width="1" height="1">
  <data encoding="csv">
0
</data>
 </layer>
</map>
`
	fsys := fstest.MapFS{"a.tmx": &fstest.MapFile{Data: []byte(noLayer)}}
	_, err := LoadTileGrid(fsys, "a.tmx")
	if !errors.Is(err, ErrNoCollisionLayer) {
		t.Errorf("expected ErrNoCollisionLayer, got %v", err)
	}
}

func TestNewOpenArena(t *testing.T) {
	grid := NewOpenArena(10, 8, 16)
	if grid.Len() != 8*6 {
		t.Errorf("pool size = %d, want 48", grid.Len())
	}
	if _, ok := grid.At(0, 3); ok {
		t.Error("border must be solid")
	}
	if _, ok := grid.At(5, 4); !ok {
		t.Error("interior must be empty")
	}
}
