// Package leveldata provides TMX level parsing for the encounter arena.
// It only depends on go-tiled and the donburi Vec2 type.
package leveldata

import dmath "github.com/yohamta/donburi/features/math"

// Tile is an empty (walkable) tile of the arena grid.
type Tile struct {
	Col, Row int
	X, Y     float64 // top-left in world pixels
	W, H     float64
}

// Center returns the tile center in world pixels.
func (t Tile) Center() dmath.Vec2 {
	return dmath.Vec2{X: t.X + t.W/2, Y: t.Y + t.H/2}
}

// Rect returns the tile rectangle as x, y, w, h.
func (t Tile) Rect() (x, y, w, h float64) {
	return t.X, t.Y, t.W, t.H
}

type cell struct{ col, row int }

// TileGrid is the read-only pool of empty tiles plus world bounds.
type TileGrid struct {
	Empty       []Tile
	Cols, Rows  int
	TileW       float64
	TileH       float64
	PlayerSpawn dmath.Vec2

	index map[cell]int
}

// NewTileGrid builds a grid from a list of empty tiles.
func NewTileGrid(cols, rows int, tileW, tileH float64, empty []Tile) *TileGrid {
	g := &TileGrid{
		Empty: empty,
		Cols:  cols,
		Rows:  rows,
		TileW: tileW,
		TileH: tileH,
		index: make(map[cell]int, len(empty)),
	}
	for i, t := range empty {
		g.index[cell{t.Col, t.Row}] = i
	}
	return g
}

// Width returns the world width in pixels.
func (g *TileGrid) Width() float64 { return float64(g.Cols) * g.TileW }

// Height returns the world height in pixels.
func (g *TileGrid) Height() float64 { return float64(g.Rows) * g.TileH }

// At returns the empty tile at the given cell, if the pool has one.
func (g *TileGrid) At(col, row int) (Tile, bool) {
	i, ok := g.index[cell{col, row}]
	if !ok {
		return Tile{}, false
	}
	return g.Empty[i], true
}

// Len returns the pool size.
func (g *TileGrid) Len() int { return len(g.Empty) }

// NewOpenArena returns a cols x rows arena whose outer ring is solid wall and
// whose interior is empty. Used when no TMX level is supplied.
func NewOpenArena(cols, rows int, tileSize float64) *TileGrid {
	var empty []Tile
	for row := 1; row < rows-1; row++ {
		for col := 1; col < cols-1; col++ {
			empty = append(empty, Tile{
				Col: col,
				Row: row,
				X:   float64(col) * tileSize,
				Y:   float64(row) * tileSize,
				W:   tileSize,
				H:   tileSize,
			})
		}
	}
	g := NewTileGrid(cols, rows, tileSize, tileSize, empty)
	g.PlayerSpawn = dmath.Vec2{X: g.Width() / 2, Y: g.Height() / 2}
	return g
}
