// Package render draws the encounter world for the demo harness. Nothing in
// the encounter systems depends on it.
package render

import (
	"image/color"

	"github.com/automoto/doomerang-boss/assets"
	"github.com/automoto/doomerang-boss/components"
	cfg "github.com/automoto/doomerang-boss/config"
	"github.com/automoto/doomerang-boss/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
	images *assets.ImageCache

	wallColor   = color.RGBA{R: 40, G: 44, B: 60, A: 255}
	floorColor  = color.RGBA{R: 24, G: 26, B: 34, A: 255}
	playerColor = color.RGBA{R: 80, G: 220, B: 120, A: 255}
)

// UseImages sets the cache sprites are resolved through. A nil cache draws
// every sprite as its tint shape.
func UseImages(c *assets.ImageCache) {
	images = c
}

func cameraOffset(ecs *ecs.ECS) (float32, float32) {
	entry, ok := components.Camera.First(ecs.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(entry)
	return float32(camera.OffsetX), float32(camera.OffsetY)
}

// DrawLevel renders walls and, in debug mode, the empty tile grid.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	grid := components.Level.Get(entry).Grid
	if grid == nil {
		return
	}
	ox, oy := cameraOffset(ecs)
	w, h := float32(grid.TileW), float32(grid.TileH)

	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			x := float32(col)*w - ox
			y := float32(row)*h - oy
			if _, empty := grid.At(col, row); !empty {
				vector.DrawFilledRect(screen, x, y, w, h, wallColor, false)
			} else if cfg.Debug.DrawTiles {
				vector.StrokeRect(screen, x, y, w, h, 1, floorColor, false)
			}
		}
	}
}

// DrawSpawnPulse renders the pulsing clearance ring around a pending spawn.
func DrawSpawnPulse(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Spawn.First(ecs.World)
	if !ok {
		return
	}
	spawn := components.Spawn.Get(entry)
	if spawn.State != cfg.SpawnCountdown {
		return
	}
	ox, oy := cameraOffset(ecs)

	for _, t := range spawn.Region {
		ring := max(abs(t.Col-spawn.Tile.Col), abs(t.Row-spawn.Tile.Row))
		if ring != spawn.PulseRing {
			continue
		}
		vector.DrawFilledRect(screen, float32(t.X)-ox, float32(t.Y)-oy, float32(t.W), float32(t.H), cfg.LightRed, false)
	}
	vector.StrokeRect(screen, float32(spawn.Tile.X)-ox, float32(spawn.Tile.Y)-oy,
		float32(spawn.Tile.W), float32(spawn.Tile.H), 2, cfg.Red, false)
}

// DrawActors renders the player and bosses.
func DrawActors(ecs *ecs.ECS, screen *ebiten.Image) {
	ox, oy := cameraOffset(ecs)

	tags.Boss.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		sprite := components.Sprite.Get(e)

		if images != nil {
			if img, err := images.Get(sprite.Key); err == nil {
				drawOp.GeoM.Reset()
				drawOp.GeoM.Scale(o.W/float64(img.Bounds().Dx()), o.H/float64(img.Bounds().Dy()))
				drawOp.GeoM.Translate(o.X-float64(ox), o.Y-float64(oy))
				screen.DrawImage(img, drawOp)
				return
			}
		}
		vector.DrawFilledRect(screen, float32(o.X)-ox, float32(o.Y)-oy, float32(o.W), float32(o.H), sprite.Tint, false)
		if !components.Boss.Get(e).MayOperate {
			vector.StrokeRect(screen, float32(o.X)-ox, float32(o.Y)-oy, float32(o.W), float32(o.H), 1, cfg.White, false)
		}
	})

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.DrawFilledRect(screen, float32(o.X)-ox, float32(o.Y)-oy, float32(o.W), float32(o.H), playerColor, false)
	})
}

// DrawHazards renders projectiles, ring nodes and telegraphs.
func DrawHazards(ecs *ecs.ECS, screen *ebiten.Image) {
	ox, oy := cameraOffset(ecs)

	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		x, y := p.Motion.Rounded()
		clr := cfg.Yellow
		if p.Kind == components.KindRingNode {
			clr = cfg.LightBlue
		}
		vector.DrawFilledCircle(screen, float32(x)-ox, float32(y)-oy, float32(p.Radius), clr, true)
	})

	components.Telegraph.Each(ecs.World, func(e *donburi.Entry) {
		t := components.Telegraph.Get(e)
		if t.Armed {
			clr := withAlpha(cfg.Red, t.Alpha)
			vector.StrokeCircle(screen, float32(t.Target.X)-ox, float32(t.Target.Y)-oy, float32(t.Radius), 2, clr, true)
		}
		if s := t.Shockwave; s.Active {
			clr := withAlpha(cfg.Orange, s.Alpha)
			vector.StrokeCircle(screen, float32(s.Center.X)-ox, float32(s.Center.Y)-oy, float32(s.Radius), 3, clr, true)
		}
	})
}

func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	a := min(max(alpha, 0), 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(255 * a),
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
