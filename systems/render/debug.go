package render

import (
	"image/color"

	"github.com/automoto/doomerang-boss/components"
	cfg "github.com/automoto/doomerang-boss/config"
	"github.com/automoto/doomerang-boss/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHitboxes outlines every collision object handed to the collision space.
func DrawHitboxes(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawHitboxes {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	ox, oy := cameraOffset(ecs)
	viewW := float32(screen.Bounds().Dx())
	viewH := float32(screen.Bounds().Dy())

	for _, obj := range space.Objects() {
		x := float32(obj.X) - ox
		y := float32(obj.Y) - oy
		w, h := float32(obj.W), float32(obj.H)
		if x+w < 0 || x > viewW || y+h < 0 || y > viewH {
			continue
		}

		c := color.RGBA{R: 0, G: 255, B: 255, A: 255}
		switch {
		case obj.HasTags(tags.ResolvPlayer):
			c = color.RGBA{R: 0, G: 0, B: 255, A: 255}
		case obj.HasTags(tags.ResolvBoss):
			c = color.RGBA{R: 255, G: 0, B: 0, A: 255}
		case obj.HasTags(tags.ResolvRingNode):
			c = color.RGBA{R: 0, G: 255, B: 0, A: 255}
		}

		vector.FillRect(screen, x, y, w, 1, c, false)
		vector.FillRect(screen, x, y+h-1, w, 1, c, false)
		vector.FillRect(screen, x, y, 1, h, c, false)
		vector.FillRect(screen, x+w-1, y, 1, h, c, false)
	}
}
