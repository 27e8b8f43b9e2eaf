package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/doomerang-boss/components"
	cfg "github.com/automoto/doomerang-boss/config"
	"github.com/automoto/doomerang-boss/fonts"
	"github.com/automoto/doomerang-boss/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face based API matches the fonts package
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 10
	hudMargin    = 10
)

// DrawHUD renders the player health bar and the encounter status line.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if !fonts.Loaded(fonts.Small) {
		return
	}

	if player, ok := components.Player.First(ecs.World); ok {
		hp := components.Health.Get(player)
		vector.DrawFilledRect(screen, hudMargin, hudMargin, hudBarWidth, hudBarHeight, color.RGBA{R: 40, G: 40, B: 40, A: 255}, false)
		ratio := float32(0)
		if hp.Max > 0 {
			ratio = float32(max(hp.Current, 0)) / float32(hp.Max)
		}
		vector.DrawFilledRect(screen, hudMargin, hudMargin, hudBarWidth*ratio, hudBarHeight, color.RGBA{R: 40, G: 220, B: 40, A: 255}, false)
	}

	status := "press B to summon a boss"
	if entry, ok := components.Spawn.First(ecs.World); ok {
		spawn := components.Spawn.Get(entry)
		switch spawn.State {
		case cfg.SpawnSearching:
			status = fmt.Sprintf("searching for %s", spawn.Current)
		case cfg.SpawnCountdown:
			status = fmt.Sprintf("%s arrives in %.1fs", spawn.Current, spawn.Countdown/1000)
		}
	}
	if entry, ok := components.Camera.First(ecs.World); ok {
		if pan := components.Camera.Get(entry).Pan; pan != nil {
			status = pan.Phase.String()
		}
	}

	record := systems.CurrentRecord(ecs)
	line := fmt.Sprintf("%s   bosses %d   %.1fs   seed %d", status, record.Bosses, record.SurvivedMS/1000, record.Seed)
	text.Draw(screen, line, fonts.Small.Get(), hudMargin, hudMargin+hudBarHeight+14, cfg.White)

	if systems.IsTerminated(ecs) {
		title := "DEFEATED"
		text.Draw(screen, title, fonts.Title.Get(), cfg.C.Width/2-60, cfg.C.Height/2, cfg.LightRed)
		text.Draw(screen, "press R to restart", fonts.Regular.Get(), cfg.C.Width/2-50, cfg.C.Height/2+24, cfg.White)
	}
}
