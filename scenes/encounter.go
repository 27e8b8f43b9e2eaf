package scenes

import (
	"image/color"
	"log"
	"slices"
	"sync"

	"github.com/automoto/doomerang-boss/config"
	"github.com/automoto/doomerang-boss/shared/leveldata"
	"github.com/automoto/doomerang-boss/systems"
	"github.com/automoto/doomerang-boss/systems/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// EncounterOptions describes the arena an encounter scene runs on.
type EncounterOptions struct {
	LevelName string
	Grid      *leveldata.TileGrid
	Seed      uint64
	Watcher   *config.Watcher // optional config hot reload
}

// EncounterScene runs a boss encounter with keyboard control.
type EncounterScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	opts         EncounterOptions
	best         *systems.EncounterRecord
	input        inputState
	once         sync.Once

	dirX, dirY float64
	summoned   int
	saved      bool
}

func NewEncounterScene(sc SceneChanger, opts EncounterOptions, best *systems.EncounterRecord) *EncounterScene {
	return &EncounterScene{sceneChanger: sc, opts: opts, best: best}
}

func (s *EncounterScene) Update() {
	s.once.Do(s.configure)
	if s.ecs == nil {
		return
	}

	s.input.poll()
	s.reloadConfig()

	if s.input.justPressed(ActionRestart) {
		s.saveRecord()
		s.sceneChanger.ChangeScene(NewEncounterScene(s.sceneChanger, s.opts, s.best))
		return
	}
	if s.input.justPressed(ActionSpawnBoss) && !systems.IsTerminated(s.ecs) {
		systems.RequestBossSpawns(s.ecs, s.nextBossType())
	}
	if s.input.justPressed(ActionShake) {
		systems.TriggerScreenShake(s.ecs, config.ShakeVelocity, 3, 300, 1)
	}

	s.dirX, s.dirY = s.input.direction()
	systems.Step(s.ecs, 1000/float64(ebiten.TPS()))

	if systems.IsTerminated(s.ecs) {
		s.saveRecord()
	}
}

func (s *EncounterScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

func (s *EncounterScene) configure() {
	grid := s.opts.Grid
	if grid == nil {
		grid = leveldata.NewOpenArena(60, 40, 16)
	}

	e, err := systems.NewEncounter(s.opts.LevelName, grid, s.opts.Seed)
	if err != nil {
		log.Printf("Warning: could not start encounter: %v", err)
		return
	}

	// Demo collaborators run after the encounter core
	e.AddSystem(func(e *ecs.ECS) {
		systems.MovePlayer(e, s.dirX, s.dirY)
	})
	e.AddSystem(systems.UpdatePlayerHits)

	e.AddRenderer(config.Default, render.DrawLevel)
	e.AddRenderer(config.Default, render.DrawSpawnPulse)
	e.AddRenderer(config.Default, render.DrawActors)
	e.AddRenderer(config.Default, render.DrawHazards)
	e.AddRenderer(config.Default, render.DrawHitboxes)
	e.AddRenderer(config.Overlay, render.DrawHUD)

	s.ecs = e
	log.Printf("Encounter %s started with seed %d", s.opts.LevelName, s.opts.Seed)
}

// nextBossType cycles through the configured boss types in name order.
func (s *EncounterScene) nextBossType() string {
	names := make([]string, 0, len(config.Boss.Types))
	for name := range config.Boss.Types {
		names = append(names, name)
	}
	if len(names) == 0 {
		return ""
	}
	slices.Sort(names)
	name := names[s.summoned%len(names)]
	s.summoned++
	return name
}

func (s *EncounterScene) reloadConfig() {
	if s.opts.Watcher == nil {
		return
	}
	reloaded, err := s.opts.Watcher.Poll()
	if err != nil {
		log.Printf("Warning: config reload rejected: %v", err)
		return
	}
	if reloaded {
		log.Printf("Reloaded %s", s.opts.Watcher.Path)
	}
}

func (s *EncounterScene) saveRecord() {
	if s.saved || s.ecs == nil {
		return
	}
	s.saved = true
	s.best = systems.SaveRecordIfBest(s.ecs, s.best)
}
