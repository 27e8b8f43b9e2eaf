package main

import (
	"flag"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/doomerang-boss/assets"
	"github.com/automoto/doomerang-boss/config"
	"github.com/automoto/doomerang-boss/fonts"
	"github.com/automoto/doomerang-boss/scenes"
	"github.com/automoto/doomerang-boss/shared/leveldata"
	"github.com/automoto/doomerang-boss/systems"
	"github.com/automoto/doomerang-boss/systems/render"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(scenes.Scene)
}

func NewGame(opts scenes.EncounterOptions, best *systems.EncounterRecord) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewEncounterScene(g, opts, best)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	seed := flag.Uint64("seed", config.Debug.Seed, "Encounter random seed")
	configPath := flag.String("config", "", "YAML config overrides, reloaded on change")
	levelPath := flag.String("level", "", "TMX level file (default: open arena)")
	imagesDir := flag.String("images", "", "Directory holding boss sprites")
	flag.BoolVar(&config.Debug.DrawTiles, "tiles", config.Debug.DrawTiles, "Draw the empty tile grid")
	flag.BoolVar(&config.Debug.DrawHitboxes, "hitboxes", config.Debug.DrawHitboxes, "Outline collision objects")
	flag.Parse()

	opts := scenes.EncounterOptions{LevelName: "arena", Seed: *seed}

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		watcher, err := config.Watch(*configPath)
		if err != nil {
			log.Printf("Warning: config hot reload disabled: %v", err)
		} else {
			defer watcher.Close()
			opts.Watcher = watcher
		}
	}

	if *levelPath != "" {
		grid, err := leveldata.LoadTileGrid(os.DirFS(filepath.Dir(*levelPath)), filepath.Base(*levelPath))
		if err != nil {
			log.Fatalf("Failed to load level: %v", err)
		}
		opts.Grid = grid
		opts.LevelName = filepath.Base(*levelPath)
	}

	if *imagesDir != "" {
		render.UseImages(assets.NewImageCache(os.DirFS(*imagesDir), "."))
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// Initialize persistence and load the best record
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	best, _ := systems.LoadRecord()

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("doomerang-boss")

	if err := ebiten.RunGame(NewGame(opts, best)); err != nil {
		log.Fatal(err)
	}
}
