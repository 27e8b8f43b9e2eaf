package scenes

import "github.com/hajimehoshi/ebiten/v2"

type SceneChanger interface {
	ChangeScene(scene interface{})
}

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}
