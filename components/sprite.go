package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// SpriteData names the image an entity is drawn with. The renderer resolves
// Key through the image cache and falls back to a Tint shape when it is missing.
type SpriteData struct {
	Key  string
	Tint color.RGBA
}

var Sprite = donburi.NewComponentType[SpriteData]()
