package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	MayAct bool    // cleared while the camera runs a pan sequence
	Speed  float64 // px per ms
}

var Player = donburi.NewComponentType[PlayerData]()
