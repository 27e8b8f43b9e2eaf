package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type ObjectData struct {
	*resolv.Object
}

// Center returns the center of the collision object.
func (o *ObjectData) Center() dmath.Vec2 {
	return dmath.Vec2{X: o.X + o.W/2, Y: o.Y + o.H/2}
}

// MoveCenterTo places the object so its center sits at (x, y).
func (o *ObjectData) MoveCenterTo(x, y float64) {
	o.X = x - o.W/2
	o.Y = y - o.H/2
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the shared collision space handed to the collision collaborator.
var Space = donburi.NewComponentType[resolv.Space]()
