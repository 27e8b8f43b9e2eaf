package components

import (
	"github.com/automoto/doomerang-boss/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Mode     config.CameraModeID
	Position math.Vec2 // float accumulator, top-left of the view
	Shake    math.Vec2 // additive offset from the active shake event

	// Published offset, round(Position + Shake). Renderers read only this.
	OffsetX, OffsetY int

	// Pan is non-nil only while Mode == CameraPan
	Pan *PanData
	// PendingPans are bosses that materialized while another pan was running
	PendingPans []*donburi.Entry
}

// PanData holds the scripted pan sequence state.
type PanData struct {
	Phase  config.PanPhaseID
	Target *donburi.Entry // boss being introduced

	Origin      math.Vec2
	Destination math.Vec2
	GradientX   float64 // px per ms during PanToTarget, negated for PanToOrigin
	GradientY   float64
	Timer       float64 // ms left in the current phase
	Elapsed     float64 // ms since the pan started
}

var Camera = donburi.NewComponentType[CameraData]()
