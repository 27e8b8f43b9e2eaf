package components

import (
	"github.com/automoto/doomerang-boss/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// SpiralBurstData fires equally spaced projectiles from a rotating base angle.
type SpiralBurstData struct {
	Owner        *donburi.Entry // origin follows the owner's center when set
	Center       math.Vec2
	Count        int
	BaseAngle    float64 // degrees
	AngularRate  float64 // degrees per ms
	FireInterval float64 // ms between automatic bursts, 0 = manual only
	FireTimer    float64
	Active       float64 // ms left in the current firing window
	Projectile   config.ProjectileConfig
	Pool         *EntityPool
}

var SpiralBurst = donburi.NewComponentType[SpiralBurstData]()

// RadialRingData emits an evenly spaced ring of growing nodes.
type RadialRingData struct {
	Owner         *donburi.Entry
	Center        math.Vec2
	Count         int
	NodeRadiusMin float64
	NodeRadiusMax float64
	RampDuration  float64 // ms
	Distance      float64 // px travelled outward over RampDuration
	Damage        int
	Variation     config.RingVariation
	BaseAngle     float64 // degrees, advanced per activation by Variation
	Activations   int
	Pool          *EntityPool
}

var RadialRing = donburi.NewComponentType[RadialRingData]()

// ShockwaveData is the ring released on telegraph impact. It is allocated once
// with its telegraph and reset between impacts.
type ShockwaveData struct {
	Active bool
	Center math.Vec2
	Radius float64
	Alpha  float64
	Damage int
	Struck bool // the player was already hit by this activation

	InitialRadius float64
	InitialAlpha  float64
	RadiusTween   *gween.Tween
	AlphaTween    *gween.Tween
}

// TelegraphData marks an impending strike at a locked target.
type TelegraphData struct {
	Armed        bool
	Target       math.Vec2
	TimeToImpact float64 // ms
	Remaining    float64 // ms until impact
	Phase        float64 // radians

	// Published indicator values
	Radius float64
	Alpha  float64

	Impacts   int
	Shockwave ShockwaveData
}

var Telegraph = donburi.NewComponentType[TelegraphData]()
