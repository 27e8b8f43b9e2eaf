package config

import "image/color"

// SpawnConfig contains boss spawn search and choreography values
type SpawnConfig struct {
	// Search
	MinRadius            float64 // Minimum distance from the player, px
	MaxRadius            float64 // Maximum distance from the player, px
	Clearance            int     // Tiles of free space required around the spawn tile
	MaxDistanceAttempts  int     // Resamples before accepting an out-of-range candidate
	MaxClearanceAttempts int     // Clearance redraws per search before giving up for the tick
	MaxSearchTicks       int     // Failed search ticks before degrading to best effort

	// Countdown
	CountdownPanFactor float64 // countdown = pan duration * factor
	PulseBaseInterval  float64 // ms between ring pulses at the start of the countdown
}

// CameraConfig contains camera mode and pan sequence values
type CameraConfig struct {
	PanDuration       float64 // ms for each pan leg
	LockOnTargetDwell float64 // ms held on the boss
	LockOnOriginDwell float64 // ms held on the origin before control returns
	StaticAxis        Axis    // axis pinned to the origin in Static mode
}

// ScreenShakeConfig contains shake magnitudes (px) and durations (ms)
type ScreenShakeConfig struct {
	MaterializeMagnitude float64
	MaterializeDuration  float64
	ImpactMagnitude      float64
	ImpactDuration       float64
	BossStepMagnitude    float64
	BossStepDuration     float64
}

// ProjectileConfig contains the shared motion values of spiral projectiles
type ProjectileConfig struct {
	Radius     float64
	Damage     int
	Distance   float64 // px travelled over TravelTime
	TravelTime float64 // ms
	Lifetime   float64 // ms before expiry
	Lives      int     // collision signals absorbed before destruction
}

// SpiralConfig contains rotating radial burst values
type SpiralConfig struct {
	Count          int
	AnimationCycle float64 // ms for one full revolution of the base angle
	FireInterval   float64 // ms between bursts
	Projectile     ProjectileConfig
}

// RingConfig contains evenly spaced expanding ring values
type RingConfig struct {
	Count         int
	NodeRadiusMin float64
	NodeRadiusMax float64
	RampDuration  float64 // ms for a node to grow from min to max radius
	Distance      float64 // px travelled outward over RampDuration
	Damage        int
	Variation     RingVariation
}

// TelegraphConfig contains targeted telegraph and shockwave values
type TelegraphConfig struct {
	TimeToImpact float64 // ms
	MinRemaining float64 // ms floor used when accelerating the oscillation
	PhaseRate    float64 // radians * ms / ms, scaled by 1/remaining

	RadiusMid float64
	RadiusAmp float64
	AlphaMid  float64
	AlphaAmp  float64

	ShockwaveLifetime  float64 // ms
	ShockwaveRadius    float64 // initial radius
	ShockwaveMaxRadius float64
	ShockwaveAlpha     float64 // initial alpha
	ShockwaveDamage    int
}

// AttackKind names a generator a boss can drive
type AttackKind string

const (
	AttackSpiral    AttackKind = "spiral"
	AttackRing      AttackKind = "ring"
	AttackTelegraph AttackKind = "telegraph"
)

// BossTypeConfig contains configuration for a specific boss type
type BossTypeConfig struct {
	Name           string
	Health         int
	Width, Height  float64
	SpriteKey      string
	Attacks        []AttackKind
	AttackCooldown float64 // ms between attacks
	TintColor      color.RGBA
}

// BossConfig holds all boss types
type BossConfig struct {
	Types map[string]BossTypeConfig
}

// PlayerConfig contains the demo player values
type PlayerConfig struct {
	Health int
	Size   float64
	Speed  float64 // px per ms
}

// Config holds general game configuration
type Config struct {
	Width  int // viewport width
	Height int // viewport height
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Seed         uint64
	DrawTiles    bool
	DrawHitboxes bool
}

// Global configuration instances
var C *Config
var Spawn SpawnConfig
var Camera CameraConfig
var ScreenShake ScreenShakeConfig
var Spiral SpiralConfig
var Ring RingConfig
var Telegraph TelegraphConfig
var Boss BossConfig
var Player PlayerConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	Reset()
}

// Reset restores every config value to its default.
func Reset() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Spawn = SpawnConfig{
		MinRadius:            96,
		MaxRadius:            320,
		Clearance:            2,
		MaxDistanceAttempts:  200,
		MaxClearanceAttempts: 200,
		MaxSearchTicks:       30,
		CountdownPanFactor:   2.25,
		PulseBaseInterval:    400,
	}

	Camera = CameraConfig{
		PanDuration:       800,
		LockOnTargetDwell: 1200,
		LockOnOriginDwell: 300,
		StaticAxis:        AxisY,
	}

	ScreenShake = ScreenShakeConfig{
		MaterializeMagnitude: 6,
		MaterializeDuration:  400,
		ImpactMagnitude:      5,
		ImpactDuration:       250,
		BossStepMagnitude:    0.8,
		BossStepDuration:     150,
	}

	Spiral = SpiralConfig{
		Count:          5,
		AnimationCycle: 2400,
		FireInterval:   200,
		Projectile: ProjectileConfig{
			Radius:     5,
			Damage:     10,
			Distance:   480,
			TravelTime: 2000,
			Lifetime:   2000,
			Lives:      1,
		},
	}

	Ring = RingConfig{
		Count:         12,
		NodeRadiusMin: 4,
		NodeRadiusMax: 14,
		RampDuration:  1500,
		Distance:      260,
		Damage:        15,
		Variation:     RingHalfStep,
	}

	Telegraph = TelegraphConfig{
		TimeToImpact: 1400,
		MinRemaining: 60,
		PhaseRate:    12,

		RadiusMid: 28,
		RadiusAmp: 6,
		AlphaMid:  0.5,
		AlphaAmp:  0.3,

		ShockwaveLifetime:  500,
		ShockwaveRadius:    10,
		ShockwaveMaxRadius: 90,
		ShockwaveAlpha:     1,
		ShockwaveDamage:    25,
	}

	Boss = BossConfig{
		Types: map[string]BossTypeConfig{
			"Warden": {
				Name:           "Warden",
				Health:         400,
				Width:          40,
				Height:         40,
				SpriteKey:      "warden",
				Attacks:        []AttackKind{AttackSpiral, AttackRing, AttackTelegraph},
				AttackCooldown: 1800,
				TintColor:      Orange,
			},
			"Sentinel": {
				Name:           "Sentinel",
				Health:         250,
				Width:          32,
				Height:         32,
				SpriteKey:      "sentinel",
				Attacks:        []AttackKind{AttackRing, AttackTelegraph},
				AttackCooldown: 1400,
				TintColor:      Purple,
			},
		},
	}

	Player = PlayerConfig{
		Health: 100,
		Size:   16,
		Speed:  0.18,
	}

	Debug = DebugConfig{
		Seed:         1,
		DrawTiles:    false,
		DrawHitboxes: false,
	}
}
