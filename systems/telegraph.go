package systems

import (
	"github.com/automoto/doomerang-boss/components"
	"github.com/automoto/doomerang-boss/config"
	"github.com/automoto/doomerang-boss/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// ArmTelegraph locks the telegraph onto target and restarts its countdown.
func ArmTelegraph(entry *donburi.Entry, target math.Vec2) {
	t := components.Telegraph.Get(entry)
	t.Armed = true
	t.Target = target
	t.Remaining = t.TimeToImpact
	t.Phase = 0
	t.Radius = config.Telegraph.RadiusMid
	t.Alpha = config.Telegraph.AlphaMid
}

func UpdateTelegraphs(e *ecs.ECS) {
	enc := encounterData(e)
	if enc == nil {
		return
	}
	dt := enc.DeltaTime

	var impacts []math.Vec2
	components.Telegraph.Each(e.World, func(entry *donburi.Entry) {
		t := components.Telegraph.Get(entry)
		updateShockwave(&t.Shockwave, dt)
		if t.Armed && tickTelegraph(t, dt) {
			impacts = append(impacts, t.Target)
		}
	})

	for range impacts {
		TriggerScreenShake(e, config.ShakeDecay, config.ScreenShake.ImpactMagnitude, config.ScreenShake.ImpactDuration, 0)
	}
}

// tickTelegraph advances the indicator oscillation and reports an impact.
func tickTelegraph(t *components.TelegraphData, dt float64) bool {
	tc := config.Telegraph
	t.Phase = gamemath.AdvancePhase(t.Phase, tc.PhaseRate, dt, t.Remaining, tc.MinRemaining)
	t.Radius = max(gamemath.Oscillate(tc.RadiusMid, tc.RadiusAmp, t.Phase), 0)
	t.Alpha = clamp01(gamemath.Oscillate(tc.AlphaMid, tc.AlphaAmp, t.Phase))

	t.Remaining = gamemath.TickTimer(t.Remaining, dt)
	if t.Remaining > 0 {
		return false
	}

	t.Armed = false
	t.Impacts++
	activateShockwave(&t.Shockwave, t.Target)
	return true
}

// activateShockwave restarts the telegraph's shockwave at center. The tweens
// are rewound rather than recreated.
func activateShockwave(s *components.ShockwaveData, center math.Vec2) {
	resetShockwave(s)
	s.Active = true
	s.Struck = false
	s.Center = center
}

func updateShockwave(s *components.ShockwaveData, dt float64) {
	if !s.Active || dt <= 0 {
		return
	}
	r, _ := s.RadiusTween.Update(float32(dt))
	a, done := s.AlphaTween.Update(float32(dt))
	s.Radius = float64(r)
	s.Alpha = clamp01(float64(a))
	if done {
		resetShockwave(s)
	}
}

func resetShockwave(s *components.ShockwaveData) {
	s.Active = false
	s.Radius = s.InitialRadius
	s.Alpha = s.InitialAlpha
	if s.RadiusTween != nil {
		s.RadiusTween.Reset()
	}
	if s.AlphaTween != nil {
		s.AlphaTween.Reset()
	}
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
