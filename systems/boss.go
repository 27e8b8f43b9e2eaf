package systems

import (
	"github.com/automoto/doomerang-boss/components"
	"github.com/automoto/doomerang-boss/config"
	"github.com/automoto/doomerang-boss/shared/gamemath"
	"github.com/automoto/doomerang-boss/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBosses walks each operating boss through its attack list, one attack
// every AttackCooldown.
func UpdateBosses(e *ecs.ECS) {
	enc := encounterData(e)
	if enc == nil {
		return
	}

	var bosses []*donburi.Entry
	tags.Boss.Each(e.World, func(entry *donburi.Entry) {
		bosses = append(bosses, entry)
	})

	for _, entry := range bosses {
		boss := components.Boss.Get(entry)
		if !boss.MayOperate || components.Health.Get(entry).Depleted() {
			continue
		}
		if boss.TypeConfig == nil || len(boss.TypeConfig.Attacks) == 0 {
			continue
		}

		boss.AttackTimer = gamemath.TickTimer(boss.AttackTimer, enc.DeltaTime)
		if boss.AttackTimer > 0 {
			continue
		}

		attack := boss.TypeConfig.Attacks[boss.AttackIndex%len(boss.TypeConfig.Attacks)]
		boss.AttackIndex++
		boss.AttackTimer = boss.TypeConfig.AttackCooldown
		performAttack(e, boss, attack)
	}
}

func performAttack(e *ecs.ECS, boss *components.BossData, attack config.AttackKind) {
	switch attack {
	case config.AttackSpiral:
		if boss.Spiral != nil && boss.Spiral.Valid() {
			StartSpiralWindow(boss.Spiral, config.Spiral.AnimationCycle)
		}
	case config.AttackRing:
		if boss.Ring != nil && boss.Ring.Valid() {
			ActivateRadialRing(e, boss.Ring)
			TriggerScreenShake(e, config.ShakeConstant, config.ScreenShake.BossStepMagnitude, config.ScreenShake.BossStepDuration, 0)
		}
	case config.AttackTelegraph:
		target, ok := playerCenter(e)
		if ok && boss.Telegraph != nil && boss.Telegraph.Valid() {
			ArmTelegraph(boss.Telegraph, target)
		}
	}
}

// BossCount returns the number of bosses in the world.
func BossCount(e *ecs.ECS) int {
	n := 0
	tags.Boss.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}
