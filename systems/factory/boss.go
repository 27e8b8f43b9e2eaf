package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/doomerang-boss/archetypes"
	"github.com/automoto/doomerang-boss/components"
	cfg "github.com/automoto/doomerang-boss/config"
	"github.com/automoto/doomerang-boss/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var ErrUnknownBossType = errors.New("unknown boss type")

// CreateBoss materializes a boss of bossType centered on center, together with
// the attack generators its type drives. The boss may not operate until the
// introduction pan hands control back.
func CreateBoss(ecs *ecs.ECS, bossType string, center math.Vec2) (*donburi.Entry, error) {
	typeConfig, ok := cfg.Boss.Types[bossType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBossType, bossType)
	}
	// Check the ring variation before anything is spawned
	if !cfg.Ring.Variation.Valid() {
		return nil, fmt.Errorf("boss %s: %w", bossType, cfg.ErrInvalidAttackVariation)
	}

	boss := archetypes.Boss.Spawn(ecs)

	obj := resolv.NewObject(center.X-typeConfig.Width/2, center.Y-typeConfig.Height/2, typeConfig.Width, typeConfig.Height, tags.ResolvBoss)
	obj.Data = boss
	components.Object.SetValue(boss, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Health.SetValue(boss, components.HealthData{
		Current: typeConfig.Health,
		Max:     typeConfig.Health,
	})

	components.Sprite.SetValue(boss, components.SpriteData{
		Key:  typeConfig.SpriteKey,
		Tint: typeConfig.TintColor,
	})

	data := components.BossData{
		TypeName:    bossType,
		TypeConfig:  &typeConfig,
		AttackTimer: typeConfig.AttackCooldown,
	}
	for _, attack := range typeConfig.Attacks {
		switch attack {
		case cfg.AttackSpiral:
			data.Spiral = CreateSpiralBurst(ecs, boss, components.NewEntityPool())
		case cfg.AttackRing:
			ring, err := CreateRadialRing(ecs, boss, components.NewEntityPool(), cfg.Ring.Variation)
			if err != nil {
				return nil, err
			}
			data.Ring = ring
		case cfg.AttackTelegraph:
			data.Telegraph = CreateTelegraph(ecs)
		}
	}
	components.Boss.SetValue(boss, data)

	return boss, nil
}
