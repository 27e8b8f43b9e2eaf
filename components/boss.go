package components

import (
	"github.com/automoto/doomerang-boss/config"
	"github.com/yohamta/donburi"
)

type BossData struct {
	TypeName   string                 // "Warden", "Sentinel" etc...
	TypeConfig *config.BossTypeConfig // Cached reference to type configuration
	MayOperate bool                   // set once the introduction pan finishes

	// Attack scheduling
	AttackTimer float64 // ms until the next attack
	AttackIndex int     // next entry in TypeConfig.Attacks

	// Generators driven by this boss
	Spiral    *donburi.Entry
	Ring      *donburi.Entry
	Telegraph *donburi.Entry
}

var Boss = donburi.NewComponentType[BossData]()
