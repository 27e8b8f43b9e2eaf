package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Boss       = donburi.NewTag().SetName("Boss")
	Projectile = donburi.NewTag().SetName("Projectile")
	RingNode   = donburi.NewTag().SetName("RingNode")
	Generator  = donburi.NewTag().SetName("Generator")
)

// Resolv tags for the collision collaborator
const (
	ResolvPlayer     = "Player"
	ResolvBoss       = "Boss"
	ResolvProjectile = "Projectile"
	ResolvRingNode   = "RingNode"
	ResolvHazard     = "hazard" // anything that deals damage to the player
)
