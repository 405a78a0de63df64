package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Wall       = donburi.NewTag().SetName("Wall")
	Portal     = donburi.NewTag().SetName("Portal")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Boss       = donburi.NewTag().SetName("Boss")
	Projectile = donburi.NewTag().SetName("Projectile")
	Indicator  = donburi.NewTag().SetName("Indicator")
)

// Resolv tags for the broad phase
const (
	ResolvSolid      = "solid"
	ResolvPortal     = "portal"
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvProjectile = "Projectile"
)
