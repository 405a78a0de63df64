package components

import (
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Damage int
	// Owner is the species that fired it; SpeciesNone for the player.
	Owner      Species
	Homing     bool
	Speed      float64
	LifetimeMs float64
}

// FromPlayer reports whether the projectile should hurt enemies.
func (p *ProjectileData) FromPlayer() bool {
	return p.Owner == SpeciesNone
}

var Projectile = donburi.NewComponentType[ProjectileData]()
