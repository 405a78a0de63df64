package components

import "github.com/yohamta/donburi"

type DamageEventData struct {
	Amount     int
	KnockbackX float64
	KnockbackY float64
	// FromPlayer is set when the player dealt the damage, for kill credit.
	FromPlayer bool
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
