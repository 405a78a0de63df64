package components

import (
	"strings"

	"github.com/yohamta/donburi"
)

// Species identifies an enemy archetype. SpeciesNone marks things the
// player owns, such as the player's own projectiles.
type Species uint8

const (
	SpeciesNone Species = iota
	SpeciesBasic
	SpeciesDrifter
	SpeciesOrbiter
	SpeciesCharger
	SpeciesBoss
	SpeciesFinalBoss
)

var speciesNames = [...]string{
	SpeciesNone:      "none",
	SpeciesBasic:     "basic",
	SpeciesDrifter:   "drifter",
	SpeciesOrbiter:   "orbiter",
	SpeciesCharger:   "charger",
	SpeciesBoss:      "boss",
	SpeciesFinalBoss: "finalboss",
}

func (s Species) String() string {
	if int(s) < len(speciesNames) {
		return speciesNames[s]
	}
	return "unknown"
}

// ParseSpecies maps a level spawn name to a species. Unknown names return
// SpeciesNone and false.
func ParseSpecies(name string) (Species, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range speciesNames {
		if i != int(SpeciesNone) && n == name {
			return Species(i), true
		}
	}
	return SpeciesNone, false
}

type EnemyData struct {
	Species       Species
	ContactDamage int
	// DetectionMultiplier scales the species' base detection radius.
	DetectionMultiplier float64
	// Minion is set on enemies spawned by the final boss.
	Minion   bool
	InvulnMs float64
}

var Enemy = donburi.NewComponentType[EnemyData]()
