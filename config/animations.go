package config

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32
}

// SpeciesAnimations maps a species name to the frame range shown in each
// AI state, keyed by the state's name.
var SpeciesAnimations = map[string]map[string]AnimationDef{
	"player": {
		"Idle": {First: 0, Last: 3, Step: 1, Speed: 8},
		"Dash": {First: 4, Last: 6, Step: 1, Speed: 3},
	},
	"basic": {
		"Patrolling": {First: 0, Last: 3, Step: 1, Speed: 8},
		"Dashing":    {First: 4, Last: 7, Step: 1, Speed: 4},
		"Chasing":    {First: 4, Last: 7, Step: 1, Speed: 4},
		"Knockback":  {First: 8, Last: 9, Step: 1, Speed: 5},
	},
	"drifter": {
		"Floating": {First: 0, Last: 5, Step: 1, Speed: 10},
		"Runaway":  {First: 6, Last: 9, Step: 1, Speed: 4},
	},
	"orbiter": {
		"Patrolling": {First: 0, Last: 3, Step: 1, Speed: 8},
		"Chasing":    {First: 4, Last: 7, Step: 1, Speed: 5},
	},
	"charger": {
		"Hunt":   {First: 0, Last: 3, Step: 1, Speed: 8},
		"Charge": {First: 4, Last: 7, Step: 1, Speed: 3},
		"Pierce": {First: 8, Last: 9, Step: 1, Speed: 2},
		"Shoot":  {First: 10, Last: 13, Step: 1, Speed: 5},
	},
	"boss": {
		"Initial":     {First: 0, Last: 3, Step: 1, Speed: 8},
		"Idle":        {First: 0, Last: 3, Step: 1, Speed: 8},
		"ShootParade": {First: 4, Last: 7, Step: 1, Speed: 5},
		"Rumble":      {First: 8, Last: 11, Step: 1, Speed: 3},
		"Flee":        {First: 12, Last: 15, Step: 1, Speed: 4},
	},
	"finalboss": {
		"Initial":     {First: 0, Last: 3, Step: 1, Speed: 8},
		"Spawn":       {First: 4, Last: 7, Step: 1, Speed: 6},
		"SpiralShoot": {First: 8, Last: 11, Step: 1, Speed: 4},
		"Tired":       {First: 12, Last: 15, Step: 1, Speed: 10},
	},
}

// AnimationFor looks up the frame range for a species state. ok is false
// when no range is configured.
func AnimationFor(species, state string) (AnimationDef, bool) {
	def, ok := SpeciesAnimations[species][state]
	return def, ok
}
