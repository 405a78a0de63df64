package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Ratio is Current/Max, or 0 for an entity without a maximum.
func (h *HealthData) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}

type HealthBarData struct {
	// TimeToLiveMs is how long the health bar stays visible after a hit.
	TimeToLiveMs float64
}

var Health = donburi.NewComponentType[HealthData]()
var HealthBar = donburi.NewComponentType[HealthBarData]()
