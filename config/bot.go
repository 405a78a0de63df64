package config

// BotDifficulty affects reaction time and decision quality
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

// ParseBotDifficulty maps a CLI name to a difficulty, defaulting to normal.
func ParseBotDifficulty(name string) BotDifficulty {
	switch name {
	case "easy":
		return BotDifficultyEasy
	case "hard":
		return BotDifficultyHard
	default:
		return BotDifficultyNormal
	}
}

// BotDifficultyConfig holds tuning values for bot behavior at a specific difficulty
type BotDifficultyConfig struct {
	ReactionDelay    int     // Ticks between decisions
	FireRange        float64 // Distance to start shooting
	KiteDistance     float64 // Preferred distance to the nearest enemy
	DashDistance     float64 // Dash away when an enemy is closer than this
	RetreatThreshold float64 // Health % to start retreating
}

// BotConfigData holds all bot-related configuration
type BotConfigData struct {
	Difficulties map[BotDifficulty]BotDifficultyConfig
}

// Bot holds bot AI configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				ReactionDelay:    30, // 0.5 second reaction time
				FireRange:        160.0,
				KiteDistance:     90.0,
				DashDistance:     20.0,
				RetreatThreshold: 0.2,
			},
			BotDifficultyNormal: {
				ReactionDelay:    15,
				FireRange:        220.0,
				KiteDistance:     120.0,
				DashDistance:     32.0,
				RetreatThreshold: 0.3,
			},
			BotDifficultyHard: {
				ReactionDelay:    5, // Near-instant reaction
				FireRange:        280.0,
				KiteDistance:     140.0,
				DashDistance:     48.0,
				RetreatThreshold: 0.15,
			},
		},
	}
}
