package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning is wrapped by every Validate failure.
var ErrInvalidTuning = errors.New("invalid tuning")

const tuningFile = "tuning.yaml"

// tuning is the YAML document layout. It points at the globals so an
// overlay only replaces the keys it names.
type tuning struct {
	Game       *Config           `yaml:"game"`
	Player     *PlayerConfig     `yaml:"player"`
	Enemy      *EnemyConfig      `yaml:"enemy"`
	AI         *AIConfig         `yaml:"ai"`
	Collision  *CollisionConfig  `yaml:"collision"`
	Projectile *ProjectileConfig `yaml:"projectile"`
	Combat     *CombatConfig     `yaml:"combat"`
	Indicator  *IndicatorConfig  `yaml:"indicator"`
}

func globals() *tuning {
	return &tuning{
		Game:       C,
		Player:     &Player,
		Enemy:      &Enemy,
		AI:         &AI,
		Collision:  &Collision,
		Projectile: &Projectile,
		Combat:     &Combat,
		Indicator:  &Indicator,
	}
}

// Load overlays a YAML tuning file on top of the built-in defaults and
// validates the result. It returns the path that was applied, or "" when
// only defaults are in effect.
// Search order: customPath -> ~/.amoebash/tuning.yaml -> ./configs/tuning.yaml -> defaults
func Load(customPath string) (string, error) {
	Reset()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := Apply(data); err != nil {
			return "", fmt.Errorf("failed to apply config %s: %w", customPath, err)
		}
		return customPath, nil
	}

	for _, path := range []string{userConfigPath(tuningFile), filepath.Join("configs", tuningFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := Apply(data); err != nil {
			return "", fmt.Errorf("failed to apply config %s: %w", path, err)
		}
		return path, nil
	}

	return "", Validate()
}

// Apply parses a YAML overlay into the current globals and validates it.
func Apply(data []byte) error {
	if err := yaml.Unmarshal(data, globals()); err != nil {
		return fmt.Errorf("failed to parse tuning: %w", err)
	}
	return Validate()
}

// Validate rejects tuning values the simulation cannot run with.
func Validate() error {
	if C.TPS <= 0 {
		return fmt.Errorf("%w: game.tps must be positive, got %d", ErrInvalidTuning, C.TPS)
	}
	if C.TileSize <= 0 {
		return fmt.Errorf("%w: game.tile_size must be positive", ErrInvalidTuning)
	}
	if Collision.Margin < 0 {
		return fmt.Errorf("%w: collision.margin must not be negative", ErrInvalidTuning)
	}
	if Collision.CellSize <= 0 {
		return fmt.Errorf("%w: collision.cell_size must be positive", ErrInvalidTuning)
	}
	if Combat.MaxKnockback <= 0 {
		return fmt.Errorf("%w: combat.max_knockback must be positive", ErrInvalidTuning)
	}
	if Player.DetectionRange <= 0 {
		return fmt.Errorf("%w: player.detection_range must be positive", ErrInvalidTuning)
	}

	fb := AI.FinalBoss
	if len(fb.ContourThickness) != 3 || len(fb.SpawnChance) != 3 {
		return fmt.Errorf("%w: final_boss needs exactly 3 contour_thickness and spawn_chance entries", ErrInvalidTuning)
	}
	for i := range 3 {
		if fb.ContourThickness[i] <= 0 {
			return fmt.Errorf("%w: final_boss.contour_thickness[%d] must be positive", ErrInvalidTuning, i)
		}
		if fb.SpawnChance[i] < 0 || fb.SpawnChance[i] > 1 {
			return fmt.Errorf("%w: final_boss.spawn_chance[%d] must be within [0, 1]", ErrInvalidTuning, i)
		}
	}
	if fb.RingCount <= 0 {
		return fmt.Errorf("%w: final_boss.ring_count must be positive", ErrInvalidTuning)
	}
	if AI.Boss.ParadeStep <= 0 || AI.Boss.ParadeStep > 360 {
		return fmt.Errorf("%w: boss.parade_step must be within (0, 360]", ErrInvalidTuning)
	}
	if AI.Boss.FleeThreshold < 0 || AI.Boss.FleeThreshold > 1 {
		return fmt.Errorf("%w: boss.flee_threshold must be within [0, 1]", ErrInvalidTuning)
	}
	if AI.Orbiter.NearDistance >= AI.Orbiter.FarDistance || AI.Orbiter.SnapDistance >= AI.Orbiter.NearDistance {
		return fmt.Errorf("%w: orbiter distances must satisfy snap < near < far", ErrInvalidTuning)
	}
	if AI.Drifter.IntervalMs <= 0 {
		return fmt.Errorf("%w: drifter.interval_ms must be positive", ErrInvalidTuning)
	}
	for name, t := range Enemy.Types {
		if t.Health <= 0 || t.Width <= 0 || t.Height <= 0 {
			return fmt.Errorf("%w: enemy type %q needs positive health and size", ErrInvalidTuning, name)
		}
	}
	return nil
}

// userConfigPath returns the path in the user's config directory.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".amoebash", filename)
}
