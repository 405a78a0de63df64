package factory

import (
	"github.com/automoto/amoebash/archetypes"
	"github.com/automoto/amoebash/components"
	cfg "github.com/automoto/amoebash/config"
	"github.com/automoto/amoebash/shared/geometry"
	"github.com/automoto/amoebash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer creates the player cell centred on (x, y), facing up.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	m := components.MotionData{
		Position: geometry.V(x, y),
		Scale:    geometry.V(cfg.Player.Width, cfg.Player.Height),
	}
	components.Motion.SetValue(player, m)

	obj := resolv.NewObject(x-cfg.Player.Width/2, y-cfg.Player.Height/2, cfg.Player.Width, cfg.Player.Height)
	obj.AddTags("character", tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Player.Width, cfg.Player.Height))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Player.SetValue(player, components.PlayerData{
		DetectionRange: cfg.Player.DetectionRange,
		Facing:         geometry.Up,
		Spawn:          geometry.V(x, y),
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.Animation.SetValue(player, GenerateAnimation("player", "Idle"))

	return player
}

// CreateBotPlayer creates the player with the autopilot attached.
func CreateBotPlayer(ecs *ecs.ECS, x, y float64, difficulty cfg.BotDifficulty) *donburi.Entry {
	player := CreatePlayer(ecs, x, y)
	player.AddComponent(components.Bot)
	components.Bot.SetValue(player, components.BotData{Difficulty: difficulty})
	return player
}
