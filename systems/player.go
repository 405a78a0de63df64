package systems

import (
	"github.com/automoto/amoebash/components"
	cfg "github.com/automoto/amoebash/config"
	"github.com/automoto/amoebash/shared/gamemath"
	"github.com/automoto/amoebash/shared/geometry"
	"github.com/automoto/amoebash/systems/ai"
	"github.com/automoto/amoebash/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	dt := deltaMs(ecs.World)
	var shots []ai.ProjectileRequest

	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		// If the player is in death sequence, only advance animation and return.
		// The entity will be removed by the death system.
		if playerEntry.HasComponent(components.Death) {
			if anim := components.Animation.Get(playerEntry); anim != nil && anim.CurrentAnimation != nil {
				anim.CurrentAnimation.Update()
			}
			return
		}
		if !playerEntry.HasComponent(components.Input) || !playerEntry.HasComponent(components.Motion) {
			stateFor(ecs.World).skipOnce(playerEntry, "player without input or motion")
			return
		}

		input := components.Input.Get(playerEntry)
		player := components.Player.Get(playerEntry)
		m := components.Motion.Get(playerEntry)

		tickPlayerTimers(player, dt)
		handleMovementInput(input, player, m, dt)
		if shot, ok := handleFireInput(input, player, m); ok {
			shots = append(shots, shot)
		}
		updatePlayerAnimation(player, components.Animation.Get(playerEntry))
	})

	for _, shot := range shots {
		factory.CreateProjectile(ecs, shot)
	}
}

func tickPlayerTimers(player *components.PlayerData, dt float64) {
	player.FireCooldownMs = max(0, player.FireCooldownMs-dt)
	player.InvulnMs = max(0, player.InvulnMs-dt)
	player.ContactCooldownMs = max(0, player.ContactCooldownMs-dt)
	player.Dash.CooldownMs = max(0, player.Dash.CooldownMs-dt)
}

// handleMovementInput sets facing and velocity. A dash overrides steering
// until it runs out; otherwise the cell coasts to a stop without input.
func handleMovementInput(input *components.InputData, player *components.PlayerData, m *components.MotionData, dt float64) {
	x, y := MoveIntent(input)
	move := geometry.V(x, y)
	moving := x != 0 || y != 0

	aim := geometry.V(input.AimX, input.AimY)
	switch {
	case aim.Magnitude() > geometry.Epsilon:
		player.Facing = aim.Normalized()
	case moving:
		player.Facing = move
	}
	if player.Facing.Magnitude() < geometry.Epsilon {
		player.Facing = geometry.Up
	}

	if input.JustPressed(cfg.ActionDash) && !player.Dash.Active && player.Dash.CooldownMs <= 0 {
		heading := geometry.AngleOf(player.Facing)
		if moving {
			heading = geometry.AngleOf(move)
		}
		player.Dash = components.DashState{
			Active:     true,
			Heading:    heading,
			TimerMs:    cfg.Player.DashMs,
			CooldownMs: cfg.Player.DashCooldownMs,
		}
	}

	switch {
	case player.Dash.Active:
		m.Velocity = geometry.FromAngle(player.Dash.Heading).MulScalar(cfg.Player.DashSpeed)
		player.Dash.TimerMs -= dt
		if player.Dash.TimerMs <= 0 {
			player.Dash.Active = false
		}
	case moving:
		m.Velocity = move.MulScalar(cfg.Player.Speed)
	default:
		m.Velocity = gamemath.Decay(m.Velocity, cfg.Player.Friction, dt, gamemath.RefTickMs)
	}

	m.Angle = geometry.AngleOf(player.Facing)
}

// handleFireInput returns a shot along the facing when fire is held and
// the cooldown has expired.
func handleFireInput(input *components.InputData, player *components.PlayerData, m *components.MotionData) (ai.ProjectileRequest, bool) {
	if !input.Pressed(cfg.ActionFire) || player.FireCooldownMs > 0 {
		return ai.ProjectileRequest{}, false
	}
	player.FireCooldownMs = cfg.Player.FireCooldownMs

	size := cfg.Projectile.Size
	offset := max(m.Scale.X, m.Scale.Y)/2 + size/2
	return ai.ProjectileRequest{
		Position: m.Position.Add(player.Facing.MulScalar(offset)),
		Size:     geometry.V(size, size),
		Velocity: player.Facing.MulScalar(cfg.Projectile.PlayerSpeed),
		Damage:   cfg.Projectile.PlayerDamage,
		Owner:    components.SpeciesNone,
	}, true
}

func updatePlayerAnimation(player *components.PlayerData, animData *components.AnimationData) {
	if animData == nil {
		return
	}
	state := "Idle"
	if player.Dash.Active {
		state = "Dash"
	}
	if def, ok := cfg.AnimationFor("player", state); ok {
		animData.SetRange(def.First, def.Last)
	}
	if animData.CurrentAnimation != nil {
		animData.CurrentAnimation.Update()
	}
}
