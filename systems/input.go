package systems

import (
	"github.com/automoto/amoebash/components"
	cfg "github.com/automoto/amoebash/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls the keyboard and gamepads into every human player's
// Input. Bot-driven players are left to UpdateBots.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	components.Input.Each(ecs.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Bot) {
			return
		}
		input := components.Input.Get(entry)
		input.Advance()
		pollDevices(input, gamepadIDs)
	})
}

func pollDevices(input *components.InputData, gamepads []ebiten.GamepadID) {
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepads {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	left, right, up, down := getAnalogStickState(gamepads)
	input.Current[cfg.ActionMoveLeft] = input.Current[cfg.ActionMoveLeft] || left
	input.Current[cfg.ActionMoveRight] = input.Current[cfg.ActionMoveRight] || right
	input.Current[cfg.ActionMoveUp] = input.Current[cfg.ActionMoveUp] || up
	input.Current[cfg.ActionMoveDown] = input.Current[cfg.ActionMoveDown] || down
}

// getAnalogStickState reads the left analog stick from all gamepads
// Returns directional states based on deadzone threshold
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		left = left || horizontal < -deadzone
		right = right || horizontal > deadzone
		up = up || vertical < -deadzone
		down = down || vertical > deadzone
	}

	return
}

// MoveIntent turns the directional actions into a unit vector, or zero.
func MoveIntent(input *components.InputData) (x, y float64) {
	if input.Pressed(cfg.ActionMoveLeft) {
		x--
	}
	if input.Pressed(cfg.ActionMoveRight) {
		x++
	}
	if input.Pressed(cfg.ActionMoveUp) {
		y--
	}
	if input.Pressed(cfg.ActionMoveDown) {
		y++
	}
	if x != 0 && y != 0 {
		x *= diagonal
		y *= diagonal
	}
	return x, y
}

const diagonal = 0.7071067811865476
