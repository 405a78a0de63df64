package systems

import (
	"fmt"

	cfg "github.com/automoto/amoebash/config"
	"github.com/automoto/amoebash/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawGameOver renders the end of run banner once the session is over.
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	session := GetSession(e.World)
	if session == nil || !session.Over {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw background
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.GameOver.BackgroundColor,
		false,
	)

	title, titleColor := "YOU DIED", cfg.GameOver.TitleColor
	if session.Won {
		title, titleColor = "ARENA CLEARED", cfg.GameOver.WinColor
	}
	cx := width / 2
	fonts.DrawCentered(screen, title, fonts.Title, cx, cfg.GameOver.TitleY, titleColor)

	lines := []string{
		fmt.Sprintf("kills %d   final boss phase %d", session.Kills, session.FinalBossPhase),
		fmt.Sprintf("%.1f seconds", session.ElapsedMs/1000),
		"press enter to play again",
	}
	for i, line := range lines {
		y := cfg.GameOver.StatsY + float64(i)*cfg.GameOver.LineHeight
		fonts.DrawCentered(screen, line, fonts.Body, cx, y, cfg.GameOver.TextColor)
	}
}
