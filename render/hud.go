package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/seekthescounge/components"
	"github.com/automoto/seekthescounge/fonts"
	"github.com/automoto/seekthescounge/systems"
	"github.com/automoto/seekthescounge/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var (
	hudColor   = color.RGBA{255, 255, 255, 255}
	deathColor = color.RGBA{255, 90, 90, 255}
)

// DrawHUD shows hit and defeat counters, and a banner while the player is
// dead.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	hudEntry, ok := components.HUD.First(e.World)
	if !ok {
		return
	}
	hud := components.HUD.Get(hudEntry)
	face := fonts.Regular.Get()
	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	line := fmt.Sprintf("HITS %d  DOWN %d", hud.Hits, hud.EnemiesDown)
	text.Draw(screen, line, face, width-textWidth(line, face)-4, height-4, hudColor)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok || !systems.IsDead(playerEntry) {
		return
	}
	title := fonts.Title.Get()
	msg := "YOU DIED"
	text.Draw(screen, msg, title, (width-textWidth(msg, title))/2, height/2, deathColor)
}

func textWidth(s string, face font.Face) int {
	return text.BoundString(face, s).Dx()
}
