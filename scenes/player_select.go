package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/seekthescounge/components"
	cfg "github.com/automoto/seekthescounge/config"
	"github.com/automoto/seekthescounge/input"
	"github.com/automoto/seekthescounge/logger"
	"github.com/automoto/seekthescounge/systems"
	"github.com/automoto/seekthescounge/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// PlayerSelectScene lets the player pick a character with ebitenui.
type PlayerSelectScene struct {
	sceneChanger SceneChanger
	initial      string
	selectUI     *ui.PlayerSelectUI
	controller   *input.Controller
	input        components.InputData
	chosen       string
	once         sync.Once
}

// NewPlayerSelectScene preselects initial, typically the last saved choice.
func NewPlayerSelectScene(sc SceneChanger, initial string) *PlayerSelectScene {
	return &PlayerSelectScene{sceneChanger: sc, initial: initial}
}

func (ss *PlayerSelectScene) Update() {
	ss.once.Do(ss.configure)
	if ss.chosen != "" {
		systems.RememberCharacter(ss.chosen)
		ss.sceneChanger.ChangeScene(NewPlatformerScene(ss.sceneChanger, ss.chosen))
		return
	}

	state, _ := ss.controller.Poll()
	ss.input.Advance(state)
	switch {
	case ss.input.JustPressed(cfg.ActionMoveLeft):
		ss.selectUI.Move(-1)
	case ss.input.JustPressed(cfg.ActionMoveRight):
		ss.selectUI.Move(1)
	case ss.input.JustPressed(cfg.ActionMenuSelect), ss.input.JustPressed(cfg.ActionJump):
		ss.selectUI.Confirm()
	}

	ss.selectUI.Update()
}

func (ss *PlayerSelectScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})

	if ss.selectUI == nil {
		return
	}
	ss.selectUI.UI.Draw(screen)
}

func (ss *PlayerSelectScene) configure() {
	ss.controller = input.NewController()

	selectUI, err := ui.NewPlayerSelectUI(ss.initial, func(id string) { ss.chosen = id })
	if err != nil {
		// Without the menu there is still a playable default.
		logger.For("scenes").WithError(err).Error("player select unavailable")
		ss.chosen = ss.initial
		if ss.chosen == "" {
			ss.chosen = cfg.CharacterIDs()[0]
		}
		return
	}
	ss.selectUI = selectUI
}
