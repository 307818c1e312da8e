package main

import (
	"flag"

	"github.com/automoto/seekthescounge/assets"
	"github.com/automoto/seekthescounge/config"
	"github.com/automoto/seekthescounge/fonts"
	"github.com/automoto/seekthescounge/logger"
	"github.com/automoto/seekthescounge/scenes"
	"github.com/automoto/seekthescounge/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	scene scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

func NewGame(characterID string) *Game {
	g := &Game{}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewPlatformerScene(g, characterID)
	} else {
		g.scene = scenes.NewPlayerSelectScene(g, characterID)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	character := flag.String("character", "", "character to play (skips the saved choice)")
	skipMenu := flag.Bool("skip-menu", false, "start in the level")
	debug := flag.Bool("debug", false, "show hitboxes and the debug overlay")
	tuning := flag.String("tuning", "", "directory of tuning YAML to load and watch")
	flag.Parse()

	logger.Init()
	log := logger.For("main")

	if err := systems.InitPersistence(); err != nil {
		log.WithError(err).Warn("settings will not be saved")
	}
	saved, _ := systems.LoadSettings()

	if *tuning != "" {
		if err := config.LoadTuningDir(*tuning); err != nil {
			log.WithError(err).Fatal("could not load tuning")
		}
		config.Debug.TuningDir = *tuning
	}

	characterID := *character
	if characterID == "" && saved != nil {
		characterID = saved.Character
	}
	if _, ok := config.Character(characterID); !ok {
		if *character != "" {
			log.WithField("character", characterID).Fatal("unknown character")
		}
		characterID = config.CharacterIDs()[0]
	}
	if *character != "" {
		systems.RememberCharacter(characterID)
	}

	config.Debug.SkipMenu = *skipMenu
	showDebug := *debug || (saved != nil && saved.ShowDebug)
	config.Debug.ShowOverlay = showDebug
	config.Debug.ShowHitboxes = showDebug

	if _, err := assets.LoadLevel(config.Level.Path); err != nil {
		log.WithError(err).Fatal("could not load level")
	}
	if err := fonts.LoadDefaults(); err != nil {
		log.WithError(err).Fatal("could not load fonts")
	}

	ebiten.SetWindowSize(config.C.Width*4, config.C.Height*4)
	ebiten.SetWindowTitle("Seek the Scounge")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(characterID)); err != nil {
		log.WithError(err).Fatal("game exited")
	}
}
