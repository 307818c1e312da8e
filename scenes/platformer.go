package scenes

import (
	"image/color"
	"os"
	"path/filepath"
	"sync"

	"github.com/automoto/seekthescounge/assets"
	"github.com/automoto/seekthescounge/components"
	cfg "github.com/automoto/seekthescounge/config"
	"github.com/automoto/seekthescounge/input"
	"github.com/automoto/seekthescounge/logger"
	"github.com/automoto/seekthescounge/render"
	"github.com/automoto/seekthescounge/systems"
	"github.com/automoto/seekthescounge/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene runs the level with one player.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	characterID  string
	controller   *input.Controller
	subs         systems.Subscriptions
	watcher      *cfg.TuningWatcher
	finished     bool
	once         sync.Once
}

func NewPlatformerScene(sc SceneChanger, characterID string) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, characterID: characterID}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if ps.finished {
		ps.teardown()
		ps.sceneChanger.ChangeScene(ps.next())
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ps.ecs = ecs.NewECS(donburi.NewWorld())
	ps.controller = input.NewController()

	// Input must be applied before the simulation reads Control.
	ps.ecs.AddSystem(ps.updateInput)
	ps.ecs.AddSystem(ps.updateTuning)
	ps.ecs.AddSystem(ps.updateSimulation)

	ps.ecs.AddRenderer(render.LayerWorld, render.DrawLevel)
	ps.ecs.AddRenderer(render.LayerWorld, render.DrawActors)
	ps.ecs.AddRenderer(render.LayerWorld, render.DrawHitboxes)
	ps.ecs.AddRenderer(render.LayerOverlay, render.DrawHUD)
	ps.ecs.AddRenderer(render.LayerOverlay, render.DrawDebug)

	level := assets.MustLoadLevel(cfg.Level.Path)
	if _, err := factory.SpawnLevel(ps.ecs.World, level, ps.characterID); err != nil {
		logger.For("scenes").WithError(err).Error("could not spawn level")
		ps.finished = true
		return
	}

	ps.subs.Add(systems.SubscribeHUD(ps.ecs.World))
	ps.subs.Add(systems.SubscribeCameraShake(ps.ecs.World))
	ps.subs.Add(systems.Subscribe(ps.ecs.World, components.DeathSequenceFinished,
		func(_ donburi.World, _ components.DeathSequenceFinishedEvent) {
			ps.finished = true
		}))

	if cfg.Debug.TuningDir != "" {
		w, err := cfg.WatchTuning(cfg.Debug.TuningDir)
		if err != nil {
			logger.For("tuning").WithError(err).Warn("tuning hot reload disabled")
		} else {
			ps.watcher = w
		}
	}
}

func (ps *PlatformerScene) updateInput(e *ecs.ECS) {
	state, method := ps.controller.Poll()
	systems.ApplyInput(e.World, state, method)

	in := systems.InputState(e.World)
	if in != nil && in.JustPressed(cfg.ActionToggleDebug) {
		toggleDebug()
	}
}

func (ps *PlatformerScene) updateSimulation(e *ecs.ECS) {
	if ps.finished {
		return
	}
	systems.Tick(e.World, frameMs())
}

// updateTuning applies changed tuning files from the game loop, the only
// writer of the capability tables.
func (ps *PlatformerScene) updateTuning(_ *ecs.ECS) {
	if ps.watcher == nil {
		return
	}
	log := logger.For("tuning")
	for {
		select {
		case name, ok := <-ps.watcher.Events:
			if !ok {
				ps.watcher = nil
				return
			}
			fsys := os.DirFS(cfg.Debug.TuningDir)
			if err := cfg.ApplyTuningFile(fsys, filepath.Base(name)); err != nil {
				log.WithError(err).WithField("file", name).Warn("tuning reload failed")
				continue
			}
			log.WithField("file", name).Info("tuning reloaded")
		case err, ok := <-ps.watcher.Errors:
			if !ok {
				ps.watcher = nil
				return
			}
			log.WithError(err).Warn("tuning watcher error")
		default:
			return
		}
	}
}

func (ps *PlatformerScene) teardown() {
	ps.subs.Close()
	if ps.watcher != nil {
		_ = ps.watcher.Close()
		ps.watcher = nil
	}
}

// next is the scene shown after the death sequence.
func (ps *PlatformerScene) next() Scene {
	if cfg.Debug.SkipMenu {
		return NewPlatformerScene(ps.sceneChanger, ps.characterID)
	}
	return NewPlayerSelectScene(ps.sceneChanger, ps.characterID)
}

func toggleDebug() {
	on := !cfg.Debug.ShowOverlay
	cfg.Debug.ShowOverlay = on
	cfg.Debug.ShowHitboxes = on

	saved, _ := systems.LoadSettings()
	if saved == nil {
		saved = &systems.SavedSettings{}
	}
	saved.ShowDebug = on
	_ = systems.SaveSettings(saved)
}
