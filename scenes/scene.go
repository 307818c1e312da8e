package scenes

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene Scene)
}

// frameMs is the simulation step for one ebitengine tick.
func frameMs() float64 {
	return 1000 / float64(ebiten.TPS())
}
