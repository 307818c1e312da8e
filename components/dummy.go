package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type DummyData struct {
	HitsTaken int
	SpawnX    float64
	SpawnY    float64

	Flash      *gween.Tween
	FlashLevel float32 // 1 right after a hit, fades to 0
}

var Dummy = donburi.NewComponentType[DummyData]()
