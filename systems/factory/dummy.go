package factory

import (
	"github.com/automoto/seekthescounge/archetypes"
	"github.com/automoto/seekthescounge/components"
	cfg "github.com/automoto/seekthescounge/config"
	"github.com/automoto/seekthescounge/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateDummy spawns a training dummy with its feet at (x, y). It is pushed
// around by hits and never dies.
func CreateDummy(w donburi.World, x, y float64) *donburi.Entry {
	dummy := archetypes.Dummy.Spawn(w)

	width, height := cfg.Dummy.Width, cfg.Dummy.Height
	obj := resolv.NewObject(x-width/2, y-height, width, height,
		tags.ResolvCharacter, tags.ResolvDummy)
	obj.Data = dummy
	components.Object.SetValue(dummy, components.ObjectData{Object: obj})

	components.Dummy.SetValue(dummy, components.DummyData{SpawnX: x, SpawnY: y})
	components.Physics.SetValue(dummy, components.PhysicsData{
		DragX:        cfg.Dummy.DragX,
		AllowGravity: true,
		Enabled:      true,
		Width:        width,
		Height:       height,
	})

	addToSpace(w, obj)
	return dummy
}
