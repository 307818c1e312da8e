package archetypes

import (
	"github.com/automoto/seekthescounge/components"
	"github.com/automoto/seekthescounge/tags"
	"github.com/yohamta/donburi"
)

// Every component an actor will ever need is attached at spawn so systems
// never change an entity's archetype mid-frame.
var (
	Player = newArchetype(
		tags.Player,
		tags.Actor,
		components.Player,
		components.Control,
		components.Object,
		components.Physics,
		components.Attack,
		components.Animation,
		components.Death,
	)
	Enemy = newArchetype(
		tags.Enemy,
		tags.Actor,
		components.Enemy,
		components.Object,
		components.Physics,
		components.Knockback,
		components.Animation,
		components.Death,
	)
	Dummy = newArchetype(
		tags.Dummy,
		tags.Actor,
		components.Dummy,
		components.Object,
		components.Physics,
		components.Knockback,
		components.Death,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Clock = newArchetype(
		components.Clock,
		components.Scheduler,
	)
	Input = newArchetype(
		components.Input,
	)
	HUD = newArchetype(
		components.HUD,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
