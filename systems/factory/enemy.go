package factory

import (
	"fmt"
	"strings"

	"github.com/automoto/seekthescounge/archetypes"
	"github.com/automoto/seekthescounge/components"
	cfg "github.com/automoto/seekthescounge/config"
	"github.com/automoto/seekthescounge/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// enemyAnimationStates is the art every enemy type ships with.
var enemyAnimationStates = []string{cfg.AnimRunning.String(), cfg.AnimDie.String()}

// CreateEnemy spawns an enemy of a configured type with its feet at (x, y),
// walking left.
func CreateEnemy(w donburi.World, x, y float64, enemyType string) (*donburi.Entry, error) {
	typ, ok := cfg.EnemyType(enemyType)
	if !ok {
		return nil, fmt.Errorf("unknown enemy type %q", enemyType)
	}

	enemy := archetypes.Enemy.Spawn(w)

	obj := resolv.NewObject(x-typ.Width/2, y-typ.Height, typ.Width, typ.Height,
		tags.ResolvCharacter, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName:  typ.Name,
		Type:      typ,
		Direction: cfg.DirLeft,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		AllowGravity: true,
		Enabled:      true,
		Width:        typ.Width,
		Height:       typ.Height,
	})

	set := &cfg.AnimationSet{Prefix: strings.ToLower(enemyType), States: enemyAnimationStates}
	components.Animation.SetValue(enemy, components.AnimationData{
		Set:    set,
		State:  cfg.AnimRunning,
		Facing: cfg.DirLeft,
		Key:    set.Key(cfg.AnimRunning, cfg.DirLeft),
		Warned: map[string]bool{},
	})

	addToSpace(w, obj)
	return enemy, nil
}
