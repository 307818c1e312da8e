package factory

import (
	"fmt"

	"github.com/automoto/seekthescounge/archetypes"
	"github.com/automoto/seekthescounge/components"
	cfg "github.com/automoto/seekthescounge/config"
	"github.com/automoto/seekthescounge/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns a character with its feet at (x, y). The hitbox
// targets enemies and dummies until SetAttackTargets says otherwise.
func CreatePlayer(w donburi.World, x, y float64, characterID string) (*donburi.Entry, error) {
	char, ok := cfg.Character(characterID)
	if !ok {
		return nil, fmt.Errorf("unknown character %q", characterID)
	}

	player := archetypes.Player.Spawn(w)

	body := char.Body
	obj := resolv.NewObject(x-body.Width/2, y-body.Height, body.Width, body.Height,
		tags.ResolvCharacter, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		CharacterID:   characterID,
		Character:     char,
		LastDirection: cfg.DirRight,
	})
	physics := components.PhysicsData{
		DragX:        char.GroundDragX,
		AllowGravity: true,
		Enabled:      true,
	}
	physics.SetSize(body.Width, body.Height)
	physics.SetOffset(body.OffsetX, body.OffsetY)
	components.Physics.SetValue(player, physics)
	components.Attack.SetValue(player, components.AttackData{
		HitsThisSwing: map[donburi.Entity]struct{}{},
		Targets:       []string{tags.ResolvEnemy, tags.ResolvDummy},
	})
	components.Animation.SetValue(player, components.AnimationData{
		Set:    &char.Animations,
		State:  cfg.AnimIdle,
		Facing: cfg.DirRight,
		Key:    char.Animations.Key(cfg.AnimIdle, cfg.DirRight),
		Warned: map[string]bool{},
	})

	addToSpace(w, obj)
	return player, nil
}
