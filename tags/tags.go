package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Wall   = donburi.NewTag().SetName("Wall")
	Enemy  = donburi.NewTag().SetName("Enemy")
	Dummy  = donburi.NewTag().SetName("Dummy")
	// Actor marks every physics-driven entity that can die.
	Actor = donburi.NewTag().SetName("Actor")
)

// Resolv tags for physics collision
const (
	ResolvSolid     = "solid"
	ResolvCharacter = "character"
	ResolvPlayer    = "Player"
	ResolvEnemy     = "Enemy"
	ResolvDummy     = "Dummy"
	ResolvHitbox    = "Hitbox"
)
