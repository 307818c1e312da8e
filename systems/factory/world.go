package factory

import (
	"github.com/automoto/seekthescounge/components"
	cfg "github.com/automoto/seekthescounge/config"
	"github.com/automoto/seekthescounge/logger"
	"github.com/automoto/seekthescounge/shared/leveldata"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// SpawnLevel populates an empty world: singletons, the collision space, the
// level geometry, the player and every placed enemy and dummy. Chasers are
// aimed at the player. Unknown enemy types are logged and skipped.
func SpawnLevel(w donburi.World, level *leveldata.Level, characterID string) (*donburi.Entry, error) {
	CreateClock(w)
	CreateInput(w)
	CreateHUD(w)
	CreateCamera(w)
	CreateSpace(w, level.Width, level.Height, cfg.Physics.CellSize, cfg.Physics.CellSize)
	CreateLevel(w, level)

	spawnX, spawnY := cfg.Level.DefaultSpawnX, cfg.Level.DefaultSpawnY
	if len(level.PlayerSpawns) > 0 {
		spawnX, spawnY = level.PlayerSpawns[0].X, level.PlayerSpawns[0].Y
	}
	player, err := CreatePlayer(w, spawnX, spawnY, characterID)
	if err != nil {
		return nil, err
	}

	log := logger.For("factory")
	for _, spawn := range level.EnemySpawns {
		enemy, err := CreateEnemy(w, spawn.X, spawn.Y, spawn.EnemyType)
		if err != nil {
			log.WithFields(logrus.Fields{
				"level": level.Name,
				"x":     spawn.X,
				"y":     spawn.Y,
			}).WithError(err).Warn("skipping enemy spawn")
			continue
		}
		if components.Enemy.Get(enemy).Type.Behavior == cfg.BehaviorChase {
			aimAt(enemy, player)
		}
	}

	dummies := level.DummySpawns
	if len(dummies) == 0 {
		dummies = []leveldata.SpawnPoint{{
			X: spawnX + cfg.Dummy.SpawnOffsetX,
			Y: spawnY + cfg.Dummy.SpawnOffsetY,
		}}
	}
	for _, spawn := range dummies {
		CreateDummy(w, spawn.X, spawn.Y)
	}

	if entry, ok := components.Camera.First(w); ok {
		obj := components.Object.Get(player).Object
		camera := components.Camera.Get(entry)
		camera.Position.X = obj.X
		camera.Position.Y = obj.Y
	}

	return player, nil
}

func aimAt(enemy, target *donburi.Entry) {
	data := components.Enemy.Get(enemy)
	data.Target = target.Entity()
	data.HasTarget = true
}
