package factory

import (
	"github.com/automoto/seekthescounge/archetypes"
	"github.com/automoto/seekthescounge/components"
	"github.com/automoto/seekthescounge/shared/leveldata"
	"github.com/yohamta/donburi"
)

// CreateLevel stores the level and creates one wall per solid tile.
func CreateLevel(w donburi.World, level *leveldata.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(w)
	components.Level.SetValue(entry, components.LevelData{CurrentLevel: level})

	for _, tile := range level.SolidRects {
		CreateWall(w, tile.X, tile.Y, tile.W, tile.H)
	}
	return entry
}
