package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Options names the layers and properties the loader looks for.
type Options struct {
	CollisionLayer string
	CollidesProp   string
}

// DefaultOptions matches the levels shipped with the game.
var DefaultOptions = Options{
	CollisionLayer: "Ground",
	CollidesProp:   "collides",
}

// Load parses a TMX file. It takes an fs.FS so callers can pass embed.FS or
// an in-memory map in tests.
func Load(fsys fs.FS, tmxPath string, opts Options) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:       strings.TrimSuffix(filepath.Base(tmxPath), filepath.Ext(tmxPath)),
		Cols:       levelMap.Width,
		Rows:       levelMap.Height,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
		Width:      levelMap.Width * levelMap.TileWidth,
		Height:     levelMap.Height * levelMap.TileHeight,
		solid:      make([]bool, levelMap.Width*levelMap.Height),
	}

	layer := findLayer(levelMap, opts.CollisionLayer)
	if layer == nil {
		return nil, fmt.Errorf("load TMX %s: layer %q not found", tmxPath, opts.CollisionLayer)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for y := 0; y < levelMap.Height; y++ {
		for x := 0; x < levelMap.Width; x++ {
			tile := layer.Tiles[y*levelMap.Width+x]
			if tile.IsNil() {
				continue
			}

			rect := TileRect{
				X:   float64(x) * tileW,
				Y:   float64(y) * tileH,
				W:   tileW,
				H:   tileH,
				Col: x,
				Row: y,
			}
			if tileCollides(tile, opts.CollidesProp) {
				level.solid[y*levelMap.Width+x] = true
				level.SolidRects = append(level.SolidRects, rect)
			} else {
				level.DecorRects = append(level.DecorRects, rect)
			}
		}
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			for _, o := range og.Objects {
				level.PlayerSpawns = append(level.PlayerSpawns, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case "Enemies":
			for _, o := range og.Objects {
				enemyType := o.Properties.GetString("enemyType")
				if enemyType == "" {
					enemyType = o.Name
				}
				level.EnemySpawns = append(level.EnemySpawns, EnemySpawn{
					X:         o.X,
					Y:         o.Y,
					EnemyType: enemyType,
				})
			}
		case "Dummies":
			for _, o := range og.Objects {
				level.DummySpawns = append(level.DummySpawns, SpawnPoint{X: o.X, Y: o.Y})
			}
		}
	}

	sort.SliceStable(level.PlayerSpawns, func(i, j int) bool {
		return level.PlayerSpawns[i].Index < level.PlayerSpawns[j].Index
	})

	return level, nil
}

func findLayer(m *tiled.Map, name string) *tiled.Layer {
	for _, layer := range m.Layers {
		if layer.Name == name {
			return layer
		}
	}
	return nil
}

// tileCollides reads the collides property of the tileset tile. Tiles without
// tileset metadata do not collide.
func tileCollides(tile *tiled.LayerTile, prop string) bool {
	if tile.Tileset == nil {
		return false
	}
	tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
	if err != nil {
		return false
	}
	return tilesetTile.Properties.GetBool(prop)
}
