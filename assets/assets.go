package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/seekthescounge/config"
	"github.com/automoto/seekthescounge/shared/leveldata"
)

//go:embed all:levels
var assetFS embed.FS

// FS exposes the embedded assets, rooted at the assets directory.
func FS() fs.FS {
	return assetFS
}

// LoadLevel parses an embedded TMX level using the configured layer and
// property names.
func LoadLevel(path string) (*leveldata.Level, error) {
	level, err := leveldata.Load(assetFS, path, leveldata.Options{
		CollisionLayer: config.Level.CollisionLayer,
		CollidesProp:   config.Level.CollidesProp,
	})
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	return level, nil
}

// MustLoadLevel is LoadLevel for levels shipped with the binary.
func MustLoadLevel(path string) *leveldata.Level {
	level, err := LoadLevel(path)
	if err != nil {
		panic(err)
	}
	return level
}
