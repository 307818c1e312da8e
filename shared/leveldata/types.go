// Package leveldata parses TMX levels into plain data. It has no
// dependencies on ebitengine, donburi, or resolv.
package leveldata

// Level holds everything the simulation needs from a TMX file.
type Level struct {
	Name         string
	Cols, Rows   int
	TileWidth    int
	TileHeight   int
	Width        int // px
	Height       int // px
	SolidRects   []TileRect
	DecorRects   []TileRect
	PlayerSpawns []SpawnPoint
	EnemySpawns  []EnemySpawn
	DummySpawns  []SpawnPoint

	solid []bool
}

// TileRect is one tile in world space.
type TileRect struct {
	X, Y, W, H float64
	Col, Row   int
}

// SpawnPoint is a feet position: horizontally centered, at the body bottom.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// EnemySpawn places an enemy of a configured type.
type EnemySpawn struct {
	X, Y      float64
	EnemyType string
}

// SolidAt reports whether the tile at (col, row) collides. Cells outside the
// map are not solid.
func (l *Level) SolidAt(col, row int) bool {
	if col < 0 || row < 0 || col >= l.Cols || row >= l.Rows {
		return false
	}
	return l.solid[row*l.Cols+col]
}

// TileAt converts a world position to tile coordinates.
func (l *Level) TileAt(x, y float64) (col, row int) {
	col = floorDiv(x, float64(l.TileWidth))
	row = floorDiv(y, float64(l.TileHeight))
	return col, row
}

func floorDiv(v, size float64) int {
	if size <= 0 {
		return 0
	}
	q := int(v / size)
	if v < 0 && float64(q)*size != v {
		q--
	}
	return q
}
