package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 4x3 map: a two-tile stacked wall in column 0, a single lip in column 3,
// a floor row, and one decorative tile.
const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0">
 <tileset firstgid="1" name="tiles" tilewidth="16" tileheight="16" tilecount="2" columns="2">
  <image source="tiles.png" width="32" height="16"/>
  <tile id="0">
   <properties>
    <property name="collides" type="bool" value="true"/>
   </properties>
  </tile>
  <tile id="1">
   <properties>
    <property name="collides" type="bool" value="false"/>
   </properties>
  </tile>
 </tileset>
 <layer id="1" name="Ground" width="4" height="3">
  <data encoding="csv">
1,0,0,0,
1,2,0,1,
1,1,1,1
</data>
 </layer>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="1" x="24" y="16">
   <properties>
    <property name="spawnIndex" type="int" value="1"/>
   </properties>
  </object>
  <object id="2" x="40" y="16"/>
 </objectgroup>
 <objectgroup id="3" name="Enemies">
  <object id="3" name="goomba" x="48" y="32"/>
  <object id="4" name="ignored" x="56" y="32">
   <properties>
    <property name="enemyType" value="chaser"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="4" name="Dummies">
  <object id="5" x="30" y="32"/>
 </objectgroup>
</map>
`

func loadTestLevel(t *testing.T) *Level {
	t.Helper()
	fsys := fstest.MapFS{
		"levels/test.tmx": {Data: []byte(testTMX)},
	}
	level, err := Load(fsys, "levels/test.tmx", DefaultOptions)
	require.NoError(t, err)
	return level
}

func TestLoadDimensions(t *testing.T) {
	level := loadTestLevel(t)

	assert.Equal(t, "test", level.Name)
	assert.Equal(t, 4, level.Cols)
	assert.Equal(t, 3, level.Rows)
	assert.Equal(t, 64, level.Width)
	assert.Equal(t, 48, level.Height)
}

func TestLoadCollisionGrid(t *testing.T) {
	level := loadTestLevel(t)

	assert.True(t, level.SolidAt(0, 0))
	assert.True(t, level.SolidAt(0, 1))
	assert.False(t, level.SolidAt(1, 1), "decor tile")
	assert.True(t, level.SolidAt(3, 1))
	assert.False(t, level.SolidAt(3, 0))
	assert.False(t, level.SolidAt(-1, 0))
	assert.False(t, level.SolidAt(4, 2))

	assert.Len(t, level.SolidRects, 7)
	require.Len(t, level.DecorRects, 1)
	assert.Equal(t, TileRect{X: 16, Y: 16, W: 16, H: 16, Col: 1, Row: 1}, level.DecorRects[0])
}

func TestLoadObjects(t *testing.T) {
	level := loadTestLevel(t)

	require.Len(t, level.PlayerSpawns, 2)
	assert.Equal(t, SpawnPoint{X: 40, Y: 16, Index: 0}, level.PlayerSpawns[0])
	assert.Equal(t, SpawnPoint{X: 24, Y: 16, Index: 1}, level.PlayerSpawns[1])

	assert.Equal(t, []EnemySpawn{
		{X: 48, Y: 32, EnemyType: "goomba"},
		{X: 56, Y: 32, EnemyType: "chaser"},
	}, level.EnemySpawns)

	assert.Equal(t, []SpawnPoint{{X: 30, Y: 32}}, level.DummySpawns)
}

func TestLoadMissingLayer(t *testing.T) {
	fsys := fstest.MapFS{
		"test.tmx": {Data: []byte(testTMX)},
	}
	_, err := Load(fsys, "test.tmx", Options{CollisionLayer: "Walls", CollidesProp: "collides"})
	assert.ErrorContains(t, err, `layer "Walls" not found`)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(fstest.MapFS{}, "nope.tmx", DefaultOptions)
	assert.Error(t, err)
}

func TestTileAt(t *testing.T) {
	level := loadTestLevel(t)

	col, row := level.TileAt(17, 31.9)
	assert.Equal(t, 1, col)
	assert.Equal(t, 1, row)

	col, row = level.TileAt(-0.5, 0)
	assert.Equal(t, -1, col)
	assert.Equal(t, 0, row)
}
