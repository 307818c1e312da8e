package config

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restoreTables snapshots the tuning tables and puts them back after the test.
func restoreTables(t *testing.T) {
	t.Helper()
	chars := make(map[string]CharacterConfig, len(Characters))
	for id, c := range Characters {
		chars[id] = *c
	}
	enemies := make(map[string]EnemyTypeConfig, len(Enemies))
	for id, e := range Enemies {
		enemies[id] = *e
	}
	t.Cleanup(func() {
		for id := range Characters {
			if _, ok := chars[id]; !ok {
				delete(Characters, id)
			}
		}
		for id, c := range chars {
			*Characters[id] = c
		}
		for id := range Enemies {
			if _, ok := enemies[id]; !ok {
				delete(Enemies, id)
			}
		}
		for id, e := range enemies {
			*Enemies[id] = e
		}
	})
}

func TestEmbeddedCharacters(t *testing.T) {
	rovert, ok := Character("Rovert")
	require.True(t, ok)
	assert.Equal(t, 150.0, rovert.Speed)
	assert.Equal(t, 200.0, rovert.JumpSpeed)
	require.NotNil(t, rovert.MovingAttack)
	assert.False(t, rovert.WallJump.Enabled)

	shuey, ok := Character("shuey")
	require.True(t, ok)
	assert.Equal(t, 90.0, shuey.Speed)
	assert.Equal(t, 215.0, shuey.JumpSpeed)
	assert.True(t, shuey.WallJump.Enabled)
	assert.True(t, shuey.WallSlide.RequireStackedWall)
	assert.Nil(t, shuey.MovingAttack)

	assert.Equal(t, []string{"rovert", "shuey"}, CharacterIDs())
}

func TestEmbeddedEnemies(t *testing.T) {
	chaser, ok := EnemyType("chaser")
	require.True(t, ok)
	assert.Equal(t, BehaviorChase, chaser.Behavior)
	assert.Equal(t, 40.0, chaser.Speed)
	assert.Equal(t, 0.25, chaser.Snapiness)
	assert.Equal(t, 200.0, chaser.TurnaroundDelay)
	assert.Equal(t, 600.0, chaser.DeathDespawnDelay)

	snail, ok := EnemyType("Snail")
	require.True(t, ok)
	assert.Equal(t, BehaviorPassive, snail.Behavior)

	goomba, ok := EnemyType("goomba")
	require.True(t, ok)
	assert.Zero(t, goomba.DeathDespawnDelay)
}

func TestApplyCharacterTuningKeepsPointersAndUnsetFields(t *testing.T) {
	restoreTables(t)
	rovert, _ := Character("rovert")
	before := *rovert

	err := ApplyCharacterTuning([]byte("rovert:\n  speed: 175\n  attack:\n    cooldown: 400\n"))
	require.NoError(t, err)

	after, _ := Character("rovert")
	assert.Same(t, rovert, after)
	assert.Equal(t, 175.0, after.Speed)
	assert.Equal(t, 400.0, after.Attack.Cooldown)
	assert.Equal(t, before.JumpSpeed, after.JumpSpeed)
	assert.Equal(t, before.Attack.StartDelay, after.Attack.StartDelay)
}

func TestApplyCharacterTuningAddsCharacter(t *testing.T) {
	restoreTables(t)
	require.NoError(t, ApplyCharacterTuning([]byte("zed:\n  speed: 10\n")))

	zed, ok := Character("zed")
	require.True(t, ok)
	assert.Equal(t, "zed", zed.Name)
	assert.Equal(t, "zed-idle-left", zed.Animations.Key(AnimIdle, DirLeft))
}

func TestApplyEnemyTuningClamps(t *testing.T) {
	restoreTables(t)
	err := ApplyEnemyTuning([]byte("chaser:\n  snapiness: 3\n  turnaround_delay: -50\n"))
	require.NoError(t, err)

	chaser, _ := EnemyType("chaser")
	assert.Equal(t, 1.0, chaser.Snapiness)
	assert.Equal(t, 0.0, chaser.TurnaroundDelay)
	assert.Equal(t, 40.0, chaser.Speed)
}

func TestApplyEnemyTuningRejectsUnknownBehavior(t *testing.T) {
	restoreTables(t)
	err := ApplyEnemyTuning([]byte("goomba:\n  behavior: teleport\n"))
	assert.Error(t, err)
}

func TestApplyTuningFile(t *testing.T) {
	restoreTables(t)
	fsys := fstest.MapFS{
		"t/enemies.yaml": {Data: []byte("goomba:\n  speed: 55\n")},
		"t/readme.txt":   {Data: []byte("ignored")},
	}

	require.NoError(t, ApplyTuningFile(fsys, "t/enemies.yaml"))
	require.NoError(t, ApplyTuningFile(fsys, "t/readme.txt"))

	goomba, _ := EnemyType("goomba")
	assert.Equal(t, 55.0, goomba.Speed)
}

func TestLoadTuningDirSkipsMissingFiles(t *testing.T) {
	restoreTables(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, CharactersFile), []byte("shuey:\n  jump_speed: 230\n"), 0o644))

	require.NoError(t, LoadTuningDir(dir))

	shuey, _ := Character("shuey")
	assert.Equal(t, 230.0, shuey.JumpSpeed)
}

func TestAnimationSet(t *testing.T) {
	set := AnimationSet{Prefix: "rovert", States: []string{"idle", "running"}}

	assert.Equal(t, "rovert-running-right", set.Key(AnimRunning, DirRight))
	assert.Equal(t, "rovert-wall-slide-left", set.Key(AnimWallSlide, DirLeft))
	assert.True(t, set.Has(AnimIdle))
	assert.False(t, set.Has(AnimFalling))
}

func TestWatchTuningReportsWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := WatchTuning(dir)
	require.NoError(t, err)
	defer w.Close()

	target := filepath.Join(dir, EnemiesFile)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(target, []byte("goomba:\n  speed: 41\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, target, name)
	case <-time.After(2 * time.Second):
		t.Fatal("no tuning event")
	}
}
