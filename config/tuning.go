package config

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed tuning/*.yaml
var tuningFS embed.FS

const (
	CharactersFile = "characters.yaml"
	EnemiesFile    = "enemies.yaml"
)

// KnockbackConfig is a displacement in px applied over Duration ms.
// Positive Vertical pushes upward.
type KnockbackConfig struct {
	Horizontal float64 `yaml:"horizontal"`
	Vertical   float64 `yaml:"vertical"`
	Duration   float64 `yaml:"duration"`
}

// AttackConfig describes one swing. Times are ms.
type AttackConfig struct {
	Width          float64         `yaml:"width"`
	Height         float64         `yaml:"height"`
	Reach          float64         `yaml:"reach"`
	VerticalOffset float64         `yaml:"vertical_offset"`
	StartDelay     float64         `yaml:"start_delay"`
	Duration       float64         `yaml:"duration"`
	Cooldown       float64         `yaml:"cooldown"`
	Damage         int             `yaml:"damage"`
	Knockback      KnockbackConfig `yaml:"knockback"`
}

type BodyConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

type WallSlideConfig struct {
	Enabled bool `yaml:"enabled"`
	// RequireStackedWall only allows sliding when the tile above the
	// contact tile is solid too.
	RequireStackedWall bool    `yaml:"require_stacked_wall"`
	LandingSuppressMs  float64 `yaml:"landing_suppress_ms"`
}

type WallJumpConfig struct {
	Enabled         bool    `yaml:"enabled"`
	HorizontalSpeed float64 `yaml:"horizontal_speed"`
	VerticalSpeed   float64 `yaml:"vertical_speed"`
	SuppressMs      float64 `yaml:"suppress_ms"`
}

// AnimationSet maps display states to keys of the form prefix-state-dir.
type AnimationSet struct {
	Prefix string   `yaml:"prefix"`
	States []string `yaml:"states"`
}

// Key returns the animation key for a state and facing.
func (a AnimationSet) Key(state AnimState, dir Direction) string {
	return a.Prefix + "-" + state.String() + "-" + dir.String()
}

// Has reports whether art exists for the state.
func (a AnimationSet) Has(state AnimState) bool {
	return slices.Contains(a.States, state.String())
}

// CharacterConfig is the capability table of a playable character.
type CharacterConfig struct {
	Name                     string          `yaml:"name"`
	Speed                    float64         `yaml:"speed"`
	JumpSpeed                float64         `yaml:"jump_speed"`
	GroundDragX              float64         `yaml:"ground_drag_x"`
	AirDragX                 float64         `yaml:"air_drag_x"`
	WallSlideFallSpeedFactor float64         `yaml:"wall_slide_fall_speed_factor"`
	Body                     BodyConfig      `yaml:"body"`
	WallSlide                WallSlideConfig `yaml:"wall_slide"`
	WallJump                 WallJumpConfig  `yaml:"wall_jump"`
	AttackWhileWallSliding   bool            `yaml:"attack_while_wall_sliding"`
	Attack                   AttackConfig    `yaml:"attack"`
	// MovingAttack replaces Attack when |vx| exceeds the threshold at swing start.
	MovingAttack               *AttackConfig `yaml:"moving_attack"`
	MovingAttackSpeedThreshold float64       `yaml:"moving_attack_speed_threshold"`
	Animations                 AnimationSet  `yaml:"animations"`
}

// EnemyTypeConfig configures one enemy type.
type EnemyTypeConfig struct {
	Name              string        `yaml:"name"`
	Behavior          EnemyBehavior `yaml:"behavior"`
	Speed             float64       `yaml:"speed"`
	Damage            int           `yaml:"damage"`
	DamageCooldown    float64       `yaml:"damage_cooldown"`
	DeathDespawnDelay float64       `yaml:"death_despawn_delay"`
	Snapiness         float64       `yaml:"snapiness"`
	TurnaroundDelay   float64       `yaml:"turnaround_delay"`
	Width             float64       `yaml:"width"`
	Height            float64       `yaml:"height"`
}

// Normalize clamps the AI tuning into its valid ranges.
func (e *EnemyTypeConfig) Normalize() {
	e.Snapiness = min(max(e.Snapiness, 0), 1)
	e.TurnaroundDelay = max(e.TurnaroundDelay, 0)
	e.DeathDespawnDelay = max(e.DeathDespawnDelay, 0)
	e.DamageCooldown = max(e.DamageCooldown, 0)
}

// Characters and Enemies are keyed by lower-case id. Entries are updated in
// place on reload so components holding the pointers see the new values.
var Characters = map[string]*CharacterConfig{}
var Enemies = map[string]*EnemyTypeConfig{}

func init() {
	if err := applyTuningFS(tuningFS, "tuning"); err != nil {
		panic(fmt.Sprintf("config: embedded tuning: %v", err))
	}
}

// Character looks up a capability table by name, ignoring case.
func Character(name string) (*CharacterConfig, bool) {
	c, ok := Characters[strings.ToLower(name)]
	return c, ok
}

// CharacterIDs returns the known character ids in a stable order.
func CharacterIDs() []string {
	ids := make([]string, 0, len(Characters))
	for id := range Characters {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// EnemyType looks up an enemy type by name, ignoring case.
func EnemyType(name string) (*EnemyTypeConfig, bool) {
	e, ok := Enemies[strings.ToLower(name)]
	return e, ok
}

// ApplyCharacterTuning overlays YAML onto the character tables. Fields
// missing from the document keep their current values.
func ApplyCharacterTuning(data []byte) error {
	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("config: unmarshal characters: %w", err)
	}

	for id, node := range doc {
		id = strings.ToLower(id)
		next := CharacterConfig{}
		if cur, ok := Characters[id]; ok {
			next = *cur
			if cur.MovingAttack != nil {
				moving := *cur.MovingAttack
				next.MovingAttack = &moving
			}
		}
		if err := node.Decode(&next); err != nil {
			return fmt.Errorf("config: decode character %s: %w", id, err)
		}
		if next.Name == "" {
			next.Name = id
		}
		if next.Animations.Prefix == "" {
			next.Animations.Prefix = id
		}
		if cur, ok := Characters[id]; ok {
			*cur = next
		} else {
			Characters[id] = &next
		}
	}
	return nil
}

// ApplyEnemyTuning overlays YAML onto the enemy type tables.
func ApplyEnemyTuning(data []byte) error {
	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("config: unmarshal enemies: %w", err)
	}

	for id, node := range doc {
		id = strings.ToLower(id)
		next := EnemyTypeConfig{}
		if cur, ok := Enemies[id]; ok {
			next = *cur
		}
		if err := node.Decode(&next); err != nil {
			return fmt.Errorf("config: decode enemy %s: %w", id, err)
		}
		if next.Name == "" {
			next.Name = id
		}
		next.Normalize()
		if cur, ok := Enemies[id]; ok {
			*cur = next
		} else {
			Enemies[id] = &next
		}
	}
	return nil
}

// ApplyTuningFile dispatches a tuning file by its base name. Unknown files
// are ignored.
func ApplyTuningFile(fsys fs.FS, name string) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", name, err)
	}
	switch path.Base(name) {
	case CharactersFile:
		return ApplyCharacterTuning(data)
	case EnemiesFile:
		return ApplyEnemyTuning(data)
	}
	return nil
}

// LoadTuningDir applies every known tuning file present in dir.
func LoadTuningDir(dir string) error {
	return applyTuningFS(os.DirFS(dir), ".")
}

func applyTuningFS(fsys fs.FS, dir string) error {
	for _, name := range []string{CharactersFile, EnemiesFile} {
		err := ApplyTuningFile(fsys, path.Join(dir, name))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}
