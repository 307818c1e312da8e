package config

// Config holds the logical screen size.
type Config struct {
	Width  int
	Height int
}

// PhysicsConfig contains world integration values. Velocities are px/s and
// accelerations px/s², matching the arcade body model the systems expect.
type PhysicsConfig struct {
	Gravity      float64
	MaxFallSpeed float64
	CellSize     int     // resolv space cell size
	ContactProbe float64 // distance used to refresh blocked/touching flags
}

// AnimationConfig tunes the priority resolver.
type AnimationConfig struct {
	AirborneVelocityThreshold float64 // |vy| above which rise/fall wins over run/idle
	MoveDeltaThreshold        float64 // px moved per frame that counts as running
	WallSlideHoldMs           float64 // slide animation survives contact flicker this long
	FallbackKey               string  // shown when a requested key has no art
	FrameMs                   float64
}

// CameraConfig mirrors the follow behaviour of the original web build.
type CameraConfig struct {
	FollowLerp     float64
	OffsetX        float64 // negative is left of center
	OffsetY        float64
	ShakeIntensity float64
	ShakeMs        float64
}

// DeathConfig times the death sequence.
type DeathConfig struct {
	CameraPanMs     float64
	CameraZoom      float64
	TeardownDelayMs float64
}

// DummyConfig configures the training dummy.
type DummyConfig struct {
	Width        float64
	Height       float64
	DragX        float64
	ResetHits    int
	FlashMs      float64
	SpawnOffsetX float64
	SpawnOffsetY float64
}

// DebugConfig contains developer toggles.
type DebugConfig struct {
	ShowHitboxes bool
	ShowOverlay  bool
	SkipMenu     bool
	TuningDir    string
}

// LevelConfig names the level assets.
type LevelConfig struct {
	Path           string
	CollisionLayer string
	CollidesProp   string
	DefaultSpawnX  float64
	DefaultSpawnY  float64
}

var C *Config
var Physics PhysicsConfig
var Animation AnimationConfig
var Camera CameraConfig
var Death DeathConfig
var Dummy DummyConfig
var Debug DebugConfig
var Level LevelConfig

func init() {
	C = &Config{
		Width:  240,
		Height: 135,
	}

	Physics = PhysicsConfig{
		Gravity:      500,
		MaxFallSpeed: 400,
		CellSize:     16,
		ContactProbe: 1,
	}

	Animation = AnimationConfig{
		AirborneVelocityThreshold: 20,
		MoveDeltaThreshold:        0.5,
		WallSlideHoldMs:           125,
		FallbackKey:               "missing",
		FrameMs:                   125, // 8 fps
	}

	Camera = CameraConfig{
		FollowLerp:     0.1,
		OffsetX:        -10,
		OffsetY:        0,
		ShakeIntensity: 1.5,
		ShakeMs:        120,
	}

	Death = DeathConfig{
		CameraPanMs:     600,
		CameraZoom:      2,
		TeardownDelayMs: 1500,
	}

	Dummy = DummyConfig{
		Width:        18,
		Height:       28,
		DragX:        800,
		ResetHits:    5,
		FlashMs:      80,
		SpawnOffsetX: 80,
		SpawnOffsetY: -16,
	}

	Debug = DebugConfig{}

	Level = LevelConfig{
		Path:           "levels/level1.tmx",
		CollisionLayer: "Ground",
		CollidesProp:   "collides",
		DefaultSpawnX:  100,
		DefaultSpawnY:  100,
	}
}
