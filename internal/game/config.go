package game

// Game configuration constants.
// All tunable game parameters are centralized here for easy adjustment.

// Canvas - logical play field in game units.
const (
	CanvasWidth  = 800
	CanvasHeight = 600
)

// Timing
const (
	TickRate = 60 // Ticks per simulated second
)

// Player
const (
	PlayerRadius  = 20.0
	PlayerSpeed   = 5.0 // Units per tick at full input
	StickDeadZone = 0.1 // Stick magnitudes at or below this are neutral
)

// Obstacles
const (
	ObstacleMinRadius     = 15.0
	ObstacleRadiusSpread  = 15.0 // Radius is drawn from [min, min+spread)
	ObstacleSpeedSpread   = 3.0  // Random part of the inward speed
	ObstacleSpeedFactor   = 2.0  // Multiplied by the difficulty speed multiplier
	ObstacleLateralSpread = 2.0  // Lateral drift is drawn from [-spread/2, spread/2)
	ObstacleCullingMargin = 100.0
)

// Difficulty
const (
	InitialSpawnInterval     = 60.0 // Ticks between obstacle spawns at t=0
	MinSpawnInterval         = 20.0
	SpawnIntervalDecay       = 0.5 // Ticks removed from the interval per second
	SpeedMultiplierPerSecond = 0.05
)

// Apples and armor
const (
	AppleRadius        = 15.0
	AppleSpawnInterval = 1800 // Ticks (30 seconds)
	ArmorSeconds       = 5.0
	KnockbackFactor    = 0.1 // Share of the separation vector applied on an armored hit
)

// MonsterPalette holds the colours obstacles are tinted with.
var MonsterPalette = []string{
	"#ff416c", "#ff4b2b", "#ff6b6b", "#ff9a3d",
	"#ffd166", "#06d6a0", "#118ab2", "#073b4c",
}
