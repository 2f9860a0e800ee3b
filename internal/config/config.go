// Package config provides YAML-based game configuration loading and
// difficulty management for the breaker game.
package config

// BreakerConfig contains all configuration for the breaker game.
type BreakerConfig struct {
	Physics    BreakerPhysics   `yaml:"physics"`
	Paddle     BreakerPaddle    `yaml:"paddle"`
	Bricks     BreakerBricks    `yaml:"bricks"`
	Predictor  BreakerPredictor `yaml:"predictor"`
	Gameplay   BreakerGameplay  `yaml:"gameplay"`
	Audio      BreakerAudio     `yaml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BreakerPhysics defines ball physics parameters. Speeds and sizes are in
// world units per tick; the world is one unit per column and two per row,
// so circles keep their aspect on terminal cells.
type BreakerPhysics struct {
	BallSpeed       float64 `yaml:"ball_speed"`       // Launch speed
	MaxBallSpeed    float64 `yaml:"max_ball_speed"`   // Hard cap, boost included
	BallRadius      float64 `yaml:"ball_radius"`      // Collision radius in cells
	BoostMultiplier float64 `yaml:"boost_multiplier"` // Speed factor while boosting
}

// BreakerPaddle defines the horseshoe paddle geometry and motion.
// Widths are in columns; LegHeight is in world units.
type BreakerPaddle struct {
	Width     float64 `yaml:"width"`      // Outer diameter
	LegHeight float64 `yaml:"leg_height"` // Leg height above the arc
	Thickness float64 `yaml:"thickness"`  // Leg thickness
	Speed     float64 `yaml:"speed"`      // Target movement per tick while held
	MaxStep   float64 `yaml:"max_step"`   // Smoothing cap per tick
	Lerp      float64 `yaml:"lerp"`       // Smoothing factor once within MaxStep
	YOffset   int     `yaml:"y_offset"`   // Rows between the arc center and the bottom
}

// BreakerBricks defines the brick wall layout.
type BreakerBricks struct {
	Rows         int `yaml:"rows"`
	Cols         int `yaml:"cols"`
	Gap          int `yaml:"gap"`           // Cells between bricks
	TopOffset    int `yaml:"top_offset"`    // Rows below the HUD line
	SpecialCount int `yaml:"special_count"` // Burst bricks per level
}

// BreakerPredictor defines trajectory preview parameters.
type BreakerPredictor struct {
	Enabled       bool    `yaml:"enabled"`
	MaxBounces    int     `yaml:"max_bounces"`
	StepSize      float64 `yaml:"step_size"` // Cells advanced per iteration
	MaxIterations int     `yaml:"max_iterations"`
	Delay         float64 `yaml:"delay"` // Seconds of path hidden near the ball
}

// BreakerGameplay defines scoring and progression rules.
type BreakerGameplay struct {
	Lives         int     `yaml:"lives"`
	BrickPoints   int     `yaml:"brick_points"`
	SpecialPoints int     `yaml:"special_points"`
	ServeDelay    int     `yaml:"serve_delay"`    // Ticks before the next serve
	Levels        int     `yaml:"levels"`         // Cleared levels needed to win
	LevelSpeedUp  float64 `yaml:"level_speed_up"` // Ball speed gain per level
}

// BreakerAudio defines sound cue settings.
type BreakerAudio struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Ball speed gain at max difficulty
	PaddleShrink    float64 `yaml:"paddle_shrink"`    // Paddle width loss at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
