package config

import (
	_ "embed"
)

//go:embed defaults/breaker.yaml
var defaultBreakerYAML []byte

// DefaultBreakerConfig returns the default breaker configuration.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Physics: BreakerPhysics{
			BallSpeed:       0.7,
			MaxBallSpeed:    4.0,
			BallRadius:      1.0,
			BoostMultiplier: 5.0,
		},
		Paddle: BreakerPaddle{
			Width:     12,
			LegHeight: 2,
			Thickness: 2,
			Speed:     2.0,
			MaxStep:   1.8,
			Lerp:      0.28,
			YOffset:   3,
		},
		Bricks: BreakerBricks{
			Rows:         5,
			Cols:         10,
			Gap:          1,
			TopOffset:    2,
			SpecialCount: 5,
		},
		Predictor: BreakerPredictor{
			Enabled:       true,
			MaxBounces:    8,
			StepSize:      0.6,
			MaxIterations: 600,
			Delay:         0.5,
		},
		Gameplay: BreakerGameplay{
			Lives:         3,
			BrickPoints:   10,
			SpecialPoints: 30,
			ServeDelay:    60,
			Levels:        3,
			LevelSpeedUp:  0.15,
		},
		Audio: BreakerAudio{
			Enabled: true,
			Volume:  0.6,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				PaddleShrink:    3,
			},
		},
	}
}

// DefaultBreakerYAML returns the embedded default YAML, commented for
// hand editing.
func DefaultBreakerYAML() []byte {
	return defaultBreakerYAML
}
