package core

// Event identifies a notable occurrence during a simulation tick.
// The platform layer reacts to events (sound cues); game logic only
// emits them and never touches audio devices directly.
type Event int

const (
	EventNone Event = iota
	EventWallHit
	EventPaddleHit
	EventBrickHit
	EventSpecialBurst
	EventLaunch
	EventBoost
	EventBallLost
	EventLevelClear
	EventGameOver
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventWallHit:
		return "wall_hit"
	case EventPaddleHit:
		return "paddle_hit"
	case EventBrickHit:
		return "brick_hit"
	case EventSpecialBurst:
		return "special_burst"
	case EventLaunch:
		return "launch"
	case EventBoost:
		return "boost"
	case EventBallLost:
		return "ball_lost"
	case EventLevelClear:
		return "level_clear"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
