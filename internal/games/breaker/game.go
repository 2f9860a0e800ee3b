// Package breaker implements the brick breaker game: a ball, a horseshoe
// paddle, and a wall of bricks, simulated by the physics package. The game
// is pure logic; rendering targets the core.Screen buffer and input arrives
// as abstract actions.
//
// Coordinates are world units: one unit per screen column and two per
// screen row, so circles keep their aspect on terminal cells. Row 0 is
// reserved for the HUD.
package breaker

import (
	"math"
	"math/rand"
	"time"

	"github.com/rayraychen2011/tui-breaker/internal/config"
	"github.com/rayraychen2011/tui-breaker/internal/core"
	"github.com/rayraychen2011/tui-breaker/internal/physics"
	"github.com/rayraychen2011/tui-breaker/internal/registry"
)

// Game states
const (
	StateServe    = "serve"    // Ball rides the paddle, waiting for launch
	StatePlaying  = "playing"  // Ball in flight
	StatePaused   = "paused"   // Simulation frozen
	StateGameOver = "gameover" // Out of lives
	StateWin      = "win"      // All levels cleared
)

// worldPerRow is the vertical world-to-screen scale.
const worldPerRow = 2.0

// Obstacle ids for non-brick geometry. Brick ids are non-negative grid
// indexes, so these stay below zero.
const (
	obstacleWallLeft  = -1
	obstacleWallRight = -2
	obstacleWallTop   = -3
	obstaclePaddle    = -4
)

// Package-level settings, set by the CLI before games are created.
var (
	configPath       string
	difficultyPreset = config.DifficultyNormal
)

// SetConfigPath sets a custom config file path (called from CLI).
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (called from CLI).
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// Game implements registry.Game for the brick breaker.
type Game struct {
	mode     string
	prevMode string // Mode to restore when unpausing

	paddle *Paddle
	ball   physics.Body
	level  *Level

	// Boost bookkeeping: normalVel tracks the un-boosted velocity across
	// bounces so releasing boost restores the current direction at normal
	// speed, not the pre-boost one.
	boosting  bool
	normalVel physics.Vec2

	autoMode bool
	preview  bool
	trail    []physics.TrajectoryPoint

	score      int
	lives      int
	stage      int // 1-based level number
	tickCount  int
	serveDelay int

	particles []Particle
	events    []core.Event

	// Obstacles in contact during the previous and current tick. An
	// overlap that persists across ticks emits its event only when it
	// begins.
	prevContacts map[int]bool
	curContacts  map[int]bool

	rng *rand.Rand

	runtime    core.RuntimeConfig
	cfg        config.BreakerConfig
	difficulty *config.DifficultyManager

	// Layout, computed at Reset
	field           physics.Rect // Playable area in world units
	arcCenterY      float64      // Fixed row for the paddle's arc center
	basePaddleWidth float64
	screenTooSmall  bool
}

func init() {
	registry.Register("breaker", func() registry.Game {
		return &Game{}
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "breaker"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Brick Breaker"
}

// Reset initializes the game for the given runtime configuration.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}

	cfg, err := config.LoadBreaker(configPath)
	if err != nil {
		cfg = config.DefaultBreakerConfig()
	}
	config.ApplyBreakerPreset(&cfg, difficultyPreset)
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	g.screenTooSmall = runtime.ScreenW < 40 || runtime.ScreenH < 16

	worldW := float64(runtime.ScreenW)
	worldH := float64(runtime.ScreenH) * worldPerRow
	g.field = physics.Rect{Left: 0, Top: worldPerRow, Right: worldW, Bottom: worldH}

	g.basePaddleWidth = cfg.Paddle.Width
	g.arcCenterY = worldH - float64(cfg.Paddle.YOffset)*worldPerRow
	paddleY := g.arcCenterY - cfg.Paddle.LegHeight - cfg.Paddle.Width/2
	g.paddle = NewPaddle(paddleY, cfg.Paddle.Width, cfg.Paddle.LegHeight, cfg.Paddle.Thickness,
		cfg.Paddle.MaxStep, cfg.Paddle.Lerp, g.field.Left, g.field.Right)

	g.level = g.newLevel()

	g.score = 0
	g.lives = cfg.Gameplay.Lives
	g.stage = 1
	g.tickCount = 0
	g.serveDelay = 0
	g.autoMode = false
	g.preview = cfg.Predictor.Enabled
	g.trail = nil
	g.particles = nil
	g.events = nil
	g.prevContacts = make(map[int]bool)
	g.curContacts = make(map[int]bool)

	g.placeBallOnPaddle()
	g.mode = StateServe
}

// newLevel builds a fresh brick wall for the current layout.
func (g *Game) newLevel() *Level {
	b := g.cfg.Bricks
	topOffset := float64(b.TopOffset) * worldPerRow
	return NewLevel(b.Rows, b.Cols, b.Gap, b.SpecialCount, g.field, topOffset, worldPerRow, g.rng)
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]
	g.tickCount++

	if g.screenTooSmall {
		return g.result()
	}

	switch g.mode {
	case StateGameOver, StateWin:
		if in.Has(core.ActionRestart) || in.Has(core.ActionLaunch) {
			g.Reset(g.runtime)
		}
		return g.result()
	}

	if in.Has(core.ActionPause) {
		if g.mode == StatePaused {
			g.mode = g.prevMode
		} else {
			g.prevMode = g.mode
			g.mode = StatePaused
		}
	}
	if g.mode == StatePaused {
		return g.result()
	}

	if in.Has(core.ActionAuto) {
		g.autoMode = !g.autoMode
	}
	if in.Has(core.ActionPreview) {
		g.preview = !g.preview
	}
	if in.Has(core.ActionBoost) {
		g.toggleBoost()
	}

	if g.serveDelay > 0 {
		g.serveDelay--
		g.particles = updateParticles(g.particles)
		return g.result()
	}

	g.updatePaddle(in)

	switch g.mode {
	case StateServe:
		g.followPaddle()
		if in.Has(core.ActionLaunch) {
			g.launch()
		}
	case StatePlaying:
		g.rotateContacts()
		g.updateBall()
	}

	g.particles = updateParticles(g.particles)

	if g.preview && g.mode == StatePlaying {
		g.updateTrail()
	} else {
		g.trail = nil
	}

	return g.result()
}

// updatePaddle moves the paddle from input, or from the predicted landing
// spot when autopilot is on.
func (g *Game) updatePaddle(in core.InputFrame) {
	if g.autoMode && g.mode == StatePlaying {
		if x, ok := g.predictLanding(); ok {
			g.paddle.SetTargetCenter(x)
		}
	} else {
		if in.Has(core.ActionLeft) {
			g.paddle.MoveTarget(-g.cfg.Paddle.Speed)
		}
		if in.Has(core.ActionRight) {
			g.paddle.MoveTarget(g.cfg.Paddle.Speed)
		}
	}
	g.paddle.Update()
}

// followPaddle keeps the attached ball riding on the paddle's mouth.
func (g *Game) followPaddle() {
	g.ball.Pos = physics.Vec2{
		X: g.paddle.CenterX(),
		Y: g.paddle.Y - g.ball.Radius,
	}
	g.ball.Vel = physics.Vec2{}
}

// launch fires the ball off the paddle at 45 degrees with a random
// horizontal direction, or straight at the nearest brick in auto mode.
func (g *Game) launch() {
	speed := g.launchSpeed()
	dir := 1.0
	if g.rng.Intn(2) == 0 {
		dir = -1.0
	}
	const diag = math.Sqrt2 / 2
	g.ball.Vel = physics.Vec2{X: dir * speed * diag, Y: -speed * diag}

	if g.autoMode {
		if target, ok := g.nearestBrick(); ok {
			g.ball.Vel = physics.AimVelocity(g.ball.Pos, target, speed)
		}
	}

	g.boosting = false
	g.normalVel = g.ball.Vel
	g.mode = StatePlaying
	g.emit(core.EventLaunch)
}

// launchSpeed is the serve speed for the current stage and difficulty.
func (g *Game) launchSpeed() float64 {
	speed := g.cfg.Physics.BallSpeed * (1 + g.cfg.Gameplay.LevelSpeedUp*float64(g.stage-1))
	speed = g.difficulty.Speed(speed, g.score, g.tickCount)
	if speed > g.cfg.Physics.MaxBallSpeed {
		speed = g.cfg.Physics.MaxBallSpeed
	}
	return speed
}

// toggleBoost switches the speed boost on or off. Turning it on stores the
// normal velocity and scales up; turning it off restores normal speed in
// the current direction.
func (g *Game) toggleBoost() {
	if g.mode != StatePlaying {
		return
	}
	if !g.boosting {
		g.boosting = true
		g.normalVel = g.ball.Vel
		g.ball.Vel = g.ball.Vel.Scale(g.cfg.Physics.BoostMultiplier)
		g.clampBallSpeed()
		g.emit(core.EventBoost)
	} else {
		g.boosting = false
		g.ball.Vel = g.normalVel
	}
}

// clampBallSpeed caps the velocity magnitude at the configured maximum.
func (g *Game) clampBallSpeed() {
	speed := g.ball.Vel.Len()
	if speed > g.cfg.Physics.MaxBallSpeed && speed > 0 {
		g.ball.Vel = g.ball.Vel.Scale(g.cfg.Physics.MaxBallSpeed / speed)
	}
}

// updateBall advances the ball through substeps short enough that it can
// never cross a brick in a single move, resolving contacts as they appear.
func (g *Game) updateBall() {
	speed := g.ball.Vel.Len()
	steps := int(math.Ceil(speed))
	if steps < 1 {
		steps = 1
	}
	dt := 1.0 / float64(steps)

	for i := 0; i < steps; i++ {
		g.ball = g.ball.Advance(dt)
		if g.handleContacts() {
			return
		}
		if g.handleBottom() {
			return
		}
	}
}

// handleContacts detects and resolves collisions at the ball's current
// position. Returns true when the step should end early (level cleared).
func (g *Game) handleContacts() bool {
	contacts, err := physics.Detect(g.ball, g.obstacles())
	if err != nil || len(contacts) == 0 {
		return false
	}

	normal, ok := physics.CombinedNormal(contacts)
	if !ok {
		normal = physics.Vec2{Y: -1}
	}

	// Reflect only when moving into the surface. A residual overlap left
	// after push-out must not flip the ball back on the next substep.
	if g.ball.Vel.Dot(normal) < 0 {
		if v, rerr := physics.Reflect(g.ball.Vel, normal, 1); rerr == nil {
			g.ball.Vel = v
		}
	}
	g.ball = physics.ResolveContact(g.ball, normal, contacts[0].Depth)

	if g.boosting {
		g.normalVel = g.ball.Vel.Scale(1 / g.cfg.Physics.BoostMultiplier)
	} else {
		g.normalVel = g.ball.Vel
	}

	paddleHit := false
	for _, c := range contacts {
		fresh := g.beginContact(c.ObstacleID)
		switch {
		case c.ObstacleID >= 0:
			g.hitBrick(c.ObstacleID)
		case c.ObstacleID == obstaclePaddle:
			if fresh {
				paddleHit = true
			}
		default:
			if fresh {
				g.emit(core.EventWallHit)
			}
		}
	}

	if paddleHit {
		g.emit(core.EventPaddleHit)
		if g.autoMode {
			if target, tok := g.nearestBrick(); tok {
				g.ball.Vel = physics.AimVelocity(g.ball.Pos, target, g.ball.Vel.Len())
			}
		}
	}

	if g.level.Remaining() == 0 {
		g.advanceStage()
		return true
	}
	return false
}

// rotateContacts begins a new tick of contact tracking.
func (g *Game) rotateContacts() {
	g.prevContacts, g.curContacts = g.curContacts, g.prevContacts
	clear(g.curContacts)
}

// beginContact records a contact with the given obstacle and reports
// whether it started this tick rather than carrying over from the last.
func (g *Game) beginContact(id int) bool {
	carried := g.prevContacts[id] || g.curContacts[id]
	g.curContacts[id] = true
	return !carried
}

// hitBrick removes a brick, scores it, and spawns its burst.
func (g *Game) hitBrick(id int) {
	brick := g.level.Brick(id)
	if brick == nil || brick.Hit {
		return
	}
	brick.Hit = true

	center := brick.Bounds.Center()
	if brick.Special {
		g.score += g.cfg.Gameplay.SpecialPoints
		cleared := g.level.ClearBurst(id)
		g.score += len(cleared) * g.cfg.Gameplay.BrickPoints
		for _, cid := range cleared {
			if b := g.level.Brick(cid); b != nil {
				c := b.Bounds.Center()
				g.particles = append(g.particles,
					spawnParticles(g.rng, c.X, c.Y, 4, 0.35, 1.0, 30, core.ColorOrange)...)
			}
		}
		g.particles = append(g.particles,
			spawnParticles(g.rng, center.X, center.Y, 18, 0.45, 1.2, 42, core.ColorOrange)...)
		g.emit(core.EventSpecialBurst)
	} else {
		g.score += g.cfg.Gameplay.BrickPoints
		g.particles = append(g.particles,
			spawnParticles(g.rng, center.X, center.Y, 10, 0.35, 1.0, 30, core.ColorBrightYellow)...)
		g.emit(core.EventBrickHit)
	}
}

// handleBottom checks whether the ball fell past the bottom edge.
// Returns true when the step should end early (serve reset or game over).
func (g *Game) handleBottom() bool {
	if g.ball.Pos.Y-g.ball.Radius <= g.field.Bottom {
		return false
	}

	if g.autoMode {
		// Autopilot never drains lives; bounce the ball back into play.
		g.ball.Pos.Y = g.field.Bottom - g.ball.Radius - 1
		if g.ball.Vel.Y > 0 {
			g.ball.Vel.Y = -g.ball.Vel.Y
		}
		g.ball.Pos.X = core.ClampF(g.ball.Pos.X,
			g.field.Left+g.ball.Radius+1, g.field.Right-g.ball.Radius-1)
		return false
	}

	g.lives--
	g.boosting = false
	g.emit(core.EventBallLost)
	if g.lives <= 0 {
		g.mode = StateGameOver
		g.emit(core.EventGameOver)
		return true
	}
	g.newServe()
	return true
}

// newServe resets the ball onto the paddle after a miss or level change.
// The paddle width follows the current difficulty level.
func (g *Game) newServe() {
	width := g.difficulty.PaddleWidth(g.basePaddleWidth, g.score, g.tickCount)
	g.paddle.Width = width
	g.paddle.Y = g.arcCenterY - g.paddle.LegHeight - width/2
	g.placeBallOnPaddle()
	clear(g.prevContacts)
	clear(g.curContacts)
	g.serveDelay = g.cfg.Gameplay.ServeDelay
	g.mode = StateServe
}

// advanceStage moves to the next level, or wins the game after the last.
func (g *Game) advanceStage() {
	g.emit(core.EventLevelClear)
	if g.stage >= g.cfg.Gameplay.Levels {
		g.mode = StateWin
		return
	}
	g.stage++
	g.level = g.newLevel()
	g.newServe()
}

// placeBallOnPaddle parks the ball on the paddle's mouth with no velocity.
func (g *Game) placeBallOnPaddle() {
	g.ball = physics.Body{
		Pos:    physics.Vec2{X: g.paddle.CenterX(), Y: g.paddle.Y - g.cfg.Physics.BallRadius},
		Radius: g.cfg.Physics.BallRadius,
	}
	g.boosting = false
	g.normalVel = physics.Vec2{}
	g.trail = nil
}

// obstacles assembles the full collision world: bricks, walls, paddle.
func (g *Game) obstacles() []physics.Obstacle {
	obs := g.level.Obstacles()
	obs = append(obs, g.wallObstacles()...)
	obs = append(obs, physics.Obstacle{ID: obstaclePaddle, Shape: g.paddle.Shape()})
	return obs
}

// wallObstacles returns the three bounding walls as thick rectangles that
// overhang the field corners so no gap opens at the seams.
func (g *Game) wallObstacles() []physics.Obstacle {
	const t = 2.0
	f := g.field
	return []physics.Obstacle{
		{ID: obstacleWallLeft, Shape: physics.Rect{Left: f.Left - t, Top: f.Top - t, Right: f.Left, Bottom: f.Bottom + t}},
		{ID: obstacleWallRight, Shape: physics.Rect{Left: f.Right, Top: f.Top - t, Right: f.Right + t, Bottom: f.Bottom + t}},
		{ID: obstacleWallTop, Shape: physics.Rect{Left: f.Left - t, Top: f.Top - t, Right: f.Right + t, Bottom: f.Top}},
	}
}

// predictLanding estimates where the ball will cross the paddle row,
// ignoring the paddle itself.
func (g *Game) predictLanding() (float64, bool) {
	obs := append(g.level.Obstacles(), g.wallObstacles()...)
	x, ok, err := physics.LandingX(g.ball, obs, g.paddle.Y, g.predictCfg())
	if err != nil {
		return 0, false
	}
	return x, ok
}

// updateTrail recomputes the trajectory preview from the current state.
func (g *Game) updateTrail() {
	obs := g.obstacles()
	pts, err := physics.Predict(g.ball, obs, g.predictCfg())
	if err != nil {
		g.trail = nil
		return
	}
	g.trail = pts
}

// predictCfg converts the configured predictor settings to physics units.
// The delay is configured in seconds and runs on the tick clock.
func (g *Game) predictCfg() physics.PredictConfig {
	p := g.cfg.Predictor
	return physics.PredictConfig{
		MaxBounces:    p.MaxBounces,
		MaxIterations: p.MaxIterations,
		StepSize:      p.StepSize,
		Delay:         p.Delay * float64(g.runtime.TickRate),
	}
}

// nearestBrick returns the center of the closest live brick to the ball.
func (g *Game) nearestBrick() (physics.Vec2, bool) {
	var best physics.Vec2
	bestD := math.MaxFloat64
	found := false
	for i := range g.level.Bricks {
		b := &g.level.Bricks[i]
		if b.Hit {
			continue
		}
		c := b.Bounds.Center()
		d := c.Sub(g.ball.Pos).LenSq()
		if d < bestD {
			bestD = d
			best = c
			found = true
		}
	}
	return best, found
}

// emit queues an event for this tick's StepResult.
func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

// result packages the current state and this tick's events.
func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State()}
	if len(g.events) > 0 {
		res.Events = append([]core.Event(nil), g.events...)
	}
	return res
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Level:    g.stage,
		GameOver: g.mode == StateGameOver,
		Win:      g.mode == StateWin,
		Paused:   g.mode == StatePaused,
	}
}
