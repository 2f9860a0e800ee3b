package physics

import "fmt"

// PredictConfig bounds a trajectory prediction. StepSize is the time
// advanced per iteration; MaxIterations is the hard ceiling against
// pathological obstacle configurations (hitting it is normal truncation,
// not an error); MaxBounces is the number of reflections simulated before
// the path stops at its next contact. Delay tags the leading points whose
// cumulative path distance is shorter than the body's initial speed times
// Delay as not-yet-visible, without dropping them.
type PredictConfig struct {
	MaxBounces    int
	MaxIterations int
	StepSize      float64
	Delay         float64
}

func (cfg PredictConfig) validate() error {
	if cfg.StepSize <= 0 || !isFinite(cfg.StepSize) {
		return fmt.Errorf("%w: step size %v", ErrInvalidConfig, cfg.StepSize)
	}
	if cfg.MaxBounces < 0 {
		return fmt.Errorf("%w: negative max bounces %d", ErrInvalidConfig, cfg.MaxBounces)
	}
	if cfg.MaxIterations < 0 {
		return fmt.Errorf("%w: negative max iterations %d", ErrInvalidConfig, cfg.MaxIterations)
	}
	if cfg.Delay < 0 || !isFinite(cfg.Delay) {
		return fmt.Errorf("%w: delay %v", ErrInvalidConfig, cfg.Delay)
	}
	return nil
}

// TrajectoryPoint is one sample of a predicted path. Delayed marks points
// the renderer should hide; the simulation computes them regardless.
type TrajectoryPoint struct {
	Pos     Vec2
	Step    int // Zero-based simulation step index
	Delayed bool
}

// Predict forward-simulates a working copy of the body through the obstacle
// snapshot and returns the sampled path, one point per step. Each step
// advances the copy by StepSize, runs detection, and on contact reflects the
// velocity against the combined contact normal (speed preserved) and pushes
// the copy out of penetration. The path ends when a contact is reached with
// no bounces left or when MaxIterations is exhausted, whichever comes first,
// so with MaxBounces zero the output is a straight line ending at the first
// contact. The caller's body is never mutated; a fresh call is required for
// a new prediction.
func Predict(initial Body, obstacles []Obstacle, cfg PredictConfig) ([]TrajectoryPoint, error) {
	if err := initial.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if initial.Vel.IsZero() {
		return nil, nil
	}

	threshold := initial.Vel.Len() * cfg.Delay
	body := initial
	pts := make([]TrajectoryPoint, 0, cfg.MaxIterations)
	traveled := 0.0
	bounces := 0
	for it := 0; it < cfg.MaxIterations; it++ {
		prev := body.Pos
		body = body.Advance(cfg.StepSize)
		traveled += body.Pos.Dist(prev)

		contacts, err := Detect(body, obstacles)
		if err != nil {
			return nil, err
		}
		done := false
		if len(contacts) > 0 {
			if bounces >= cfg.MaxBounces {
				done = true
			} else {
				normal, ok := CombinedNormal(contacts)
				if !ok {
					normal = fallbackNormal
				}
				v, err := Reflect(body.Vel, normal, 1)
				if err != nil {
					return nil, err
				}
				body.Vel = v
				body = ResolveContact(body, normal, contacts[0].Depth)
				bounces++
			}
		}
		pts = append(pts, TrajectoryPoint{
			Pos:     body.Pos,
			Step:    it,
			Delayed: traveled < threshold,
		})
		if done {
			break
		}
	}
	return pts, nil
}

// LandingX forward-simulates like Predict and returns the x coordinate at
// which the body first crosses targetY while moving downward (the auto
// paddle's catch line). ok is false when the prediction ceilings run out
// before the body ever descends to targetY.
func LandingX(initial Body, obstacles []Obstacle, targetY float64, cfg PredictConfig) (x float64, ok bool, err error) {
	if err := initial.Validate(); err != nil {
		return 0, false, err
	}
	if err := cfg.validate(); err != nil {
		return 0, false, err
	}
	if !isFinite(targetY) {
		return 0, false, fmt.Errorf("%w: target y %v", ErrInvalidConfig, targetY)
	}
	if initial.Vel.IsZero() {
		return 0, false, nil
	}

	body := initial
	bounces := 0
	for it := 0; it < cfg.MaxIterations; it++ {
		body = body.Advance(cfg.StepSize)
		if body.Vel.Y > 0 && body.Pos.Y+body.Radius >= targetY {
			return body.Pos.X, true, nil
		}
		contacts, derr := Detect(body, obstacles)
		if derr != nil {
			return 0, false, derr
		}
		if len(contacts) > 0 {
			if bounces >= cfg.MaxBounces {
				return 0, false, nil
			}
			normal, okn := CombinedNormal(contacts)
			if !okn {
				normal = fallbackNormal
			}
			v, rerr := Reflect(body.Vel, normal, 1)
			if rerr != nil {
				return 0, false, rerr
			}
			body.Vel = v
			body = ResolveContact(body, normal, contacts[0].Depth)
			bounces++
		}
	}
	return 0, false, nil
}

// AimVelocity returns a velocity of the given speed pointing from one
// position toward a target (the serve-aiming aid). A zero direction or
// non-positive speed yields a straight-up launch so the caller always gets
// a usable vector.
func AimVelocity(from, target Vec2, speed float64) Vec2 {
	if speed <= 0 || !isFinite(speed) {
		speed = 1
	}
	dir := target.Sub(from).Normalize()
	if dir.IsZero() {
		dir = fallbackNormal
	}
	return dir.Scale(speed)
}
